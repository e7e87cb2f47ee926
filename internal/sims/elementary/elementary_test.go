package elementary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func row(e *Elementary, y int) []uint8 {
	out := make([]uint8, e.w)
	for x := range out {
		out[x] = e.grid.At(x, y)
	}
	return out
}

func TestRule90Sierpinski(t *testing.T) {
	e := New(9, 4, 90)
	e.Reset(0)
	e.Step()
	e.Step()

	want := [][]uint8{
		{0, 0, 1, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 1, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	for y, w := range want {
		if diff := cmp.Diff(w, row(e, y)); diff != "" {
			t.Fatalf("row %d mismatch (-want +got):\n%s", y, diff)
		}
	}
}

func TestFromMapRule(t *testing.T) {
	assert.Equal(t, uint8(30), FromMap(map[string]string{"rule": "30"}).Rule)
	assert.Equal(t, uint8(110), FromMap(map[string]string{"rule": "300"}).Rule)
}

func TestParameters(t *testing.T) {
	snap := New(4, 4, 30).Parameters()
	assert.Equal(t, "30", snap.Groups[0].Params[0].Value)
}
