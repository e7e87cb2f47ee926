package briansbrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCycle(t *testing.T) {
	b := New(6, 6)
	b.Grid().Clear()
	b.Grid().Put(2, 2, stateOn)
	b.Grid().Put(3, 2, stateOn)

	b.Step()
	assert.Equal(t, uint8(stateDying), b.Grid().At(2, 2))
	assert.Equal(t, uint8(stateDying), b.Grid().At(3, 2))
	// Cells touching exactly two firing neighbours ignite.
	assert.Equal(t, uint8(stateOn), b.Grid().At(2, 1))
	assert.Equal(t, uint8(stateOn), b.Grid().At(3, 3))
	// Diagonal corner sees only one firing neighbour.
	assert.Equal(t, uint8(stateDead), b.Grid().At(1, 1))

	b.Step()
	assert.Equal(t, uint8(stateDead), b.Grid().At(2, 2))
}

func TestResetDeterministic(t *testing.T) {
	a, b := New(40, 30), New(40, 30)
	a.Reset(11)
	b.Reset(11)
	assert.Equal(t, a.Cells(), b.Cells())
	for _, v := range a.Cells() {
		assert.Contains(t, []uint8{stateDead, stateOn}, v)
	}
}
