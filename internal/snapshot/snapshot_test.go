package snapshot

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prng "zgrid/pkg/core"
	"zgrid/pkg/zarray"
)

func TestRoundTrip2D(t *testing.T) {
	r := prng.NewRNG(20220331).Source()
	g := zarray.New2D(37, 19, uint16(0))
	g.Transform(func(_, _ int, _ uint16) uint16 { return uint16(r.IntN(65536)) })

	var buf bytes.Buffer
	require.NoError(t, Write2D(&buf, g))
	assert.Equal(t, "ZGRD", buf.String()[:4])

	got, err := Read2D[uint16](&buf)
	require.NoError(t, err)
	w, h := got.Dimensions()
	assert.Equal(t, [2]int{37, 19}, [2]int{w, h})
	assert.True(t, zarray.Equal2D(g, got))
}

func TestRoundTrip3DFloat(t *testing.T) {
	g := zarray.NewFunc3D(9, 4, 11, func(x, y, z int) float32 { return float32(x) + float32(y)/10 - float32(z) })

	var buf bytes.Buffer
	require.NoError(t, Write3D(&buf, g))
	got, err := Read3D[float32](&buf)
	require.NoError(t, err)
	assert.True(t, zarray.Equal3D(g, got))
}

func TestRoundTripEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write2D(&buf, zarray.New2D(0, 5, int8(3))))
	got, err := Read2D[int8](&buf)
	require.NoError(t, err)
	assert.True(t, got.Empty())
	assert.Equal(t, 5, got.Height())
}

func TestCompresses(t *testing.T) {
	g := zarray.New2D(256, 256, uint32(7))
	var buf bytes.Buffer
	require.NoError(t, Write2D(&buf, g))
	assert.Less(t, buf.Len(), g.Len())
}

func TestReadErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write2D(&buf, zarray.New2D(4, 4, uint8(1))))
	raw := buf.Bytes()

	_, err := Read3D[uint8](bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrRankMismatch)

	_, err = Read2D[uint16](bytes.NewReader(raw))
	assert.ErrorIs(t, err, ErrElementMismatch)

	bad := append([]byte(nil), raw...)
	bad[0] = 'X'
	_, err = Read2D[uint8](bytes.NewReader(bad))
	assert.ErrorIs(t, err, ErrBadMagic)

	bad = append([]byte(nil), raw...)
	binary.LittleEndian.PutUint16(bad[4:], 9)
	_, err = Read2D[uint8](bytes.NewReader(bad))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Read2D[uint8](bytes.NewReader(raw[:3]))
	assert.Error(t, err)

	_, err = Read2D[uint8](bytes.NewReader(raw[:16]))
	assert.Error(t, err)
}

func TestReadRejectsHugeExtents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header{Magic: magic, Version: Version, Rank: 2, ElemSize: 1}))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint32{1 << 20, 1 << 20}))
	_, err := Read2D[uint8](&buf)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestReadLargeGrid(t *testing.T) {
	g := zarray.NewFunc2D(300, 301, func(x, y int) uint16 { return uint16(x ^ y) })
	var buf bytes.Buffer
	require.NoError(t, Write2D(&buf, g))
	got, err := Read2D[uint16](&buf)
	require.NoError(t, err)
	assert.True(t, zarray.Equal2D(g, got))
}

func TestReadShortStreamFailsEarly(t *testing.T) {
	var body bytes.Buffer
	require.NoError(t, Write2D(&body, zarray.New2D(16, 16, uint64(5))))
	raw := body.Bytes()

	// Same payload, header claiming the largest grid Read accepts.
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, header{Magic: magic, Version: Version, Rank: 2, ElemSize: 8}))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint32{1 << 14, 1 << 14}))
	buf.Write(raw[16:])

	_, err := Read2D[uint64](&buf)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read values 0..65536")
}
