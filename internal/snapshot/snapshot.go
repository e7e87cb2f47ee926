// Package snapshot stores grids as a small header followed by a zstd stream
// of little-endian values in iteration order.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/klauspost/compress/zstd"

	"zgrid/pkg/zarray"
)

// Version is the only format version Read accepts.
const Version uint16 = 1

// MaxCells bounds the logical size Read will allocate.
const MaxCells = 1 << 28

var magic = [4]byte{'Z', 'G', 'R', 'D'}

var (
	ErrBadMagic           = errors.New("snapshot: bad magic")
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	ErrRankMismatch       = errors.New("snapshot: rank mismatch")
	ErrElementMismatch    = errors.New("snapshot: element size mismatch")
	ErrTooLarge           = errors.New("snapshot: grid too large")
)

// Element is the set of value types with a fixed wire size.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type header struct {
	Magic    [4]byte
	Version  uint16
	Rank     uint8
	ElemSize uint8
}

// Write2D writes g to w.
func Write2D[T Element](w io.Writer, g *zarray.Grid2D[T]) error {
	ext := []uint32{uint32(g.Width()), uint32(g.Height())}
	return write(w, ext, g.Len(), g.All())
}

// Write3D writes g to w.
func Write3D[T Element](w io.Writer, g *zarray.Grid3D[T]) error {
	x, y, z := g.Dimensions()
	return write(w, []uint32{uint32(x), uint32(y), uint32(z)}, g.Len(), g.All())
}

func write[C any, T Element](w io.Writer, ext []uint32, n int, all iter.Seq2[C, T]) error {
	var zero T
	h := header{Magic: magic, Version: Version, Rank: uint8(len(ext)), ElemSize: uint8(binary.Size(zero))}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, ext); err != nil {
		return fmt.Errorf("snapshot: write extents: %w", err)
	}

	vals := make([]T, 0, n)
	for _, v := range all {
		vals = append(vals, v)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("snapshot: zstd writer: %w", err)
	}
	if err := binary.Write(enc, binary.LittleEndian, vals); err != nil {
		_ = enc.Close()
		return fmt.Errorf("snapshot: write values: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("snapshot: flush values: %w", err)
	}
	return nil
}

// Read2D reads a grid written by Write2D.
func Read2D[T Element](r io.Reader) (*zarray.Grid2D[T], error) {
	ext, err := readHeader[T](r, 2)
	if err != nil {
		return nil, err
	}
	vals, err := readValues[T](r, int(ext[0])*int(ext[1]))
	if err != nil {
		return nil, err
	}
	var zero T
	g := zarray.New2D(int(ext[0]), int(ext[1]), zero)
	i := 0
	g.Transform(func(_, _ int, _ T) T {
		v := vals[i]
		i++
		return v
	})
	return g, nil
}

// Read3D reads a grid written by Write3D.
func Read3D[T Element](r io.Reader) (*zarray.Grid3D[T], error) {
	ext, err := readHeader[T](r, 3)
	if err != nil {
		return nil, err
	}
	vals, err := readValues[T](r, int(ext[0])*int(ext[1])*int(ext[2]))
	if err != nil {
		return nil, err
	}
	var zero T
	g := zarray.New3D(int(ext[0]), int(ext[1]), int(ext[2]), zero)
	i := 0
	g.Transform(func(_, _, _ int, _ T) T {
		v := vals[i]
		i++
		return v
	})
	return g, nil
}

func readHeader[T Element](r io.Reader, rank int) ([]uint32, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if h.Magic != magic {
		return nil, ErrBadMagic
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if int(h.Rank) != rank {
		return nil, fmt.Errorf("%w: file has rank %d, want %d", ErrRankMismatch, h.Rank, rank)
	}
	var zero T
	if size := binary.Size(zero); int(h.ElemSize) != size {
		return nil, fmt.Errorf("%w: file has %d-byte values, want %d", ErrElementMismatch, h.ElemSize, size)
	}
	ext := make([]uint32, rank)
	if err := binary.Read(r, binary.LittleEndian, ext); err != nil {
		return nil, fmt.Errorf("snapshot: read extents: %w", err)
	}
	cells := uint64(1)
	for _, e := range ext {
		cells *= uint64(e)
		if cells > MaxCells {
			return nil, fmt.Errorf("%w: extents %v", ErrTooLarge, ext)
		}
	}
	return ext, nil
}

// readChunk bounds how many values one read decodes. A short stream fails
// before the full grid is allocated.
const readChunk = 1 << 16

func readValues[T Element](r io.Reader, n int) ([]T, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: zstd reader: %w", err)
	}
	defer dec.Close()
	vals := make([]T, 0, min(n, readChunk))
	buf := make([]T, min(n, readChunk))
	for len(vals) < n {
		chunk := buf[:min(n-len(vals), readChunk)]
		if err := binary.Read(dec, binary.LittleEndian, chunk); err != nil {
			return nil, fmt.Errorf("snapshot: read values %d..%d of %d: %w", len(vals), len(vals)+len(chunk), n, err)
		}
		vals = append(vals, chunk...)
	}
	return vals, nil
}
