// Package zarray provides fixed-size 2D and 3D grids stored as 8-per-axis
// blocks, each block addressed internally in Morton (Z-order) so that cells
// which are close in space are also close in memory.
//
// Grids come in two shapes, [Grid2D] and [Grid3D], with identical access
// families:
//
//   - Get/Set check bounds and return a [*LookupError] on failure.
//   - GetUnchecked/SetUnchecked skip validation; out-of-range input may hit
//     a padding cell or panic.
//   - WrappedGet/WrappedSet tile negative and overflowing coordinates around
//     the logical extent.
//   - BoundedGet/BoundedSet report or ignore out-of-range coordinates.
//   - Fill, WrappedFill and BoundedFill apply the matching setter to every
//     cell of a half-open box.
//
// Extents need not be multiples of 8. Boundary blocks then carry padding
// cells which are allocated and initialised but never returned by checked,
// bounded or iterator access.
//
// Grids do no locking. Concurrent readers are fine; any writer needs the
// whole grid to itself.
package zarray
