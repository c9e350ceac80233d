// Package matrix provides a generic, row-oriented dense matrix.
//
// What & Why:
//
//	Matrix[T] stores a rectangular grid as a slice of owned rows. Row-level
//	access is the primary surface: get/set/swap a row, append a column, scale
//	a row, add a scaled row to another. These are the elementary row
//	operations behind Gaussian elimination (see package linsys).
//
// Capability sets:
//
//	Each operation asks only for what it needs from T:
//	  • New, NewWith, FromRows, row access: any T (zero value is the default)
//	  • Equal: comparable
//	  • ScaleRow: Scalar (T*T → T)
//	  • AddScaled: Ring (adds T+T → T and zero)
//
// Failure classes:
//
//	Malformed construction input (empty, ragged) is a validation failure:
//	FromRows returns (nil, ErrEmpty|ErrRagged). Out-of-range row indices and
//	shape mismatches in mutators are programmer errors and panic with an
//	error wrapping ErrOutOfRange or ErrDimensionMismatch.
//
// Aliasing:
//
//	Row and the RowIterator hand out borrowed views into the matrix storage.
//	A view stays valid only until the next structural mutation (SetRow,
//	SwapRows, AddColumn, AddScaled); do not hold one across such a call.
//	Use CopyRow or Clone when an independent copy is needed.
//
// Complexity:
//
//	Row access O(1); SwapRows O(1); ScaleRow/AddScaled O(cols);
//	AddColumn O(rows) amortized; Clone/Equal O(rows*cols).
package matrix
