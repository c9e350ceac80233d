// SPDX-License-Identifier: MIT

// Package matrix: capability sets for element types.
// Each row operation constrains T to the smallest set it needs; the sets are
// kept separate even where Go's type sets coincide so signatures document intent.
package matrix

import "golang.org/x/exp/constraints"

// Integer is any signed or unsigned integer type.
type Integer = constraints.Integer

// Float is any floating-point type.
type Float = constraints.Float

// Complex is any complex type.
type Complex = constraints.Complex

// Real is an ordered numeric type convertible to float64.
type Real interface {
	Integer | Float
}

// Scalar is the capability set for in-place scaling: T*T → T.
type Scalar interface {
	Integer | Float | Complex
}

// Ring extends Scalar with T+T → T and an additive zero (the zero value).
// Required by AddScaled and by dot-product style derivations.
type Ring interface {
	Scalar
}

// Field extends Ring with division by any non-zero element.
// Integer types are excluded because their division truncates.
type Field interface {
	Float | Complex
}
