// SPDX-License-Identifier: MIT

package converters

import "errors"

var (
	// ErrNilMatrix indicates a nil source matrix.
	ErrNilMatrix = errors.New("converters: nil matrix")

	// ErrEmptyMatrix indicates a zero-row or zero-column source; gonum
	// cannot represent such shapes.
	ErrEmptyMatrix = errors.New("converters: empty matrix")
)
