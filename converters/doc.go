// Package converters provides two-way adapters between matrix.Matrix and
// gonum's dense linear-algebra types:
//   - *mat.Dense / mat.Matrix     ↔ matrix.Matrix[T Real]     (float64 storage)
//   - *mat.VecDense               ← []T
//   - *mat.CDense / mat.CMatrix   ↔ matrix.Matrix[T Complex]  (complex128 storage)
//
// Use converters to hand a row-built system to gonum for operations this
// module deliberately leaves out (products, decompositions, inverses), and
// to bring gonum results back for row-level work.
//
// Every conversion copies; no storage is shared across the boundary.
package converters
