// Package diagmv provides x := diag(d)·x, the element-wise scaling of a
// vector by the diagonal held in another vector.
//
// Dispatch follows the trmv package: dense operands of one of the four
// BLAS element types go to the native backend's ?tbmv with zero
// off-diagonals, where d's increment serves as the band's leading
// dimension. Other dense operands use a loop over the raw buffers and
// everything else goes through AtVec/SetVec.
//
// # Example Usage
//
//	d := la.NewVector([]float64{2, 3})
//	x := la.NewVector([]float64{1, 1})
//	diagmv.Diagmv[float64](d, x)
//	// x = [2, 3]
package diagmv
