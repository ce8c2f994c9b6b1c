package native

import "gonum.org/v1/gonum/blas"

// CBLAS enumeration values. gonum's blas enums are character codes
// ('U', 'N', ...), so C entry points need these instead.
const (
	cblasUpper = 121
	cblasLower = 122

	cblasNoTrans   = 111
	cblasTransT    = 112
	cblasConjTrans = 113

	cblasNonUnit = 131
	cblasUnit    = 132
)

const (
	badUplo  = "native: illegal triangle"
	badTrans = "native: illegal transpose"
	badDiag  = "native: illegal diagonal"
)

func cblasUplo(ul blas.Uplo) int {
	switch ul {
	case blas.Upper:
		return cblasUpper
	case blas.Lower:
		return cblasLower
	}
	panic(badUplo)
}

func cblasTrans(tA blas.Transpose) int {
	switch tA {
	case blas.NoTrans:
		return cblasNoTrans
	case blas.Trans:
		return cblasTransT
	case blas.ConjTrans:
		return cblasConjTrans
	}
	panic(badTrans)
}

func cblasDiag(d blas.Diag) int {
	switch d {
	case blas.NonUnit:
		return cblasNonUnit
	case blas.Unit:
		return cblasUnit
	}
	panic(badDiag)
}

func cblasOrder(o Order) int {
	switch o {
	case RowMajor, ColMajor:
		return int(o)
	}
	panic(badOrder)
}
