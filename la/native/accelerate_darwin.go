// Copyright 2025 The go-linalg Authors. SPDX-License-Identifier: Apache-2.0

//go:build cgo && darwin

package native

/*
#cgo LDFLAGS: -framework Accelerate
#cgo CFLAGS: -DACCELERATE_NEW_LAPACK
#include <Accelerate/Accelerate.h>

// Thin wrappers so Go passes plain ints for the CBLAS enums.

static void la_strmv(int o, int ul, int ta, int d, int n, const float* a, int lda, float* x, int incx) {
	cblas_strmv((enum CBLAS_ORDER)o, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, a, lda, x, incx);
}
static void la_dtrmv(int o, int ul, int ta, int d, int n, const double* a, int lda, double* x, int incx) {
	cblas_dtrmv((enum CBLAS_ORDER)o, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, a, lda, x, incx);
}
static void la_ctrmv(int o, int ul, int ta, int d, int n, const void* a, int lda, void* x, int incx) {
	cblas_ctrmv((enum CBLAS_ORDER)o, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, a, lda, x, incx);
}
static void la_ztrmv(int o, int ul, int ta, int d, int n, const void* a, int lda, void* x, int incx) {
	cblas_ztrmv((enum CBLAS_ORDER)o, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, a, lda, x, incx);
}
static void la_stbmv(int o, int ul, int ta, int d, int n, int k, const float* a, int lda, float* x, int incx) {
	cblas_stbmv((enum CBLAS_ORDER)o, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, k, a, lda, x, incx);
}
static void la_dtbmv(int o, int ul, int ta, int d, int n, int k, const double* a, int lda, double* x, int incx) {
	cblas_dtbmv((enum CBLAS_ORDER)o, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, k, a, lda, x, incx);
}
static void la_ctbmv(int o, int ul, int ta, int d, int n, int k, const void* a, int lda, void* x, int incx) {
	cblas_ctbmv((enum CBLAS_ORDER)o, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, k, a, lda, x, incx);
}
static void la_ztbmv(int o, int ul, int ta, int d, int n, int k, const void* a, int lda, void* x, int incx) {
	cblas_ztbmv((enum CBLAS_ORDER)o, (enum CBLAS_UPLO)ul, (enum CBLAS_TRANSPOSE)ta, (enum CBLAS_DIAG)d, n, k, a, lda, x, incx);
}
*/
import "C"

import (
	"unsafe"

	"gonum.org/v1/gonum/blas"
)

func init() {
	Global.Register(Entry{Backend: accelerate{}, Priority: 20})
}

// accelerate calls Apple's CBLAS directly; it understands both orders.
// Callers guarantee n > 0 so &a[0] and &x[0] are valid.
type accelerate struct{}

func (accelerate) Name() string { return "accelerate" }

func (accelerate) Strmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float32, lda int, x []float32, incX int) {
	C.la_strmv(C.int(cblasOrder(o)), C.int(cblasUplo(ul)), C.int(cblasTrans(tA)), C.int(cblasDiag(d)), C.int(n),
		(*C.float)(unsafe.Pointer(&a[0])), C.int(lda),
		(*C.float)(unsafe.Pointer(&x[0])), C.int(incX))
}

func (accelerate) Dtrmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int) {
	C.la_dtrmv(C.int(cblasOrder(o)), C.int(cblasUplo(ul)), C.int(cblasTrans(tA)), C.int(cblasDiag(d)), C.int(n),
		(*C.double)(unsafe.Pointer(&a[0])), C.int(lda),
		(*C.double)(unsafe.Pointer(&x[0])), C.int(incX))
}

func (accelerate) Ctrmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex64, lda int, x []complex64, incX int) {
	C.la_ctrmv(C.int(cblasOrder(o)), C.int(cblasUplo(ul)), C.int(cblasTrans(tA)), C.int(cblasDiag(d)), C.int(n),
		unsafe.Pointer(&a[0]), C.int(lda),
		unsafe.Pointer(&x[0]), C.int(incX))
}

func (accelerate) Ztrmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []complex128, lda int, x []complex128, incX int) {
	C.la_ztrmv(C.int(cblasOrder(o)), C.int(cblasUplo(ul)), C.int(cblasTrans(tA)), C.int(cblasDiag(d)), C.int(n),
		unsafe.Pointer(&a[0]), C.int(lda),
		unsafe.Pointer(&x[0]), C.int(incX))
}

func (accelerate) Stbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float32, lda int, x []float32, incX int) {
	C.la_stbmv(C.int(cblasOrder(o)), C.int(cblasUplo(ul)), C.int(cblasTrans(tA)), C.int(cblasDiag(d)), C.int(n), C.int(k),
		(*C.float)(unsafe.Pointer(&a[0])), C.int(lda),
		(*C.float)(unsafe.Pointer(&x[0])), C.int(incX))
}

func (accelerate) Dtbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float64, lda int, x []float64, incX int) {
	C.la_dtbmv(C.int(cblasOrder(o)), C.int(cblasUplo(ul)), C.int(cblasTrans(tA)), C.int(cblasDiag(d)), C.int(n), C.int(k),
		(*C.double)(unsafe.Pointer(&a[0])), C.int(lda),
		(*C.double)(unsafe.Pointer(&x[0])), C.int(incX))
}

func (accelerate) Ctbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []complex64, lda int, x []complex64, incX int) {
	C.la_ctbmv(C.int(cblasOrder(o)), C.int(cblasUplo(ul)), C.int(cblasTrans(tA)), C.int(cblasDiag(d)), C.int(n), C.int(k),
		unsafe.Pointer(&a[0]), C.int(lda),
		unsafe.Pointer(&x[0]), C.int(incX))
}

func (accelerate) Ztbmv(o Order, ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []complex128, lda int, x []complex128, incX int) {
	C.la_ztbmv(C.int(cblasOrder(o)), C.int(cblasUplo(ul)), C.int(cblasTrans(tA)), C.int(cblasDiag(d)), C.int(n), C.int(k),
		unsafe.Pointer(&a[0]), C.int(lda),
		unsafe.Pointer(&x[0]), C.int(incX))
}
