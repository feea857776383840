// Package vec lifts the ring package's per-polynomial operations to
// fixed-length vectors of polynomials (the K-dimensional and L-dimensional
// vectors the surrounding scheme builds its public key, secret key, and
// signature out of), plus the matrix expansion and matrix-vector product
// that tie the sampling layer to the arithmetic layer.
package vec

import (
	"github.com/quannguyen247/dilithium-dev/internal/hint"
	"github.com/quannguyen247/dilithium-dev/internal/ring"
	"github.com/quannguyen247/dilithium-dev/internal/sample"
)

// Vec is a variable-length vector of polynomials. Its length is K or L
// depending on which key/signature component it represents; callers size
// it via make([]ring.Poly, k) or make([]ring.Poly, l).
type Vec []ring.Poly

// Add computes c[i] = a[i] + b[i] for every polynomial in the vector.
func Add(c, a, b Vec) {
	for i := range c {
		ring.Add(&c[i], &a[i], &b[i])
	}
}

// Sub computes c[i] = a[i] - b[i] for every polynomial in the vector.
func Sub(c, a, b Vec) {
	for i := range c {
		ring.Sub(&c[i], &a[i], &b[i])
	}
}

// Reduce applies ring.Reduce to every polynomial in the vector.
func Reduce(a Vec) {
	for i := range a {
		ring.Reduce(&a[i])
	}
}

// CAddQ applies ring.CAddQ to every polynomial in the vector.
func CAddQ(a Vec) {
	for i := range a {
		ring.CAddQ(&a[i])
	}
}

// ShiftL applies ring.ShiftL to every polynomial in the vector.
func ShiftL(a Vec) {
	for i := range a {
		ring.ShiftL(&a[i])
	}
}

// NTT applies the forward NTT to every polynomial in the vector in place.
func NTT(a Vec) {
	for i := range a {
		ring.NTT(&a[i])
	}
}

// InvNTT applies the inverse NTT to every polynomial in the vector in place.
func InvNTT(a Vec) {
	for i := range a {
		ring.InvNTT(&a[i])
	}
}

// PointwiseMontgomery computes c[i] = PointwiseMontgomery(a[i], b[i]) for
// every polynomial in the vector.
func PointwiseMontgomery(c, a, b Vec) {
	for i := range c {
		ring.PointwiseMontgomery(&c[i], &a[i], &b[i])
	}
}

// ChkNorm reports whether any polynomial in the vector has a centered
// coefficient with magnitude >= bound.
func ChkNorm(a Vec, bound int32) bool {
	exceeded := false
	for i := range a {
		if ring.ChkNorm(&a[i], bound) {
			exceeded = true
		}
	}
	return exceeded
}

// MakeHintVec lifts hint.MakeHint across a K-dimensional vector, comparing
// z0[i][j] and z1[i][j] coefficient-wise and writing a {0,1} hint
// polynomial vector, the shape pack.PackHint expects. It returns that
// vector alongside its total popcount (the sum of all set bits across
// every polynomial), which callers compare against omega before packing.
func MakeHintVec(z0, z1 Vec, gamma2 int) (h Vec, popcount int) {
	h = make(Vec, len(z0))
	for i := range z0 {
		for j := range z0[i] {
			if hint.MakeHint(z0[i][j], z1[i][j], gamma2) {
				h[i][j] = 1
				popcount++
			}
		}
	}
	return h, popcount
}

// Matrix is a K-by-L matrix of polynomials, the expanded public matrix A.
type Matrix [][]ring.Poly

// ExpandA expands the 32-byte seed rho into the K-by-L public matrix A,
// with A[i][j] = poly_uniform(rho, (i<<8)|j).
func ExpandA(rho []byte, k, l int) Matrix {
	a := make(Matrix, k)
	for i := 0; i < k; i++ {
		a[i] = make([]ring.Poly, l)
		for j := 0; j < l; j++ {
			nonce := uint16(i)<<8 | uint16(j)
			a[i][j] = sample.Uniform(rho, nonce)
		}
	}
	return a
}

// MulVec computes t = A*v as K pointwise-accumulate-Montgomery dot
// products against v: t[i] = sum_j pointwise(A[i][j], v[j]). Both A's rows
// and v's entries must already be in NTT domain; t is returned in NTT
// domain as well.
func MulVec(a Matrix, v Vec) Vec {
	k := len(a)
	t := make(Vec, k)
	for i := 0; i < k; i++ {
		var acc, term ring.Poly
		for j := range v {
			ring.PointwiseMontgomery(&term, &a[i][j], &v[j])
			ring.Add(&acc, &acc, &term)
		}
		t[i] = acc
	}
	return t
}
