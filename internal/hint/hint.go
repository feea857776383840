// Package hint implements the decomposition and hint-bit primitives used
// by the signing retry loop and the verifier: power2round (splitting a
// coefficient into its top and bottom D bits), decompose (the high/low
// bits split used for the w1/w0 commitment), make_hint/use_hint (letting a
// verifier recover high bits of a secret-dependent value without the
// secret), and the constant-time norm check re-exported from ring.
package hint

import (
	"github.com/quannguyen247/dilithium-dev/internal/params"
	"github.com/quannguyen247/dilithium-dev/internal/ring"
)

const d = params.D
const q = params.Q

// Power2Round splits a, taken as a representative in [0, Q), into
// (a1, a0) with a == a1*2^D + a0 (mod Q) and a0 in (-2^(D-1), 2^(D-1)].
func Power2Round(a int32) (a1, a0 int32) {
	a1 = (a + (1 << (d - 1)) - 1) >> d
	a0 = a - (a1 << d)
	return a1, a0
}

// Decompose splits a, taken as a representative in [0, Q), into (a1, a0)
// with a == a1*alpha + a0 (mod Q) and |a0| <= alpha/2, where alpha =
// 2*gamma2. The rounding constants differ by which of the two supported
// gamma2 values is in play; each branch folds its wrap-around edge case
// (a1 == 44 for gamma2==(Q-1)/88, a1 == 16 for gamma2==(Q-1)/32) back to
// (a1=0, a0=a-Q).
func Decompose(a int32, gamma2 int) (a1, a0 int32) {
	a1 = (a + 127) >> 7
	if gamma2 == (q-1)/88 {
		a1 = (a1*11275 + (1 << 23)) >> 24
		a1 ^= ((43 - a1) >> 31) & a1
	} else {
		a1 = (a1*1025 + (1 << 21)) >> 22
		a1 &= 15
	}
	a0 = a - a1*int32(2*gamma2)
	// Fold a0 back from (Q-1)/2 into the centered range by subtracting Q;
	// this only fires in the wrap-around case where a1 was folded to 0 and
	// a0 == a lies near Q, and keeps decompose bit-exact across
	// implementations per the interoperability requirement in section 1.
	if a0 > int32((q-1)/2) {
		a0 -= q
	}
	return a1, a0
}

// MakeHint reports whether the hint bit for (a0, a1) must be 1: a0
// outside [-gamma2, gamma2], or exactly -gamma2 with a1 nonzero. This is a
// public-signature-component predicate and may branch on its inputs.
func MakeHint(a0, a1 int32, gamma2 int) bool {
	g2 := int32(gamma2)
	return a0 > g2 || a0 < -g2 || (a0 == -g2 && a1 != 0)
}

// UseHint recovers the high bits a1' of a, given the hint bit h computed
// during signing. When h is false, decompose(a)'s a1 is already correct.
func UseHint(a int32, h bool, gamma2 int) int32 {
	a1, a0 := Decompose(a, gamma2)
	if !h {
		return a1
	}
	m := int32(16)
	if gamma2 == (q-1)/88 {
		m = 44
	}
	if a0 > 0 {
		return ((a1 + 1) % m)
	}
	return (((a1-1)%m + m) % m)
}

// ChkNorm re-exports ring.ChkNorm: it reports whether any centered
// coefficient of a has magnitude >= bound, in constant time.
func ChkNorm(a *ring.Poly, bound int32) bool {
	return ring.ChkNorm(a, bound)
}
