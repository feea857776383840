// Package ring implements the fixed-modulus polynomial ring Z_Q[x]/(x^N+1)
// used by the surrounding sampling and packing layers: constant-time
// modular reduction, element-wise arithmetic, and the forward/inverse NTT.
//
// A Poly is a value object: its N coefficients are signed 32-bit integers
// whose bound depends on the operation that produced them (documented per
// operation below). Whether a Poly is in "normal" or "NTT" domain is a
// logical tag the caller tracks; the type itself does not distinguish.
// Every operation in this file permits its output to alias one of its
// inputs.
package ring

import (
	"fmt"
	"strings"

	"github.com/quannguyen247/dilithium-dev/internal/params"
)

const (
	n = params.N
	q = params.Q
)

// Poly is a degree-(N-1) polynomial over Z_Q, stored as N signed
// coefficients.
type Poly [n]int32

// String prints the first few and last coefficients, since printing all N
// is rarely useful and floods test failure output. It does not reduce its
// operand first: coefficients print exactly as stored, bound and all.
func (p Poly) String() string {
	const shown = 4
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < shown; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", p[i])
	}
	fmt.Fprintf(&b, ", ..., %d]", p[n-1])
	return b.String()
}

// Equal reports whether p and o represent the same polynomial modulo Q,
// comparing central reductions of each coefficient rather than raw stored
// values so that callers need not normalize first.
func (p Poly) Equal(o Poly) bool {
	for i := range p {
		if centralReduce(p[i]) != centralReduce(o[i]) {
			return false
		}
	}
	return true
}

// Add computes c[i] = a[i] + b[i]. The output bound is the sum of the
// input bounds; callers that need a reduced result call Reduce afterward.
func Add(c, a, b *Poly) {
	for i := range c {
		c[i] = a[i] + b[i]
	}
}

// Sub computes c[i] = a[i] - b[i]. The output bound is the difference of
// the input bounds.
func Sub(c, a, b *Poly) {
	for i := range c {
		c[i] = a[i] - b[i]
	}
}

// centralReduce returns r == a (mod Q) with |r| <= (Q-1)/2 plus a small
// slack, using the standard Barrett-style shift-and-subtract (no division).
func centralReduce(a int32) int32 {
	t := (a + (1 << 22)) >> 23
	return a - t*q
}

// Reduce applies centralReduce to every coefficient of a in place.
// Output bound: at most 6283008 in magnitude, per spec.
func Reduce(a *Poly) {
	for i := range a {
		a[i] = centralReduce(a[i])
	}
}

// caddQ folds a negative representative into [0, Q).
func caddQ(a int32) int32 {
	if a < 0 {
		return a + q
	}
	return a
}

// CAddQ applies caddQ to every coefficient of a in place, producing
// representatives in [0, Q).
func CAddQ(a *Poly) {
	for i := range a {
		a[i] = caddQ(a[i])
	}
}

// ShiftL multiplies every coefficient of a by 2^D in place. Callers must
// ensure |a[i]| < 2^(31-D) beforehand.
func ShiftL(a *Poly) {
	for i := range a {
		a[i] <<= params.D
	}
}

// MontgomeryReduce returns r with r*2^32 == a (mod Q) and |r| < Q, given
// |a| < Q*2^31.
func MontgomeryReduce(a int64) int32 {
	t := int32(uint32(a) * params.QInv)
	return int32((a - int64(t)*q) >> 32)
}

// PointwiseMontgomery computes c[i] = MontgomeryReduce(a[i]*b[i]) for each
// coefficient. Output bound: |c[i]| < 2Q.
func PointwiseMontgomery(c, a, b *Poly) {
	for i := range c {
		c[i] = MontgomeryReduce(int64(a[i]) * int64(b[i]))
	}
}

// ChkNorm reports whether any centered coefficient of a has magnitude >= b.
// a's coefficients are assumed already centrally reduced (i.e. |a[i]| <=
// (Q-1)/2 plus slack, the output shape of Reduce). The comparison runs in
// time independent of the coefficient values: no branch depends on a
// coefficient's value, only a mask is OR-accumulated and its top bit is
// read at the end. This matters because a is frequently a secret
// polynomial (z, or a signing-retry candidate derived from a secret).
func ChkNorm(a *Poly, bound int32) bool {
	var mask int32
	for i := range a {
		t := a[i]
		// Absolute value without branching on sign: t is already the
		// centered representative, so only its sign is folded away.
		s := t >> 31          // all-ones if t < 0, else 0
		absT := (t ^ s) - s   // |t|
		d := bound - 1 - absT // >= 0 iff absT < bound
		mask |= d >> 31       // sets top bit of mask iff d < 0, i.e. absT >= bound
	}
	return mask>>31 != 0
}
