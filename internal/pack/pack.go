// Package pack implements the bit-packed binary encoding used for every
// polynomial variant that crosses a wire boundary: the eta-bounded secret
// key polynomials, the t1/t0 public-key split, the gamma1-bounded masking
// polynomial z, the high-bits commitment w1, and the sparse hint vector.
//
// Every scalar packing below is a single continuous little-endian bit
// stream: coefficients are mapped into an unsigned domain, then packed
// LSB-first back to back with no padding bits between coefficients, which
// is exactly the reference layout's "N*bitsPerCoef/8 bytes" shape.
package pack

import (
	"errors"

	"github.com/quannguyen247/dilithium-dev/internal/params"
	"github.com/quannguyen247/dilithium-dev/internal/ring"
)

const n = params.N

// packBits writes len(coeffs) values, each holding bits significant bits,
// into out as a continuous LSB-first bit stream. out must be exactly
// (len(coeffs)*bits + 7) / 8 bytes.
func packBits(out []byte, coeffs []uint32, bits int) {
	var acc uint64
	accBits := 0
	pos := 0
	for _, c := range coeffs {
		acc |= uint64(c) << accBits
		accBits += bits
		for accBits >= 8 {
			out[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	if accBits > 0 {
		out[pos] = byte(acc)
	}
}

// unpackBits is the inverse of packBits: it reads len(coeffs) values of
// bits significant bits each from the continuous LSB-first bit stream in.
func unpackBits(coeffs []uint32, in []byte, bits int) {
	var acc uint64
	accBits := 0
	pos := 0
	mask := uint64(1)<<bits - 1
	for i := range coeffs {
		for accBits < bits {
			acc |= uint64(in[pos]) << accBits
			accBits += 8
			pos++
		}
		coeffs[i] = uint32(acc & mask)
		acc >>= bits
		accBits -= bits
	}
}

// PolyEtaBytes2, PolyEtaBytes4 are the packed lengths for ETA=2 and ETA=4.
const (
	PolyEtaBytes2 = 96
	PolyEtaBytes4 = 128
)

// PackEta packs a with coefficients in [-eta, eta] into out, mapping
// c <- eta - c into the unsigned domain [0, 2*eta]. eta must be 2 or 4.
func PackEta(out []byte, a *ring.Poly, eta int) {
	var u [n]uint32
	for i := range a {
		u[i] = uint32(int32(eta) - a[i])
	}
	bits := 3
	if eta == 4 {
		bits = 4
	}
	packBits(out, u[:], bits)
}

// UnpackEta is the inverse of PackEta.
func UnpackEta(a *ring.Poly, in []byte, eta int) {
	var u [n]uint32
	bits := 3
	if eta == 4 {
		bits = 4
	}
	unpackBits(u[:], in, bits)
	for i := range a {
		a[i] = int32(eta) - int32(u[i])
	}
}

// PolyT1Bytes is the packed length of a t1 polynomial.
const PolyT1Bytes = params.PolyT1Bytes

// PackT1 packs a with coefficients in [0, 1024) into out, 10 bits each.
func PackT1(out []byte, a *ring.Poly) {
	var u [n]uint32
	for i := range a {
		u[i] = uint32(a[i])
	}
	packBits(out, u[:], 10)
}

// UnpackT1 is the inverse of PackT1.
func UnpackT1(a *ring.Poly, in []byte) {
	var u [n]uint32
	unpackBits(u[:], in, 10)
	for i := range a {
		a[i] = int32(u[i])
	}
}

// PolyT0Bytes is the packed length of a t0 polynomial.
const PolyT0Bytes = params.PolyT0Bytes

// PackT0 packs a with coefficients in (-2^(D-1), 2^(D-1)] into out,
// mapping c <- 2^(D-1) - c into the unsigned domain [0, 2^D), 13 bits each.
func PackT0(out []byte, a *ring.Poly) {
	const half = int32(1) << (params.D - 1)
	var u [n]uint32
	for i := range a {
		u[i] = uint32(half - a[i])
	}
	packBits(out, u[:], params.D)
}

// UnpackT0 is the inverse of PackT0.
func UnpackT0(a *ring.Poly, in []byte) {
	const half = int32(1) << (params.D - 1)
	var u [n]uint32
	unpackBits(u[:], in, params.D)
	for i := range a {
		a[i] = half - int32(u[i])
	}
}

// PolyZBytes17, PolyZBytes19 are the packed lengths for GAMMA1 = 2^17 and
// GAMMA1 = 2^19 respectively.
const (
	PolyZBytes17 = 576
	PolyZBytes19 = 640
)

// PackZ packs a with coefficients in (-gamma1, gamma1] into out, mapping
// c <- gamma1 - c into the unsigned domain [0, 2*gamma1).
func PackZ(out []byte, a *ring.Poly, gamma1 int) {
	var u [n]uint32
	for i := range a {
		u[i] = uint32(int32(gamma1) - a[i])
	}
	bits := 18
	if gamma1 == 1<<19 {
		bits = 20
	}
	packBits(out, u[:], bits)
}

// UnpackZ is the inverse of PackZ.
func UnpackZ(a *ring.Poly, in []byte, gamma1 int) {
	var u [n]uint32
	bits := 18
	if gamma1 == 1<<19 {
		bits = 20
	}
	unpackBits(u[:], in, bits)
	for i := range a {
		a[i] = int32(gamma1) - int32(u[i])
	}
}

// PolyW1Bytes6, PolyW1Bytes4 are the packed lengths for the alpha=(Q-1)/44
// and alpha=(Q-1)/16 high-bits domains respectively.
const (
	PolyW1Bytes6 = 192
	PolyW1Bytes4 = 128
)

// PackW1 packs a with coefficients already in the high-bits domain
// ([0, 44) or [0, 16), selected by gamma2) into out.
func PackW1(out []byte, a *ring.Poly, gamma2 int) {
	var u [n]uint32
	for i := range a {
		u[i] = uint32(a[i])
	}
	bits := 6
	if gamma2 != (params.Q-1)/88 {
		bits = 4
	}
	packBits(out, u[:], bits)
}

// UnpackW1 is the inverse of PackW1.
func UnpackW1(a *ring.Poly, in []byte, gamma2 int) {
	var u [n]uint32
	bits := 6
	if gamma2 != (params.Q-1)/88 {
		bits = 4
	}
	unpackBits(u[:], in, bits)
	for i := range a {
		a[i] = int32(u[i])
	}
}

// ErrMalformedHint is returned by UnpackHint when the packed hint vector
// fails any of its structural checks: non-monotone indices within a
// polynomial, a running popcount that decreases, a total popcount
// exceeding omega, or a nonzero head byte past the total popcount.
var ErrMalformedHint = errors.New("pack: malformed hint vector")

// PackHint packs a length-K vector of {0,1} hint polynomials into
// omega+k bytes: the first omega bytes list, per polynomial in order, the
// coefficient indices holding a 1-bit (increasing within each
// polynomial); unused head bytes beyond the true popcount are left zero.
// The trailing k bytes record the running popcount after each polynomial.
// PackHint panics if the vector's total popcount exceeds omega; callers
// are expected to have already rejected such a vector by comparing the
// popcount returned by vec.MakeHintVec against omega.
func PackHint(out []byte, hints []ring.Poly, omega int) {
	for i := range out {
		out[i] = 0
	}
	running := 0
	for i, h := range hints {
		for j := range h {
			if h[j] != 0 {
				if running >= omega {
					panic("pack: hint vector popcount exceeds omega")
				}
				out[running] = byte(j)
				running++
			}
		}
		out[omega+i] = byte(running)
	}
}

// UnpackHint is the inverse of PackHint. It rejects malformed input per
// the structural rules above, returning ErrMalformedHint. hints is cleared
// first, so on error it holds only the bits decoded before the failure.
func UnpackHint(hints []ring.Poly, in []byte, omega int) error {
	k := len(hints)
	for i := range hints {
		for j := range hints[i] {
			hints[i][j] = 0
		}
	}
	running := 0
	for i := 0; i < k; i++ {
		count := int(in[omega+i])
		if count < running || count > omega {
			return ErrMalformedHint
		}
		for j := running; j < count; j++ {
			if j > running && in[j] <= in[j-1] {
				return ErrMalformedHint
			}
			hints[i][in[j]] = 1
		}
		running = count
	}
	for i := running; i < omega; i++ {
		if in[i] != 0 {
			return ErrMalformedHint
		}
	}
	return nil
}
