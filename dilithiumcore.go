// Package dilithiumcore is the blessed import path for the arithmetic and
// sampling core of a CRYSTALS-Dilithium / ML-DSA style signature scheme:
// the fixed-modulus polynomial ring and NTT, the Keccak-f[1600] sponge and
// its SHAKE/SHA3 instances, rejection-sampling polynomial generators, and
// the bit-packed polynomial codec, wired together for the three standard
// security levels (2, 3, 5).
//
// The component packages under internal/ are implementation detail: this
// package re-exports the subset of their surface a keygen/sign/verify
// driver composes against, the way a library with an internal/ split
// typically keeps its components free to change shape behind one stable
// entry point.
package dilithiumcore

import (
	"github.com/quannguyen247/dilithium-dev/internal/hint"
	"github.com/quannguyen247/dilithium-dev/internal/keccak"
	"github.com/quannguyen247/dilithium-dev/internal/pack"
	"github.com/quannguyen247/dilithium-dev/internal/params"
	"github.com/quannguyen247/dilithium-dev/internal/ring"
	"github.com/quannguyen247/dilithium-dev/internal/sample"
	"github.com/quannguyen247/dilithium-dev/internal/vec"
)

// Params holds the per-level constants (K, L, ETA, TAU, BETA, GAMMA1,
// GAMMA2, OMEGA, and the packed-byte-length fields) described in section 3.
type Params = params.Params

// ErrUnknownLevel is returned by ForLevel for any level other than 2, 3, 5.
var ErrUnknownLevel = params.ErrUnknownLevel

// ForLevel returns the parameter set for the given ML-DSA security level.
func ForLevel(level int) (Params, error) {
	return params.ForLevel(level)
}

// ErrMalformedHint is returned by UnpackHint for a malformed hint vector
// (non-monotone indices, popcount regression, over-quota popcount, or a
// nonzero unused head byte).
var ErrMalformedHint = pack.ErrMalformedHint

// Sha3_256 and Sha3_512 are the one-shot SHA3 fixed-output functions.
func Sha3_256(out *[32]byte, in []byte) { keccak.Sha3_256(out, in) }
func Sha3_512(out *[64]byte, in []byte) { keccak.Sha3_512(out, in) }

// Shake128 and Shake256 are the one-shot SHAKE extendable-output functions.
func Shake128(out, in []byte) { keccak.Shake128(out, in) }
func Shake256(out, in []byte) { keccak.Shake256(out, in) }

// Poly is a degree-255 polynomial over Z_Q.
type Poly = ring.Poly

// Vec is a vector of polynomials, sized K or L by the caller.
type Vec = vec.Vec

// Matrix is the expanded K-by-L public matrix A.
type Matrix = vec.Matrix

// ExpandA expands rho into the public matrix A via the uniform sampler.
func ExpandA(rho []byte, k, l int) Matrix { return vec.ExpandA(rho, k, l) }

// MulVec computes A*v as K pointwise-accumulate-Montgomery dot products.
func MulVec(a Matrix, v Vec) Vec { return vec.MulVec(a, v) }

// Uniform, UniformEta, UniformGamma1, and Challenge are the four
// rejection-sampling polynomial generators.
func Uniform(rho []byte, nonce uint16) Poly { return sample.Uniform(rho, nonce) }
func UniformEta(seed []byte, nonce uint16, eta int) Poly {
	return sample.UniformEta(seed, nonce, eta)
}
func UniformGamma1(seed []byte, nonce uint16, gamma1 int) Poly {
	return sample.UniformGamma1(seed, nonce, gamma1)
}
func Challenge(seed []byte, tau int) Poly { return sample.Challenge(seed, tau) }

// Decompose, Power2Round, MakeHint, UseHint, and ChkNorm are the
// high/low-bits decomposition and hint primitives used by signing and
// verification.
func Power2Round(a int32) (a1, a0 int32) { return hint.Power2Round(a) }
func Decompose(a int32, gamma2 int) (a1, a0 int32) {
	return hint.Decompose(a, gamma2)
}
func MakeHint(a0, a1 int32, gamma2 int) bool { return hint.MakeHint(a0, a1, gamma2) }
func UseHint(a int32, h bool, gamma2 int) int32 {
	return hint.UseHint(a, h, gamma2)
}
func ChkNorm(a *Poly, bound int32) bool { return hint.ChkNorm(a, bound) }
