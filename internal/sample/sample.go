// Package sample implements the rejection-sampling polynomial generators
// that turn seed bytes into the four polynomial shapes the surrounding
// scheme needs: uniform mod Q (public matrix entries), uniform in
// [-eta, eta] (secret key polynomials), uniform in (-gamma1, gamma1]
// (masking polynomials), and the sparse ternary challenge polynomial.
//
// Every sampler here absorbs a seed plus a 16-bit little-endian nonce (or,
// for the challenge, a fixed-length seed alone) into a fresh sponge. The
// rejection samplers (Uniform, UniformEta, Challenge) pull rate-sized
// blocks until enough accepted coefficients have been produced;
// UniformGamma1 squeezes one fixed-length buffer. Rejection runs on sponge output derived from public seed
// material, so these loops may branch on their input without violating
// the constant-time discipline the ring package upholds for secret data.
package sample

import (
	"encoding/binary"

	"github.com/golang/glog"

	"github.com/quannguyen247/dilithium-dev/internal/keccak"
	"github.com/quannguyen247/dilithium-dev/internal/pack"
	"github.com/quannguyen247/dilithium-dev/internal/params"
	"github.com/quannguyen247/dilithium-dev/internal/ring"
)

const q = params.Q

// nonceBlock returns seed with a little-endian 16-bit nonce appended.
func nonceBlock(seed []byte, nonce uint16) []byte {
	out := make([]byte, len(seed)+2)
	copy(out, seed)
	binary.LittleEndian.PutUint16(out[len(seed):], nonce)
	return out
}

// rejUniform consumes buf in 3-byte groups, writing accepted coefficients
// (values < Q, taken from the low 23 bits) into a, starting at a[0].
// It returns the number of coefficients written, which may be less than
// len(a)-off if buf runs out before a is full.
func rejUniform(a []int32, buf []byte) int {
	written := 0
	for i := 0; i+3 <= len(buf) && written < len(a); i += 3 {
		t := uint32(buf[i]) | uint32(buf[i+1])<<8 | uint32(buf[i+2]&0x7f)<<16
		if t < q {
			a[written] = int32(t)
			written++
		}
	}
	return written
}

// Uniform expands (rho, nonce) into a polynomial with coefficients
// uniform over [0, Q) via SHAKE128 and the 3-byte/23-bit rejection rule.
func Uniform(rho []byte, nonce uint16) ring.Poly {
	var p ring.Poly
	s := keccak.New(keccak.Shake128Rate, keccak.ShakeDomain, 32)
	s.AbsorbOnce(nonceBlock(rho, nonce))

	var block [keccak.Shake128Rate]byte
	written := 0
	refills := 0
	for written < params.N {
		s.Squeeze(block[:])
		refills++
		written += rejUniform(p[written:], block[:])
	}
	glog.V(2).Infof("sample.Uniform: nonce=%d refills=%d", nonce, refills)
	return p
}

// coeffFromNibbleEta2 maps an accepted nibble to a coefficient in
// [-2, 2] for ETA=2: coefficient = 2 - (nibble mod 5).
func coeffFromNibbleEta2(nibble byte) int32 {
	return 2 - int32(nibble%5)
}

// coeffFromNibbleEta4 maps an accepted nibble to a coefficient in
// [-4, 4] for ETA=4: coefficient = 4 - nibble.
func coeffFromNibbleEta4(nibble byte) int32 {
	return 4 - int32(nibble)
}

// rejEta consumes buf one byte (two nibbles) at a time, mapping accepted
// nibbles into a, starting at a[0], per the given eta's rule. It returns
// the number of coefficients written.
func rejEta(a []int32, buf []byte, eta int) int {
	written := 0
	for i := 0; i < len(buf) && written < len(a); i++ {
		lo := buf[i] & 0x0f
		hi := buf[i] >> 4
		for _, nibble := range [2]byte{lo, hi} {
			if written >= len(a) {
				break
			}
			if eta == 2 {
				if nibble < 15 {
					a[written] = coeffFromNibbleEta2(nibble)
					written++
				}
			} else {
				if nibble < 9 {
					a[written] = coeffFromNibbleEta4(nibble)
					written++
				}
			}
		}
	}
	return written
}

// UniformEta expands (seed, nonce) into a polynomial with coefficients
// uniform over [-eta, eta] via SHAKE256 and the nibble rejection rule.
// eta must be 2 or 4.
func UniformEta(seed []byte, nonce uint16, eta int) ring.Poly {
	var p ring.Poly
	s := keccak.New(keccak.Shake256Rate, keccak.ShakeDomain, 64)
	s.AbsorbOnce(nonceBlock(seed, nonce))

	var block [keccak.Shake256Rate]byte
	written := 0
	refills := 0
	for written < params.N {
		s.Squeeze(block[:])
		refills++
		written += rejEta(p[written:], block[:], eta)
	}
	glog.V(2).Infof("sample.UniformEta: nonce=%d eta=%d refills=%d", nonce, eta, refills)
	return p
}

// UniformGamma1 expands (seed, nonce) into a polynomial with coefficients
// in (-gamma1, gamma1], via SHAKE256 squeezed for exactly polyZBytes bytes
// and unpacked by the z-unpack bit layout (package pack).
//
// This sampler has no rejection step: z_unpack is a bijection from
// polyZBytes bytes onto the full coefficient range, so it needs exactly
// one squeeze of that many bytes. gamma1 selects which bit width and
// packed length unpack expects.
func UniformGamma1(seed []byte, nonce uint16, gamma1 int) ring.Poly {
	s := keccak.New(keccak.Shake256Rate, keccak.ShakeDomain, 64)
	s.AbsorbOnce(nonceBlock(seed, nonce))

	polyZBytes := pack.PolyZBytes17
	if gamma1 == 1<<19 {
		polyZBytes = pack.PolyZBytes19
	}
	buf := make([]byte, polyZBytes)
	s.Squeeze(buf)

	var p ring.Poly
	pack.UnpackZ(&p, buf, gamma1)
	return p
}

// Challenge expands a CTILDEBYTES-length seed into the sparse ternary
// challenge polynomial with exactly tau nonzero coefficients in {-1, +1},
// via SHAKE256 and Fisher-Yates-style swap sampling seeded by a leading
// 8-byte sign word.
func Challenge(seed []byte, tau int) ring.Poly {
	var c ring.Poly
	s := keccak.New(keccak.Shake256Rate, keccak.ShakeDomain, 64)
	s.AbsorbOnce(seed)

	var block [keccak.Shake256Rate]byte
	s.Squeeze(block[:])
	signWord := binary.LittleEndian.Uint64(block[:8])
	pos := 8

	nextByte := func() byte {
		if pos == len(block) {
			s.Squeeze(block[:])
			pos = 0
		}
		b := block[pos]
		pos++
		return b
	}

	rejects := 0
	for i := params.N - tau; i < params.N; i++ {
		var j int
		for {
			b := nextByte()
			j = int(b)
			if j <= i {
				break
			}
			rejects++
		}
		c[i] = c[j]
		sign := int32(1)
		if signWord&1 != 0 {
			sign = -1
		}
		signWord >>= 1
		c[j] = sign
	}
	glog.V(2).Infof("sample.Challenge: tau=%d rejects=%d", tau, rejects)
	return c
}
