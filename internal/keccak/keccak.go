// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccak implements the Keccak-f[1600] permutation and the sponge
// construction on top of it, exposing the SHAKE128/SHAKE256 and
// SHA3-256/SHA3-512 instances; the SHAKE instances drive the sampling
// package. For a detailed specification see FIPS 202.
package keccak

import (
	"encoding/binary"
	"hash"
	"io"
)

var (
	_ hash.Hash = (*State)(nil)
	_ io.Reader = (*State)(nil)
)

const (
	spongeSize = 200 // 25 lanes * 8 bytes
	maxRate    = 168 // SHAKE128 has the widest rate in use here
)

type direction int

const (
	absorbing direction = iota
	squeezing
)

// Shake128Rate, Shake256Rate, Sha3_256Rate and Sha3_512Rate are the byte
// rates of the four sponge instances this package exposes.
const (
	Shake128Rate = 168
	Shake256Rate = 136
	Sha3_256Rate = 136
	Sha3_512Rate = 72
)

// Domain separation bytes: SHAKE uses the generic FIPS-202 suffix, SHA3
// fixed-output functions use the NIST suffix.
const (
	ShakeDomain = 0x1f
	Sha3Domain  = 0x06
)

// State is a Keccak-f[1600] sponge: 25 lanes of state plus an absorb/squeeze
// byte cursor. The zero value is not usable; construct with New.
//
// State satisfies hash.Hash and io.Reader, so it can stand in anywhere a
// fixed- or variable-output sponge is expected: Write/Sum/Reset/Size/
// BlockSize give the fixed-output hash.Hash contract, Read gives the
// unbounded squeeze an XOF needs, and Absorb/Squeeze/SqueezeBlocks remain
// for callers that want the lower-level sponge operations directly.
type State struct {
	a        [25]uint64
	buf      [maxRate]byte
	rate     int
	position int
	dsbyte   byte
	dir      direction
	size     int
}

// New creates a sponge with the given byte rate, domain-separation byte,
// and Sum/Size output length. rate must be in (0, maxRate]. size only
// governs Sum and Size; Squeeze and Read are unaffected by it and may be
// called for any length.
func New(rate int, dsbyte byte, size int) *State {
	if rate <= 0 || rate > maxRate {
		panic("keccak: invalid rate")
	}
	return &State{rate: rate, dsbyte: dsbyte, size: size}
}

// Clone returns an independent copy of the sponge in its current state.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Reset returns the sponge to its initial, freshly-absorbing state.
func (s *State) Reset() {
	for i := range s.a {
		s.a[i] = 0
	}
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.position = 0
	s.dir = absorbing
}

// Rate returns the configured byte rate of the sponge.
func (s *State) Rate() int { return s.rate }

// Write absorbs p, satisfying io.Writer/hash.Hash. It is Absorb under the
// name hash.Hash requires; the two never disagree.
func (s *State) Write(p []byte) (int, error) {
	s.Absorb(p)
	return len(p), nil
}

// Read squeezes len(p) bytes into p, satisfying io.Reader.
func (s *State) Read(p []byte) (int, error) {
	s.Squeeze(p)
	return len(p), nil
}

// Sum clones the sponge, squeezes its configured size out of the clone,
// and appends the result to b, leaving the receiver untouched so callers
// may keep writing and summing again.
func (s *State) Sum(b []byte) []byte {
	dup := s.Clone()
	out := make([]byte, dup.size)
	dup.Squeeze(out)
	return append(b, out...)
}

// Size returns the sponge's configured Sum output length, in bytes.
func (s *State) Size() int { return s.size }

// BlockSize returns the sponge's byte rate. A sponge has no block size in
// the Merkle-Damgård sense; the rate is the closest analogue, and the one
// hash.Hash callers expect back.
func (s *State) BlockSize() int { return s.rate }

func (s *State) xorBlockIntoState() {
	for i := 0; i < s.rate/8; i++ {
		s.a[i] ^= binary.LittleEndian.Uint64(s.buf[i*8:])
	}
	if s.rate%8 != 0 {
		var last [8]byte
		copy(last[:], s.buf[(s.rate/8)*8:s.rate])
		s.a[s.rate/8] ^= binary.LittleEndian.Uint64(last[:])
	}
}

func (s *State) copyStateIntoBlock() {
	for i := 0; i < s.rate/8; i++ {
		binary.LittleEndian.PutUint64(s.buf[i*8:(i+1)*8], s.a[i])
	}
	if s.rate%8 != 0 {
		var last [8]byte
		binary.LittleEndian.PutUint64(last[:], s.a[s.rate/8])
		copy(s.buf[(s.rate/8)*8:s.rate], last[:])
	}
}

// Absorb XORs p into the sponge state, permuting whenever the rate window
// fills. It must not be called once Squeeze has been called; callers that
// need hash-and-continue semantics should Clone before the first Squeeze.
func (s *State) Absorb(p []byte) {
	if s.dir == squeezing {
		panic("keccak: Absorb after Squeeze")
	}
	for len(p) > 0 {
		n := s.rate - s.position
		if n > len(p) {
			n = len(p)
		}
		for i := 0; i < n; i++ {
			s.buf[s.position+i] ^= p[i]
		}
		s.position += n
		p = p[n:]
		if s.position == s.rate {
			s.xorBlockIntoState()
			keccakF(&s.a)
			for i := range s.buf {
				s.buf[i] = 0
			}
			s.position = 0
		}
	}
}

// AbsorbOnce is a one-shot convenience: Reset, Absorb(p), Finalize.
func (s *State) AbsorbOnce(p []byte) {
	s.Reset()
	s.Absorb(p)
	s.Finalize()
}

// Finalize pads the current rate window with the sponge's domain byte and
// the multi-rate 10*1 padding, permutes, and switches the sponge to
// squeezing. It is idempotent only in the sense that calling Squeeze
// repeatedly afterward keeps producing fresh output; calling Finalize twice
// is a caller error (mirrored here as a panic, since it indicates the
// surrounding sampler logic absorbed after it believed it had finished).
func (s *State) Finalize() {
	if s.dir == squeezing {
		panic("keccak: Finalize called twice")
	}
	s.buf[s.position] ^= s.dsbyte
	s.buf[s.rate-1] ^= 0x80
	s.xorBlockIntoState()
	keccakF(&s.a)
	s.copyStateIntoBlock()
	s.position = 0
	s.dir = squeezing
}

// Squeeze fills out with output bytes, permuting the state as needed.
// Finalize is called implicitly on the first Squeeze if the sponge is
// still absorbing.
func (s *State) Squeeze(out []byte) {
	if s.dir == absorbing {
		s.Finalize()
	}
	for len(out) > 0 {
		n := s.rate - s.position
		if n > len(out) {
			n = len(out)
		}
		copy(out, s.buf[s.position:s.position+n])
		out = out[n:]
		s.position += n
		if s.position == s.rate {
			keccakF(&s.a)
			s.copyStateIntoBlock()
			s.position = 0
		}
	}
}

// SqueezeBlocks squeezes exactly n full rate-sized blocks into out, which
// must have length n*Rate(). It is Squeeze with a length check on out.
func (s *State) SqueezeBlocks(out []byte, n int) {
	if len(out) != n*s.rate {
		panic("keccak: SqueezeBlocks output length mismatch")
	}
	s.Squeeze(out)
}
