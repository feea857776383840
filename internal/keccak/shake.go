// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import "hash"

// ShakeHash is the interface to the two variable-output-length instances
// this package provides. Write absorbs; Read squeezes. Once Read has been
// called, further Write calls panic, matching the sponge's Absorb/Squeeze
// discipline. It embeds hash.Hash so a ShakeHash can also be summed for its
// (arbitrary, but fixed per constructor) default output length, the same
// shape the reference sponge interface settled on.
type ShakeHash interface {
	hash.Hash
	Read(p []byte) (int, error)
	Clone() ShakeHash
}

var _ ShakeHash = (*shake)(nil)

type shake struct {
	s *State
}

func (h *shake) Write(p []byte) (int, error) {
	h.s.Absorb(p)
	return len(p), nil
}

func (h *shake) Read(p []byte) (int, error) {
	h.s.Squeeze(p)
	return len(p), nil
}

func (h *shake) Sum(b []byte) []byte { return h.s.Sum(b) }

func (h *shake) Size() int { return h.s.Size() }

func (h *shake) BlockSize() int { return h.s.BlockSize() }

func (h *shake) Clone() ShakeHash {
	return &shake{s: h.s.Clone()}
}

func (h *shake) Reset() {
	h.s.Reset()
}

// NewShake128 creates a SHAKE128 instance. Its generic security strength is
// 128 bits against all attacks if at least 32 bytes of output are used;
// Sum defaults to that 32-byte length.
func NewShake128() ShakeHash {
	return &shake{s: New(Shake128Rate, ShakeDomain, 32)}
}

// NewShake256 creates a SHAKE256 instance. Its generic security strength is
// 256 bits against all attacks if at least 64 bytes of output are used;
// Sum defaults to that 64-byte length.
func NewShake256() ShakeHash {
	return &shake{s: New(Shake256Rate, ShakeDomain, 64)}
}

// Shake128 is the one-shot form: absorb in, squeeze len(out) bytes into out.
func Shake128(out, in []byte) {
	s := New(Shake128Rate, ShakeDomain, len(out))
	s.AbsorbOnce(in)
	s.Squeeze(out)
}

// Shake256 is the one-shot form: absorb in, squeeze len(out) bytes into out.
func Shake256(out, in []byte) {
	s := New(Shake256Rate, ShakeDomain, len(out))
	s.AbsorbOnce(in)
	s.Squeeze(out)
}
