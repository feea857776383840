// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

// Sha3_256 writes the 32-byte SHA3-256 digest of in into out.
func Sha3_256(out *[32]byte, in []byte) {
	s := New(Sha3_256Rate, Sha3Domain, 32)
	s.AbsorbOnce(in)
	s.Squeeze(out[:])
}

// Sha3_512 writes the 64-byte SHA3-512 digest of in into out.
func Sha3_512(out *[64]byte, in []byte) {
	s := New(Sha3_512Rate, Sha3Domain, 64)
	s.AbsorbOnce(in)
	s.Squeeze(out[:])
}
