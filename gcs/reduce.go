// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2016-2017 The Lightning Network Developers
// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"encoding/binary"
	"math/bits"

	"github.com/aead/siphash"
)

// KeySize is the size of the byte array required for key material for the
// SipHash keyed hash function.
const KeySize = siphash.KeySize

// Key is the 128-bit SipHash key used to seed value(d) for a filter, split
// into two 64-bit halves.
type Key struct {
	K0, K1 uint64
}

// bytes renders the key as the 16-byte array aead/siphash expects: K0 and K1
// each in little-endian order, K0 first.
func (k Key) bytes() [KeySize]byte {
	var b [KeySize]byte
	binary.LittleEndian.PutUint64(b[0:8], k.K0)
	binary.LittleEndian.PutUint64(b[8:16], k.K1)
	return b
}

// siphash24 computes the SipHash-2-4 keyed hash of data under key.
func siphash24(key Key, data []byte) uint64 {
	k := key.bytes()
	return siphash.Sum64(data, &k)
}

// reduce maps x into [0, m) via Lemire's multiply-and-shift fast alternative
// to the modulo reduction: floor(x * m / 2**64), computed with a true
// 64x64->128 bit widening multiply (math/bits.Mul64) and no division.
//
// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction/
func reduce(x, m uint64) uint64 {
	hi, _ := bits.Mul64(x, m)
	return hi
}

// value hashes and reduces data under key into [0, m).
func value(key Key, data []byte, m uint64) uint64 {
	return reduce(siphash24(key, data), m)
}
