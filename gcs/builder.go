// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import "encoding/binary"

// Builder accumulates raw items and configuration and, once built, produces
// an immutable Filter. A Builder is single-owner: it is mutated only by the
// code that holds it, and is consumed exactly once by Build.
type Builder struct {
	p    uint8
	key  Key
	data [][]byte
}

// NewBuilder returns an empty Builder. P defaults to 0 (unconfigured) until
// SetP is called.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetP sets the filter's collision probability exponent. It returns an error
// without modifying the builder if p exceeds MaxP.
func (b *Builder) SetP(p uint8) (*Builder, error) {
	if p > MaxP {
		return b, ErrPTooBig
	}
	b.p = p
	return b, nil
}

// SetKey sets the filter's SipHash key directly.
func (b *Builder) SetKey(key Key) *Builder {
	b.key = key
	return b
}

// DeriveKey derives the filter's SipHash key from a 32-byte block
// identifier by reading its first 16 bytes as two little-endian uint64
// halves.
func (b *Builder) DeriveKey(blockHash [32]byte) *Builder {
	b.key = Key{
		K0: binary.LittleEndian.Uint64(blockHash[0:8]),
		K1: binary.LittleEndian.Uint64(blockHash[8:16]),
	}
	return b
}

// Reserve is a capacity hint for the number of entries that will be added.
// It has no semantic effect on the built filter.
func (b *Builder) Reserve(n int) *Builder {
	if cap(b.data)-len(b.data) < n {
		grown := make([][]byte, len(b.data), len(b.data)+n)
		copy(grown, b.data)
		b.data = grown
	}
	return b
}

// AddEntry appends a copy of data as an item to include in the built
// filter.
func (b *Builder) AddEntry(data []byte) *Builder {
	entry := make([]byte, len(data))
	copy(entry, data)
	b.data = append(b.data, entry)
	return b
}

// AddHash appends a 32-byte identifier verbatim as an item.
func (b *Builder) AddHash(hash [32]byte) *Builder {
	return b.AddEntry(hash[:])
}

// AddOutpoint appends a 36-byte outpoint record (32-byte txid followed by
// a little-endian uint32 output index) as an item.
func (b *Builder) AddOutpoint(txid [32]byte, index uint32) *Builder {
	entry := make([]byte, 36)
	copy(entry, txid[:])
	binary.LittleEndian.PutUint32(entry[32:], index)
	b.data = append(b.data, entry)
	return b
}

// Key returns the builder's currently configured SipHash key. This is
// useful after DeriveKey, or if a random key generator (an external
// collaborator; not part of this package) was used to populate it.
func (b *Builder) Key() Key {
	return b.key
}

// Build consumes the builder and constructs the resulting Filter.
func (b *Builder) Build() (*Filter, error) {
	log.Debugf("building gcs filter from %d entries at p=%d", len(b.data), b.p)
	return NewFilter(b.p, b.key, b.data)
}
