// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2016-2017 The Lightning Network Developers
// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"math"
	"sort"
)

// DefaultP is the default collision probability, expressed as a negative
// power of 2 (a collision probability of 1/2**20 is represented as 20).
const DefaultP uint8 = 20

// MaxP is the largest collision probability exponent this filter supports.
const MaxP uint8 = 32

// Filter describes an immutable filter that can be built from a set of data
// elements, serialized, deserialized, and queried in a thread-safe manner.
// The serialized form is compressed as a Golomb Coded Set (GCS), but does not
// include N or P to allow the caller to encode that metadata separately. The
// hash function used is a keyed SipHash-2-4; the key used to build the
// filter is required in order to query it and is never included in the
// serialized form.
type Filter struct {
	n    uint32
	p    uint8
	m    uint64 // modulus, n << p
	data []byte
}

// NewFilter builds a new GCS filter with collision probability 1/(2**P),
// keyed hash key, and containing every []byte in items as a member of the
// set. A nil or empty items slice produces an empty filter (N=0).
func NewFilter(p uint8, key Key, items [][]byte) (*Filter, error) {
	if p > MaxP {
		return nil, ErrPTooBig
	}
	if uint64(len(items)) > math.MaxUint32 {
		return nil, ErrNTooBig
	}

	n := uint32(len(items))
	f := &Filter{
		n: n,
		p: p,
		m: uint64(n) << p,
	}
	if n == 0 {
		return f, nil
	}

	values := make([]uint64, 0, n)
	for _, item := range items {
		values = append(values, value(key, item, f.m))
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	var w bitWriter
	mask := uint64(1)<<p - 1
	var last uint64
	for _, v := range values {
		delta := v - last
		last = v

		q := delta >> p
		r := delta & mask

		for ; q > 0; q-- {
			w.writeOne()
		}
		w.writeZero()
		w.writeNBits(r, uint(p))
	}
	f.data = w.bytes

	log.Debugf("built gcs filter with n=%d p=%d data=%d bytes", f.n, f.p, len(f.data))

	return f, nil
}

// FromBytes constructs a Filter from a known N, P, and the raw (unframed)
// Golomb-Rice bitstream previously returned by Bytes. No validation of data
// itself is performed; a malformed stream simply causes later queries to
// behave as though unmatched values were absent.
func FromBytes(n uint32, p uint8, data []byte) (*Filter, error) {
	if p > MaxP {
		return nil, ErrPTooBig
	}
	return &Filter{
		n:    n,
		p:    p,
		m:    uint64(n) << p,
		data: data,
	}, nil
}

// N returns the size of the data set used to build the filter.
func (f *Filter) N() uint32 {
	return f.n
}

// P returns the filter's collision probability as a negative power of 2
// (that is, a collision probability of 1/2**20 is represented as 20).
func (f *Filter) P() uint8 {
	return f.p
}

// Bytes returns the serialized, unframed Golomb-Rice bitstream of the
// filter. It does not include N, P, or the SipHash key.
func (f *Filter) Bytes() []byte {
	return f.data
}

// IsEmpty reports whether the filter has no members (N == 0).
func (f *Filter) IsEmpty() bool {
	return f.n == 0
}

// readFullValue reads a value represented by the sum of a unary multiple of
// the filter's P modulus (2**P) and a big-endian P-bit remainder.
func (f *Filter) readFullValue(r *bitReader) (uint64, error) {
	q, err := r.readUnary()
	if err != nil {
		return 0, err
	}
	rem, err := r.readNBits(uint(f.p))
	if err != nil {
		return 0, err
	}
	return q<<f.p + rem, nil
}

// Match reports whether data is likely (within the filter's collision
// probability) a member of the set the filter represents. It never returns
// an error: a malformed or truncated filter simply reports no match.
func (f *Filter) Match(key Key, data []byte) bool {
	if f.n == 0 {
		return false
	}

	target := value(key, data, f.m)

	r := newBitReader(f.data)
	var last uint64
	for {
		v, err := f.readFullValue(&r)
		if err != nil {
			return false
		}
		last += v
		if last >= target {
			return last == target
		}
	}
}

// MatchAny reports whether any of the given items is likely (within the
// filter's collision probability) a member of the set the filter represents.
// It is faster than calling Match once per item because it streams the
// filter only once via a two-pointer merge against the sorted query values.
func (f *Filter) MatchAny(key Key, items [][]byte) bool {
	if len(items) == 0 || f.n == 0 {
		return false
	}

	query := make([]uint64, 0, len(items))
	for _, item := range items {
		query = append(query, value(key, item, f.m))
	}
	sort.Slice(query, func(i, j int) bool { return query[i] < query[j] })

	r := newBitReader(f.data)
	filterVal, err := f.readFullValue(&r)
	if err != nil {
		return false
	}
	i := 0
	queryVal := query[0]
	for filterVal != queryVal {
		switch {
		case queryVal > filterVal:
			v, err := f.readFullValue(&r)
			if err != nil {
				return false
			}
			filterVal += v
		case filterVal > queryVal:
			i++
			if i >= len(query) {
				return false
			}
			queryVal = query[i]
		}
	}
	return true
}
