// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2016-2017 The Lightning Network Developers
// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import "errors"

var (
	// ErrNTooBig signifies that the filter can't handle N items.
	ErrNTooBig = errors.New("N does not fit in uint32")

	// ErrPTooBig signifies that the filter can't handle a `1/2**P`
	// collision probability.
	ErrPTooBig = errors.New("P is too large")

	// ErrInvalidLength signifies that a framed filter's leading varint
	// claimed an item count that doesn't fit in a uint32.
	ErrInvalidLength = errors.New("framed filter length does not fit in uint32")

	// ErrParseFailed signifies that the leading varint of a framed
	// filter could not be decoded, typically because the buffer was
	// truncated.
	ErrParseFailed = errors.New("failed to parse framed filter length")

	// errEndOfStream is returned internally by the bitstream reader when
	// it runs out of input before a value finishes decoding. It is never
	// returned by an exported function: every query API converts it into
	// a false result instead, since a membership query must remain total
	// over arbitrary (including corrupted or adversarial) filter bytes.
	errEndOfStream = errors.New("gcs: end of bitstream")
)
