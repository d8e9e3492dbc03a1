// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"bytes"
	"math"

	"github.com/EXCCoin/exccd/wire"
)

// FromNBytes constructs a Filter from its on-wire framed form: a leading
// consensus VarInt encoding N, followed by the raw Golomb-Rice bitstream.
// P is supplied out-of-band by the caller, as it is not part of the framed
// encoding.
func FromNBytes(p uint8, framed []byte) (*Filter, error) {
	if p > MaxP {
		return nil, ErrPTooBig
	}

	r := bytes.NewReader(framed)
	n, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return nil, ErrParseFailed
	}
	if n > math.MaxUint32 {
		return nil, ErrInvalidLength
	}

	rest := framed[len(framed)-r.Len():]
	data := make([]byte, len(rest))
	copy(data, rest)

	return FromBytes(uint32(n), p, data)
}

// NBytes returns the on-wire framed form of the filter: a leading consensus
// VarInt encoding N, followed by the raw Golomb-Rice bitstream. The
// resulting bytes are what FromNBytes expects back.
func (f *Filter) NBytes() []byte {
	framed := make([]byte, 0, wire.VarIntSerializeSize(uint64(f.n))+len(f.data))
	buf := bytes.NewBuffer(framed)
	// wire.WriteVarInt only fails if the underlying writer fails, which a
	// bytes.Buffer never does.
	_ = wire.WriteVarInt(buf, 0, uint64(f.n))
	buf.Write(f.data)
	return buf.Bytes()
}
