// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockfilter implements the BIP-158-style "basic filter"
// construction policy: deriving a gcs.Filter from a block by including each
// transaction's id, each non-coinbase input's previous outpoint, and each
// output's script_pubkey.
//
// This package never depends on a concrete block/transaction type. It
// consumes the block through the narrow Block/Tx/TxIn/TxOut interfaces
// defined here, so that any wire-protocol parser can be adapted to it (see
// package blockadapter for the teacher's own wire.MsgBlock adapter).
package blockfilter

import "github.com/exccfilters/gcs"

// Outpoint identifies a previous transaction output being spent.
type Outpoint struct {
	Hash  [32]byte
	Index uint32
}

// TxIn is the subset of a transaction input needed to build a basic filter:
// the outpoint it spends.
type TxIn interface {
	PreviousOutPoint() Outpoint
}

// TxOut is the subset of a transaction output needed to build a basic
// filter: its script_pubkey.
type TxOut interface {
	ScriptPubKey() []byte
}

// Tx is the subset of a transaction needed to build a basic filter.
type Tx interface {
	TxHash() [32]byte
	Inputs() []TxIn
	Outputs() []TxOut
}

// Block is the subset of a block needed to build a basic filter: its
// identifying hash and its transactions, coinbase first.
type Block interface {
	BlockHash() [32]byte
	Transactions() []Tx
}

// BuildBasicFilter builds the basic filter for block, keyed by the first 16
// bytes of the block's identifying hash and encoded at gcs.DefaultP. Per the
// BIP-158 basic-filter policy, the coinbase transaction's inputs (index 0)
// are skipped since they carry no meaningful outpoint.
func BuildBasicFilter(block Block) (*gcs.Filter, error) {
	txs := block.Transactions()

	b := gcs.NewBuilder()
	if _, err := b.SetP(gcs.DefaultP); err != nil {
		return nil, err
	}
	b.DeriveKey(block.BlockHash())

	n := 0
	for i, tx := range txs {
		n++
		if i != 0 {
			n += len(tx.Inputs())
		}
		n += len(tx.Outputs())
	}
	b.Reserve(n)

	for i, tx := range txs {
		b.AddHash(tx.TxHash())

		if i != 0 {
			for _, in := range tx.Inputs() {
				op := in.PreviousOutPoint()
				b.AddOutpoint(op.Hash, op.Index)
			}
		}

		for _, out := range tx.Outputs() {
			b.AddEntry(out.ScriptPubKey())
		}
	}

	log.Debugf("building basic filter for block %x from %d transactions",
		block.BlockHash(), len(txs))

	return b.Build()
}
