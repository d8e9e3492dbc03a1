// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockadapter adapts the teacher's own wire-protocol block and
// transaction types (github.com/EXCCoin/exccd/wire) into the narrow
// blockfilter.Block/Tx/TxIn/TxOut collaborator interfaces, so that a basic
// filter can be built directly from a decoded wire.MsgBlock without
// blockfilter ever importing a concrete wire type.
package blockadapter

import (
	"github.com/EXCCoin/exccd/wire"
	"github.com/exccfilters/gcs/blockfilter"
)

// wireTxIn adapts a *wire.TxIn.
type wireTxIn struct{ in *wire.TxIn }

func (w wireTxIn) PreviousOutPoint() blockfilter.Outpoint {
	return blockfilter.Outpoint{
		Hash:  [32]byte(w.in.PreviousOutPoint.Hash),
		Index: w.in.PreviousOutPoint.Index,
	}
}

// wireTxOut adapts a *wire.TxOut.
type wireTxOut struct{ out *wire.TxOut }

func (w wireTxOut) ScriptPubKey() []byte {
	return w.out.PkScript
}

// wireTx adapts a *wire.MsgTx.
type wireTx struct{ tx *wire.MsgTx }

func (w wireTx) TxHash() [32]byte {
	return [32]byte(w.tx.TxHash())
}

func (w wireTx) Inputs() []blockfilter.TxIn {
	ins := make([]blockfilter.TxIn, len(w.tx.TxIn))
	for i, in := range w.tx.TxIn {
		ins[i] = wireTxIn{in: in}
	}
	return ins
}

func (w wireTx) Outputs() []blockfilter.TxOut {
	outs := make([]blockfilter.TxOut, len(w.tx.TxOut))
	for i, out := range w.tx.TxOut {
		outs[i] = wireTxOut{out: out}
	}
	return outs
}

// wireBlock adapts a *wire.MsgBlock.
type wireBlock struct{ block *wire.MsgBlock }

func (w wireBlock) BlockHash() [32]byte {
	return [32]byte(w.block.BlockHash())
}

func (w wireBlock) Transactions() []blockfilter.Tx {
	txs := make([]blockfilter.Tx, len(w.block.Transactions))
	for i, tx := range w.block.Transactions {
		txs[i] = wireTx{tx: tx}
	}
	return txs
}

// WireBlock adapts a decoded wire.MsgBlock into a blockfilter.Block.
func WireBlock(block *wire.MsgBlock) blockfilter.Block {
	return wireBlock{block: block}
}
