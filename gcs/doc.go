// Copyright (c) 2016-2017 The btcsuite developers
// Copyright (c) 2016-2017 The Lightning Network Developers
// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gcs implements a Golomb-Coded Set (GCS) probabilistic filter,
// as used by the BIP-158 compact block filter design.
//
// A filter is built from a set of arbitrary []byte items by hashing each
// item with a keyed SipHash-2-4, reducing the hash into [0, N*2**P) with a
// multiply-shift reduction, sorting the resulting values, and Golomb-Rice
// coding the sorted differences. The result is an immutable, compact byte
// slice that supports approximate membership queries with a false-positive
// rate of 2**-P without ever materializing the full value list.
//
// Inspired by https://github.com/rasky/gcs and the original dcrd/btcd gcs
// package.
package gcs
