// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gcs

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

var testKey = Key{K0: 0x0706050403020100, K1: 0x0F0E0D0C0B0A0908}

func randItems(rng *rand.Rand, n, size int) [][]byte {
	items := make([][]byte, n)
	for i := range items {
		item := make([]byte, size)
		rng.Read(item)
		items[i] = item
	}
	return items
}

// TestEmptyFilter covers scenario S1: an empty item set produces an empty
// filter and every Match call reports false.
func TestEmptyFilter(t *testing.T) {
	f, err := NewFilter(19, Key{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.N() != 0 {
		t.Fatalf("N() = %d, want 0", f.N())
	}
	if len(f.Bytes()) != 0 {
		t.Fatalf("Bytes() = %x, want empty", f.Bytes())
	}
	if !f.IsEmpty() {
		t.Fatalf("IsEmpty() = false, want true")
	}
	if f.Match(Key{}, []byte("anything")) {
		t.Fatalf("Match on empty filter returned true")
	}
	if f.MatchAny(Key{}, [][]byte{[]byte("anything")}) {
		t.Fatalf("MatchAny on empty filter returned true")
	}
}

// TestParameterGuards covers property 8: P > 32 is rejected deterministically.
func TestParameterGuards(t *testing.T) {
	if _, err := NewFilter(33, Key{}, [][]byte{{0x00}}); err != ErrPTooBig {
		t.Fatalf("NewFilter with P=33: got err %v, want ErrPTooBig", err)
	}
	if _, err := FromBytes(0, 33, nil); err != ErrPTooBig {
		t.Fatalf("FromBytes with P=33: got err %v, want ErrPTooBig", err)
	}
	if _, err := FromNBytes(33, []byte{0x00}); err != ErrPTooBig {
		t.Fatalf("FromNBytes with P=33: got err %v, want ErrPTooBig", err)
	}
}

// TestRoundtripNoFalseNegative covers property 1: every added item is
// reported as a member.
func TestRoundtripNoFalseNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	tests := []struct {
		name string
		p    uint8
		n    int
	}{
		{name: "small P=20", p: 20, n: 5},
		{name: "moderate P=20", p: 20, n: 500},
		{name: "large P=10", p: 10, n: 1000},
		{name: "P=0", p: 0, n: 50},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			items := randItems(rng, tc.n, 32)

			f, err := NewFilter(tc.p, testKey, items)
			if err != nil {
				t.Fatalf("NewFilter failed: %v", err)
			}
			if f.N() != uint32(tc.n) {
				t.Fatalf("N() = %d, want %d", f.N(), tc.n)
			}

			for i, item := range items {
				if !f.Match(testKey, item) {
					t.Fatalf("item %d (%s) not matched\nfilter: %s",
						i, spew.Sdump(item), spew.Sdump(f))
				}
			}
			if !f.MatchAny(testKey, items) {
				t.Fatalf("MatchAny over the full added set returned false")
			}
		})
	}
}

// TestSortIndependence covers property 2 and scenario S4: encoding the same
// multiset in any order yields byte-identical filter data.
func TestSortIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	items := randItems(rng, 1000, 20)

	f1, err := NewFilter(20, testKey, items)
	if err != nil {
		t.Fatalf("NewFilter (original order) failed: %v", err)
	}

	reversed := make([][]byte, len(items))
	for i, item := range items {
		reversed[len(items)-1-i] = item
	}
	f2, err := NewFilter(20, testKey, reversed)
	if err != nil {
		t.Fatalf("NewFilter (reversed order) failed: %v", err)
	}

	shuffled := make([][]byte, len(items))
	copy(shuffled, items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	f3, err := NewFilter(20, testKey, shuffled)
	if err != nil {
		t.Fatalf("NewFilter (shuffled order) failed: %v", err)
	}

	if !bytes.Equal(f1.Bytes(), f2.Bytes()) {
		t.Fatalf("reversed-order filter bytes differ from original order")
	}
	if !bytes.Equal(f1.Bytes(), f3.Bytes()) {
		t.Fatalf("shuffled-order filter bytes differ from original order")
	}
}

// TestDuplicateHashedValuesAreRetained covers design note §9: duplicate raw
// items are not deduplicated by the encoder, and still match after encoding.
func TestDuplicateHashedValuesAreRetained(t *testing.T) {
	items := [][]byte{{0x01}, {0x01}, {0x02}}

	f, err := NewFilter(20, testKey, items)
	if err != nil {
		t.Fatalf("NewFilter failed: %v", err)
	}
	if f.N() != 3 {
		t.Fatalf("N() = %d, want 3", f.N())
	}
	if !f.Match(testKey, []byte{0x01}) {
		t.Fatalf("duplicated item not matched")
	}
}

// TestMatchAnyDisjointLowFalsePositiveRate is a statistical check in the
// spirit of scenario S5: querying a large disjoint random set against a
// modest filter should very rarely match.
func TestMatchAnyDisjointLowFalsePositiveRate(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	items := randItems(rng, 100, 32)

	f, err := NewFilter(20, testKey, items)
	if err != nil {
		t.Fatalf("NewFilter failed: %v", err)
	}

	trials := 20
	falsePositives := 0
	for i := 0; i < trials; i++ {
		queries := randItems(rng, 1000, 33) // disjoint by construction (different length)
		if f.MatchAny(testKey, queries) {
			falsePositives++
		}
	}

	// Expected false positive rate per trial is ~1-(1-2^-20)^1000 ≈ 1e-3, so
	// collecting any positives across 20 trials would be extraordinarily
	// unlucky; this just guards against a reduction/codec regression that
	// would inflate the rate by orders of magnitude.
	if falsePositives > trials/2 {
		t.Fatalf("false positive rate implausibly high: %d/%d trials matched",
			falsePositives, trials)
	}
}

func TestFromBytesPreservesMetadata(t *testing.T) {
	items := [][]byte{{0x00}, {0x01}, {0x02}}
	built, err := NewFilter(20, testKey, items)
	if err != nil {
		t.Fatalf("NewFilter failed: %v", err)
	}

	restored, err := FromBytes(built.N(), built.P(), built.Bytes())
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if restored.N() != built.N() || restored.P() != built.P() {
		t.Fatalf("metadata mismatch: got N=%d P=%d, want N=%d P=%d",
			restored.N(), restored.P(), built.N(), built.P())
	}
	for _, item := range items {
		if !restored.Match(testKey, item) {
			t.Fatalf("restored filter failed to match %x", item)
		}
	}
}
