// Copyright (c) 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// gcsfilter builds (and optionally queries) the BIP-158-style basic filter
// for a single raw, wire-serialized block.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/EXCCoin/exccd/wire"
	"github.com/decred/slog"
	"github.com/exccfilters/gcs"
	"github.com/exccfilters/gcs/blockadapter"
	"github.com/exccfilters/gcs/blockfilter"
	flags "github.com/jessevdk/go-flags"
)

type config struct {
	BlockFile string `short:"b" long:"blockfile" description:"file containing a raw wire-serialized block (reads stdin if omitted)"`
	Match     string `short:"m" long:"match" description:"hex-encoded item to test for membership in the built filter"`
	Debug     bool   `short:"d" long:"debug" description:"enable debug logging"`
}

var log = slog.Disabled

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gcsfilter:", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		return err
	}

	if cfg.Debug {
		backend := slog.NewBackend(os.Stderr)
		log = backend.Logger("GCSF")
		log.SetLevel(slog.LevelDebug)
		gcs.UseLogger(log)
		blockfilter.UseLogger(log)
	}

	raw, err := readBlockBytes(cfg.BlockFile)
	if err != nil {
		return fmt.Errorf("reading block: %w", err)
	}

	var block wire.MsgBlock
	if err := block.BtcDecode(bytes.NewReader(raw), wire.ProtocolVersion); err != nil {
		return fmt.Errorf("decoding block: %w", err)
	}

	filter, err := blockfilter.BuildBasicFilter(blockadapter.WireBlock(&block))
	if err != nil {
		return fmt.Errorf("building filter: %w", err)
	}

	log.Debugf("built filter: N=%d P=%d", filter.N(), filter.P())

	if cfg.Match == "" {
		fmt.Printf("N=%d P=%d filter=%s\n", filter.N(), filter.P(), hex.EncodeToString(filter.NBytes()))
		return nil
	}

	item, err := hex.DecodeString(cfg.Match)
	if err != nil {
		return fmt.Errorf("decoding --match item: %w", err)
	}

	key := gcs.NewBuilder().DeriveKey([32]byte(block.BlockHash())).Key()
	fmt.Println(filter.Match(key, item))
	return nil
}

func readBlockBytes(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
