// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/tangle-attach/codec/zbor"
	"github.com/optakt/tangle-attach/models/tangle"
	"github.com/optakt/tangle-attach/service/attacher"
	"github.com/optakt/tangle-attach/service/delegate"
)

const (
	success = 0
	failure = 1
)

const archiveExtension = ".zbor"

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagBranch  string
		flagDepth   int
		flagInput   string
		flagLevel   string
		flagMWM     uint64
		flagNode    string
		flagOutput  string
		flagTips    string
		flagTrunk   string
		flagWorkers int
	)

	pflag.StringVarP(&flagBranch, "branch", "b", "", "branch transaction hash to approve")
	pflag.IntVarP(&flagDepth, "depth", "d", 3, "depth for tip selection when trunk and branch are omitted")
	pflag.StringVarP(&flagInput, "input", "i", "-", "file with one transaction encoding per line, in bundle order (- for stdin)")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.Uint64VarP(&flagMWM, "mwm", "m", 14, "minimum weight magnitude for the proof of work")
	pflag.StringVarP(&flagNode, "node", "n", "", "node API endpoint to delegate attachment to (local proof of work if empty)")
	pflag.StringVarP(&flagOutput, "output", "o", "", "output file for the attached bundle (stdout if empty, archive if it ends in .zbor)")
	pflag.StringVar(&flagTips, "tips", "", "node API endpoint used for tip selection")
	pflag.StringVarP(&flagTrunk, "trunk", "t", "", "trunk transaction hash to approve")
	pflag.IntVarP(&flagWorkers, "workers", "w", attacher.DefaultConfig.Workers, "number of proof of work goroutines")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	// The context is canceled on interrupt, which aborts a running proof of
	// work search or a pending node request.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-sig
		log.Info().Msg("interrupt received, aborting attachment")
		cancel()
	}()

	trytes, err := readBundle(flagInput)
	if err != nil {
		log.Error().Str("input", flagInput).Err(err).Msg("could not read bundle")
		return failure
	}

	// When no trunk and branch are given, we ask a node to select the tips.
	trunk, branch := tangle.Hash(flagTrunk), tangle.Hash(flagBranch)
	if trunk == "" && branch == "" {
		if flagTips == "" {
			log.Error().Msg("trunk and branch are required unless a tip selection node is given")
			return failure
		}
		tips := delegate.New(log, flagTips)
		res, err := tips.TransactionsToApprove(ctx, flagDepth, "")
		if err != nil {
			log.Error().Str("tips", flagTips).Err(err).Msg("could not select transactions to approve")
			return failure
		}
		if res.TrunkTransaction == nil || res.BranchTransaction == nil {
			log.Error().Str("tips", flagTips).Msg("node returned no transactions to approve")
			return failure
		}
		trunk, branch = *res.TrunkTransaction, *res.BranchTransaction
		log.Info().Str("trunk", trunk.String()).Str("branch", branch.String()).Msg("transactions to approve selected")
	}

	mode := attacher.New(log, flagNode, attacher.WithWorkers(flagWorkers))

	start := time.Now()
	res, err := mode.Attach(ctx, trunk, branch, flagMWM, trytes)
	if err != nil {
		log.Error().Err(err).Msg("could not attach bundle")
		return failure
	}
	if res.Error != nil || res.Exception != nil {
		log.Error().
			Str("error", deref(res.Error)).
			Str("exception", deref(res.Exception)).
			Msg("node rejected bundle")
		return failure
	}

	log.Info().
		Int("transactions", len(res.Trytes)).
		Uint64("mwm", flagMWM).
		Dur("duration", time.Since(start)).
		Msg("bundle attached")

	archive := tangle.Archive{
		Trunk:     trunk,
		Branch:    branch,
		Weight:    flagMWM,
		Timestamp: start.Unix(),
		Endpoint:  flagNode,
		Trytes:    res.Trytes,
	}
	err = writeArchive(flagOutput, archive)
	if err != nil {
		log.Error().Str("output", flagOutput).Err(err).Msg("could not write attached bundle")
		return failure
	}

	return success
}

// readBundle reads one transaction encoding per line, skipping blank lines.
func readBundle(path string) ([]tangle.Trytes, error) {

	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open input file: %w", err)
		}
		defer file.Close()
		r = file
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var trytes []tangle.Trytes
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		trytes = append(trytes, tangle.Trytes(line))
	}
	err := scanner.Err()
	if err != nil {
		return nil, fmt.Errorf("could not scan input: %w", err)
	}

	return trytes, nil
}

// writeArchive writes the archive as indented JSON, or as compressed CBOR if
// the path has the archive extension.
func writeArchive(path string, archive tangle.Archive) error {

	if path == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(archive)
	}

	var data []byte
	var err error
	if filepath.Ext(path) == archiveExtension {
		codec := zbor.NewCodec(zbor.WithLevel(zstd.SpeedBetterCompression))
		defer codec.Close()
		data, err = codec.Marshal(archive)
	} else {
		data, err = json.MarshalIndent(archive, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("could not encode archive: %w", err)
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("could not write archive: %w", err)
	}

	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
