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

package pow

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/tangle-attach/crypto/curl"
	"github.com/optakt/tangle-attach/encoding/trinary"
	"github.com/optakt/tangle-attach/models/tangle"
)

var (
	// ErrInvalidWeight is returned when the minimum weight magnitude exceeds
	// the number of trits in a hash.
	ErrInvalidWeight = errors.New("invalid minimum weight magnitude")
	// ErrInvalidInput is returned when the input does not have the size of a
	// serialized transaction.
	ErrInvalidInput = errors.New("invalid proof of work input")
	// ErrExhausted is returned when a worker runs out of nonces to try.
	ErrExhausted = errors.New("nonce space exhausted")

	errSolved = errors.New("solved")
)

// Searcher finds nonces that give transactions a hash ending with a minimum
// number of zero trits. The search is split over several workers, each of
// them trying 64 nonces at a time.
type Searcher struct {
	log     zerolog.Logger
	workers int
}

// New creates a new proof of work searcher.
func New(log zerolog.Logger, options ...func(*Config)) *Searcher {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	s := Searcher{
		log:     log.With().Str("component", "pow_searcher").Logger(),
		workers: workers,
	}

	return &s
}

// Search overwrites the nonce of the serialized transaction with one for which
// its hash ends with at least mwm zero trits, and returns the sealed
// transaction as trytes. It stops early when the context is canceled.
func (s *Searcher) Search(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error) {

	if mwm > curl.HashSize {
		return "", fmt.Errorf("could not search with weight %d: %w", mwm, ErrInvalidWeight)
	}
	if len(trits) != tangle.TransactionTrinarySize {
		return "", fmt.Errorf("could not search on %d trits: %w", len(trits), ErrInvalidInput)
	}

	// The state after absorbing everything but the last chunk is the same
	// for every nonce, so we only compute it once.
	prefix := tangle.TransactionTrinarySize - curl.HashSize
	c := curl.New()
	c.Absorb(trits[:prefix])
	state := c.State()
	copy(state[:curl.HashSize], trits[prefix:])

	results := make(chan tangle.Trits, s.workers)
	g, ctx := errgroup.WithContext(ctx)
	for worker := 0; worker < s.workers; worker++ {
		worker := worker
		g.Go(func() error {
			return s.search(ctx, state, worker, mwm, results)
		})
	}

	err := g.Wait()
	close(results)

	nonce, ok := <-results
	if !ok {
		return "", err
	}

	sealed := make(tangle.Trits, len(trits))
	copy(sealed, trits)
	copy(sealed[tangle.TransactionTrinarySize-tangle.NonceTrinarySize:], nonce)

	trytes, err := trinary.TritsToTrytes(sealed)
	if err != nil {
		return "", fmt.Errorf("could not convert sealed transaction: %w", err)
	}

	s.log.Debug().Uint64("mwm", mwm).Str("nonce", string(trytes[tangle.NonceOffset:])).Msg("nonce found")

	return trytes, nil
}

func (s *Searcher) search(ctx context.Context, state [curl.StateSize]int8, worker int, mwm uint64, results chan<- tangle.Trits) error {

	mid := spread(state)
	mid.diversify(laneStart)
	mid.offset(workerStart, counterStart-workerStart, worker)
	mid.offset(counterStart, nonceEnd-counterStart, 0)

	from := curl.HashSize - int(mwm)
	for {
		// Allow the search to be aborted between batches when the context is
		// canceled, or when another worker found a nonce.
		if ctx.Err() != nil {
			return fmt.Errorf("could not complete search: %w", ctx.Err())
		}

		work := *mid
		work.transform()

		probe := work.zeros(from, curl.HashSize)
		if probe != 0 {
			lane := uint(bits.TrailingZeros64(probe))
			nonce := make(tangle.Trits, 0, tangle.NonceTrinarySize)
			for i := nonceStart; i < nonceEnd; i++ {
				nonce = append(nonce, mid.trit(i, lane))
			}
			results <- nonce
			return errSolved
		}

		if !mid.increment(counterStart, nonceEnd) {
			return ErrExhausted
		}
	}
}
