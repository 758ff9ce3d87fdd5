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

package chainer

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/tangle-attach/encoding/trinary"
	"github.com/optakt/tangle-attach/models/failure"
	"github.com/optakt/tangle-attach/models/tangle"
)

// Chainer attaches bundles locally. It links each transaction of a bundle to
// the previous one, stamps it with attachment times and seals it with proof of
// work.
type Chainer struct {
	log    zerolog.Logger
	codec  Codec
	search Searcher
	now    func() time.Time
}

// New creates a new chainer that uses the given codec and searcher.
func New(log zerolog.Logger, codec Codec, search Searcher, options ...func(*Config)) *Chainer {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	c := Chainer{
		log:    log.With().Str("component", "attachment_chainer").Logger(),
		codec:  codec,
		search: search,
		now:    cfg.Clock,
	}

	return &c
}

// Attach processes the transactions in the given order, which is the reverse
// of the broadcast order. The first transaction approves the given trunk and
// branch; every following transaction approves the previous one as its trunk
// and the given trunk as its branch. The sealed transactions are returned in
// broadcast order. The first failure aborts the whole bundle.
func (c *Chainer) Attach(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) ([]tangle.Trytes, error) {

	// References may carry a checksum, which has no slot in the encoding.
	trunk = trunk.WithoutChecksum()
	branch = branch.WithoutChecksum()

	sealed := make([]tangle.Trytes, 0, len(trytes))
	var previous tangle.Hash
	for index, encoded := range trytes {

		tx, err := c.codec.Parse(encoded)
		if err != nil {
			return nil, failure.Encoding{
				Description: failure.NewDescription(txUnparseable, failure.WithTrytes("trytes", encoded), failure.WithErr(err)),
				Index:       index,
			}
		}

		if index == 0 {
			tx.TrunkTransaction = trunk
			tx.BranchTransaction = branch
		} else {
			tx.TrunkTransaction = previous
			tx.BranchTransaction = trunk
		}

		// There is no further fallback if the obsolete tag is empty as well.
		if tx.HasEmptyTag() {
			tx.Tag = tx.ObsoleteTag
		}

		tx.AttachmentTimestamp = c.now().Unix()
		tx.AttachmentTimestampLowerBound = 0
		tx.AttachmentTimestampUpperBound = tangle.MaxTimestampValue

		serialized, err := c.codec.Serialize(tx)
		if err != nil {
			return nil, failure.Encoding{
				Description: failure.NewDescription(txUnserializable,
					failure.WithHash("trunk", tx.TrunkTransaction),
					failure.WithHash("branch", tx.BranchTransaction),
					failure.WithErr(err),
				),
				Index:       index,
			}
		}

		trits, err := trinary.TrytesToTrits(serialized)
		if err != nil {
			return nil, failure.Encoding{
				Description: failure.NewDescription(txUnconvertible, failure.WithErr(err)),
				Index:       index,
			}
		}

		result, err := c.search.Search(ctx, trits, mwm)
		if err != nil {
			return nil, failure.ProofOfWork{
				Description: failure.NewDescription(sealFailed, failure.WithHash("trunk", tx.TrunkTransaction), failure.WithErr(err)),
				Index:       index,
				Weight:      mwm,
			}
		}

		attached, err := c.codec.Parse(result)
		if err != nil {
			return nil, failure.Encoding{
				Description: failure.NewDescription(sealUnparseable, failure.WithTrytes("trytes", result), failure.WithErr(err)),
				Index:       index,
			}
		}

		c.log.Debug().
			Int("index", index).
			Str("hash", attached.Hash.String()).
			Str("trunk", tx.TrunkTransaction.String()).
			Str("branch", tx.BranchTransaction.String()).
			Msg("transaction attached")

		previous = attached.Hash
		sealed = append(sealed, result)
	}

	for i, j := 0, len(sealed)-1; i < j; i, j = i+1, j-1 {
		sealed[i], sealed[j] = sealed[j], sealed[i]
	}

	return sealed, nil
}
