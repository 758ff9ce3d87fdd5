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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tangle-attach/models/failure"
	"github.com/optakt/tangle-attach/models/tangle"
	"github.com/optakt/tangle-attach/testing/mocks"
)

func TestChainer_AttachSteps(t *testing.T) {
	bundle := mocks.GenericBundle(3)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		var calls int
		search := mocks.BaselineSearcher(t)
		search.SearchFunc = func(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error) {
			calls++
			assert.Len(t, trits, tangle.TransactionTrinarySize)
			assert.Equal(t, mocks.GenericWeight, mwm)
			return bundle[calls-1], nil
		}

		c := BaselineChainer(t, WithSearcher(search))

		got, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		require.NoError(t, err)
		assert.Equal(t, len(bundle), calls)
		assert.Equal(t, []tangle.Trytes{bundle[2], bundle[1], bundle[0]}, got)
	})

	t.Run("passes context to searcher", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "value")

		search := mocks.BaselineSearcher(t)
		search.SearchFunc = func(got context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error) {
			assert.Equal(t, "value", got.Value(key{}))
			return bundle[0], nil
		}

		c := BaselineChainer(t, WithSearcher(search))

		_, err := c.Attach(ctx, mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle[:1])

		assert.NoError(t, err)
	})

	t.Run("links references and stamps each transaction", func(t *testing.T) {
		t.Parallel()

		var serialized []*tangle.Transaction
		codec := mocks.BaselineCodec(t)
		codec.ParseFunc = func(trytes tangle.Trytes) (*tangle.Transaction, error) {
			tx := mocks.GenericTransaction(0)
			tx.Hash = mocks.GenericHash(len(serialized))
			return tx, nil
		}
		codec.SerializeFunc = func(tx *tangle.Transaction) (tangle.Trytes, error) {
			serialized = append(serialized, tx)
			return bundle[0], nil
		}

		c := BaselineChainer(t, WithCodec(codec))

		_, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		require.NoError(t, err)
		require.Len(t, serialized, 3)
		assert.Equal(t, mocks.GenericTrunk, serialized[0].TrunkTransaction)
		assert.Equal(t, mocks.GenericBranch, serialized[0].BranchTransaction)
		assert.Equal(t, mocks.GenericHash(1), serialized[1].TrunkTransaction)
		assert.Equal(t, mocks.GenericTrunk, serialized[1].BranchTransaction)
		assert.Equal(t, mocks.GenericHash(2), serialized[2].TrunkTransaction)
		assert.Equal(t, mocks.GenericTrunk, serialized[2].BranchTransaction)
		for _, tx := range serialized {
			assert.Equal(t, mocks.GenericTimestamp, tx.AttachmentTimestamp)
			assert.Equal(t, int64(0), tx.AttachmentTimestampLowerBound)
			assert.Equal(t, int64(tangle.MaxTimestampValue), tx.AttachmentTimestampUpperBound)
		}
	})

	t.Run("strips checksum from references", func(t *testing.T) {
		t.Parallel()

		var serialized []*tangle.Transaction
		codec := mocks.BaselineCodec(t)
		codec.SerializeFunc = func(tx *tangle.Transaction) (tangle.Trytes, error) {
			serialized = append(serialized, tx)
			return bundle[0], nil
		}

		c := BaselineChainer(t, WithCodec(codec))

		trunk := mocks.GenericTrunk + "CHECKSUMM"
		branch := mocks.GenericBranch + "CHECKSUMM"
		_, err := c.Attach(context.Background(), trunk, branch, mocks.GenericWeight, bundle[:2])

		require.NoError(t, err)
		require.Len(t, serialized, 2)
		assert.Equal(t, mocks.GenericTrunk, serialized[0].TrunkTransaction)
		assert.Equal(t, mocks.GenericBranch, serialized[0].BranchTransaction)
		assert.Equal(t, mocks.GenericTrunk, serialized[1].BranchTransaction)
	})

	t.Run("falls back to obsolete tag for empty tag", func(t *testing.T) {
		t.Parallel()

		var serialized *tangle.Transaction
		codec := mocks.BaselineCodec(t)
		codec.ParseFunc = func(trytes tangle.Trytes) (*tangle.Transaction, error) {
			tx := mocks.GenericTransaction(0)
			tx.Tag = ""
			return tx, nil
		}
		codec.SerializeFunc = func(tx *tangle.Transaction) (tangle.Trytes, error) {
			serialized = tx
			return bundle[0], nil
		}

		c := BaselineChainer(t, WithCodec(codec))

		_, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle[:1])

		require.NoError(t, err)
		require.NotNil(t, serialized)
		assert.Equal(t, serialized.ObsoleteTag, serialized.Tag)
	})

	t.Run("does not fall back further when obsolete tag is empty too", func(t *testing.T) {
		t.Parallel()

		var serialized *tangle.Transaction
		codec := mocks.BaselineCodec(t)
		codec.ParseFunc = func(trytes tangle.Trytes) (*tangle.Transaction, error) {
			tx := mocks.GenericTransaction(0)
			tx.ObsoleteTag = tangle.NullTag
			return tx, nil
		}
		codec.SerializeFunc = func(tx *tangle.Transaction) (tangle.Trytes, error) {
			serialized = tx
			return bundle[0], nil
		}

		c := BaselineChainer(t, WithCodec(codec))

		_, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle[:1])

		require.NoError(t, err)
		assert.Equal(t, tangle.NullTag, serialized.Tag)
	})

	t.Run("handles parse failure", func(t *testing.T) {
		t.Parallel()

		var searched int
		codec := mocks.BaselineCodec(t)
		codec.ParseFunc = func(trytes tangle.Trytes) (*tangle.Transaction, error) {
			if trytes == bundle[1] {
				return nil, mocks.GenericError
			}
			return mocks.GenericTransaction(0), nil
		}
		search := mocks.BaselineSearcher(t)
		search.SearchFunc = func(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error) {
			searched++
			return bundle[0], nil
		}

		c := BaselineChainer(t, WithCodec(codec), WithSearcher(search))

		got, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		var target failure.Encoding
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 1, target.Index)
		assert.Nil(t, got)
		assert.Equal(t, 1, searched)
		trytes, ok := target.Description.Fields.Get("trytes")
		require.True(t, ok)
		assert.Equal(t, string(bundle[1][:27])+"... (2673 trytes)", trytes)
	})

	t.Run("handles serialize failure", func(t *testing.T) {
		t.Parallel()

		codec := mocks.BaselineCodec(t)
		codec.SerializeFunc = func(tx *tangle.Transaction) (tangle.Trytes, error) {
			return "", mocks.GenericError
		}

		c := BaselineChainer(t, WithCodec(codec))

		_, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		var target failure.Encoding
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 0, target.Index)
		trunk, ok := target.Description.Fields.Get("trunk")
		require.True(t, ok)
		assert.Equal(t, mocks.GenericTrunk.String(), trunk)
	})

	t.Run("handles invalid serialized trytes", func(t *testing.T) {
		t.Parallel()

		codec := mocks.BaselineCodec(t)
		codec.SerializeFunc = func(tx *tangle.Transaction) (tangle.Trytes, error) {
			return "not trytes", nil
		}

		c := BaselineChainer(t, WithCodec(codec))

		_, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		assert.ErrorAs(t, err, &failure.Encoding{})
	})

	t.Run("handles search failure", func(t *testing.T) {
		t.Parallel()

		var calls int
		search := mocks.BaselineSearcher(t)
		search.SearchFunc = func(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error) {
			calls++
			if calls == 3 {
				return "", mocks.GenericError
			}
			return bundle[0], nil
		}

		c := BaselineChainer(t, WithSearcher(search))

		got, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		var target failure.ProofOfWork
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 2, target.Index)
		assert.Equal(t, mocks.GenericWeight, target.Weight)
		assert.Contains(t, target.Description.Fields.String(), mocks.GenericError.Error())
		assert.Nil(t, got)
	})

	t.Run("handles sealed transaction parse failure", func(t *testing.T) {
		t.Parallel()

		sealed := tangle.Trytes("SEALED")
		codec := mocks.BaselineCodec(t)
		codec.ParseFunc = func(trytes tangle.Trytes) (*tangle.Transaction, error) {
			if trytes == sealed {
				return nil, mocks.GenericError
			}
			return mocks.GenericTransaction(0), nil
		}
		search := mocks.BaselineSearcher(t)
		search.SearchFunc = func(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error) {
			return sealed, nil
		}

		c := BaselineChainer(t, WithCodec(codec), WithSearcher(search))

		_, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		var target failure.Encoding
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 0, target.Index)
	})

	t.Run("handles empty bundle", func(t *testing.T) {
		t.Parallel()

		c := BaselineChainer(t)

		got, err := c.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, nil)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
