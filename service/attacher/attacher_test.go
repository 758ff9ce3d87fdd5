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

package attacher_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tangle-attach/models/failure"
	"github.com/optakt/tangle-attach/models/tangle"
	"github.com/optakt/tangle-attach/service/attacher"
	"github.com/optakt/tangle-attach/service/transaction"
	"github.com/optakt/tangle-attach/service/validator"
	"github.com/optakt/tangle-attach/testing/mocks"
)

func TestLocal_Attach(t *testing.T) {
	bundle := mocks.GenericBundle(2)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		sealed := []tangle.Trytes{bundle[1], bundle[0]}
		chain := mocks.BaselineChainer(t)
		chain.AttachFunc = func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) ([]tangle.Trytes, error) {
			assert.Equal(t, mocks.GenericTrunk, trunk)
			assert.Equal(t, mocks.GenericBranch, branch)
			assert.Equal(t, mocks.GenericWeight, mwm)
			assert.Equal(t, bundle, trytes)
			return sealed, nil
		}

		l := attacher.NewLocal(chain)

		res, err := l.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Duration)
		assert.Equal(t, sealed, res.Trytes)
		assert.Nil(t, res.ID)
		assert.Nil(t, res.Error)
		assert.Nil(t, res.Exception)
	})

	t.Run("accepts hashes with checksum", func(t *testing.T) {
		t.Parallel()

		codec := transaction.NewCodec()
		mode := attacher.New(mocks.NoopLogger, "", attacher.WithWorkers(2))
		trunk := tangle.Hash(strings.Repeat("C", tangle.AddressWithChecksumSize))

		res, err := mode.Attach(context.Background(), trunk, mocks.GenericBranch, 1, mocks.GenericBundle(2))

		require.NoError(t, err)
		require.Len(t, res.Trytes, 2)

		first, err := codec.Parse(res.Trytes[1])
		require.NoError(t, err)
		second, err := codec.Parse(res.Trytes[0])
		require.NoError(t, err)

		assert.Equal(t, trunk[:tangle.HashTrytesSize], first.TrunkTransaction)
		assert.Equal(t, mocks.GenericBranch, first.BranchTransaction)
		assert.Equal(t, trunk[:tangle.HashTrytesSize], second.BranchTransaction)
	})

	t.Run("handles invalid trunk without doing work", func(t *testing.T) {
		t.Parallel()

		chain := mocks.BaselineChainer(t)
		chain.AttachFunc = func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) ([]tangle.Trytes, error) {
			t.Fatal("chainer should not be called")
			return nil, nil
		}

		l := attacher.NewLocal(chain)

		_, err := l.Attach(context.Background(), "SHORT", mocks.GenericBranch, mocks.GenericWeight, bundle)

		var target failure.InvalidArgument
		require.ErrorAs(t, err, &target)
		assert.Equal(t, validator.TrunkField, target.Field)
		assert.Equal(t, "SHORT", target.Value)
	})

	t.Run("handles invalid branch", func(t *testing.T) {
		t.Parallel()

		l := attacher.NewLocal(mocks.BaselineChainer(t))
		branch := tangle.Hash(strings.Repeat("b", tangle.HashTrytesSize))

		_, err := l.Attach(context.Background(), mocks.GenericTrunk, branch, mocks.GenericWeight, bundle)

		var target failure.InvalidArgument
		require.ErrorAs(t, err, &target)
		assert.Equal(t, validator.BranchField, target.Field)
	})

	t.Run("handles invalid trytes", func(t *testing.T) {
		t.Parallel()

		l := attacher.NewLocal(mocks.BaselineChainer(t))

		_, err := l.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, []tangle.Trytes{"ABC"})

		var target failure.InvalidArgument
		require.ErrorAs(t, err, &target)
		assert.Equal(t, validator.TrytesField, target.Field)
	})

	t.Run("handles empty trytes", func(t *testing.T) {
		t.Parallel()

		l := attacher.NewLocal(mocks.BaselineChainer(t))

		_, err := l.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, nil)

		var target failure.InvalidArgument
		require.ErrorAs(t, err, &target)
		assert.Equal(t, validator.TrytesField, target.Field)
	})

	t.Run("handles chainer failure", func(t *testing.T) {
		t.Parallel()

		chain := mocks.BaselineChainer(t)
		chain.AttachFunc = func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) ([]tangle.Trytes, error) {
			return nil, failure.ProofOfWork{Index: 1, Weight: mwm}
		}

		l := attacher.NewLocal(chain)

		res, err := l.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		assert.ErrorAs(t, err, &failure.ProofOfWork{})
		assert.Nil(t, res)
	})
}

func TestRemote_Attach(t *testing.T) {
	bundle := mocks.GenericBundle(2)

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		errText := "node is busy"
		want := &tangle.AttachResponse{Duration: 99, Error: &errText}
		remote := mocks.BaselineDelegate(t)
		remote.AttachToTangleFunc = func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error) {
			assert.Equal(t, mocks.GenericTrunk, trunk)
			assert.Equal(t, mocks.GenericBranch, branch)
			assert.Equal(t, mocks.GenericWeight, mwm)
			assert.Equal(t, bundle, trytes)
			return want, nil
		}

		r := attacher.NewRemote(remote)

		res, err := r.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		require.NoError(t, err)
		assert.Same(t, want, res)
	})

	t.Run("handles invalid trunk without request", func(t *testing.T) {
		t.Parallel()

		remote := mocks.BaselineDelegate(t)
		remote.AttachToTangleFunc = func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error) {
			t.Fatal("delegate should not be called")
			return nil, nil
		}

		r := attacher.NewRemote(remote)

		_, err := r.Attach(context.Background(), "", mocks.GenericBranch, mocks.GenericWeight, bundle)

		assert.ErrorAs(t, err, &failure.InvalidArgument{})
	})

	t.Run("handles delegate failure", func(t *testing.T) {
		t.Parallel()

		remote := mocks.BaselineDelegate(t)
		remote.AttachToTangleFunc = func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error) {
			return nil, failure.Remote{Endpoint: mocks.GenericEndpoint}
		}

		r := attacher.NewRemote(remote)

		_, err := r.Attach(context.Background(), mocks.GenericTrunk, mocks.GenericBranch, mocks.GenericWeight, bundle)

		assert.ErrorAs(t, err, &failure.Remote{})
	})
}

func TestAttach_EndToEnd(t *testing.T) {
	t.Parallel()

	codec := transaction.NewCodec()
	clock := func() time.Time { return time.Unix(mocks.GenericTimestamp, 0) }
	mode := attacher.New(mocks.NoopLogger, "", attacher.WithWorkers(2), attacher.WithClock(clock))

	trunk := tangle.Hash(strings.Repeat("A", tangle.HashTrytesSize))
	branch := tangle.Hash(strings.Repeat("B", tangle.HashTrytesSize))

	res, err := mode.Attach(context.Background(), trunk, branch, 1, mocks.GenericBundle(2))

	require.NoError(t, err)
	require.Len(t, res.Trytes, 2)

	first, err := codec.Parse(res.Trytes[1])
	require.NoError(t, err)
	second, err := codec.Parse(res.Trytes[0])
	require.NoError(t, err)

	assert.Equal(t, trunk, first.TrunkTransaction)
	assert.Equal(t, branch, first.BranchTransaction)
	assert.Equal(t, first.Hash, second.TrunkTransaction)
	assert.Equal(t, trunk, second.BranchTransaction)
	assert.Equal(t, int64(0), first.AttachmentTimestampLowerBound)
	assert.Equal(t, int64(tangle.MaxTimestampValue), second.AttachmentTimestampUpperBound)
}
