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

package zbor_test

import (
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tangle-attach/codec/zbor"
	"github.com/optakt/tangle-attach/models/tangle"
	"github.com/optakt/tangle-attach/testing/mocks"
)

func TestCodec(t *testing.T) {
	archive := tangle.Archive{
		Trunk:     mocks.GenericTrunk,
		Branch:    mocks.GenericBranch,
		Weight:    mocks.GenericWeight,
		Timestamp: mocks.GenericTimestamp,
		Trytes:    mocks.GenericBundle(3),
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		codec := zbor.NewCodec()
		defer codec.Close()

		data, err := codec.Marshal(archive)
		require.NoError(t, err)

		var got tangle.Archive
		err = codec.Unmarshal(data, &got)

		require.NoError(t, err)
		assert.Equal(t, archive, got)
	})

	t.Run("compresses trytes", func(t *testing.T) {
		t.Parallel()

		codec := zbor.NewCodec(zbor.WithLevel(zstd.SpeedBestCompression))
		defer codec.Close()

		encoded, err := codec.Encode(archive)
		require.NoError(t, err)
		compressed, err := codec.Compress(encoded)
		require.NoError(t, err)

		assert.Less(t, len(compressed), len(encoded))
	})

	t.Run("encoding is canonical", func(t *testing.T) {
		t.Parallel()

		codec := zbor.NewCodec()
		defer codec.Close()

		first, err := codec.Encode(archive)
		require.NoError(t, err)
		second, err := codec.Encode(archive)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("handles corrupted data", func(t *testing.T) {
		t.Parallel()

		codec := zbor.NewCodec()
		defer codec.Close()

		var got tangle.Archive
		err := codec.Unmarshal([]byte("not zstd"), &got)

		assert.Error(t, err)
	})

	t.Run("handles invalid cbor", func(t *testing.T) {
		t.Parallel()

		codec := zbor.NewCodec()
		defer codec.Close()

		compressed, err := codec.Compress([]byte{0xff, 0x00})
		require.NoError(t, err)

		var got tangle.Archive
		err = codec.Unmarshal(compressed, &got)

		assert.Error(t, err)
	})
}
