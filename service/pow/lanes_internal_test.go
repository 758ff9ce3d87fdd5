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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tangle-attach/crypto/curl"
	"github.com/optakt/tangle-attach/encoding/trinary"
	"github.com/optakt/tangle-attach/models/tangle"
)

func TestLanes_Transform(t *testing.T) {
	t.Parallel()

	trits := trinary.MustTrytesToTrits(trinary.Pad("LANESLANESLANES", tangle.TransactionTrytesSize))
	prefix := tangle.TransactionTrinarySize - curl.HashSize

	c := curl.New()
	c.Absorb(trits[:prefix])
	state := c.State()
	copy(state[:curl.HashSize], trits[prefix:])

	mid := spread(state)
	mid.diversify(laneStart)
	mid.offset(workerStart, counterStart-workerStart, 7)

	work := *mid
	work.transform()

	for _, lane := range []uint{0, 1, 2, 31, 63} {
		input := make(tangle.Trits, len(trits))
		copy(input, trits)
		for i := nonceStart; i < nonceEnd; i++ {
			input[prefix+i] = mid.trit(i, lane)
		}

		want := curl.Hash(input)

		got := make(tangle.Trits, 0, curl.HashSize)
		for i := 0; i < curl.HashSize; i++ {
			got = append(got, work.trit(i, lane))
		}
		assert.Equal(t, want, got, "lane %d", lane)
	}
}

func TestLanes_Diversify(t *testing.T) {
	t.Parallel()

	l := spread([curl.StateSize]int8{})
	l.diversify(laneStart)

	seen := make(map[[4]int8]struct{})
	for lane := uint(0); lane < 64; lane++ {
		var digits [4]int8
		for i := range digits {
			digits[i] = l.trit(laneStart+i, lane)
		}
		seen[digits] = struct{}{}
	}

	assert.Len(t, seen, 64)
}

func TestLanes_Increment(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		l := spread([curl.StateSize]int8{})
		l.set(0, -1)
		l.set(1, -1)

		require.True(t, l.increment(0, 2))
		assert.Equal(t, int8(0), l.trit(0, 5))
		assert.Equal(t, int8(-1), l.trit(1, 5))

		require.True(t, l.increment(0, 2))
		assert.Equal(t, int8(1), l.trit(0, 5))
		assert.Equal(t, int8(-1), l.trit(1, 5))

		require.True(t, l.increment(0, 2))
		assert.Equal(t, int8(-1), l.trit(0, 5))
		assert.Equal(t, int8(0), l.trit(1, 5))
	})

	t.Run("reports wrap around", func(t *testing.T) {
		t.Parallel()

		l := spread([curl.StateSize]int8{})
		l.set(0, 1)
		l.set(1, 1)

		assert.False(t, l.increment(0, 2))
	})
}

func TestLanes_Zeros(t *testing.T) {
	t.Parallel()

	l := spread([curl.StateSize]int8{})
	l.setLane(10, 3, 1)

	probe := l.zeros(5, 12)

	assert.Equal(t, ^uint64(0)&^(uint64(1)<<3), probe)
	assert.Equal(t, ^uint64(0), l.zeros(11, 12))
}
