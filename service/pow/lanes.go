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
	"github.com/optakt/tangle-attach/crypto/curl"
	"github.com/optakt/tangle-attach/models/tangle"
)

// Trit positions, inside of the last absorbed chunk, used to spread the
// search over lanes, workers and iterations.
const (
	nonceStart   = curl.HashSize - tangle.NonceTrinarySize
	laneStart    = nonceStart
	workerStart  = laneStart + 4
	counterStart = workerStart + 5
	nonceEnd     = curl.HashSize
)

// lanes holds 64 Curl states side by side. Each trit is spread over one bit
// of the low word and one bit of the high word:
// -1 is (1, 0), 0 is (1, 1) and 1 is (0, 1).
type lanes struct {
	low  [curl.StateSize]uint64
	high [curl.StateSize]uint64
}

// spread sets every lane to the same scalar state.
func spread(state [curl.StateSize]int8) *lanes {
	l := lanes{}
	for i, trit := range state {
		l.set(i, trit)
	}
	return &l
}

func (l *lanes) set(i int, trit int8) {
	switch trit {
	case -1:
		l.low[i], l.high[i] = ^uint64(0), 0
	case 0:
		l.low[i], l.high[i] = ^uint64(0), ^uint64(0)
	case 1:
		l.low[i], l.high[i] = 0, ^uint64(0)
	}
}

// setLane sets the trit at position i of a single lane.
func (l *lanes) setLane(i int, lane uint, trit int8) {
	bit := uint64(1) << lane
	l.low[i] &^= bit
	l.high[i] &^= bit
	if trit <= 0 {
		l.low[i] |= bit
	}
	if trit >= 0 {
		l.high[i] |= bit
	}
}

// trit extracts the trit at position i of a single lane.
func (l *lanes) trit(i int, lane uint) int8 {
	low := (l.low[i] >> lane) & 1
	high := (l.high[i] >> lane) & 1
	switch {
	case low == 1 && high == 0:
		return -1
	case low == 0 && high == 1:
		return 1
	default:
		return 0
	}
}

// offset writes the balanced digits of value, starting at position start,
// into every lane.
func (l *lanes) offset(start int, size int, value int) {
	for i := start; i < start+size; i++ {
		l.set(i, int8(value%3)-1)
		value /= 3
	}
}

// diversify gives each of the 64 lanes a distinct value in the four trits
// starting at position start.
func (l *lanes) diversify(start int) {
	for lane := uint(0); lane < 64; lane++ {
		value := int(lane)
		for i := start; i < start+4; i++ {
			l.setLane(i, lane, int8(value%3)-1)
			value /= 3
		}
	}
}

// increment adds one to the counter stored in positions [from, to) of every
// lane. It returns false when the counter wraps around.
func (l *lanes) increment(from int, to int) bool {
	for i := from; i < to; i++ {
		low, high := l.low[i], l.high[i]
		l.low[i] = high ^ low
		l.high[i] = low
		if high&^low == 0 {
			return true
		}
	}
	return false
}

// transform applies the Curl-P-81 permutation to all lanes at once.
func (l *lanes) transform() {
	var scratchLow, scratchHigh [curl.StateSize]uint64
	for round := 0; round < curl.NumRounds; round++ {
		scratchLow, scratchHigh = l.low, l.high
		index := 0
		for i := 0; i < curl.StateSize; i++ {
			alpha := scratchLow[index]
			beta := scratchHigh[index]
			if index < 365 {
				index += 364
			} else {
				index -= 365
			}
			gamma := scratchHigh[index]
			delta := (alpha | ^gamma) & (scratchLow[index] ^ beta)
			l.low[i] = ^delta
			l.high[i] = (alpha ^ gamma) | delta
		}
	}
}

// zeros returns a mask of the lanes whose trits in [from, to) are all zero.
func (l *lanes) zeros(from int, to int) uint64 {
	probe := ^uint64(0)
	for i := from; i < to; i++ {
		probe &= ^(l.low[i] ^ l.high[i])
	}
	return probe
}
