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

package curl

import (
	"github.com/optakt/tangle-attach/models/tangle"
)

// Sponge parameters of Curl-P-81.
const (
	HashSize   = tangle.HashTrinarySize
	StateSize  = 3 * HashSize
	NumRounds  = 81
	stateShift = 364
)

// TruthTable maps the sum of two state trits, with the second one weighted by
// four and offset by five, to the next state trit.
var TruthTable = [11]int8{1, 0, -1, 2, 1, -1, 0, 2, -1, 1, 0}

// Curl is a Curl-P-81 sponge over balanced trits. It is not safe for
// concurrent use.
type Curl struct {
	state   [StateSize]int8
	scratch [StateSize]int8
}

// New creates a sponge with an all-zero state.
func New() *Curl {
	c := Curl{}
	return &c
}

// Reset clears the sponge state.
func (c *Curl) Reset() {
	c.state = [StateSize]int8{}
}

// Absorb feeds the trits into the sponge, one hash-sized chunk at a time. A
// trailing partial chunk only overwrites the start of the rate.
func (c *Curl) Absorb(trits tangle.Trits) {
	for len(trits) > 0 {
		n := copy(c.state[:HashSize], trits)
		trits = trits[n:]
		c.transform()
	}
}

// Squeeze returns the next hash-sized chunk of output.
func (c *Curl) Squeeze() tangle.Trits {
	out := make(tangle.Trits, HashSize)
	copy(out, c.state[:HashSize])
	c.transform()
	return out
}

// State returns a copy of the full sponge state.
func (c *Curl) State() [StateSize]int8 {
	return c.state
}

func (c *Curl) transform() {
	for round := 0; round < NumRounds; round++ {
		c.scratch = c.state
		index := 0
		for i := 0; i < StateSize; i++ {
			next := index + stateShift
			if index >= 365 {
				next = index - 365
			}
			c.state[i] = TruthTable[c.scratch[index]+c.scratch[next]<<2+5]
			index = next
		}
	}
}

// Hash returns the Curl-P-81 hash of the trits.
func Hash(trits tangle.Trits) tangle.Trits {
	c := New()
	c.Absorb(trits)
	return c.Squeeze()
}
