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

package trinary

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/optakt/tangle-attach/models/tangle"
)

var (
	// ErrInvalidTryte is returned when a string contains a symbol outside of
	// the tryte alphabet.
	ErrInvalidTryte = errors.New("invalid tryte")
	// ErrInvalidTrit is returned when a trit is not one of -1, 0 or 1.
	ErrInvalidTrit = errors.New("invalid trit")
	// ErrInvalidLength is returned when trits can not be grouped into trytes.
	ErrInvalidLength = errors.New("invalid trits length")
)

// tryteTrits maps the alphabet index of each tryte symbol to its three trits.
var tryteTrits = func() [27][3]int8 {
	var table [27][3]int8
	for i := range table {
		copy(table[i][:], IntToTrits(tryteValue(i), tangle.TritsPerTryte))
	}
	return table
}()

// tryteValue returns the balanced value of the symbol at the given alphabet
// index, in the range [-13, 13].
func tryteValue(index int) int64 {
	if index > 13 {
		return int64(index - 27)
	}
	return int64(index)
}

// IsTryte returns whether the symbol is part of the tryte alphabet.
func IsTryte(r rune) bool {
	return r == '9' || (r >= 'A' && r <= 'Z')
}

// IsTrytes returns whether the string is non-empty and only contains symbols
// of the tryte alphabet.
func IsTrytes(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !IsTryte(r) {
			return false
		}
	}
	return true
}

// TrytesToTrits converts trytes into trits, three trits per tryte.
func TrytesToTrits(trytes tangle.Trytes) (tangle.Trits, error) {
	trits := make(tangle.Trits, 0, len(trytes)*tangle.TritsPerTryte)
	for i, r := range trytes {
		index := strings.IndexRune(tangle.TryteAlphabet, r)
		if index < 0 {
			return nil, fmt.Errorf("could not convert symbol %q at position %d: %w", r, i, ErrInvalidTryte)
		}
		trits = append(trits, tryteTrits[index][:]...)
	}
	return trits, nil
}

// MustTrytesToTrits converts trytes into trits and panics on invalid input. It
// is meant for trytes that have already been validated.
func MustTrytesToTrits(trytes tangle.Trytes) tangle.Trits {
	trits, err := TrytesToTrits(trytes)
	if err != nil {
		panic(err)
	}
	return trits
}

// TritsToTrytes converts trits into trytes. The number of trits must be a
// multiple of three.
func TritsToTrytes(trits tangle.Trits) (tangle.Trytes, error) {
	if len(trits)%tangle.TritsPerTryte != 0 {
		return "", fmt.Errorf("could not group %d trits: %w", len(trits), ErrInvalidLength)
	}

	var b strings.Builder
	b.Grow(len(trits) / tangle.TritsPerTryte)
	for i := 0; i < len(trits); i += tangle.TritsPerTryte {
		for j := i; j < i+tangle.TritsPerTryte; j++ {
			if trits[j] < -1 || trits[j] > 1 {
				return "", fmt.Errorf("could not convert trit %d at position %d: %w", trits[j], j, ErrInvalidTrit)
			}
		}
		value := int(trits[i]) + 3*int(trits[i+1]) + 9*int(trits[i+2])
		if value < 0 {
			value += len(tangle.TryteAlphabet)
		}
		b.WriteByte(tangle.TryteAlphabet[value])
	}

	return tangle.Trytes(b.String()), nil
}

// MustTritsToTrytes converts trits into trytes and panics on invalid input.
func MustTritsToTrytes(trits tangle.Trits) tangle.Trytes {
	trytes, err := TritsToTrytes(trits)
	if err != nil {
		panic(err)
	}
	return trytes
}

// IntToTrits encodes the integer in little-endian balanced ternary, using
// exactly size trits. Higher order trits that do not fit are dropped.
func IntToTrits(value int64, size int) tangle.Trits {
	trits := make(tangle.Trits, size)

	negative := value < 0
	if negative {
		value = -value
	}

	for i := 0; i < size && value != 0; i++ {
		rem := value % 3
		value /= 3
		if rem == 2 {
			rem = -1
			value++
		}
		trits[i] = int8(rem)
	}

	if negative {
		for i := range trits {
			trits[i] = -trits[i]
		}
	}

	return trits
}

// TritsToInt decodes little-endian balanced ternary trits into an integer.
func TritsToInt(trits tangle.Trits) int64 {
	var value int64
	for i := len(trits) - 1; i >= 0; i-- {
		value = value*3 + int64(trits[i])
	}
	return value
}

// MaxInt returns the largest integer that the given number of balanced trits
// can represent. The smallest one is its negation.
func MaxInt(size int) int64 {
	// 41 trits cover the whole int64 range.
	if size > 40 {
		return math.MaxInt64
	}
	var max int64
	for i := 0; i < size; i++ {
		max = max*3 + 1
	}
	return max
}

// FitsTrits returns whether the integer can be encoded into the given number
// of trits without dropping any of its high-order trits.
func FitsTrits(value int64, size int) bool {
	max := MaxInt(size)
	return value <= max && value >= -max
}

// IntToTrytes encodes the integer into the given number of trytes.
func IntToTrytes(value int64, size int) tangle.Trytes {
	return MustTritsToTrytes(IntToTrits(value, size*tangle.TritsPerTryte))
}

// TrytesToInt decodes trytes into an integer.
func TrytesToInt(trytes tangle.Trytes) (int64, error) {
	trits, err := TrytesToTrits(trytes)
	if err != nil {
		return 0, err
	}
	return TritsToInt(trits), nil
}

// Pad right-pads the trytes with the null symbol up to the given size. Longer
// input is returned unchanged.
func Pad(trytes tangle.Trytes, size int) tangle.Trytes {
	if len(trytes) >= size {
		return trytes
	}
	return trytes + tangle.Trytes(strings.Repeat("9", size-len(trytes)))
}
