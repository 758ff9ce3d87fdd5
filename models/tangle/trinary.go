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

package tangle

// Trytes is a string of symbols from the tryte alphabet.
type Trytes string

// Trits is a slice of balanced trits, each one of -1, 0 or 1.
type Trits []int8

// Hash is the tryte encoding of a transaction hash, bundle hash or address.
type Hash string

// String implements the fmt.Stringer interface.
func (h Hash) String() string {
	return string(h)
}

// Trytes returns the hash as a tryte string.
func (h Hash) Trytes() Trytes {
	return Trytes(h)
}

// WithoutChecksum returns the hash without the checksum trytes that may follow
// its first 81 trytes.
func (h Hash) WithoutChecksum() Hash {
	if len(h) > HashTrytesSize {
		return h[:HashTrytesSize]
	}
	return h
}
