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

package validator

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/optakt/tangle-attach/encoding/trinary"
	"github.com/optakt/tangle-attach/models/tangle"
)

var (
	// ErrEmptyList is returned when a list of transactions has no entries.
	ErrEmptyList = errors.New("empty transaction list")
	// ErrInvalidEntry is returned for an entry of a list of transactions that
	// is not a valid transaction encoding.
	ErrInvalidEntry = errors.New("invalid transaction trytes")
)

// IsHash returns whether the string is a hash, with or without its checksum.
func IsHash(s string) bool {
	return IsTrytes(s, tangle.HashTrytesSize) || IsTrytes(s, tangle.AddressWithChecksumSize)
}

// IsTrytes returns whether the string consists of exactly size trytes.
func IsTrytes(s string, size int) bool {
	return len(s) == size && trinary.IsTrytes(s)
}

// IsArrayOfTrytes returns whether the list is non-empty and each of its
// entries has the size of an encoded transaction.
func IsArrayOfTrytes(list []tangle.Trytes) bool {
	return CheckArrayOfTrytes(list) == nil
}

// CheckArrayOfTrytes checks the same conditions as IsArrayOfTrytes, and
// returns an error that lists every invalid entry.
func CheckArrayOfTrytes(list []tangle.Trytes) error {
	if len(list) == 0 {
		return ErrEmptyList
	}

	var merr *multierror.Error
	for index, trytes := range list {
		if IsTrytes(string(trytes), tangle.TransactionTrytesSize) {
			continue
		}
		merr = multierror.Append(merr, fmt.Errorf("entry %d of %d trytes: %w", index, len(trytes), ErrInvalidEntry))
	}

	return merr.ErrorOrNil()
}
