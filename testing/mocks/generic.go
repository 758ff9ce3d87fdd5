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

package mocks

import (
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/optakt/tangle-attach/encoding/trinary"
	"github.com/optakt/tangle-attach/models/tangle"
	"github.com/optakt/tangle-attach/service/transaction"
)

// Global variables that can be used for testing. They are non-nil valid values for the types commonly needed
// to test attachment components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericTrunk = tangle.Hash(strings.Repeat("A", tangle.HashTrytesSize))

	GenericBranch = tangle.Hash(strings.Repeat("B", tangle.HashTrytesSize))

	GenericWeight = uint64(9)

	GenericDepth = 3

	GenericTimestamp = int64(1637067000)

	GenericEndpoint = "http://localhost:14265"
)

// GenericHashes returns a slice of distinct valid hashes.
func GenericHashes(number int) []tangle.Hash {
	var hashes []tangle.Hash
	for i := 0; i < number; i++ {
		hashes = append(hashes, GenericHash(i))
	}

	return hashes
}

// GenericHash returns a valid hash that is unique for the given index.
func GenericHash(index int) tangle.Hash {
	return tangle.Hash(trinary.IntToTrytes(int64(index)*7919+1, tangle.HashTrytesSize))
}

// GenericTransactions returns the transactions of a bundle of the given size.
func GenericTransactions(number int) []*tangle.Transaction {
	var txs []*tangle.Transaction
	for i := 0; i < number; i++ {
		tx := GenericTransaction(i)
		tx.LastIndex = int64(number - 1)
		txs = append(txs, tx)
	}

	return txs
}

// GenericTransaction returns an unattached transaction with every tryte field
// filled to its full size.
func GenericTransaction(index int) *tangle.Transaction {
	tx := tangle.Transaction{
		SignatureMessageFragment:      trinary.Pad("GENERIC9MESSAGE", tangle.SignatureFragmentTrytesSize),
		Address:                       GenericHash(index + 100),
		Value:                         int64(index) * 1000,
		ObsoleteTag:                   trinary.Pad("OBSOLETE", tangle.TagTrytesSize),
		Timestamp:                     GenericTimestamp + int64(index),
		CurrentIndex:                  int64(index),
		LastIndex:                     int64(index),
		Bundle:                        GenericHash(999),
		TrunkTransaction:              tangle.NullHash,
		BranchTransaction:             tangle.NullHash,
		Tag:                           tangle.NullTag,
		AttachmentTimestamp:           0,
		AttachmentTimestampLowerBound: 0,
		AttachmentTimestampUpperBound: 0,
		Nonce:                         tangle.NullTag,
	}

	return &tx
}

// GenericBundle returns the encoded transactions of a bundle of the given size,
// in tail to head order.
func GenericBundle(number int) []tangle.Trytes {
	codec := transaction.NewCodec()

	var bundle []tangle.Trytes
	for _, tx := range GenericTransactions(number) {
		trytes, err := codec.Serialize(tx)
		if err != nil {
			panic(err)
		}
		bundle = append(bundle, trytes)
	}

	return bundle
}
