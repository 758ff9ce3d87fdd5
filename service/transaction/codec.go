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

package transaction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/optakt/tangle-attach/crypto/curl"
	"github.com/optakt/tangle-attach/encoding/trinary"
	"github.com/optakt/tangle-attach/models/tangle"
)

var (
	// ErrInvalidSize is returned when an encoded transaction does not have the
	// exact transaction size.
	ErrInvalidSize = errors.New("invalid transaction size")
	// ErrInvalidValue is returned when the value field uses trits beyond its
	// significant range.
	ErrInvalidValue = errors.New("invalid transaction value")
	// ErrInvalidField is returned when a transaction field does not fit its
	// slot in the encoding.
	ErrInvalidField = errors.New("invalid transaction field")
)

// Codec converts transactions between their structured form and their tryte
// encoding.
type Codec struct{}

// NewCodec creates a new transaction codec.
func NewCodec() *Codec {
	c := Codec{}
	return &c
}

// Parse decodes a transaction from its tryte encoding and computes its hash.
func (c *Codec) Parse(trytes tangle.Trytes) (*tangle.Transaction, error) {
	if len(trytes) != tangle.TransactionTrytesSize {
		return nil, fmt.Errorf("could not parse %d trytes: %w", len(trytes), ErrInvalidSize)
	}

	trits, err := trinary.TrytesToTrits(trytes)
	if err != nil {
		return nil, fmt.Errorf("could not convert transaction trytes: %w", err)
	}

	valueTrits := trits[tangle.ValueOffset*tangle.TritsPerTryte : (tangle.ValueOffset+tangle.ValueSize)*tangle.TritsPerTryte]
	for _, trit := range valueTrits[tangle.ValueTrinaryUsed:] {
		if trit != 0 {
			return nil, fmt.Errorf("could not parse value trits: %w", ErrInvalidValue)
		}
	}

	integer := func(offset int, size int) int64 {
		return trinary.TritsToInt(trits[offset*tangle.TritsPerTryte : (offset+size)*tangle.TritsPerTryte])
	}
	field := func(offset int, size int) tangle.Trytes {
		return trytes[offset : offset+size]
	}

	tx := tangle.Transaction{
		Hash:                          hashTrits(trits),
		SignatureMessageFragment:      field(tangle.SignatureFragmentOffset, tangle.SignatureFragmentTrytesSize),
		Address:                       tangle.Hash(field(tangle.AddressOffset, tangle.AddressSize)),
		Value:                         trinary.TritsToInt(valueTrits[:tangle.ValueTrinaryUsed]),
		ObsoleteTag:                   field(tangle.ObsoleteTagOffset, tangle.ObsoleteTagSize),
		Timestamp:                     integer(tangle.TimestampOffset, tangle.TimestampSize),
		CurrentIndex:                  integer(tangle.CurrentIndexOffset, tangle.CurrentIndexSize),
		LastIndex:                     integer(tangle.LastIndexOffset, tangle.LastIndexSize),
		Bundle:                        tangle.Hash(field(tangle.BundleOffset, tangle.BundleSize)),
		TrunkTransaction:              tangle.Hash(field(tangle.TrunkOffset, tangle.TrunkSize)),
		BranchTransaction:             tangle.Hash(field(tangle.BranchOffset, tangle.BranchSize)),
		Tag:                           field(tangle.TagOffset, tangle.TagSize),
		AttachmentTimestamp:           integer(tangle.AttachmentTimestampOffset, tangle.AttachmentTimestampSize),
		AttachmentTimestampLowerBound: integer(tangle.AttachmentLowerBoundOffset, tangle.AttachmentLowerBoundSize),
		AttachmentTimestampUpperBound: integer(tangle.AttachmentUpperBoundOffset, tangle.AttachmentUpperBoundSize),
		Nonce:                         field(tangle.NonceOffset, tangle.NonceSize),
	}

	return &tx, nil
}

// Serialize encodes the transaction into trytes. Tryte fields shorter than
// their slot are padded with the null symbol, while integers that do not fit
// their slot are rejected. The hash is not encoded.
func (c *Codec) Serialize(tx *tangle.Transaction) (tangle.Trytes, error) {
	integers := []struct {
		name  string
		value int64
		size  int
	}{
		{name: "value", value: tx.Value, size: tangle.ValueTrinaryUsed},
		{name: "timestamp", value: tx.Timestamp, size: tangle.TimestampSize * tangle.TritsPerTryte},
		{name: "current_index", value: tx.CurrentIndex, size: tangle.CurrentIndexSize * tangle.TritsPerTryte},
		{name: "last_index", value: tx.LastIndex, size: tangle.LastIndexSize * tangle.TritsPerTryte},
		{name: "attachment_timestamp", value: tx.AttachmentTimestamp, size: tangle.AttachmentTimestampSize * tangle.TritsPerTryte},
		{name: "attachment_timestamp_lower_bound", value: tx.AttachmentTimestampLowerBound, size: tangle.AttachmentLowerBoundSize * tangle.TritsPerTryte},
		{name: "attachment_timestamp_upper_bound", value: tx.AttachmentTimestampUpperBound, size: tangle.AttachmentUpperBoundSize * tangle.TritsPerTryte},
	}
	for _, integer := range integers {
		if !trinary.FitsTrits(integer.value, integer.size) {
			return "", fmt.Errorf("could not encode field %s with value %d into %d trits: %w", integer.name, integer.value, integer.size, ErrInvalidField)
		}
	}

	var b strings.Builder
	b.Grow(tangle.TransactionTrytesSize)

	fields := []struct {
		name  string
		value tangle.Trytes
		size  int
	}{
		{name: "signature_message_fragment", value: tx.SignatureMessageFragment, size: tangle.SignatureFragmentTrytesSize},
		{name: "address", value: tx.Address.Trytes(), size: tangle.AddressSize},
		{name: "value", value: trinary.IntToTrytes(tx.Value, tangle.ValueSize), size: tangle.ValueSize},
		{name: "obsolete_tag", value: tx.ObsoleteTag, size: tangle.ObsoleteTagSize},
		{name: "timestamp", value: trinary.IntToTrytes(tx.Timestamp, tangle.TimestampSize), size: tangle.TimestampSize},
		{name: "current_index", value: trinary.IntToTrytes(tx.CurrentIndex, tangle.CurrentIndexSize), size: tangle.CurrentIndexSize},
		{name: "last_index", value: trinary.IntToTrytes(tx.LastIndex, tangle.LastIndexSize), size: tangle.LastIndexSize},
		{name: "bundle", value: tx.Bundle.Trytes(), size: tangle.BundleSize},
		{name: "trunk_transaction", value: tx.TrunkTransaction.Trytes(), size: tangle.TrunkSize},
		{name: "branch_transaction", value: tx.BranchTransaction.Trytes(), size: tangle.BranchSize},
		{name: "tag", value: tx.Tag, size: tangle.TagSize},
		{name: "attachment_timestamp", value: trinary.IntToTrytes(tx.AttachmentTimestamp, tangle.AttachmentTimestampSize), size: tangle.AttachmentTimestampSize},
		{name: "attachment_timestamp_lower_bound", value: trinary.IntToTrytes(tx.AttachmentTimestampLowerBound, tangle.AttachmentLowerBoundSize), size: tangle.AttachmentLowerBoundSize},
		{name: "attachment_timestamp_upper_bound", value: trinary.IntToTrytes(tx.AttachmentTimestampUpperBound, tangle.AttachmentUpperBoundSize), size: tangle.AttachmentUpperBoundSize},
		{name: "nonce", value: tx.Nonce, size: tangle.NonceSize},
	}

	for _, field := range fields {
		if len(field.value) > field.size {
			return "", fmt.Errorf("could not encode field %s of %d trytes into %d: %w", field.name, len(field.value), field.size, ErrInvalidField)
		}
		if len(field.value) > 0 && !trinary.IsTrytes(string(field.value)) {
			return "", fmt.Errorf("could not encode field %s: %w", field.name, trinary.ErrInvalidTryte)
		}
		b.WriteString(string(trinary.Pad(field.value, field.size)))
	}

	return tangle.Trytes(b.String()), nil
}

// Hash computes the hash of an encoded transaction.
func (c *Codec) Hash(trytes tangle.Trytes) (tangle.Hash, error) {
	if len(trytes) != tangle.TransactionTrytesSize {
		return "", fmt.Errorf("could not hash %d trytes: %w", len(trytes), ErrInvalidSize)
	}
	trits, err := trinary.TrytesToTrits(trytes)
	if err != nil {
		return "", fmt.Errorf("could not convert transaction trytes: %w", err)
	}
	return hashTrits(trits), nil
}

func hashTrits(trits tangle.Trits) tangle.Hash {
	return tangle.Hash(trinary.MustTritsToTrytes(curl.Hash(trits)))
}
