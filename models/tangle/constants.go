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

// TryteAlphabet lists the 27 tryte symbols in ascending order of their value,
// starting at zero. Symbols after 'M' encode negative values.
const TryteAlphabet = "9ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Sizes of the trinary encodings used by the protocol.
const (
	TritsPerTryte = 3

	HashTrytesSize              = 81
	HashTrinarySize             = HashTrytesSize * TritsPerTryte
	AddressWithChecksumSize     = 90
	TagTrytesSize               = 27
	NonceTrytesSize             = 27
	NonceTrinarySize            = NonceTrytesSize * TritsPerTryte
	TransactionTrytesSize       = 2673
	TransactionTrinarySize      = TransactionTrytesSize * TritsPerTryte
	SignatureFragmentTrytesSize = 2187
)

// Tryte offsets and sizes of the transaction fields, in serialization order.
const (
	SignatureFragmentOffset = 0

	AddressOffset = SignatureFragmentOffset + SignatureFragmentTrytesSize
	AddressSize   = HashTrytesSize

	ValueOffset = AddressOffset + AddressSize
	ValueSize   = 27
	// ValueTrinaryUsed is the number of trits of the value field that carry
	// information; the remaining trits must be zero.
	ValueTrinaryUsed = 33

	ObsoleteTagOffset = ValueOffset + ValueSize
	ObsoleteTagSize   = TagTrytesSize

	TimestampOffset = ObsoleteTagOffset + ObsoleteTagSize
	TimestampSize   = 9

	CurrentIndexOffset = TimestampOffset + TimestampSize
	CurrentIndexSize   = 9

	LastIndexOffset = CurrentIndexOffset + CurrentIndexSize
	LastIndexSize   = 9

	BundleOffset = LastIndexOffset + LastIndexSize
	BundleSize   = HashTrytesSize

	TrunkOffset = BundleOffset + BundleSize
	TrunkSize   = HashTrytesSize

	BranchOffset = TrunkOffset + TrunkSize
	BranchSize   = HashTrytesSize

	TagOffset = BranchOffset + BranchSize
	TagSize   = TagTrytesSize

	AttachmentTimestampOffset = TagOffset + TagSize
	AttachmentTimestampSize   = 9

	AttachmentLowerBoundOffset = AttachmentTimestampOffset + AttachmentTimestampSize
	AttachmentLowerBoundSize   = 9

	AttachmentUpperBoundOffset = AttachmentLowerBoundOffset + AttachmentLowerBoundSize
	AttachmentUpperBoundSize   = 9

	NonceOffset = AttachmentUpperBoundOffset + AttachmentUpperBoundSize
	NonceSize   = NonceTrytesSize
)

// tritRange27 is the number of distinct values of 27 trits, 3^27.
const tritRange27 = 7625597484987

// MaxTimestampValue is the largest timestamp representable in the 27 balanced
// trits of a timestamp field. It is a protocol constant.
const MaxTimestampValue = (tritRange27 - 1) / 2

// NullHash is the hash value of an unset reference.
const NullHash Hash = "999999999999999999999999999999999999999999999999999999999999999999999999999999999"

// NullTag is the tag value of an unset tag.
const NullTag Trytes = "999999999999999999999999999"
