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

// Transaction is the structured form of a transaction's tryte encoding.
// Hash is derived from the encoding and is not part of it.
type Transaction struct {
	Hash                          Hash
	SignatureMessageFragment      Trytes
	Address                       Hash
	Value                         int64
	ObsoleteTag                   Trytes
	Timestamp                     int64
	CurrentIndex                  int64
	LastIndex                     int64
	Bundle                        Hash
	TrunkTransaction              Hash
	BranchTransaction             Hash
	Tag                           Trytes
	AttachmentTimestamp           int64
	AttachmentTimestampLowerBound int64
	AttachmentTimestampUpperBound int64
	Nonce                         Trytes
}

// HasEmptyTag returns whether the tag is unset, either because it is empty or
// because it only contains the padding symbol.
func (t *Transaction) HasEmptyTag() bool {
	return t.Tag == "" || t.Tag == NullTag
}
