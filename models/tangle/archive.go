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

// Archive is the record of an attached bundle, as written to disk by the
// command line tool.
type Archive struct {
	Trunk     Hash     `cbor:"1,keyasint" json:"trunk"`
	Branch    Hash     `cbor:"2,keyasint" json:"branch"`
	Weight    uint64   `cbor:"3,keyasint" json:"weight"`
	Timestamp int64    `cbor:"4,keyasint" json:"timestamp"`
	Endpoint  string   `cbor:"5,keyasint,omitempty" json:"endpoint,omitempty"`
	Trytes    []Trytes `cbor:"6,keyasint" json:"trytes"`
}
