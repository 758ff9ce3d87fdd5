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

package chainer

// Error descriptions for common errors.
const (
	txUnparseable    = "could not parse transaction"
	txUnserializable = "could not serialize transaction"
	txUnconvertible  = "could not convert transaction to trits"
	sealUnparseable  = "could not parse sealed transaction"
	sealFailed       = "could not find nonce for transaction"
)
