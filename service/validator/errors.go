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

// Error descriptions for invalid arguments.
const (
	commandUnknown   = "command is not supported"
	trunkInvalid     = "trunk transaction is not a valid hash"
	branchInvalid    = "branch transaction is not a valid hash"
	trytesInvalid    = "trytes are not a non-empty list of transaction encodings"
	weightInvalid    = "minimum weight magnitude exceeds the allowed maximum"
	depthInvalid     = "depth must be positive"
	referenceInvalid = "reference is not a valid hash"
)

// Field names, as they appear in invalid argument failures.
const (
	CommandField   = "command"
	TrunkField     = "trunk_transaction"
	BranchField    = "branch_transaction"
	TrytesField    = "trytes"
	WeightField    = "min_weight_magnitude"
	DepthField     = "depth"
	ReferenceField = "reference"
)
