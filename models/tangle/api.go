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

// Node API commands.
const (
	CommandAttachToTangle           = "attachToTangle"
	CommandGetTransactionsToApprove = "getTransactionsToApprove"
)

// Node API headers.
const (
	APIVersionHeader = "X-IOTA-API-Version"
	APIVersion       = "1"
)

// Command is the envelope shared by all node API requests.
type Command struct {
	Command string `json:"command"`
}

// AttachRequest is the node API request to attach a bundle to the tangle.
type AttachRequest struct {
	Command            string   `json:"command"`
	TrunkTransaction   Hash     `json:"trunkTransaction"`
	BranchTransaction  Hash     `json:"branchTransaction"`
	MinWeightMagnitude uint64   `json:"minWeightMagnitude"`
	Trytes             []Trytes `json:"trytes"`
}

// AttachResponse is the node API response to an attach request. The error and
// exception fields are reported by the node and passed on as they are.
type AttachResponse struct {
	Duration  int64    `json:"duration"`
	ID        *string  `json:"id,omitempty"`
	Error     *string  `json:"error,omitempty"`
	Exception *string  `json:"exception,omitempty"`
	Trytes    []Trytes `json:"trytes,omitempty"`
}

// TipsRequest is the node API request for a pair of transactions to approve.
type TipsRequest struct {
	Command   string `json:"command"`
	Depth     int    `json:"depth"`
	Reference Hash   `json:"reference,omitempty"`
}

// TipsResponse is the node API response with the transactions to approve.
type TipsResponse struct {
	Duration          int64   `json:"duration"`
	Error             *string `json:"error,omitempty"`
	TrunkTransaction  *Hash   `json:"trunkTransaction,omitempty"`
	BranchTransaction *Hash   `json:"branchTransaction,omitempty"`
}
