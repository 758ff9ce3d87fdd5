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

package iri

import (
	"github.com/optakt/tangle-attach/models/tangle"
)

// commandRequest holds the fields of every supported command, so that the
// request body is bound once and then handed to the matching command.
type commandRequest struct {
	Command            string          `json:"command"`
	TrunkTransaction   tangle.Hash     `json:"trunkTransaction"`
	BranchTransaction  tangle.Hash     `json:"branchTransaction"`
	MinWeightMagnitude uint64          `json:"minWeightMagnitude"`
	Trytes             []tangle.Trytes `json:"trytes"`
	Depth              int             `json:"depth"`
	Reference          tangle.Hash     `json:"reference"`
}

func (r commandRequest) attach() tangle.AttachRequest {
	return tangle.AttachRequest{
		Command:            r.Command,
		TrunkTransaction:   r.TrunkTransaction,
		BranchTransaction:  r.BranchTransaction,
		MinWeightMagnitude: r.MinWeightMagnitude,
		Trytes:             r.Trytes,
	}
}

func (r commandRequest) tips() tangle.TipsRequest {
	return tangle.TipsRequest{
		Command:   r.Command,
		Depth:     r.Depth,
		Reference: r.Reference,
	}
}
