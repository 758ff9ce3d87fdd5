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
	"context"
	"testing"

	"github.com/optakt/tangle-attach/models/tangle"
)

type Delegate struct {
	AttachToTangleFunc        func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error)
	TransactionsToApproveFunc func(ctx context.Context, depth int, reference tangle.Hash) (*tangle.TipsResponse, error)
}

func BaselineDelegate(t *testing.T) *Delegate {
	t.Helper()

	d := Delegate{
		AttachToTangleFunc: func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error) {
			res := tangle.AttachResponse{
				Duration: 42,
				Trytes:   trytes,
			}
			return &res, nil
		},
		TransactionsToApproveFunc: func(ctx context.Context, depth int, reference tangle.Hash) (*tangle.TipsResponse, error) {
			trunk := GenericTrunk
			branch := GenericBranch
			res := tangle.TipsResponse{
				Duration:          42,
				TrunkTransaction:  &trunk,
				BranchTransaction: &branch,
			}
			return &res, nil
		},
	}

	return &d
}

func (d *Delegate) AttachToTangle(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error) {
	return d.AttachToTangleFunc(ctx, trunk, branch, mwm, trytes)
}

func (d *Delegate) TransactionsToApprove(ctx context.Context, depth int, reference tangle.Hash) (*tangle.TipsResponse, error) {
	return d.TransactionsToApproveFunc(ctx, depth, reference)
}
