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

type Chainer struct {
	AttachFunc func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) ([]tangle.Trytes, error)
}

func BaselineChainer(t *testing.T) *Chainer {
	t.Helper()

	c := Chainer{
		AttachFunc: func(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) ([]tangle.Trytes, error) {
			return trytes, nil
		},
	}

	return &c
}

func (c *Chainer) Attach(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) ([]tangle.Trytes, error) {
	return c.AttachFunc(ctx, trunk, branch, mwm, trytes)
}
