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

package attacher

import (
	"context"

	"github.com/optakt/tangle-attach/models/tangle"
)

// Chainer represents something that can attach a bundle locally.
type Chainer interface {
	Attach(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) ([]tangle.Trytes, error)
}

// Delegate represents something that can ask a remote node to attach a bundle.
type Delegate interface {
	AttachToTangle(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error)
}
