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
	"context"

	"github.com/optakt/tangle-attach/models/tangle"
)

// Attacher represents something that can attach bundles to the tangle.
type Attacher interface {
	Attach(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error)
}

// Tipper represents something that can select transactions to approve.
type Tipper interface {
	TransactionsToApprove(ctx context.Context, depth int, reference tangle.Hash) (*tangle.TipsResponse, error)
}

// Validator represents something that can validate node API requests.
type Validator interface {
	Request(request interface{}) error
}
