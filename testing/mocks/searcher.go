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

	"github.com/optakt/tangle-attach/encoding/trinary"
	"github.com/optakt/tangle-attach/models/tangle"
)

type Searcher struct {
	SearchFunc func(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error)
}

func BaselineSearcher(t *testing.T) *Searcher {
	t.Helper()

	s := Searcher{
		SearchFunc: func(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error) {
			return trinary.MustTritsToTrytes(trits), nil
		},
	}

	return &s
}

func (s *Searcher) Search(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error) {
	return s.SearchFunc(ctx, trits, mwm)
}
