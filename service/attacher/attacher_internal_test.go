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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/tangle-attach/service/chainer"
	"github.com/optakt/tangle-attach/service/delegate"
	"github.com/optakt/tangle-attach/testing/mocks"
)

func TestNew(t *testing.T) {
	t.Run("local without endpoint", func(t *testing.T) {
		t.Parallel()

		mode := New(mocks.NoopLogger, "", WithWorkers(1))

		local, ok := mode.(*Local)
		require.True(t, ok)
		assert.IsType(t, &chainer.Chainer{}, local.chain)
	})

	t.Run("remote with endpoint", func(t *testing.T) {
		t.Parallel()

		mode := New(mocks.NoopLogger, mocks.GenericEndpoint)

		remote, ok := mode.(*Remote)
		require.True(t, ok)
		assert.IsType(t, &delegate.Delegate{}, remote.delegate)
	})
}

func TestNewLocal(t *testing.T) {
	t.Parallel()

	chain := mocks.BaselineChainer(t)

	l := NewLocal(chain)

	assert.Equal(t, chain, l.chain)
}

func TestNewRemote(t *testing.T) {
	t.Parallel()

	remote := mocks.BaselineDelegate(t)

	r := NewRemote(remote)

	assert.Equal(t, remote, r.delegate)
}
