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
	"testing"

	"github.com/optakt/tangle-attach/models/tangle"
)

type Codec struct {
	ParseFunc     func(trytes tangle.Trytes) (*tangle.Transaction, error)
	SerializeFunc func(tx *tangle.Transaction) (tangle.Trytes, error)
}

func BaselineCodec(t *testing.T) *Codec {
	t.Helper()

	c := Codec{
		ParseFunc: func(trytes tangle.Trytes) (*tangle.Transaction, error) {
			tx := GenericTransaction(0)
			tx.Hash = GenericHash(0)
			return tx, nil
		},
		SerializeFunc: func(tx *tangle.Transaction) (tangle.Trytes, error) {
			return GenericBundle(1)[0], nil
		},
	}

	return &c
}

func (c *Codec) Parse(trytes tangle.Trytes) (*tangle.Transaction, error) {
	return c.ParseFunc(trytes)
}

func (c *Codec) Serialize(tx *tangle.Transaction) (tangle.Trytes, error) {
	return c.SerializeFunc(tx)
}
