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

	"github.com/rs/zerolog"

	"github.com/optakt/tangle-attach/models/failure"
	"github.com/optakt/tangle-attach/models/tangle"
	"github.com/optakt/tangle-attach/service/chainer"
	"github.com/optakt/tangle-attach/service/delegate"
	"github.com/optakt/tangle-attach/service/pow"
	"github.com/optakt/tangle-attach/service/transaction"
	"github.com/optakt/tangle-attach/service/validator"
)

// Error descriptions for invalid arguments.
const (
	trunkInvalid  = "trunk transaction is not a valid hash"
	branchInvalid = "branch transaction is not a valid hash"
	trytesInvalid = "trytes are not a non-empty list of transaction encodings"
)

// Mode attaches bundles to the tangle, either locally or through a remote node.
type Mode interface {
	Attach(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error)
}

// New selects the attachment mode for the given endpoint. Without endpoint,
// bundles are attached locally; otherwise, attachment is delegated to the node
// at the endpoint.
func New(log zerolog.Logger, endpoint string, options ...func(*Config)) Mode {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	if endpoint == "" {
		codec := transaction.NewCodec()
		search := pow.New(log, pow.WithWorkers(cfg.Workers))
		chain := chainer.New(log, codec, search, chainer.WithClock(cfg.Clock))
		return NewLocal(chain)
	}

	remote := delegate.New(log, endpoint, delegate.WithTimeout(cfg.Timeout))
	return NewRemote(remote)
}

// Local attaches bundles on this machine.
type Local struct {
	chain Chainer
}

// NewLocal creates a local attacher on top of the given chainer.
func NewLocal(chain Chainer) *Local {
	l := Local{
		chain: chain,
	}
	return &l
}

// Attach validates the arguments and attaches the bundle locally. The
// response carries the sealed transactions in broadcast order.
func (l *Local) Attach(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error) {

	err := validate(trunk, branch, trytes)
	if err != nil {
		return nil, err
	}

	sealed, err := l.chain.Attach(ctx, trunk, branch, mwm, trytes)
	if err != nil {
		return nil, err
	}

	res := tangle.AttachResponse{
		Duration: 0,
		Trytes:   sealed,
	}

	return &res, nil
}

// Remote attaches bundles through a remote node.
type Remote struct {
	delegate Delegate
}

// NewRemote creates a remote attacher on top of the given delegate.
func NewRemote(delegate Delegate) *Remote {
	r := Remote{
		delegate: delegate,
	}
	return &r
}

// Attach validates the arguments and forwards the bundle to the node. The
// node's response is returned unmodified.
func (r *Remote) Attach(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error) {

	err := validate(trunk, branch, trytes)
	if err != nil {
		return nil, err
	}

	return r.delegate.AttachToTangle(ctx, trunk, branch, mwm, trytes)
}

func validate(trunk tangle.Hash, branch tangle.Hash, trytes []tangle.Trytes) error {

	if !validator.IsHash(string(trunk)) {
		return failure.InvalidArgument{
			Description: failure.NewDescription(trunkInvalid, failure.WithHash("value", trunk)),
			Field:       validator.TrunkField,
			Value:       string(trunk),
		}
	}

	if !validator.IsHash(string(branch)) {
		return failure.InvalidArgument{
			Description: failure.NewDescription(branchInvalid, failure.WithHash("value", branch)),
			Field:       validator.BranchField,
			Value:       string(branch),
		}
	}

	err := validator.CheckArrayOfTrytes(trytes)
	if err != nil {
		return failure.InvalidArgument{
			Description: failure.NewDescription(trytesInvalid, failure.WithEntries(len(trytes)), failure.WithErr(err)),
			Field:       validator.TrytesField,
		}
	}

	return nil
}
