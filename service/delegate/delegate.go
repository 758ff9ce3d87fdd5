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

package delegate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/optakt/tangle-attach/models/failure"
	"github.com/optakt/tangle-attach/models/tangle"
)

// Error descriptions for common errors.
const (
	requestUnencodable = "could not encode request"
	requestInvalid     = "could not create request"
	requestFailed      = "could not send request"
	responseInvalid    = "could not decode response"
)

// Delegate forwards commands to a remote node over its HTTP API. Requests are
// sent once; there is no retry.
type Delegate struct {
	log      zerolog.Logger
	client   *http.Client
	endpoint string
}

// New creates a new remote delegate for the node at the given endpoint.
func New(log zerolog.Logger, endpoint string, options ...func(*Config)) *Delegate {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	d := Delegate{
		log:      log.With().Str("component", "remote_delegate").Str("endpoint", endpoint).Logger(),
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: endpoint,
	}

	return &d
}

// AttachToTangle asks the node to attach the transactions. The response is
// returned as the node sent it, including any error or exception it reports.
func (d *Delegate) AttachToTangle(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error) {

	req := tangle.AttachRequest{
		Command:            tangle.CommandAttachToTangle,
		TrunkTransaction:   trunk,
		BranchTransaction:  branch,
		MinWeightMagnitude: mwm,
		Trytes:             trytes,
	}

	var res tangle.AttachResponse
	err := d.send(ctx, req.Command, req, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// TransactionsToApprove asks the node for a trunk and a branch transaction to
// approve. The reference is omitted from the request when empty.
func (d *Delegate) TransactionsToApprove(ctx context.Context, depth int, reference tangle.Hash) (*tangle.TipsResponse, error) {

	req := tangle.TipsRequest{
		Command:   tangle.CommandGetTransactionsToApprove,
		Depth:     depth,
		Reference: reference,
	}

	var res tangle.TipsResponse
	err := d.send(ctx, req.Command, req, &res)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (d *Delegate) send(ctx context.Context, command string, request interface{}, response interface{}) error {

	fail := func(text string, err error, fields ...failure.FieldFunc) error {
		fields = append(fields, failure.WithErr(err))
		return failure.Remote{
			Description: failure.NewDescription(text, fields...),
			Endpoint:    d.endpoint,
			Command:     command,
		}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fail(requestUnencodable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return fail(requestInvalid, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tangle.APIVersionHeader, tangle.APIVersion)

	start := time.Now()
	res, err := d.client.Do(req)
	if err != nil {
		return fail(requestFailed, err)
	}
	defer res.Body.Close()

	// Nodes report request errors in the body, so it is decoded whatever the
	// status code is.
	err = json.NewDecoder(res.Body).Decode(response)
	if err != nil {
		return fail(responseInvalid, fmt.Errorf("could not decode body: %w", err), failure.WithStatus(res.StatusCode))
	}

	d.log.Debug().
		Str("command", command).
		Int("status", res.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("remote command completed")

	return nil
}
