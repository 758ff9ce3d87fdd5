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
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/optakt/tangle-attach/models/failure"
	"github.com/optakt/tangle-attach/models/tangle"
)

// Controller serves the node API commands that can be answered without a
// ledger. Attachment is limited to one bundle at a time, since each one
// already keeps every processor busy.
type Controller struct {
	log      zerolog.Logger
	validate Validator
	attach   Attacher
	tips     Tipper
	sema     chan struct{}
}

// NewController creates a new controller. The tipper is optional; without it,
// tip selection requests are rejected as unsupported.
func NewController(log zerolog.Logger, validate Validator, attach Attacher, tips Tipper) *Controller {

	c := Controller{
		log:      log.With().Str("component", "iri_controller").Logger(),
		validate: validate,
		attach:   attach,
		tips:     tips,
		sema:     make(chan struct{}, 1),
	}

	return &c
}

// Command dispatches a node API request to its command handler, based on the
// command field of its JSON body.
func (c *Controller) Command(ctx echo.Context) error {

	start := time.Now()

	if ctx.Request().Header.Get(tangle.APIVersionHeader) == "" {
		return reject(ctx, start, http.StatusBadRequest, versionInvalid)
	}

	var req commandRequest
	err := ctx.Bind(&req)
	if err != nil {
		return reject(ctx, start, http.StatusBadRequest, bodyInvalid)
	}

	switch {
	case req.Command == tangle.CommandAttachToTangle:
		return c.attachToTangle(ctx, start, req.attach())
	case req.Command == tangle.CommandGetTransactionsToApprove && c.tips != nil:
		return c.transactionsToApprove(ctx, start, req.tips())
	default:
		return reject(ctx, start, http.StatusBadRequest, fmt.Sprintf("%s: %q", commandUnsupported, req.Command))
	}
}

func (c *Controller) attachToTangle(ctx echo.Context, start time.Time, req tangle.AttachRequest) error {

	err := c.validate.Request(req)
	if err != nil {
		return reject(ctx, start, http.StatusBadRequest, err.Error())
	}

	rctx := ctx.Request().Context()
	select {
	case c.sema <- struct{}{}:
	case <-rctx.Done():
		return reject(ctx, start, http.StatusServiceUnavailable, serverBusy)
	}
	defer func() { <-c.sema }()

	res, err := c.attach.Attach(rctx, req.TrunkTransaction, req.BranchTransaction, req.MinWeightMagnitude, req.Trytes)
	if err != nil {
		status, res := failed(start, err)
		c.log.Warn().Err(err).Int("status", status).Msg("could not attach bundle")
		return ctx.JSON(status, res)
	}

	res.Duration = time.Since(start).Milliseconds()

	c.log.Info().
		Int("transactions", len(res.Trytes)).
		Uint64("mwm", req.MinWeightMagnitude).
		Int64("duration", res.Duration).
		Msg("bundle attached")

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) transactionsToApprove(ctx echo.Context, start time.Time, req tangle.TipsRequest) error {

	err := c.validate.Request(req)
	if err != nil {
		return reject(ctx, start, http.StatusBadRequest, err.Error())
	}

	res, err := c.tips.TransactionsToApprove(ctx.Request().Context(), req.Depth, req.Reference)
	if err != nil {
		c.log.Warn().Err(err).Msg("could not get transactions to approve")
		msg := err.Error()
		out := tangle.TipsResponse{
			Duration: time.Since(start).Milliseconds(),
			Error:    &msg,
		}
		return ctx.JSON(http.StatusInternalServerError, out)
	}

	return ctx.JSON(http.StatusOK, res)
}

// failed maps an attachment error to a status code and a node API response.
// Invalid input is reported as an error, anything else as an exception.
func failed(start time.Time, err error) (int, tangle.AttachResponse) {

	msg := err.Error()
	res := tangle.AttachResponse{
		Duration: time.Since(start).Milliseconds(),
	}

	var invalid failure.InvalidArgument
	var encoding failure.Encoding
	switch {
	case errors.As(err, &invalid), errors.As(err, &encoding):
		res.Error = &msg
		return http.StatusBadRequest, res
	default:
		res.Exception = &msg
		return http.StatusInternalServerError, res
	}
}

func reject(ctx echo.Context, start time.Time, status int, msg string) error {
	res := ErrorResponse{
		Duration: time.Since(start).Milliseconds(),
		Error:    msg,
	}
	return ctx.JSON(status, res)
}
