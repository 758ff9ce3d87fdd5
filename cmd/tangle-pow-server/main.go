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

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/tangle-attach/api/iri"
	"github.com/optakt/tangle-attach/service/attacher"
	"github.com/optakt/tangle-attach/service/chainer"
	"github.com/optakt/tangle-attach/service/delegate"
	"github.com/optakt/tangle-attach/service/metrics"
	"github.com/optakt/tangle-attach/service/pow"
	"github.com/optakt/tangle-attach/service/transaction"
	"github.com/optakt/tangle-attach/service/validator"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagAddress string
		flagLevel   string
		flagMetrics string
		flagMaxMWM  uint64
		flagNode    string
		flagWorkers int
	)

	pflag.StringVarP(&flagAddress, "address", "a", ":14265", "address to serve the node API on")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "p", "", "address to serve Prometheus metrics on (disabled if empty)")
	pflag.Uint64Var(&flagMaxMWM, "mwm-max", validator.DefaultConfig.MaxWeight, "maximum accepted minimum weight magnitude")
	pflag.StringVarP(&flagNode, "node", "n", "", "node API endpoint to forward tip selection to (disabled if empty)")
	pflag.IntVarP(&flagWorkers, "workers", "w", pow.DefaultConfig.Workers, "number of proof of work goroutines")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	// Attachment pipeline initialization. Both the proof of work search and
	// the complete attachment are instrumented.
	codec := transaction.NewCodec()
	search := metrics.NewSearcher(pow.New(log, pow.WithWorkers(flagWorkers)), prometheus.DefaultRegisterer)
	chain := chainer.New(log, codec, search)
	attach := metrics.NewAttacher(attacher.NewLocal(chain), prometheus.DefaultRegisterer)
	validate := validator.New(validator.WithMaxWeight(flagMaxMWM))

	// Tip selection is only served when there is a node to forward it to.
	var tips iri.Tipper
	if flagNode != "" {
		tips = delegate.New(log, flagNode)
	}
	ctrl := iri.NewController(log, validate, attach, tips)

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.Use(middleware.Recover())
	server.POST("/", ctrl.Command)

	var mserver *metrics.Server
	if flagMetrics != "" {
		mserver = metrics.NewServer(log, flagMetrics, prometheus.DefaultGatherer)
	}

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Str("address", flagAddress).Msg("Tangle PoW Server starting")
		err := server.Start(flagAddress)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Tangle PoW Server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Tangle PoW Server stopped")
	}()
	if mserver != nil {
		go func() {
			err := mserver.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}

	select {
	case <-sig:
		log.Info().Msg("Tangle PoW Server stopping")
	case <-done:
		log.Info().Msg("Tangle PoW Server done")
	case <-failed:
		log.Warn().Msg("Tangle PoW Server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down Tangle PoW Server")
		return failure
	}
	if mserver != nil {
		err = mserver.Stop(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
			return failure
		}
	}

	return success
}
