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

package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/tangle-attach/models/tangle"
)

// Mode represents something that can attach bundles to the tangle.
type Mode interface {
	Attach(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error)
}

// Attacher wraps an attacher and records the bundles and transactions that go
// through it.
type Attacher struct {
	attach       Mode
	bundles      *prometheus.CounterVec
	transactions prometheus.Counter
	duration     prometheus.Histogram
}

// NewAttacher creates an attacher that registers its metrics with the given
// registerer.
func NewAttacher(attach Mode, reg prometheus.Registerer) *Attacher {
	factory := promauto.With(reg)

	bundleOpts := prometheus.CounterOpts{
		Name:      "attached_bundles_total",
		Namespace: namespaceTangle,
		Help:      "number of bundle attachments",
	}
	bundles := factory.NewCounterVec(bundleOpts, []string{labelResult})

	transactionOpts := prometheus.CounterOpts{
		Name:      "attached_transactions_total",
		Namespace: namespaceTangle,
		Help:      "number of attached transactions",
	}
	transactions := factory.NewCounter(transactionOpts)

	durationOpts := prometheus.HistogramOpts{
		Name:      "attach_duration_seconds",
		Namespace: namespaceTangle,
		Help:      "duration of successful bundle attachments",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
	}
	duration := factory.NewHistogram(durationOpts)

	a := Attacher{
		attach:       attach,
		bundles:      bundles,
		transactions: transactions,
		duration:     duration,
	}

	return &a
}

func (a *Attacher) Attach(ctx context.Context, trunk tangle.Hash, branch tangle.Hash, mwm uint64, trytes []tangle.Trytes) (*tangle.AttachResponse, error) {
	start := time.Now()
	res, err := a.attach.Attach(ctx, trunk, branch, mwm, trytes)
	if err != nil {
		a.bundles.WithLabelValues(resultFailure).Inc()
		return nil, err
	}
	a.duration.Observe(time.Since(start).Seconds())
	a.bundles.WithLabelValues(resultSuccess).Inc()
	a.transactions.Add(float64(len(res.Trytes)))
	return res, nil
}
