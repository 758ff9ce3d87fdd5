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

const namespaceTangle = "tangle"

const (
	labelResult = "result"

	resultSuccess = "success"
	resultFailure = "failure"
)

// SearchEngine represents something that can seal serialized transactions with
// proof of work.
type SearchEngine interface {
	Search(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error)
}

// Searcher wraps a proof of work searcher and records how many searches it
// runs and how long they take.
type Searcher struct {
	search   SearchEngine
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	weight   prometheus.Gauge
}

// NewSearcher creates a searcher that registers its metrics with the given
// registerer.
func NewSearcher(search SearchEngine, reg prometheus.Registerer) *Searcher {
	factory := promauto.With(reg)

	searchOpts := prometheus.CounterOpts{
		Name:      "pow_searches_total",
		Namespace: namespaceTangle,
		Help:      "number of proof of work searches",
	}
	searches := factory.NewCounterVec(searchOpts, []string{labelResult})

	durationOpts := prometheus.HistogramOpts{
		Name:      "pow_search_duration_seconds",
		Namespace: namespaceTangle,
		Help:      "duration of successful proof of work searches",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
	}
	duration := factory.NewHistogram(durationOpts)

	weightOpts := prometheus.GaugeOpts{
		Name:      "pow_last_weight",
		Namespace: namespaceTangle,
		Help:      "minimum weight magnitude of the last search",
	}
	weight := factory.NewGauge(weightOpts)

	s := Searcher{
		search:   search,
		searches: searches,
		duration: duration,
		weight:   weight,
	}

	return &s
}

func (s *Searcher) Search(ctx context.Context, trits tangle.Trits, mwm uint64) (tangle.Trytes, error) {
	s.weight.Set(float64(mwm))
	start := time.Now()
	trytes, err := s.search.Search(ctx, trits, mwm)
	if err != nil {
		s.searches.WithLabelValues(resultFailure).Inc()
		return "", err
	}
	s.duration.Observe(time.Since(start).Seconds())
	s.searches.WithLabelValues(resultSuccess).Inc()
	return trytes, nil
}
