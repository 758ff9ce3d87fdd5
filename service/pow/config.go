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

package pow

import (
	"runtime"
)

// MaxWorkers is the number of workers that can be given distinct nonce
// offsets.
const MaxWorkers = 243

// DefaultConfig is the default configuration for the proof of work searcher.
var DefaultConfig = Config{
	Workers: runtime.NumCPU(),
}

// Config contains the configuration parameters of the proof of work searcher.
type Config struct {
	Workers int
}

// WithWorkers sets the number of concurrent workers used to search for a
// nonce. It is capped at MaxWorkers.
func WithWorkers(workers int) func(*Config) {
	return func(cfg *Config) {
		cfg.Workers = workers
	}
}
