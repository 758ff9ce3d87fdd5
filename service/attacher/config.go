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
	"runtime"
	"time"
)

// DefaultConfig is the default configuration of an attacher.
var DefaultConfig = Config{
	Workers: runtime.NumCPU(),
	Timeout: 60 * time.Second,
	Clock:   time.Now,
}

// Config contains the configuration parameters of an attacher. Workers and
// Clock only apply to local attachment, Timeout only to remote attachment.
type Config struct {
	Workers int
	Timeout time.Duration
	Clock   func() time.Time
}

// WithWorkers sets the number of proof of work workers for local attachment.
func WithWorkers(workers int) func(*Config) {
	return func(cfg *Config) {
		cfg.Workers = workers
	}
}

// WithTimeout sets the request timeout for remote attachment.
func WithTimeout(timeout time.Duration) func(*Config) {
	return func(cfg *Config) {
		cfg.Timeout = timeout
	}
}

// WithClock sets the clock used to timestamp local attachments.
func WithClock(clock func() time.Time) func(*Config) {
	return func(cfg *Config) {
		cfg.Clock = clock
	}
}
