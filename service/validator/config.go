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

package validator

import (
	"github.com/optakt/tangle-attach/crypto/curl"
)

// DefaultConfig is the default configuration of the request validator.
var DefaultConfig = Config{
	MaxWeight: curl.HashSize,
}

// Config contains the configuration parameters of the request validator.
type Config struct {
	MaxWeight uint64
}

// WithMaxWeight sets the highest minimum weight magnitude that requests may
// ask for.
func WithMaxWeight(weight uint64) func(*Config) {
	return func(cfg *Config) {
		cfg.MaxWeight = weight
	}
}
