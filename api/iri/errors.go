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

// Error messages returned to clients.
const (
	bodyInvalid        = "could not parse request body"
	versionInvalid     = "invalid API version"
	commandUnsupported = "command is not supported"
	serverBusy         = "request canceled while waiting for proof of work"
)

// ErrorResponse is the body of responses for requests that are rejected
// before reaching a command.
type ErrorResponse struct {
	Duration int64  `json:"duration"`
	Error    string `json:"error"`
}
