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

package failure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/optakt/tangle-attach/models/tangle"
)

// trytesPreview is the number of trytes of a long tryte string that are kept
// in a description.
const trytesPreview = 27

// Description explains a failure, with the attachment context it happened in
// as ordered key/value fields.
type Description struct {
	Text   string
	Fields Fields
}

// NewDescription creates a description with the given text and context.
func NewDescription(text string, fields ...FieldFunc) Description {
	d := Description{
		Text: text,
	}
	for _, field := range fields {
		field(&d.Fields)
	}
	return d
}

func (d Description) String() string {
	if len(d.Fields) == 0 {
		return d.Text
	}
	return fmt.Sprintf("%s (%s)", d.Text, d.Fields)
}

// Field is a rendered piece of failure context.
type Field struct {
	Key string
	Val string
}

// Fields is the context of a failure, in the order it was given.
type Fields []Field

// Get returns the value of the first field with the given key.
func (f Fields) Get(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Val, true
		}
	}
	return "", false
}

func (f Fields) String() string {
	parts := make([]string, 0, len(f))
	for _, field := range f {
		parts = append(parts, field.Key+": "+field.Val)
	}
	return strings.Join(parts, ", ")
}

// FieldFunc adds context to a description.
type FieldFunc func(*Fields)

func with(key string, val string) FieldFunc {
	return func(f *Fields) {
		*f = append(*f, Field{Key: key, Val: val})
	}
}

// WithErr adds the message of the underlying error.
func WithErr(err error) FieldFunc {
	return with("error", err.Error())
}

// WithHash adds a transaction hash or reference. A checksum, if present, is
// kept so that the value matches what the caller sent.
func WithHash(key string, hash tangle.Hash) FieldFunc {
	return with(key, hash.String())
}

// WithTrytes adds a tryte string. Transaction encodings are thousands of
// trytes long, so only their start and their length are kept.
func WithTrytes(key string, trytes tangle.Trytes) FieldFunc {
	if len(trytes) <= trytesPreview {
		return with(key, string(trytes))
	}
	return with(key, fmt.Sprintf("%s... (%d trytes)", trytes[:trytesPreview], len(trytes)))
}

// WithEntries adds the number of transactions in a bundle.
func WithEntries(entries int) FieldFunc {
	return with("entries", strconv.Itoa(entries))
}

// WithWeight adds a minimum weight magnitude.
func WithWeight(mwm uint64) FieldFunc {
	return with("weight", strconv.FormatUint(mwm, 10))
}

// WithStatus adds the HTTP status code returned by a node.
func WithStatus(status int) FieldFunc {
	return with("status", strconv.Itoa(status))
}

// WithValue adds a request value of any other type.
func WithValue(key string, val interface{}) FieldFunc {
	return with(key, fmt.Sprint(val))
}
