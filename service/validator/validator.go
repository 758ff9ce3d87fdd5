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
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/tangle-attach/models/failure"
	"github.com/optakt/tangle-attach/models/tangle"
)

// Validator validates node API requests before they are served.
type Validator struct {
	validate *validator.Validate
}

// New creates a new request validator.
func New(options ...func(*Config)) *Validator {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	v := Validator{
		validate: newRequestValidator(cfg),
	}

	return &v
}

func newRequestValidator(cfg Config) *validator.Validate {

	v := validator.New()

	// We register a single type per validator, so we can safely perform type
	// assertion of the provided `validator.StructLevel` to the correct type.
	v.RegisterStructValidation(attachValidator(cfg.MaxWeight), tangle.AttachRequest{})
	v.RegisterStructValidation(tipsValidator, tangle.TipsRequest{})

	return v
}

// Request validates the request and returns an invalid argument failure for
// the first invalid field it finds.
func (v *Validator) Request(request interface{}) error {

	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	// InvalidValidationError is returned by the validation library when it is
	// given something other than a struct.
	_, ok := err.(*validator.InvalidValidationError)
	if ok {
		return fmt.Errorf("could not validate request: %w", err)
	}

	errs := err.(validator.ValidationErrors)
	fe := errs[0]

	var fields []failure.FieldFunc
	var value string
	switch val := fe.Value().(type) {
	case tangle.Hash:
		value = string(val)
		fields = append(fields, failure.WithHash("value", val))
	case uint64:
		value = fmt.Sprint(val)
		fields = append(fields, failure.WithWeight(val))
	case string, int:
		value = fmt.Sprint(val)
		fields = append(fields, failure.WithValue("value", val))
	case []tangle.Trytes:
		fields = append(fields, failure.WithEntries(len(val)))
		err := CheckArrayOfTrytes(val)
		if err != nil {
			fields = append(fields, failure.WithErr(err))
		}
	}

	return failure.InvalidArgument{
		Description: failure.NewDescription(fe.Tag(), fields...),
		Field:       fe.Field(),
		Value:       value,
	}
}

func attachValidator(maxWeight uint64) func(validator.StructLevel) {
	return func(sl validator.StructLevel) {
		req := sl.Current().Interface().(tangle.AttachRequest)
		if req.Command != tangle.CommandAttachToTangle {
			sl.ReportError(req.Command, CommandField, CommandField, commandUnknown, "")
		}
		if !IsHash(string(req.TrunkTransaction)) {
			sl.ReportError(req.TrunkTransaction, TrunkField, TrunkField, trunkInvalid, "")
		}
		if !IsHash(string(req.BranchTransaction)) {
			sl.ReportError(req.BranchTransaction, BranchField, BranchField, branchInvalid, "")
		}
		if req.MinWeightMagnitude > maxWeight {
			sl.ReportError(req.MinWeightMagnitude, WeightField, WeightField, weightInvalid, "")
		}
		if !IsArrayOfTrytes(req.Trytes) {
			sl.ReportError(req.Trytes, TrytesField, TrytesField, trytesInvalid, "")
		}
	}
}

func tipsValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(tangle.TipsRequest)
	if req.Command != tangle.CommandGetTransactionsToApprove {
		sl.ReportError(req.Command, CommandField, CommandField, commandUnknown, "")
	}
	if req.Depth <= 0 {
		sl.ReportError(req.Depth, DepthField, DepthField, depthInvalid, "")
	}
	if req.Reference != "" && !IsHash(string(req.Reference)) {
		sl.ReportError(req.Reference, ReferenceField, ReferenceField, referenceInvalid, "")
	}
}
