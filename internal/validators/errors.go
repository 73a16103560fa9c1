// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOperationID = errors.New("invalid operation id")
	ErrUnknownEntity      = errors.New("unknown entity")
	ErrInvalidEntityID    = errors.New("invalid entity id")
	ErrInvalidType        = errors.New("invalid operation type")
	ErrCategoryMismatch   = errors.New("category does not match entity")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrMissingPayload     = errors.New("upsert requires a payload")
	ErrUnexpectedPayload  = errors.New("delete must not carry a payload")
	ErrInvalidPayload     = errors.New("payload must be a JSON object")
	ErrPayloadIDMismatch  = errors.New("payload id does not match entity id")
	ErrInvalidCreatedAt   = errors.New("invalid created at")
	ErrInvalidDeviceID    = errors.New("invalid device id")
)
