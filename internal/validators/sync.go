// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/go-study-sync/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldID targets the operation identifier.
	FieldID = "id"

	// FieldEntity targets the entity kind, which must be one of models.Entities.
	FieldEntity = "entity"

	// FieldEntityID targets the identifier of the affected record.
	FieldEntityID = "entity_id"

	// FieldCategory checks that the category is the one derived from the entity.
	FieldCategory = "category"

	// FieldType targets the UPSERT/DELETE operation type.
	FieldType = "type"

	// FieldPayload checks the payload against the operation type: UPSERT
	// requires a JSON object whose id equals the entity id, DELETE requires
	// no payload.
	FieldPayload = "payload"

	// FieldCreatedAt targets the enqueue timestamp.
	FieldCreatedAt = "created_at"

	// FieldDeviceID targets the originating device identifier of a request.
	FieldDeviceID = "device_id"

	// FieldOperations validates every operation of a request.
	FieldOperations = "operations"

	// FieldCategories validates the requested category set.
	FieldCategories = "categories"
)

// SyncValidator implements the Validator interface for the sync models:
// PendingOperationDraft, PendingOperation, SyncRequest and SyncOptions.
//
// It supports both value and pointer forms of every model and allows
// optional field-level scoping via variadic field name arguments.
type SyncValidator struct{}

// NewSyncValidator constructs a new SyncValidator and returns it as the
// Validator interface.
func NewSyncValidator() Validator {
	return &SyncValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PendingOperationDraft:
		return v.validateDraft(ctx, value, fields...)
	case *models.PendingOperationDraft:
		return v.validateDraft(ctx, *value, fields...)

	case models.PendingOperation:
		return v.validateOperation(ctx, value, fields...)
	case *models.PendingOperation:
		return v.validateOperation(ctx, *value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	case models.SyncOptions:
		return v.validateSyncOptions(ctx, value, fields...)
	case *models.SyncOptions:
		return v.validateSyncOptions(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDraft validates what a caller hands to the queue.
//
// Default validated fields: Entity, EntityID, Type, Payload.
func (v *SyncValidator) validateDraft(_ context.Context, draft models.PendingOperationDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntity, FieldEntityID, FieldType, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldEntity:
			if !draft.Entity.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownEntity, draft.Entity)
			}
		case FieldEntityID:
			if draft.EntityID == "" {
				return ErrInvalidEntityID
			}
		case FieldType:
			if !draft.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidType, draft.Type)
			}
		case FieldPayload:
			if err := validatePayload(draft.Type, draft.EntityID, draft.Payload); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateOperation validates a fully derived queue entry.
//
// Default validated fields: ID, Entity, EntityID, Category, Type, Payload,
// CreatedAt.
func (v *SyncValidator) validateOperation(_ context.Context, op models.PendingOperation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldEntity, FieldEntityID, FieldCategory, FieldType, FieldPayload, FieldCreatedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if op.ID == "" {
				return ErrInvalidOperationID
			}
		case FieldEntity:
			if !op.Entity.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownEntity, op.Entity)
			}
		case FieldEntityID:
			if op.EntityID == "" {
				return ErrInvalidEntityID
			}
		case FieldCategory:
			if want, ok := models.CategoryFor(op.Entity); !ok || want != op.Category {
				return fmt.Errorf("%w: %s is %q, got %q", ErrCategoryMismatch, op.Entity, want, op.Category)
			}
		case FieldType:
			if !op.Type.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidType, op.Type)
			}
		case FieldPayload:
			if err := validatePayload(op.Type, op.EntityID, op.Payload); err != nil {
				return err
			}
		case FieldCreatedAt:
			if op.CreatedAt.IsZero() {
				return ErrInvalidCreatedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSyncRequest validates a reconciliation request.
//
// Default validated fields: DeviceID, Operations, Categories.
//
// Returns a wrapped error indicating the index of the first invalid
// operation.
func (v *SyncValidator) validateSyncRequest(ctx context.Context, req models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDeviceID, FieldOperations, FieldCategories}
	}

	for _, f := range fields {
		switch f {
		case FieldDeviceID:
			if req.DeviceID == "" {
				return ErrInvalidDeviceID
			}
		case FieldOperations:
			for i, op := range req.Operations {
				if err := v.validateOperation(ctx, op); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		case FieldCategories:
			if req.Options == nil {
				continue
			}
			if err := v.validateSyncOptions(ctx, *req.Options, FieldCategories); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSyncOptions validates the options of one pass.
//
// Default validated fields: Categories.
func (v *SyncValidator) validateSyncOptions(_ context.Context, opts models.SyncOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategories}
	}

	for _, f := range fields {
		switch f {
		case FieldCategories:
			for _, c := range opts.Categories {
				if !c.Valid() {
					return fmt.Errorf("%w: %q", ErrInvalidCategory, c)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePayload(opType models.OperationType, entityID string, payload []byte) error {
	switch opType {
	case models.OperationUpsert:
		if len(payload) == 0 {
			return ErrMissingPayload
		}
		if !gjson.ValidBytes(payload) {
			return ErrInvalidPayload
		}
		parsed := gjson.ParseBytes(payload)
		if !parsed.IsObject() {
			return ErrInvalidPayload
		}
		if id := parsed.Get("id"); id.Exists() && id.String() != entityID {
			return fmt.Errorf("%w: %q != %q", ErrPayloadIDMismatch, id.String(), entityID)
		}
	case models.OperationDelete:
		if len(payload) > 0 && string(payload) != "null" {
			return ErrUnexpectedPayload
		}
	}
	return nil
}
