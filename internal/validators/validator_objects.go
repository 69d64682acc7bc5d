package validators

import (
	"context"

	"github.com/MKhiriev/zotero-sync/models"
)

// ObjectValidator checks object writes and deletion key lists. Batches hold
// between one and maxBatch entries.
type ObjectValidator struct {
	maxBatch int
}

func NewObjectValidator(maxBatch int) Validator {
	return &ObjectValidator{maxBatch: maxBatch}
}

// Validate accepts a models.ObjectWrite, a []models.ObjectWrite batch or a
// []string of keys to delete.
func (v *ObjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ObjectWrite:
		return v.validateWrite(ctx, value, fields...)
	case *models.ObjectWrite:
		return v.validateWrite(ctx, *value, fields...)

	case []models.ObjectWrite:
		return v.validateBatch(ctx, value, fields...)

	case []string:
		return v.validateKeys(value)

	default:
		return ErrUnsupportedType
	}
}
