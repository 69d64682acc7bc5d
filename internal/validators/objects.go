package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/zotero-sync/models"
)

// Field names accepted by [ObjectValidator].
const (
	// FieldKey targets the object key.
	FieldKey = "key"
	// FieldVersion targets the version the write is based on.
	FieldVersion = "version"
	// FieldBody targets the JSON body.
	FieldBody = "body"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,32}$`)

func (v *ObjectValidator) validateWrite(_ context.Context, w models.ObjectWrite, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKey, FieldVersion, FieldBody}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldKey:
			err = validateKey(w.Key)
		case FieldVersion:
			if w.Version < -1 {
				err = fmt.Errorf("%w: %d", ErrInvalidVersion, w.Version)
			}
		case FieldBody:
			if !gjson.ValidBytes(w.Body) || !gjson.ParseBytes(w.Body).IsObject() {
				err = ErrInvalidBody
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return fmt.Errorf("object %q: %w", w.Key, err)
		}
	}
	return nil
}

func (v *ObjectValidator) validateBatch(ctx context.Context, writes []models.ObjectWrite, fields ...string) error {
	if err := v.checkSize(len(writes)); err != nil {
		return err
	}

	seen := make(map[string]bool, len(writes))
	for _, w := range writes {
		if err := v.validateWrite(ctx, w, fields...); err != nil {
			return err
		}
		if seen[w.Key] {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, w.Key)
		}
		seen[w.Key] = true
	}
	return nil
}

func (v *ObjectValidator) validateKeys(keys []string) error {
	if err := v.checkSize(len(keys)); err != nil {
		return err
	}
	for _, key := range keys {
		if err := validateKey(key); err != nil {
			return err
		}
	}
	return nil
}

func (v *ObjectValidator) checkSize(n int) error {
	switch {
	case n == 0:
		return ErrEmptyBatch
	case n > v.maxBatch:
		return fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, n, v.maxBatch)
	}
	return nil
}

func validateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
