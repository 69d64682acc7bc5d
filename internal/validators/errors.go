package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidKey     = errors.New("invalid object key")
	ErrInvalidVersion = errors.New("invalid object version")
	ErrInvalidBody    = errors.New("object body must be a JSON object")
	ErrEmptyBatch     = errors.New("no objects provided")
	ErrBatchTooLarge  = errors.New("too many objects in one request")
	ErrDuplicateKey   = errors.New("object key repeated in one request")
)
