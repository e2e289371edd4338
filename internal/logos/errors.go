package logos

import "errors"

var (
	ErrNotFound          = errors.New("logo set not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrVariantOutOfRange = errors.New("variant index out of range")
)
