package domain

import "errors"

// Domain errors.
var (
	ErrKeyNotFound        = errors.New("translation key not found")
	ErrNotALeaf           = errors.New("key path does not point to a leaf string")
	ErrMalformedDocument  = errors.New("malformed localization document")
	ErrDanglingReference  = errors.New("indirection reference does not resolve")
	ErrReferenceCycle     = errors.New("indirection reference cycle")
	ErrDuplicateKey       = errors.New("duplicate key in combined key space")
	ErrUnknownPlaceholder = errors.New("placeholder has no call-site contract")
)
