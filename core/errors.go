package core

import (
	"github.com/Noth1ngLol/Llol/internal/lock"
	"github.com/Noth1ngLol/Llol/internal/record"
)

// Error kinds, for use with errors.Is.
var (
	ErrNotFound                 = record.ErrNotFound
	ErrInvalidFormat            = record.ErrInvalidFormat
	ErrTruncatedInput           = record.ErrTruncatedInput
	ErrUnsupportedType          = record.ErrUnsupportedType
	ErrMalformedStructuredInput = record.ErrMalformedStructuredInput
	ErrValueTypeMismatch        = record.ErrValueTypeMismatch
	ErrLocked                   = lock.ErrLocked
)
