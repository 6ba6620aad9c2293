package ggufmeta

import (
	"github.com/Noth1ngLol/Llol/core"
	"github.com/Noth1ngLol/Llol/internal/record"
)

type Record = record.Record

// Error kinds, for use with errors.Is.
var (
	ErrNotFound                 = core.ErrNotFound
	ErrInvalidFormat            = core.ErrInvalidFormat
	ErrTruncatedInput           = core.ErrTruncatedInput
	ErrUnsupportedType          = core.ErrUnsupportedType
	ErrMalformedStructuredInput = core.ErrMalformedStructuredInput
	ErrValueTypeMismatch        = core.ErrValueTypeMismatch
	ErrInvalidType              = core.ErrInvalidType
	ErrLocked                   = core.ErrLocked
)

// Modify parses value according to typ (string, int, float or bool) and sets
// key to it, appending the key when it is new.
func Modify(path, key, value, typ string, opts ...Option) error {
	v, valueType, err := core.ParseValue(value, typ)
	if err != nil {
		return err
	}

	s, err := core.Open(path, opts...)
	if err != nil {
		return err
	}
	return s.Upsert(key, v, valueType)
}

// Remove deletes every record with exactly this key. Removing an absent key
// is not an error.
func Remove(path, key string, opts ...Option) error {
	s, err := core.Open(path, opts...)
	if err != nil {
		return err
	}
	return s.Remove(key)
}

// Export writes all records of the file at path to dest.
func Export(path, dest string, opts ...Option) error {
	s, err := core.Open(path, opts...)
	if err != nil {
		return err
	}
	return s.Export(dest)
}

// Import replaces all records of the file at path with those read from src.
func Import(path, src string, opts ...Option) error {
	s, err := core.Open(path, opts...)
	if err != nil {
		return err
	}
	return s.Import(src)
}

// Search returns the records whose key contains substr, in file order.
func Search(path, substr string) ([]Record, error) {
	s, err := core.Open(path)
	if err != nil {
		return nil, err
	}
	return s.Search(substr), nil
}

// List returns all records of the file at path.
func List(path string) ([]Record, error) {
	s, err := core.Open(path)
	if err != nil {
		return nil, err
	}
	return s.Records(), nil
}
