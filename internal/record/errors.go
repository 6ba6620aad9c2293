package record

import "github.com/pkg/errors"

// Error kinds surfaced by the codec, the store and the command layer.
// Callers match them with errors.Is; the returned errors carry extra context.
var (
	ErrNotFound                 = errors.New("file not found")
	ErrInvalidFormat            = errors.New("not a valid GGUF file")
	ErrTruncatedInput           = errors.New("truncated input")
	ErrUnsupportedType          = errors.New("unsupported value type")
	ErrMalformedStructuredInput = errors.New("malformed structured input")
	ErrValueTypeMismatch        = errors.New("value does not match declared type")
)
