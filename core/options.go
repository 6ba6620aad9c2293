package core

import "github.com/Noth1ngLol/Llol/internal/structured"

type options struct {
	atomicSave bool
	format     *structured.Format
}

type Option func(*options)

// WithAtomicSave makes every save go through a temp file and a rename
// instead of truncating the file in place.
func WithAtomicSave(atomic bool) Option {
	return func(o *options) {
		o.atomicSave = atomic
	}
}

// WithStructuredFormat fixes the export/import format. Without it the
// format follows the file extension.
func WithStructuredFormat(format structured.Format) Option {
	return func(o *options) {
		o.format = &format
	}
}
