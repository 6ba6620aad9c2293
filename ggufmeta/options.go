package ggufmeta

import (
	"github.com/Noth1ngLol/Llol/core"
	"github.com/Noth1ngLol/Llol/internal/structured"
)

type Option = core.Option

// Format selects the encoding of export and import files.
type Format = structured.Format

const (
	JSON    = structured.JSON
	MsgPack = structured.MsgPack
)

// WithAtomicSave makes saves go through a temp file and a rename.
func WithAtomicSave() Option {
	return core.WithAtomicSave(true)
}

// WithFormat fixes the export/import format. Without it the file extension
// decides.
func WithFormat(format Format) Option {
	return core.WithStructuredFormat(format)
}
