package structured

import (
	"path/filepath"
	"strings"

	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/pkg/errors"
)

// Format selects the encoding of an export/import file.
type Format int

const (
	JSON Format = iota
	MsgPack

	DefaultFormat = JSON
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case MsgPack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to a Format. An empty name yields
// DefaultFormat.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON, nil
	case "msgpack", "mpk":
		return MsgPack, nil
	default:
		return 0, errors.Wrapf(record.ErrUnsupportedType, "structured format %q", name)
	}
}

// FormatFromPath picks a Format from the file extension: .msgpack and .mpk
// are MessagePack, everything else is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		return MsgPack
	default:
		return JSON
	}
}
