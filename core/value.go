package core

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/pkg/errors"
)

// ErrInvalidType is returned for a type name outside string, int, float and
// bool.
var ErrInvalidType = errors.New("invalid value type. Supported types are: string, int, float, bool")

// ParseValue converts a command line value according to its declared type
// name. It returns the value and the value_type label stored with it, which
// is the wire tag the declared type maps to.
func ParseValue(raw, typ string) (record.Value, string, error) {
	switch typ {
	case TypeString:
		return record.String(raw), record.TagString.String(), nil
	case TypeInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "", errors.Wrapf(record.ErrValueTypeMismatch, "%q is not an int", raw)
		}
		return record.Int(i), record.TagInt.String(), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "", errors.Wrapf(record.ErrValueTypeMismatch, "%q is not a float", raw)
		}
		return record.Float(f), record.TagFloat.String(), nil
	case TypeBool:
		switch raw {
		case "true":
			return record.Bool(true), record.TagBool.String(), nil
		case "false":
			return record.Bool(false), record.TagBool.String(), nil
		default:
			return nil, "", errors.Wrapf(record.ErrValueTypeMismatch, "%q is not a bool", raw)
		}
	default:
		return nil, "", errors.Wrapf(ErrInvalidType, "%q", typ)
	}
}

// BatchItem is one add or modify entry of a Batch. With an empty Type the
// value is taken as is; otherwise it goes through ParseValue.
type BatchItem struct {
	Key   string
	Value any
	Type  string
}

func (it BatchItem) value() (record.Value, string, error) {
	if it.Type == "" {
		v, err := record.FromAny(it.Value)
		if err != nil {
			return nil, "", err
		}
		return v, v.Tag().String(), nil
	}

	return ParseValue(rawValue(it.Value), it.Type)
}

// rawValue renders a config value the way it would be typed on the command
// line. Floats never use exponent form.
func rawValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(v)
	}
}

// Batch groups edits applied together with a single save.
type Batch struct {
	Modify []BatchItem
	Add    []BatchItem
	Remove []string
}

func (b Batch) Empty() bool {
	return len(b.Modify) == 0 && len(b.Add) == 0 && len(b.Remove) == 0
}
