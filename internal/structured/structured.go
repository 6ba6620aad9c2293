// Package structured converts metadata records to and from the
// self-describing list of {key, value, value_type} objects used for export
// and import.
package structured

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Entry is the structured form of one record.
type Entry struct {
	Key       string `json:"key" msgpack:"key"`
	Value     any    `json:"value" msgpack:"value"`
	ValueType string `json:"value_type" msgpack:"value_type"`
}

// incoming mirrors Entry with pointers so missing fields can be told apart
// from zero values.
type incoming struct {
	Key       *string `json:"key" msgpack:"key"`
	Value     any     `json:"value" msgpack:"value"`
	ValueType *string `json:"value_type" msgpack:"value_type"`
}

func ToEntries(records []record.Record) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		var value any
		if rec.Value != nil {
			value = rec.Value.Interface()
		}
		entries = append(entries, Entry{Key: rec.Key, Value: value, ValueType: rec.ValueType})
	}
	return entries
}

// Marshal encodes records in the given format. JSON output is indented with
// two spaces.
func Marshal(records []record.Record, format Format) ([]byte, error) {
	entries := ToEntries(records)

	switch format {
	case JSON:
		return json.MarshalIndent(entries, "", "  ")
	case MsgPack:
		return msgpack.Marshal(entries)
	default:
		return nil, errors.Wrapf(record.ErrUnsupportedType, "structured format %v", format)
	}
}

// Unmarshal decodes records from data. Syntax errors and missing fields fail
// with ErrMalformedStructuredInput; array or object values fail with
// ErrUnsupportedType.
func Unmarshal(data []byte, format Format) ([]record.Record, error) {
	var in []incoming

	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&in); err != nil {
			return nil, errors.Wrap(record.ErrMalformedStructuredInput, err.Error())
		}
		if dec.More() {
			return nil, errors.Wrap(record.ErrMalformedStructuredInput, "trailing data after JSON list")
		}
	case MsgPack:
		if err := msgpack.Unmarshal(data, &in); err != nil {
			return nil, errors.Wrap(record.ErrMalformedStructuredInput, err.Error())
		}
	default:
		return nil, errors.Wrapf(record.ErrUnsupportedType, "structured format %v", format)
	}

	// A null document decodes without error but is not a record list.
	if in == nil {
		return nil, errors.Wrap(record.ErrMalformedStructuredInput, "expected a list of records, got null")
	}

	records := make([]record.Record, 0, len(in))
	for i, e := range in {
		if e.Key == nil {
			return nil, errors.Wrapf(record.ErrMalformedStructuredInput, "entry %d: missing key", i)
		}
		if e.ValueType == nil {
			return nil, errors.Wrapf(record.ErrMalformedStructuredInput, "entry %d (%q): missing value_type", i, *e.Key)
		}

		value, err := record.FromAny(e.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d (%q)", i, *e.Key)
		}

		records = append(records, record.Record{Key: *e.Key, Value: value, ValueType: *e.ValueType})
	}

	return records, nil
}

// WriteFile exports records to path, replacing any existing file.
func WriteFile(path string, records []record.Record, format Format) error {
	data, err := Marshal(records, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile imports records from path. A missing file fails with ErrNotFound.
func ReadFile(path string, format Format) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(record.ErrNotFound, "%s: %v", path, err)
	}
	return Unmarshal(data, format)
}
