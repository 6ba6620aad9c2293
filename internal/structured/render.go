package structured

import (
	"bytes"

	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/toon-format/toon-go"
)

// Render formats records as toon blocks separated by "---" lines, for
// display rather than re-import.
func Render(records []record.Record) ([]byte, error) {
	buf := &bytes.Buffer{}

	for _, e := range ToEntries(records) {
		d, err := toon.Marshal(map[string]any{
			"key":        e.Key,
			"value":      e.Value,
			"value_type": e.ValueType,
		})
		if err != nil {
			return nil, err
		}
		buf.Write(bytes.TrimRight(d, "\n"))
		buf.WriteString("\n---\n")
	}

	return buf.Bytes(), nil
}
