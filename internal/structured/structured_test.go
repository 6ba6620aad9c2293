package structured

import (
	"path/filepath"
	"testing"

	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []record.Record {
	return []record.Record{
		record.New("test_string", record.String("test_value")),
		record.New("test_int", record.Int(42)),
		record.New("test_float", record.Float(3.14)),
		record.New("test_bool", record.Bool(true)),
		record.New("test_null", record.Null{}),
	}
}

func TestMarshalJSONShape(t *testing.T) {
	data, err := Marshal(sampleRecords()[:2], JSON)
	require.NoError(t, err)

	want := `[
  {
    "key": "test_string",
    "value": "test_value",
    "value_type": "4"
  },
  {
    "key": "test_int",
    "value": 42,
    "value_type": "2"
  }
]`
	require.Equal(t, want, string(data))
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{JSON, MsgPack} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := Marshal(sampleRecords(), format)
			require.NoError(t, err)

			records, err := Unmarshal(data, format)
			require.NoError(t, err)
			require.Equal(t, sampleRecords(), records)
		})
	}
}

func TestValueTypeIsKeptVerbatim(t *testing.T) {
	data := []byte(`[{"key": "a", "value": "x", "value_type": "string"}]`)

	records, err := Unmarshal(data, JSON)
	require.NoError(t, err)
	require.Equal(t, []record.Record{{Key: "a", Value: record.String("x"), ValueType: "string"}}, records)
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", `this is not json`, record.ErrMalformedStructuredInput},
		{"object instead of list", `{"key": "a"}`, record.ErrMalformedStructuredInput},
		{"missing key", `[{"value": 1, "value_type": "2"}]`, record.ErrMalformedStructuredInput},
		{"missing value_type", `[{"key": "a", "value": 1}]`, record.ErrMalformedStructuredInput},
		{"trailing data", `[] []`, record.ErrMalformedStructuredInput},
		{"null document", `null`, record.ErrMalformedStructuredInput},
		{"array value", `[{"key": "a", "value": [1, 2], "value_type": "2"}]`, record.ErrUnsupportedType},
		{"object value", `[{"key": "a", "value": {"b": 1}, "value_type": "2"}]`, record.ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data), JSON)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Unmarshal([]byte{0xc1}, MsgPack)
	require.ErrorIs(t, err, record.ErrMalformedStructuredInput)

	// msgpack nil
	_, err = Unmarshal([]byte{0xc0}, MsgPack)
	require.ErrorIs(t, err, record.ErrMalformedStructuredInput)

	records, err := Unmarshal([]byte(`[]`), JSON)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestNumbersDecodeByShape(t *testing.T) {
	data := []byte(`[
		{"key": "i", "value": 7, "value_type": "2"},
		{"key": "f", "value": 7.5, "value_type": "3"},
		{"key": "big", "value": 1e300, "value_type": "3"}
	]`)

	records, err := Unmarshal(data, JSON)
	require.NoError(t, err)
	require.Equal(t, record.Int(7), records[0].Value)
	require.Equal(t, record.Float(7.5), records[1].Value)
	require.Equal(t, record.Float(1e300), records[2].Value)
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"export.json", "export.msgpack"} {
		path := filepath.Join(dir, name)
		format := FormatFromPath(path)

		require.NoError(t, WriteFile(path, sampleRecords(), format))

		records, err := ReadFile(path, format)
		require.NoError(t, err)
		require.Equal(t, sampleRecords(), records)
	}

	_, err := ReadFile(filepath.Join(dir, "missing.json"), JSON)
	require.ErrorIs(t, err, record.ErrNotFound)
}

func TestFormats(t *testing.T) {
	require.Equal(t, MsgPack, FormatFromPath("a/b.MSGPACK"))
	require.Equal(t, MsgPack, FormatFromPath("b.mpk"))
	require.Equal(t, JSON, FormatFromPath("b.json"))
	require.Equal(t, JSON, FormatFromPath("noext"))

	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, DefaultFormat, f)

	f, err = ParseFormat("MsgPack")
	require.NoError(t, err)
	require.Equal(t, MsgPack, f)

	_, err = ParseFormat("yaml")
	require.ErrorIs(t, err, record.ErrUnsupportedType)
}

func TestRender(t *testing.T) {
	out, err := Render(sampleRecords()[:2])
	require.NoError(t, err)
	require.Contains(t, string(out), "test_string")
	require.Contains(t, string(out), "test_value")
	require.Contains(t, string(out), "42")
	require.Contains(t, string(out), "---")

	out, err = Render(nil)
	require.NoError(t, err)
	require.Empty(t, out)
}
