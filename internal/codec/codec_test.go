package codec

import (
	"bytes"
	"encoding/binary"
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

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := sampleRecords()

	encoded, err := EncodeToBytes(records)
	require.NoError(t, err)

	f, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, records, f.Records)
	require.Equal(t, uint64(len(records)), f.Header.MetadataCount)

	again, err := EncodeToBytes(f.Records)
	require.NoError(t, err)
	require.Equal(t, encoded, again)
}

func TestEncodeEmptyRecordSet(t *testing.T) {
	encoded, err := EncodeToBytes(nil)
	require.NoError(t, err)
	require.Len(t, encoded, HeaderSizeBytes)

	f, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Empty(t, f.Records)
}

func TestEncodedHeaderLayout(t *testing.T) {
	encoded, err := EncodeToBytes(sampleRecords()[:2])
	require.NoError(t, err)

	require.Equal(t, []byte("GGUF"), encoded[0:4])
	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(encoded[4:8]))
	require.Equal(t, uint64(0), binary.LittleEndian.Uint64(encoded[8:16]))
	require.Equal(t, uint64(2), binary.LittleEndian.Uint64(encoded[16:24]))
}

func TestVersionAndTensorCountAreNormalized(t *testing.T) {
	buf := &bytes.Buffer{}
	h := Header{Magic: Magic, Version: 3, TensorCount: 7, MetadataCount: 1}
	require.NoError(t, EncodeHeader(buf, &h))
	rec := record.New("general.architecture", record.String("llama"))
	require.NoError(t, record.EncodeRecord(buf, &rec))

	f, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, uint32(3), f.Header.Version)
	require.Equal(t, uint64(7), f.Header.TensorCount)
	require.Len(t, f.Records, 1)

	encoded, err := EncodeToBytes(f.Records)
	require.NoError(t, err)

	again, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, Version, again.Header.Version)
	require.Equal(t, uint64(0), again.Header.TensorCount)
	require.Equal(t, f.Records, again.Records)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("This is not a GGUF file")))
	require.ErrorIs(t, err, record.ErrInvalidFormat)
}

func TestDecodeTruncatedFile(t *testing.T) {
	encoded, err := EncodeToBytes(sampleRecords())
	require.NoError(t, err)

	for i := 0; i < len(encoded); i++ {
		_, err := Decode(bytes.NewReader(encoded[:i]))
		require.ErrorIs(t, err, record.ErrTruncatedInput, "prefix length %d", i)
	}
}

func TestDecodeCountLargerThanRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	h := Header{Magic: Magic, Version: 1, MetadataCount: 1 << 62}
	require.NoError(t, EncodeHeader(buf, &h))

	_, err := Decode(bytes.NewReader(buf.Bytes()))
	require.ErrorIs(t, err, record.ErrTruncatedInput)
}

func TestDecodeKeepsDuplicateKeys(t *testing.T) {
	records := []record.Record{
		record.New("dup", record.Int(1)),
		record.New("other", record.Int(2)),
		record.New("dup", record.Int(3)),
	}

	encoded, err := EncodeToBytes(records)
	require.NoError(t, err)

	f, err := Decode(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Equal(t, records, f.Records)
}
