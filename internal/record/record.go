package record

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Record is one metadata entry.
//
// ValueType mirrors the wire tag as a decimal string ("0".."4") for records
// read from a file. It is advisory: encoding always follows the Value
// variant, so a caller supplied label may disagree with what gets written.
type Record struct {
	Key       string
	Value     Value
	ValueType string
}

// New creates a record whose ValueType is derived from the value.
func New(key string, value Value) Record {
	if value == nil {
		value = Null{}
	}
	return Record{Key: key, Value: value, ValueType: value.Tag().String()}
}

// KeyLength (8) + Tag (4)
const RecordHeaderSizeBytes = 12

// EncodeRecord writes a single record in its wire layout:
//
//	<key_len:uint64><key><tag:uint32><payload>
//
// All integers are little-endian.
func EncodeRecord(w io.Writer, rec *Record) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(rec.Key))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, rec.Key); err != nil {
		return err
	}

	value := rec.Value
	if value == nil {
		value = Null{}
	}

	switch v := value.(type) {
	case Null:
		return binary.Write(w, binary.LittleEndian, uint32(TagNull))
	case Bool:
		if err := binary.Write(w, binary.LittleEndian, uint32(TagBool)); err != nil {
			return err
		}
		var b uint8
		if v {
			b = 1
		}
		return binary.Write(w, binary.LittleEndian, b)
	case Int:
		return writeInt(w, int64(v))
	case Float:
		if i, ok := v.exactInt(); ok {
			return writeInt(w, i)
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(TagFloat)); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, math.Float64bits(float64(v)))
	case String:
		if err := binary.Write(w, binary.LittleEndian, uint32(TagString)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint64(len(v))); err != nil {
			return err
		}
		_, err := io.WriteString(w, string(v))
		return err
	default:
		return errors.Wrapf(ErrUnsupportedType, "key %q holds %T", rec.Key, value)
	}
}

func writeInt(w io.Writer, i int64) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(TagInt)); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, i)
}

// EncodeRecordToBytes is EncodeRecord into a fresh buffer.
func EncodeRecordToBytes(rec *Record) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := EncodeRecord(buf, rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeRecord reads one record from r. A stream that ends early yields
// ErrTruncatedInput, an unknown tag yields ErrUnsupportedType.
func DecodeRecord(r io.Reader) (*Record, error) {
	key, err := readText(r)
	if err != nil {
		return nil, errors.Wrap(err, "key")
	}

	var tag uint32
	if err := readLE(r, &tag); err != nil {
		return nil, errors.Wrapf(err, "type tag of %q", key)
	}

	var value Value
	switch Tag(tag) {
	case TagNull:
		value = Null{}
	case TagBool:
		var b uint8
		if err := readLE(r, &b); err != nil {
			return nil, errors.Wrapf(err, "value of %q", key)
		}
		value = Bool(b != 0)
	case TagInt:
		var i int64
		if err := readLE(r, &i); err != nil {
			return nil, errors.Wrapf(err, "value of %q", key)
		}
		value = Int(i)
	case TagFloat:
		var bits uint64
		if err := readLE(r, &bits); err != nil {
			return nil, errors.Wrapf(err, "value of %q", key)
		}
		value = Float(math.Float64frombits(bits))
	case TagString:
		s, err := readText(r)
		if err != nil {
			return nil, errors.Wrapf(err, "value of %q", key)
		}
		value = String(s)
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "tag %d for key %q", tag, key)
	}

	return &Record{
		Key:       key,
		Value:     value,
		ValueType: strconv.FormatUint(uint64(tag), 10),
	}, nil
}

// DecodeRecordFromBytes decodes a single record held in data.
func DecodeRecordFromBytes(data []byte) (*Record, error) {
	return DecodeRecord(bytes.NewReader(data))
}

// ReadUint32 and friends read little-endian integers, mapping short reads to
// ErrTruncatedInput. They are shared with the file header decoder.
func ReadUint32(r io.Reader) (uint32, error) {
	var v uint32
	err := readLE(r, &v)
	return v, err
}

func ReadUint64(r io.Reader) (uint64, error) {
	var v uint64
	err := readLE(r, &v)
	return v, err
}

// ReadFull fills buf, mapping short reads to ErrTruncatedInput.
func ReadFull(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return truncated(err)
	}
	return nil
}

func readLE(r io.Reader, v any) error {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return truncated(err)
	}
	return nil
}

// readText reads a uint64 length followed by that many bytes. The payload is
// pulled through a LimitReader so a bogus length fails as truncated input
// instead of allocating the declared size up front.
func readText(r io.Reader) (string, error) {
	n, err := ReadUint64(r)
	if err != nil {
		return "", err
	}
	if n > math.MaxInt64 {
		return "", errors.Wrapf(ErrTruncatedInput, "declared length %d", n)
	}

	buf := &bytes.Buffer{}
	read, err := io.Copy(buf, io.LimitReader(r, int64(n)))
	if err != nil {
		return "", truncated(err)
	}
	if uint64(read) != n {
		return "", errors.Wrapf(ErrTruncatedInput, "declared length %d, got %d bytes", n, read)
	}

	return strings.ToValidUTF8(buf.String(), "\uFFFD"), nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.Wrap(ErrTruncatedInput, err.Error())
	}
	return err
}
