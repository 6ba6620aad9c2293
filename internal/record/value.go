package record

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Tag is the wire-level discriminator written before every value payload.
type Tag uint32

const (
	TagNull Tag = iota
	TagBool
	TagInt
	TagFloat
	TagString
)

// String returns the decimal form of the tag, which is what gets stored in
// Record.ValueType.
func (t Tag) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// Name returns the human readable type name of the tag.
func (t Tag) Name() string {
	switch t {
	case TagNull:
		return "null"
	case TagBool:
		return "bool"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagString:
		return "string"
	default:
		return fmt.Sprintf("tag(%d)", uint32(t))
	}
}

// Value is a metadata value. The set of implementations is closed: Null,
// Bool, Int, Float and String, one per wire tag.
type Value interface {
	// Tag reports the wire tag the value is written with.
	Tag() Tag
	// Interface returns the value as a plain Go value (nil, bool, int64,
	// float64 or string).
	Interface() any
	isValue()
}

type Null struct{}

type Bool bool

type Int int64

type Float float64

type String string

func (Null) Tag() Tag   { return TagNull }
func (Bool) Tag() Tag   { return TagBool }
func (Int) Tag() Tag    { return TagInt }
func (String) Tag() Tag { return TagString }

// Tag of a Float is TagInt when the number is exactly representable as an
// int64, so an integral float such as 5.0 is written as an integer.
func (f Float) Tag() Tag {
	if _, ok := f.exactInt(); ok {
		return TagInt
	}
	return TagFloat
}

func (Null) Interface() any     { return nil }
func (b Bool) Interface() any   { return bool(b) }
func (i Int) Interface() any    { return int64(i) }
func (f Float) Interface() any  { return float64(f) }
func (s String) Interface() any { return string(s) }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}

func (Null) String() string     { return "null" }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }
func (i Int) String() string    { return strconv.FormatInt(int64(i), 10) }
func (f Float) String() string  { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (s String) String() string { return strconv.Quote(string(s)) }

// 2^63 is exactly representable as a float64; anything at or above it does
// not fit in an int64.
const twoTo63 = 9223372036854775808.0

func (f Float) exactInt() (int64, bool) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	if v < -twoTo63 || v >= twoTo63 {
		return 0, false
	}
	return int64(v), true
}

// FromAny converts a plain Go value into a Value. It accepts the shapes
// produced by encoding/json (with UseNumber) and msgpack decoding. Arrays,
// maps and anything else fail with ErrUnsupportedType.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, errors.Wrapf(ErrUnsupportedType, "number %q", x.String())
		}
		return Float(f), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%T", v)
	}
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}
