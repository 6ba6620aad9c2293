package record

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueTag(t *testing.T) {
	require.Equal(t, TagNull, Null{}.Tag())
	require.Equal(t, TagBool, Bool(false).Tag())
	require.Equal(t, TagInt, Int(1).Tag())
	require.Equal(t, TagFloat, Float(0.5).Tag())
	require.Equal(t, TagInt, Float(5).Tag())
	require.Equal(t, TagFloat, Float(math.NaN()).Tag())
	require.Equal(t, TagFloat, Float(math.Inf(1)).Tag())
	require.Equal(t, TagFloat, Float(1e19).Tag())
	require.Equal(t, TagInt, Float(-9223372036854775808).Tag())
	require.Equal(t, TagString, String("s").Tag())
}

func TestTagNames(t *testing.T) {
	require.Equal(t, "4", TagString.String())
	require.Equal(t, "string", TagString.Name())
	require.Equal(t, "tag(9)", Tag(9).Name())
}

func TestFromAny(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		tests := []struct {
			in   any
			want Value
		}{
			{nil, Null{}},
			{true, Bool(true)},
			{"x", String("x")},
			{int8(-3), Int(-3)},
			{int32(7), Int(7)},
			{int64(9), Int(9)},
			{uint16(12), Int(12)},
			{uint64(math.MaxUint64), Float(float64(uint64(math.MaxUint64)))},
			{float32(0.5), Float(0.5)},
			{2.25, Float(2.25)},
			{json.Number("42"), Int(42)},
			{json.Number("3.14"), Float(3.14)},
			{json.Number("5.0"), Float(5)},
			{String("already"), String("already")},
		}

		for _, tt := range tests {
			got, err := FromAny(tt.in)
			require.NoError(t, err, "%#v", tt.in)
			require.Equal(t, tt.want, got, "%#v", tt.in)
		}
	})

	t.Run("structured values are rejected", func(t *testing.T) {
		_, err := FromAny([]any{1, 2})
		require.ErrorIs(t, err, ErrUnsupportedType)

		_, err = FromAny(map[string]any{"a": 1})
		require.ErrorIs(t, err, ErrUnsupportedType)
	})
}
