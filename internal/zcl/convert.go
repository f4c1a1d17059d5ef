package zcl

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Values handed to the encoder come either from Go callers (typed integers)
// or from JSON, YAML and Lua (float64, []any, map[string]any). The helpers
// below accept both.

func toBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case float64:
		return val != 0, true
	case int:
		return val != 0, true
	}
	if u, ok := toUint64(v); ok {
		return u != 0, true
	}
	return false, false
}

func toUint64(v any) (uint64, bool) {
	switch val := v.(type) {
	case uint8:
		return uint64(val), true
	case uint16:
		return uint64(val), true
	case uint32:
		return uint64(val), true
	case uint64:
		return val, true
	case uint:
		return uint64(val), true
	case int8, int16, int32, int64, int:
		i, _ := toInt64(val)
		if i < 0 {
			return 0, false
		}
		return uint64(i), true
	case float32:
		return toUint64(float64(val))
	case float64:
		if val < 0 || val != math.Trunc(val) || val >= maxUint64Float {
			return 0, false
		}
		return uint64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case json.Number:
		return toUint64(string(val))
	case string:
		u, err := strconv.ParseUint(val, 0, 64)
		return u, err == nil
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float32:
		return float64(val), true
	case float64:
		return val, true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	if u, ok := toUint64(v); ok {
		return float64(u), true
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	switch val := v.(type) {
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case int:
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case uint64:
		if val > math.MaxInt64 {
			return 0, false
		}
		return int64(val), true
	case float64:
		if val >= maxInt64Float || val < math.MinInt64 || val != math.Trunc(val) {
			return 0, false
		}
		return int64(val), true
	case json.Number:
		i, err := val.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(val, 0, 64)
		return i, err == nil
	}
	return 0, false
}

// maxUint64Float is 2^64. float64(math.MaxUint64) rounds up to this value,
// so a range check against math.MaxUint64 would let it through.
const maxUint64Float = 1 << 64

// maxInt64Float is 2^63, for the same reason.
const maxInt64Float = 1 << 63

// toSlice flattens any slice or array into []any.
func toSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func toBytes(v any) ([]byte, bool) {
	switch val := v.(type) {
	case []byte:
		return val, true
	case nil:
		return nil, true
	}
	items, ok := toSlice(v)
	if !ok {
		return nil, false
	}
	out := make([]byte, len(items))
	for i, item := range items {
		u, ok := toUint64(item)
		if !ok || u > math.MaxUint8 {
			return nil, false
		}
		out[i] = byte(u)
	}
	return out, true
}

// convertInto stores v in *dst. When v already has dst's type it is assigned
// directly, otherwise it is converted through its JSON form.
func convertInto[T any](v any, dst *T) error {
	if typed, ok := v.(T); ok {
		*dst = typed
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
