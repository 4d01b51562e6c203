package document

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// FromAny converts the generic form produced by a JSON decoder
// (map[string]any, []any, string, json.Number, float64, int64, bool, nil)
// into a Value. Non-finite floats have no JSON form and are rejected.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case map[string]any:
		obj := make(Object, len(t))
		for k, child := range t {
			cv, err := FromAny(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			obj[k] = cv
		}
		return obj, nil
	case []any:
		arr := make(Array, len(t))
		for i, child := range t {
			cv, err := FromAny(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = cv
		}
		return arr, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	case int64:
		return Number(strconv.FormatInt(t, 10)), nil
	case int:
		return Number(strconv.Itoa(t)), nil
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, fmt.Errorf("number %v has no JSON form", t)
		}
		return Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case json.Number:
		return Number(t.String()), nil
	default:
		return nil, fmt.Errorf("unsupported decoded type %T", v)
	}
}

// ToAny converts a Value into the generic form accepted by JSON encoders.
// Numbers become json.Number so their text is written back unchanged.
func ToAny(v Value) any {
	switch t := v.(type) {
	case Object:
		m := make(map[string]any, len(t))
		for k, child := range t {
			m[k] = ToAny(child)
		}
		return m
	case Array:
		s := make([]any, len(t))
		for i, child := range t {
			s[i] = ToAny(child)
		}
		return s
	case String:
		return string(t)
	case Number:
		return json.Number(t)
	case Bool:
		return bool(t)
	case Null:
		return nil
	default:
		return nil
	}
}
