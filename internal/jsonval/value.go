package jsonval

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Value is a sealed interface representing a JSON document.
// Only Null, Bool, Number, String, Array, and Object implement it.
type Value interface {
	jsonValue() // Sealed - only these types implement it
}

// Null represents the JSON null value.
// Using an explicit type keeps nil out of the sum: a Value is never nil.
type Null struct{}

func (Null) jsonValue() {}

// Bool represents a JSON boolean.
type Bool bool

func (Bool) jsonValue() {}

// String represents a JSON string.
type String string

func (String) jsonValue() {}

// Number represents a JSON number as its literal text.
// Keeping the literal avoids float64 precision loss for values > 2^53
// and preserves the integer/decimal distinction across a round trip.
type Number string

func (Number) jsonValue() {}

// Array represents an ordered sequence of Values.
type Array []Value

func (Array) jsonValue() {}

// Object represents a mapping of string keys to Values.
// Use SortedKeys for deterministic iteration.
type Object map[string]Value

func (Object) jsonValue() {}

// NewInt creates a Number from an int64.
func NewInt(n int64) Number {
	return Number(strconv.FormatInt(n, 10))
}

// NewFloat creates a Number from a float64.
// NaN and infinities have no JSON representation and are rejected.
func NewFloat(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("float %v has no JSON representation", f)
	}
	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("format float: %w", err)
	}
	return Number(data), nil
}

// NewNumber creates a Number from a json.Number, validating the literal.
func NewNumber(n json.Number) (Number, error) {
	if _, err := n.Int64(); err == nil {
		return Number(n), nil
	}
	if _, err := n.Float64(); err != nil {
		return "", fmt.Errorf("invalid number literal %q", string(n))
	}
	return Number(n), nil
}

// Int64 returns the number as an int64 if the literal is integral.
func (n Number) Int64() (int64, error) {
	return json.Number(n).Int64()
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return json.Number(n).Float64()
}

// FromAny converts a native Go value into a Value.
// Supported inputs: nil, bool, string, all integer and float widths,
// json.Number, []any, map[string]any, and anything already a Value
// (including Array and Object). Unsupported kinds (func, chan, complex,
// NaN, infinities) return an error; this is the serialization boundary
// for callers holding untyped data.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case int:
		return NewInt(int64(val)), nil
	case int8:
		return NewInt(int64(val)), nil
	case int16:
		return NewInt(int64(val)), nil
	case int32:
		return NewInt(int64(val)), nil
	case int64:
		return NewInt(val), nil
	case uint:
		return Number(strconv.FormatUint(uint64(val), 10)), nil
	case uint8:
		return NewInt(int64(val)), nil
	case uint16:
		return NewInt(int64(val)), nil
	case uint32:
		return NewInt(int64(val)), nil
	case uint64:
		return Number(strconv.FormatUint(val, 10)), nil
	case float32:
		return NewFloat(float64(val))
	case float64:
		return NewFloat(val)
	case json.Number:
		return NewNumber(val)
	case []any:
		arr := make(Array, len(val))
		for i, elem := range val {
			conv, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			arr[i] = conv
		}
		return arr, nil
	case map[string]any:
		obj := make(Object, len(val))
		for k, elem := range val {
			conv, err := FromAny(elem)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			obj[k] = conv
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// ToAny converts a Value back into native Go types: nil, bool, string,
// json.Number, []any, map[string]any. Inverse of FromAny up to numeric
// representation.
func ToAny(v Value) any {
	switch val := v.(type) {
	case Null:
		return nil
	case Bool:
		return bool(val)
	case String:
		return string(val)
	case Number:
		return json.Number(val)
	case Array:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ToAny(elem)
		}
		return out
	case Object:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = ToAny(elem)
		}
		return out
	default:
		return nil
	}
}

// Equal reports structural equality of two Values.
// Numbers compare by numeric value when both literals parse as float64
// (so "1e2" equals "100"), and by literal text otherwise.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		af, aerr := av.Float64()
		bf, berr := bv.Float64()
		return aerr == nil && berr == nil && af == bf
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv, ok := b.(Object)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, elem := range av {
			other, present := bv[k]
			if !present || !Equal(elem, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
