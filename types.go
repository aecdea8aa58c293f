package chunkstore

import (
	"fmt"
	"strconv"
)

// ElementType tags the supported scalar column element types. It drives
// every templated dispatch at operator boundaries.
type ElementType uint8

const (
	ElementInt32 ElementType = iota
	ElementInt64
	ElementFloat32
	ElementFloat64
	ElementString
)

// String renders the surface type name used by callers ("int", "long",
// "float", "double", "string" per spec.md §6).
func (t ElementType) String() string {
	switch t {
	case ElementInt32:
		return "int"
	case ElementInt64:
		return "long"
	case ElementFloat32:
		return "float"
	case ElementFloat64:
		return "double"
	case ElementString:
		return "string"
	default:
		return fmt.Sprintf("ElementType(%d)", uint8(t))
	}
}

// Element is the set of concrete Go types usable as column storage. It is
// a subset of cmp.Ordered restricted to the five supported element types,
// letting the dictionary and scan machinery use generic sort/search
// helpers directly.
type Element interface {
	int32 | int64 | float32 | float64 | string
}

// Value is a tagged union over the element types, used only at API
// boundaries: row append, scan search values, and scalar probe results.
type Value struct {
	typ ElementType
	i32 int32
	i64 int64
	f32 float32
	f64 float64
	str string
}

func Int32Value(v int32) Value   { return Value{typ: ElementInt32, i32: v} }
func Int64Value(v int64) Value   { return Value{typ: ElementInt64, i64: v} }
func Float32Value(v float32) Value { return Value{typ: ElementFloat32, f32: v} }
func Float64Value(v float64) Value { return Value{typ: ElementFloat64, f64: v} }
func StringValue(v string) Value { return Value{typ: ElementString, str: v} }

// Type reports the element type tag carried by v.
func (v Value) Type() ElementType { return v.typ }

// valueOf boxes a concrete generic element into a Value, keyed by the
// element type tag it is known to belong to.
func valueOf[T Element](typ ElementType, x T) Value {
	switch typ {
	case ElementInt32:
		return Int32Value(any(x).(int32))
	case ElementInt64:
		return Int64Value(any(x).(int64))
	case ElementFloat32:
		return Float32Value(any(x).(float32))
	case ElementFloat64:
		return Float64Value(any(x).(float64))
	case ElementString:
		return StringValue(any(x).(string))
	default:
		panic(fmt.Sprintf("unknown element type %v", typ))
	}
}

// elementOf unboxes v into the concrete generic type T, which must match
// typ exactly; callers establish that invariant before calling.
func elementOf[T Element](typ ElementType, v Value) T {
	switch typ {
	case ElementInt32:
		return any(v.i32).(T)
	case ElementInt64:
		return any(v.i64).(T)
	case ElementFloat32:
		return any(v.f32).(T)
	case ElementFloat64:
		return any(v.f64).(T)
	case ElementString:
		return any(v.str).(T)
	default:
		panic(fmt.Sprintf("unknown element type %v", typ))
	}
}

// Cast converts v to the target element type. Numeric-to-numeric uses
// standard truncation/widening and never fails, even when the target
// cannot hold the source value. Numeric-to-string uses the canonical
// decimal textual form (round-trippable for floats). String-to-numeric
// parses that same form. Cast fails with ErrTypeMismatch when a string
// does not parse as the numeric target type, or when v or target carries
// a tag this function does not recognise.
func Cast(v Value, target ElementType) (Value, error) {
	if v.typ == target {
		return v, nil
	}

	// int32<->int64 truncates/widens directly rather than funnelling
	// through float64, which only represents integers exactly up to
	// 2^53 and would silently corrupt larger int64 magnitudes.
	switch {
	case v.typ == ElementInt64 && target == ElementInt32:
		return Int32Value(int32(v.i64)), nil
	case v.typ == ElementInt32 && target == ElementInt64:
		return Int64Value(int64(v.i32)), nil
	}

	asF64, isNumeric, err := toFloat64(v)
	if err != nil {
		return Value{}, err
	}

	switch target {
	case ElementInt32:
		if isNumeric {
			return Int32Value(int32(asF64)), nil
		}
		n, perr := strconv.ParseInt(v.str, 10, 32)
		if perr != nil {
			return Value{}, fmt.Errorf("%w: cannot cast %q to int32", ErrTypeMismatch, v.str)
		}
		return Int32Value(int32(n)), nil
	case ElementInt64:
		if isNumeric {
			return Int64Value(int64(asF64)), nil
		}
		n, perr := strconv.ParseInt(v.str, 10, 64)
		if perr != nil {
			return Value{}, fmt.Errorf("%w: cannot cast %q to int64", ErrTypeMismatch, v.str)
		}
		return Int64Value(n), nil
	case ElementFloat32:
		if isNumeric {
			return Float32Value(float32(asF64)), nil
		}
		n, perr := strconv.ParseFloat(v.str, 32)
		if perr != nil {
			return Value{}, fmt.Errorf("%w: cannot cast %q to float32", ErrTypeMismatch, v.str)
		}
		return Float32Value(float32(n)), nil
	case ElementFloat64:
		if isNumeric {
			return Float64Value(asF64), nil
		}
		n, perr := strconv.ParseFloat(v.str, 64)
		if perr != nil {
			return Value{}, fmt.Errorf("%w: cannot cast %q to float64", ErrTypeMismatch, v.str)
		}
		return Float64Value(n), nil
	case ElementString:
		if !isNumeric {
			return StringValue(v.str), nil
		}
		return StringValue(formatNumeric(v)), nil
	default:
		return Value{}, fmt.Errorf("%w: unknown target element type %v", ErrTypeMismatch, target)
	}
}

func toFloat64(v Value) (float64, bool, error) {
	switch v.typ {
	case ElementInt32:
		return float64(v.i32), true, nil
	case ElementInt64:
		return float64(v.i64), true, nil
	case ElementFloat32:
		return float64(v.f32), true, nil
	case ElementFloat64:
		return v.f64, true, nil
	case ElementString:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("%w: unknown source element type %v", ErrTypeMismatch, v.typ)
	}
}

func formatNumeric(v Value) string {
	switch v.typ {
	case ElementInt32:
		return strconv.FormatInt(int64(v.i32), 10)
	case ElementInt64:
		return strconv.FormatInt(v.i64, 10)
	case ElementFloat32:
		return strconv.FormatFloat(float64(v.f32), 'g', -1, 32)
	case ElementFloat64:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	default:
		return ""
	}
}
