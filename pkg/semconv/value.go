package semconv

import "fmt"

// ValueKind discriminates the scalar kinds a semconv Value may hold.
type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueDouble
	ValueString
	ValueBool
)

// Value is a scalar that can appear as an enum member's value or inside an
// Examples list: int | double | string (bool is included for examples,
// which may enumerate boolean attribute values).
type Value struct {
	Kind   ValueKind
	Int    int64
	Double float64
	String string
	Bool   bool
}

func (v Value) String_() string {
	switch v.Kind {
	case ValueInt:
		return fmt.Sprintf("%d", v.Int)
	case ValueDouble:
		return fmt.Sprintf("%g", v.Double)
	case ValueBool:
		return fmt.Sprintf("%t", v.Bool)
	default:
		return v.String
	}
}

// valueFromYAML converts a decoded YAML scalar (as produced by
// goccy/go-yaml's map[string]interface{} decode) into a Value.
func valueFromYAML(raw interface{}) (Value, error) {
	switch t := raw.(type) {
	case int:
		return Value{Kind: ValueInt, Int: int64(t)}, nil
	case int64:
		return Value{Kind: ValueInt, Int: t}, nil
	case uint64:
		return Value{Kind: ValueInt, Int: int64(t)}, nil
	case float64:
		return Value{Kind: ValueDouble, Double: t}, nil
	case float32:
		return Value{Kind: ValueDouble, Double: float64(t)}, nil
	case bool:
		return Value{Kind: ValueBool, Bool: t}, nil
	case string:
		return Value{Kind: ValueString, String: t}, nil
	default:
		return Value{}, fmt.Errorf("unsupported scalar value %T", raw)
	}
}

// Equal reports whether two values compare equal for catalog interning
// purposes (§4.5: the interning key includes Examples, which are built
// from Values).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueInt:
		return v.Int == o.Int
	case ValueDouble:
		return v.Double == o.Double
	case ValueBool:
		return v.Bool == o.Bool
	default:
		return v.String == o.String
	}
}
