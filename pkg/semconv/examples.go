package semconv

// Examples holds the example values for an attribute: a single scalar, or
// a list of scalars. String-typed attributes may omit examples entirely
// (Examples is nil in that case).
type Examples struct {
	Values []Value
}

// examplesFromYAML decodes the `examples` field, accepting either a bare
// scalar or a YAML sequence of scalars.
func examplesFromYAML(raw interface{}) (*Examples, error) {
	if raw == nil {
		return nil, nil
	}
	if list, ok := raw.([]interface{}); ok {
		values := make([]Value, 0, len(list))
		for _, item := range list {
			v, err := valueFromYAML(item)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return &Examples{Values: values}, nil
	}
	v, err := valueFromYAML(raw)
	if err != nil {
		return nil, err
	}
	return &Examples{Values: []Value{v}}, nil
}

// Equal reports structural equality, used by catalog interning (§4.5).
func (e *Examples) Equal(o *Examples) bool {
	if e == nil || o == nil {
		return e == o
	}
	if len(e.Values) != len(o.Values) {
		return false
	}
	for i := range e.Values {
		if !e.Values[i].Equal(o.Values[i]) {
			return false
		}
	}
	return true
}
