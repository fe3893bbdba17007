package semconv

import "sort"

// Tags is a free-form string map stamped onto groups and onto the
// attributes pulled in through a ref-form (attribute_group_ref, span_ref,
// resource_ref, event_ref).
type Tags map[string]string

// MergeWithOverride merges other into t, with t's own values winning on a
// conflicting key (self wins), mirroring the original model's
// Tags::merge_with_override.
func (t Tags) MergeWithOverride(other Tags) Tags {
	if len(other) == 0 {
		return t
	}
	merged := make(Tags, len(t)+len(other))
	for k, v := range other {
		merged[k] = v
	}
	for k, v := range t {
		merged[k] = v
	}
	return merged
}

// Keys returns t's keys in sorted order.
func (t Tags) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func tagsFromYAML(raw interface{}) (Tags, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &typeMismatchError{field: "tags", want: "mapping"}
	}
	tags := make(Tags, len(m))
	for k, v := range m {
		s, ok := v.(string)
		if !ok {
			return nil, &typeMismatchError{field: "tags." + k, want: "string"}
		}
		tags[k] = s
	}
	return tags, nil
}

type typeMismatchError struct {
	field string
	want  string
}

func (e *typeMismatchError) Error() string {
	return "field " + e.field + " must be a " + e.want
}
