package cli

import "encoding/json"

// marshalJSON remarshals an already-built resolved-schema tree as JSON.
// Grounded in SPEC_FULL.md §6: YAML is the canonical form, JSON is a
// stdlib convenience conversion of the same in-memory tree.
func marshalJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
