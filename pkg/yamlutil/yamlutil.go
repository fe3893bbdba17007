// Package yamlutil provides small helpers shared by pkg/schema and
// pkg/semconv for decoding YAML documents with goccy/go-yaml: generic
// decode into maps (so unknown top-level keys can be rejected explicitly),
// and position extraction from decode errors for diagnostic rendering.
package yamlutil

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"

	"github.com/goccy/go-yaml"
)

// DecodeMap unmarshals data into a generic map, the first step of this
// module's "decode into map[string]any, then validate/convert" style.
func DecodeMap(data []byte) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]interface{}{}
	}
	return m, nil
}

// RejectUnknownKeys fails if m contains any key not present in allowed.
func RejectUnknownKeys(m map[string]interface{}, allowed ...string) error {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = struct{}{}
	}
	for k := range m {
		if _, ok := allowedSet[k]; !ok {
			return &UnknownKeyError{Key: k}
		}
	}
	return nil
}

// UnknownKeyError reports a YAML key this implementation does not
// recognize, standing in for `deny_unknown_fields`.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return "unknown field: " + e.Key
}

var lineColRe = regexp.MustCompile(`line (\d+): column (\d+)`)
var lineRe = regexp.MustCompile(`line (\d+)`)

// ExtractPosition pulls a 1-based (line, column) out of a goccy/go-yaml
// decode error and returns it with the error's full, unaltered message. goccy wraps the offending token's Position
// on its error type; this mirrors the teacher's reflection-based
// extraction (which has to reach into an unexported concrete error type)
// plus a string-parsing fallback for errors that don't carry a Token.
func ExtractPosition(err error) (line, column int, message string) {
	if err == nil {
		return 0, 0, ""
	}
	message = err.Error()

	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if l, c, ok := extractFromGoccyError(cur); ok {
			return l, c, message
		}
	}

	if m := lineColRe.FindStringSubmatch(message); m != nil {
		l, _ := strconv.Atoi(m[1])
		c, _ := strconv.Atoi(m[2])
		return l, c, message
	}
	if m := lineRe.FindStringSubmatch(message); m != nil {
		l, _ := strconv.Atoi(m[1])
		return l, 0, message
	}
	return 0, 0, message
}

// extractFromGoccyError reflects into goccy/go-yaml's internal error
// types, which expose a "Token" field carrying a "Position" with "Line"
// and "Column" ints. goccy does not export a stable error type across
// versions, so reflection is the only robust way to reach these fields
// (same approach the teacher uses for its own YAML errors).
func extractFromGoccyError(err error) (line, column int, ok bool) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return 0, 0, false
	}
	tokenField := v.FieldByName("Token")
	if !tokenField.IsValid() {
		return 0, 0, false
	}
	if tokenField.Kind() == reflect.Ptr {
		if tokenField.IsNil() {
			return 0, 0, false
		}
		tokenField = tokenField.Elem()
	}
	posField := tokenField.FieldByName("Position")
	if !posField.IsValid() {
		return 0, 0, false
	}
	if posField.Kind() == reflect.Ptr {
		if posField.IsNil() {
			return 0, 0, false
		}
		posField = posField.Elem()
	}
	lineField := posField.FieldByName("Line")
	colField := posField.FieldByName("Column")
	if !lineField.IsValid() || !colField.IsValid() {
		return 0, 0, false
	}
	l := int(lineField.Int())
	c := int(colField.Int())
	if l <= 0 {
		return 0, 0, false
	}
	return l, c, true
}
