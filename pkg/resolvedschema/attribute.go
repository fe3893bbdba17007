// Package resolvedschema is the self-contained output model (spec §3,
// §4.5): a deduplicated catalog of attributes and metrics addressed by
// integer index, a registry of resolved groups, and the resolved signal
// bodies that reference the catalog by AttributeRef/MetricRef.
package resolvedschema

import (
	"github.com/f5/otel-weaver-sub000/pkg/semconv"
)

// AttributeRef indexes Catalog.Attributes.
type AttributeRef int

// MetricRef indexes Catalog.Metrics.
type MetricRef int

// Attribute is the catalog's fully-resolved attribute shape. It has no
// Value field and Value never participates in interning — DESIGN.md open
// question 2, following the original's catalog model.
type Attribute struct {
	ID               string
	Type             *semconv.AttributeType
	Brief            string
	Note             string
	Tag              *string
	RequirementLevel semconv.RequirementLevel
	Stability        *string
	Deprecated       *string
	Examples         *semconv.Examples
}

func fromSemconv(a *semconv.Attribute) Attribute {
	return Attribute{
		ID:               a.ID,
		Type:             a.Type,
		Brief:            a.Brief,
		Note:             a.Note,
		Tag:              a.Tag,
		RequirementLevel: a.EffectiveRequirementLevel(),
		Stability:        a.Stability,
		Deprecated:       a.Deprecated,
		Examples:         a.Examples,
	}
}

// equal implements the interning rule of spec §4.5: two attribute
// definitions are identical iff id, type, brief, note,
// requirement_level, stability, deprecated, tag, and examples compare
// equal.
func (a Attribute) equal(o Attribute) bool {
	if a.ID != o.ID || a.Brief != o.Brief || a.Note != o.Note {
		return false
	}
	if !typeEqual(a.Type, o.Type) {
		return false
	}
	if a.RequirementLevel.Kind != o.RequirementLevel.Kind || a.RequirementLevel.Text != o.RequirementLevel.Text {
		return false
	}
	if !strPtrEqual(a.Stability, o.Stability) || !strPtrEqual(a.Deprecated, o.Deprecated) || !strPtrEqual(a.Tag, o.Tag) {
		return false
	}
	return a.Examples.Equal(o.Examples)
}

func typeEqual(a, b *semconv.AttributeType) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind != semconv.TypeEnum {
		return true
	}
	if a.Enum == nil || b.Enum == nil {
		return a.Enum == b.Enum
	}
	if a.Enum.AllowCustomValues != b.Enum.AllowCustomValues {
		return false
	}
	if len(a.Enum.Members) != len(b.Enum.Members) {
		return false
	}
	for i := range a.Enum.Members {
		ma, mb := a.Enum.Members[i], b.Enum.Members[i]
		if ma.ID != mb.ID || ma.Brief != mb.Brief || ma.Note != mb.Note || !ma.Value.Equal(mb.Value) {
			return false
		}
	}
	return true
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
