package semconv

import "fmt"

// Attribute is a tagged union with two variants, distinguished by RefID:
//
//   - Ref:  RefID != nil. Carries an id to resolve plus optional overrides
//     for every other field.
//   - Id:   RefID == nil. A full definition.
//
// Go has no sum types, so both variants share one struct; IsRef reports
// which one a given value represents. This mirrors how the rest of this
// module treats YAML-decoded documents: build a plain struct by hand
// rather than lean on struct-tag reflection magic for a shape this
// irregular.
type Attribute struct {
	RefID *string

	ID   string
	Type *AttributeType

	Brief            string
	Note             string
	Tag              *string
	RequirementLevel *RequirementLevel
	SamplingRelevant *bool
	Stability        *string
	Deprecated       *string
	Examples         *Examples
	Value            *Value

	// Tags is stamped by a group-ref container item (attribute_group_ref,
	// resource_ref, span_ref, event_ref) onto every attribute it pulls in.
	// It is set, not merged, with whatever the attribute already carried
	// (spec §4.4), mirroring the original resolver's attr.set_tags(tags).
	Tags Tags
}

// IsRef reports whether a is the Ref variant.
func (a *Attribute) IsRef() bool { return a.RefID != nil }

// WithTags returns a shallow copy of a with Tags set to tags, used by
// group-ref resolution to stamp container-level tags onto a pulled
// attribute without mutating the registry's own copy.
func (a *Attribute) WithTags(tags Tags) *Attribute {
	cp := *a
	cp.Tags = tags
	return &cp
}

// EffectiveRequirementLevel returns the Id variant's level, defaulting to
// Recommended when unset (spec §3).
func (a *Attribute) EffectiveRequirementLevel() RequirementLevel {
	if a.RequirementLevel != nil {
		return *a.RequirementLevel
	}
	return DefaultRequirementLevel()
}

var refAttributeAllowedKeys = []string{
	"ref", "brief", "examples", "tag", "requirement_level",
	"sampling_relevant", "note", "stability", "deprecated",
}

var idAttributeRequiredKeys = []string{"id", "type", "brief"}
var idAttributeOptionalKeys = []string{
	"examples", "tag", "requirement_level", "sampling_relevant",
	"note", "stability", "deprecated", "value",
}

// DecodeAttribute builds an Attribute from one element of a semconv
// group's `attributes` sequence, dispatching on whether the mapping
// carries `ref` or `id` (spec §9's "Polymorphic attribute" design note).
func DecodeAttribute(m map[string]interface{}) (*Attribute, error) {
	if _, ok := m["ref"]; ok {
		return decodeRefAttribute(m)
	}
	if _, ok := m["id"]; ok {
		return decodeIDAttribute(m)
	}
	return nil, fmt.Errorf("attribute must set either ref or id")
}

func decodeRefAttribute(m map[string]interface{}) (*Attribute, error) {
	if err := rejectUnknown(m, refAttributeAllowedKeys); err != nil {
		return nil, err
	}
	refID, ok := m["ref"].(string)
	if !ok {
		return nil, fmt.Errorf("ref must be a string")
	}
	a := &Attribute{RefID: &refID}
	if v, ok := m["brief"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("brief must be a string")
		}
		a.Brief = s
	}
	if v, ok := m["note"]; ok {
		s, _ := v.(string)
		a.Note = s
	}
	if v, ok := m["tag"]; ok {
		s, _ := v.(string)
		a.Tag = &s
	}
	if v, ok := m["stability"]; ok {
		s, _ := v.(string)
		a.Stability = &s
	}
	if v, ok := m["deprecated"]; ok {
		s, _ := v.(string)
		a.Deprecated = &s
	}
	if v, ok := m["sampling_relevant"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("sampling_relevant must be a bool")
		}
		a.SamplingRelevant = &b
	}
	if v, ok := m["requirement_level"]; ok {
		rl, err := requirementLevelFromYAML(v)
		if err != nil {
			return nil, err
		}
		a.RequirementLevel = &rl
	}
	if v, ok := m["examples"]; ok {
		ex, err := examplesFromYAML(v)
		if err != nil {
			return nil, err
		}
		a.Examples = ex
	}
	return a, nil
}

func decodeIDAttribute(m map[string]interface{}) (*Attribute, error) {
	if err := requireKeys(m, idAttributeRequiredKeys, idAttributeOptionalKeys); err != nil {
		return nil, err
	}
	id, _ := m["id"].(string)
	brief, ok := m["brief"].(string)
	if !ok {
		return nil, fmt.Errorf("attribute %q: brief must be a string", id)
	}
	typ, err := attributeTypeFromYAML(m["type"])
	if err != nil {
		return nil, fmt.Errorf("attribute %q: %w", id, err)
	}
	a := &Attribute{ID: id, Type: typ, Brief: brief}
	if v, ok := m["note"]; ok {
		s, _ := v.(string)
		a.Note = s
	}
	if v, ok := m["tag"]; ok {
		s, _ := v.(string)
		a.Tag = &s
	}
	if v, ok := m["stability"]; ok {
		s, _ := v.(string)
		a.Stability = &s
	}
	if v, ok := m["deprecated"]; ok {
		s, _ := v.(string)
		a.Deprecated = &s
	}
	if v, ok := m["sampling_relevant"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("attribute %q: sampling_relevant must be a bool", id)
		}
		a.SamplingRelevant = &b
	}
	if v, ok := m["requirement_level"]; ok {
		rl, err := requirementLevelFromYAML(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", id, err)
		}
		a.RequirementLevel = &rl
	}
	if v, ok := m["examples"]; ok {
		ex, err := examplesFromYAML(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", id, err)
		}
		a.Examples = ex
	}
	if v, ok := m["value"]; ok {
		val, err := valueFromYAML(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", id, err)
		}
		a.Value = &val
	}
	return a, nil
}

func decodeAttributeList(raw interface{}) ([]*Attribute, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("attributes must be a list")
	}
	out := make([]*Attribute, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("attribute entry must be a mapping")
		}
		a, err := DecodeAttribute(m)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
