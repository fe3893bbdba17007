package registry

import "github.com/f5/otel-weaver-sub000/pkg/semconv"

// MergeRefOverrides materializes a new Id attribute from a Ref, copying
// the referent's fields and replacing each one the Ref explicitly
// overrides (spec §4.2). A Ref override of requirement_level (including
// conditionally_required) always replaces the referent's; omitting it
// inherits the referent's level unchanged. The same "override or
// inherit, never invalidate" rule applies field-by-field to stability and
// deprecated — resolved per DESIGN.md open question 3, grounded on the
// original's per-field override-or-inherit logic in
// weaver_semconv/src/attribute.rs.
//
// Exported because pkg/resolver applies the same rule when materializing
// Ref attributes on schema-body signals, not just inside the registry.
func MergeRefOverrides(referent *semconv.Attribute, ref *semconv.Attribute) *semconv.Attribute {
	merged := &semconv.Attribute{
		ID:               referent.ID,
		Type:             referent.Type,
		Brief:            referent.Brief,
		Note:             referent.Note,
		Tag:              referent.Tag,
		RequirementLevel: referent.RequirementLevel,
		SamplingRelevant: referent.SamplingRelevant,
		Stability:        referent.Stability,
		Deprecated:       referent.Deprecated,
		Examples:         referent.Examples,
		Value:            referent.Value,
	}

	if ref.Brief != "" {
		merged.Brief = ref.Brief
	}
	if ref.Note != "" {
		merged.Note = ref.Note
	}
	if ref.Tag != nil {
		merged.Tag = ref.Tag
	}
	if ref.RequirementLevel != nil {
		merged.RequirementLevel = ref.RequirementLevel
	}
	if ref.SamplingRelevant != nil {
		merged.SamplingRelevant = ref.SamplingRelevant
	}
	if ref.Stability != nil {
		merged.Stability = ref.Stability
	}
	if ref.Deprecated != nil {
		merged.Deprecated = ref.Deprecated
	}
	if ref.Examples != nil {
		merged.Examples = ref.Examples
	}
	return merged
}
