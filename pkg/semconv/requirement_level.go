package semconv

import "fmt"

// RequirementLevelKind enumerates the five requirement-level variants.
type RequirementLevelKind int

const (
	LevelRecommended RequirementLevelKind = iota // default
	LevelRequired
	LevelOptIn
	LevelConditionallyRequired
	LevelRecommendedWithText
)

// RequirementLevel is `required | recommended | opt_in |
// conditionally_required{text} | recommended{text}`. Text is only
// meaningful for the two variants that carry one.
type RequirementLevel struct {
	Kind RequirementLevelKind
	Text string
}

// DefaultRequirementLevel is used when an Id attribute omits the field.
func DefaultRequirementLevel() RequirementLevel {
	return RequirementLevel{Kind: LevelRecommended}
}

// requirementLevelFromYAML decodes the `requirement_level` field, which is
// either a bare string (`required`, `recommended`, `opt_in`) or a mapping
// with exactly one of `conditionally_required`/`recommended` holding text.
func requirementLevelFromYAML(raw interface{}) (RequirementLevel, error) {
	switch t := raw.(type) {
	case string:
		switch t {
		case "required":
			return RequirementLevel{Kind: LevelRequired}, nil
		case "recommended":
			return RequirementLevel{Kind: LevelRecommended}, nil
		case "opt_in":
			return RequirementLevel{Kind: LevelOptIn}, nil
		default:
			return RequirementLevel{}, fmt.Errorf("unknown requirement_level %q", t)
		}
	case map[string]interface{}:
		if v, ok := t["conditionally_required"]; ok {
			if err := rejectUnknown(t, []string{"conditionally_required"}); err != nil {
				return RequirementLevel{}, err
			}
			text, _ := v.(string)
			return RequirementLevel{Kind: LevelConditionallyRequired, Text: text}, nil
		}
		if v, ok := t["recommended"]; ok {
			if err := rejectUnknown(t, []string{"recommended"}); err != nil {
				return RequirementLevel{}, err
			}
			text, _ := v.(string)
			return RequirementLevel{Kind: LevelRecommendedWithText, Text: text}, nil
		}
		return RequirementLevel{}, fmt.Errorf("requirement_level mapping must set conditionally_required or recommended")
	default:
		return RequirementLevel{}, fmt.Errorf("unsupported requirement_level value %T", raw)
	}
}

func (r RequirementLevel) String() string {
	switch r.Kind {
	case LevelRequired:
		return "required"
	case LevelOptIn:
		return "opt_in"
	case LevelConditionallyRequired:
		return "conditionally_required: " + r.Text
	case LevelRecommendedWithText:
		return "recommended: " + r.Text
	default:
		return "recommended"
	}
}
