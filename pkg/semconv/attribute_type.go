package semconv

import "fmt"

// TypeKind enumerates every AttributeType variant: four primitives, their
// array forms, their template forms (eight template variants total), plus
// enum.
type TypeKind int

const (
	TypeBoolean TypeKind = iota
	TypeInt
	TypeDouble
	TypeString
	TypeBooleanArray
	TypeIntArray
	TypeDoubleArray
	TypeStringArray
	TypeTemplateBoolean
	TypeTemplateInt
	TypeTemplateDouble
	TypeTemplateString
	TypeTemplateBooleanArray
	TypeTemplateIntArray
	TypeTemplateDoubleArray
	TypeTemplateStringArray
	TypeEnum
)

var typeNames = map[string]TypeKind{
	"boolean":                 TypeBoolean,
	"int":                     TypeInt,
	"double":                  TypeDouble,
	"string":                  TypeString,
	"boolean[]":               TypeBooleanArray,
	"int[]":                   TypeIntArray,
	"double[]":                TypeDoubleArray,
	"string[]":                TypeStringArray,
	"template[boolean]":       TypeTemplateBoolean,
	"template[int]":           TypeTemplateInt,
	"template[double]":        TypeTemplateDouble,
	"template[string]":        TypeTemplateString,
	"template[boolean[]]":     TypeTemplateBooleanArray,
	"template[int[]]":         TypeTemplateIntArray,
	"template[double[]]":      TypeTemplateDoubleArray,
	"template[string[]]":      TypeTemplateStringArray,
}

func (k TypeKind) String() string {
	for name, kind := range typeNames {
		if kind == k {
			return name
		}
	}
	if k == TypeEnum {
		return "enum"
	}
	return "unknown"
}

// EnumMember is one allowed value of an enum attribute type.
type EnumMember struct {
	ID    string
	Value Value
	Brief string
	Note  string
}

// EnumType is the body of an AttributeType whose Kind is TypeEnum.
type EnumType struct {
	AllowCustomValues bool // default true
	Members           []EnumMember
}

// AttributeType is either one of the sixteen primitive/array/template
// variants (Enum == nil) or an enum (Enum != nil).
type AttributeType struct {
	Kind TypeKind
	Enum *EnumType
}

// attributeTypeFromYAML decodes the `type` field of a semconv attribute,
// which is either a bare string (primitive/array/template) or a mapping
// `{members: [...], allow_custom_values: bool}` (enum).
func attributeTypeFromYAML(raw interface{}) (*AttributeType, error) {
	switch t := raw.(type) {
	case string:
		kind, ok := typeNames[t]
		if !ok {
			return nil, fmt.Errorf("unknown attribute type %q", t)
		}
		return &AttributeType{Kind: kind}, nil
	case map[string]interface{}:
		return enumTypeFromYAML(t)
	default:
		return nil, fmt.Errorf("unsupported attribute type value %T", raw)
	}
}

func enumTypeFromYAML(m map[string]interface{}) (*AttributeType, error) {
	if err := requireKeys(m, []string{"members"}, []string{"allow_custom_values"}); err != nil {
		return nil, err
	}
	allowCustom := true
	if v, ok := m["allow_custom_values"]; ok {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("allow_custom_values must be a bool")
		}
		allowCustom = b
	}
	rawMembers, ok := m["members"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("enum members must be a list")
	}
	members := make([]EnumMember, 0, len(rawMembers))
	for _, rm := range rawMembers {
		mm, ok := rm.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("enum member must be a mapping")
		}
		if err := requireKeys(mm, []string{"id", "value"}, []string{"brief", "note"}); err != nil {
			return nil, err
		}
		id, _ := mm["id"].(string)
		val, err := valueFromYAML(mm["value"])
		if err != nil {
			return nil, fmt.Errorf("enum member %q: %w", id, err)
		}
		brief, _ := mm["brief"].(string)
		note, _ := mm["note"].(string)
		members = append(members, EnumMember{ID: id, Value: val, Brief: brief, Note: note})
	}
	return &AttributeType{Kind: TypeEnum, Enum: &EnumType{AllowCustomValues: allowCustom, Members: members}}, nil
}

// requireKeys rejects keys outside required+optional, and fails if any
// required key is missing, implementing this module's `deny_unknown_fields`
// equivalent at every YAML mapping boundary.
func requireKeys(m map[string]interface{}, required, optional []string) error {
	allowed := append(append([]string{}, required...), optional...)
	for _, k := range allowed {
		_ = k
	}
	if err := rejectUnknown(m, allowed); err != nil {
		return err
	}
	for _, k := range required {
		if _, ok := m[k]; !ok {
			return fmt.Errorf("missing required field %q", k)
		}
	}
	return nil
}

func rejectUnknown(m map[string]interface{}, allowed []string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		set[k] = struct{}{}
	}
	for k := range m {
		if _, ok := set[k]; !ok {
			return fmt.Errorf("unknown field %q", k)
		}
	}
	return nil
}
