package schema

import (
	"fmt"

	"github.com/f5/otel-weaver-sub000/pkg/semconv"
)

func decodeAttrItemList(raw interface{}) ([]*AttrItem, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("attributes must be a list")
	}
	out := make([]*AttrItem, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("attribute entry must be a mapping")
		}
		ai, err := decodeAttrItem(m)
		if err != nil {
			return nil, err
		}
		out = append(out, ai)
	}
	return out, nil
}

var groupRefKeys = map[string]AttrItemKind{
	"attribute_group_ref": ItemAttributeGroupRef,
	"resource_ref":        ItemResourceRef,
	"span_ref":            ItemSpanRef,
	"event_ref":           ItemEventRef,
}

// decodeAttrItem dispatches on which of the six shapes this entry takes
// (spec §9's tagged-sum design note).
func decodeAttrItem(m map[string]interface{}) (*AttrItem, error) {
	for key, kind := range groupRefKeys {
		if v, ok := m[key]; ok {
			ref, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a string", key)
			}
			tags, err := optionalTags(m, key)
			if err != nil {
				return nil, err
			}
			return &AttrItem{Kind: kind, GroupRef: ref, Tags: tags}, nil
		}
	}
	if _, ok := m["ref"]; ok {
		a, err := semconv.DecodeAttribute(m)
		if err != nil {
			return nil, err
		}
		return &AttrItem{Kind: ItemRef, Attribute: a}, nil
	}
	if _, ok := m["id"]; ok {
		a, err := semconv.DecodeAttribute(m)
		if err != nil {
			return nil, err
		}
		return &AttrItem{Kind: ItemID, Attribute: a}, nil
	}
	return nil, fmt.Errorf("attribute entry must set one of ref, id, attribute_group_ref, resource_ref, span_ref, event_ref")
}

func optionalTags(m map[string]interface{}, refKey string) (semconv.Tags, error) {
	allowed := map[string]struct{}{refKey: {}, "tags": {}}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			return nil, fmt.Errorf("unknown field %q on %s", k, refKey)
		}
	}
	if v, ok := m["tags"]; ok {
		return tagsFromYAML(v)
	}
	return nil, nil
}
