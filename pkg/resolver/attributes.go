package resolver

import (
	"sort"

	"github.com/f5/otel-weaver-sub000/pkg/logger"
	"github.com/f5/otel-weaver-sub000/pkg/registry"
	"github.com/f5/otel-weaver-sub000/pkg/schema"
	"github.com/f5/otel-weaver-sub000/pkg/semconv"
	"github.com/f5/otel-weaver-sub000/pkg/version"
)

var attrLog = logger.New("resolver:attribute")

// groupRefExpectedKind maps an AttrItem's *Ref container kind to the
// semconv.GroupKind the referenced group must carry (spec §4.4 per-signal
// resolution step 2).
var groupRefExpectedKind = map[schema.AttrItemKind]semconv.GroupKind{
	schema.ItemAttributeGroupRef: semconv.KindAttributeGroup,
	schema.ItemResourceRef:       semconv.KindResource,
	schema.ItemSpanRef:           semconv.KindSpan,
	schema.ItemEventRef:          semconv.KindEvent,
}

// groupRefOrder is the processing order of spec §4.4 step 2: "AttributeGroupRef
// / ResourceRef / SpanRef / EventRef items are processed first in that
// order," so a later kind's pulled attributes overwrite an earlier kind's
// on a shared id.
var groupRefOrder = []schema.AttrItemKind{
	schema.ItemAttributeGroupRef,
	schema.ItemResourceRef,
	schema.ItemSpanRef,
	schema.ItemEventRef,
}

// resolveAttributeItems implements the per-signal attribute-list
// algorithm of spec §4.4: group refs first (in groupRefOrder), then Ref
// items (renamed through renames and merged against their registry
// referent), then Id items, each insertion overwriting any earlier entry
// under the same id. The result is returned in key-sorted order, matching
// the original's BTreeMap-backed resolve_attributes (DESIGN.md open
// question 1).
//
// A *Ref container item stamps its own Tags onto every attribute it pulls
// in, set rather than merged (spec §4.4), mirroring attr.set_tags(tags) in
// the original resolver. The pulled attribute is copied via WithTags
// first: Registry.Attributes returns pointers into the registry's own
// groups, and mutating them in place would leak one signal's tag stamp
// into every other signal that shares the same referenced group.
func resolveAttributeItems(items []*schema.AttrItem, reg *registry.Registry, renames version.RenameTable) ([]*semconv.Attribute, error) {
	byID := map[string]*semconv.Attribute{}

	for _, kind := range groupRefOrder {
		expected := groupRefExpectedKind[kind]
		for _, item := range items {
			if item.Kind != kind {
				continue
			}
			pulled, err := reg.Attributes(item.GroupRef, expected)
			if err != nil {
				return nil, err
			}
			for id, a := range pulled {
				byID[id] = a.WithTags(item.Tags)
			}
		}
	}

	for _, item := range items {
		if item.Kind != schema.ItemRef {
			continue
		}
		renamedID := renames.Get(*item.Attribute.RefID)
		referent, ok := reg.Attribute(renamedID)
		if !ok {
			return nil, &registry.UnknownAttributeRefError{RefID: renamedID}
		}
		byID[referent.ID] = registry.MergeRefOverrides(referent, item.Attribute)
	}

	for _, item := range items {
		if item.Kind != schema.ItemID {
			continue
		}
		byID[item.Attribute.ID] = item.Attribute
	}

	return sortedAttributes(byID), nil
}

func sortedAttributes(byID map[string]*semconv.Attribute) []*semconv.Attribute {
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*semconv.Attribute, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}

// mergeAttrsOverride combines base and override attribute lists, override
// winning on a shared id, returned in key-sorted order. Used both for
// metric-group common attributes (spec §4.4 "Metric reference
// resolution") and for a univariate Ref metric's inherited vs. override
// attributes.
func mergeAttrsOverride(base, override []*semconv.Attribute) []*semconv.Attribute {
	byID := map[string]*semconv.Attribute{}
	for _, a := range base {
		byID[a.ID] = a
	}
	for _, a := range override {
		byID[a.ID] = a
	}
	return sortedAttributes(byID)
}
