// Package version implements the Version Engine (spec §4.3): it turns a
// schema's versions map into four old->new rename tables for a target
// version, built by walking versions in descending SemVer order and
// keeping the first (i.e. newest) rename seen for each old name.
package version

import (
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/f5/otel-weaver-sub000/pkg/logger"
	"github.com/f5/otel-weaver-sub000/pkg/schema"
)

var log = logger.New("version")

// RenameTable is an old-id -> new-id map for one signal kind.
type RenameTable map[string]string

// Get returns the renamed id, or old unchanged if absent (spec §4.3 step 3).
func (t RenameTable) Get(old string) string {
	if t == nil {
		return old
	}
	if renamed, ok := t[old]; ok {
		return renamed
	}
	return old
}

// Engine holds the four rename tables computed for one target version.
type Engine struct {
	Target            *semver.Version
	ResourceAttrs     RenameTable
	MetricNames       RenameTable
	LogAttrs          RenameTable
	SpanAttrs         RenameTable
}

// Build parses versions' keys as SemVer, picks the target (the caller's
// pin, or the latest version present when pin is empty), and constructs
// the four rename tables by walking versions newer-than-or-equal-to the
// target in descending order, inserting each rename only if its old name
// is not already present (spec §4.3).
func Build(versions map[string]*schema.VersionSpec, pin string) (*Engine, error) {
	if len(versions) == 0 {
		return &Engine{}, nil
	}

	parsed := make([]*semver.Version, 0, len(versions))
	byVersion := make(map[string]*schema.VersionSpec, len(versions))
	for raw, spec := range versions {
		v, err := semver.NewVersion(raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, v)
		byVersion[v.String()] = spec
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].GreaterThan(parsed[j]) })

	var target *semver.Version
	if pin != "" {
		t, err := semver.NewVersion(pin)
		if err != nil {
			return nil, err
		}
		target = t
	} else {
		target = parsed[0]
	}

	e := &Engine{
		Target:        target,
		ResourceAttrs: RenameTable{},
		MetricNames:   RenameTable{},
		LogAttrs:      RenameTable{},
		SpanAttrs:     RenameTable{},
	}

	for _, v := range parsed {
		if v.LessThan(target) {
			continue
		}
		spec := byVersion[v.String()]
		if spec == nil {
			continue
		}
		insertMetrics(e.MetricNames, spec.Metrics)
		insertAttrs(e.SpanAttrs, spec.Spans)
		insertAttrs(e.LogAttrs, spec.Logs)
		insertAttrs(e.ResourceAttrs, spec.Resources)
	}

	chaseChains(e.MetricNames)
	chaseChains(e.SpanAttrs)
	chaseChains(e.LogAttrs)
	chaseChains(e.ResourceAttrs)

	log.Printf("built rename tables for target %s: %d metric, %d span, %d log, %d resource renames",
		target.String(), len(e.MetricNames), len(e.SpanAttrs), len(e.LogAttrs), len(e.ResourceAttrs))
	return e, nil
}

// chaseChains resolves multi-hop renames (spec §4.3's rationale: a chain
// "a->b, b->c" across versions must collapse to "a->c, b->c" in the final
// table, not stop at the first hop each old name happened to hit).
func chaseChains(table RenameTable) {
	for k, v := range table {
		visited := map[string]bool{k: true}
		cur := v
		for {
			next, ok := table[cur]
			if !ok || visited[cur] {
				break
			}
			visited[cur] = true
			cur = next
		}
		table[k] = cur
	}
}

func insertMetrics(table RenameTable, changes *schema.SignalChanges) {
	if changes == nil {
		return
	}
	for _, block := range changes.Changes {
		for old, new := range block.RenameMetrics {
			if _, exists := table[old]; !exists {
				table[old] = new
			}
		}
	}
}

func insertAttrs(table RenameTable, changes *schema.SignalChanges) {
	if changes == nil {
		return
	}
	for _, block := range changes.Changes {
		for old, new := range block.AttributeMap {
			if _, exists := table[old]; !exists {
				table[old] = new
			}
		}
	}
}
