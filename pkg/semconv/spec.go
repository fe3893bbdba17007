package semconv

import (
	"fmt"

	"github.com/f5/otel-weaver-sub000/pkg/yamlutil"
)

// Spec is one semantic-convention YAML file's content: a top-level
// `groups` sequence (spec §6).
type Spec struct {
	SourceFile string
	Groups     []*Group
}

var specAllowedKeys = []string{"groups"}

// DecodeSpec parses one semconv YAML document. sourceFile is carried
// through for diagnostics only.
func DecodeSpec(data []byte, sourceFile string) (*Spec, error) {
	m, err := yamlutil.DecodeMap(data)
	if err != nil {
		return nil, err
	}
	if err := yamlutil.RejectUnknownKeys(m, specAllowedKeys...); err != nil {
		return nil, err
	}
	rawGroups, ok := m["groups"]
	if !ok {
		return nil, fmt.Errorf("%s: missing top-level groups", sourceFile)
	}
	list, ok := rawGroups.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: groups must be a list", sourceFile)
	}
	groups := make([]*Group, 0, len(list))
	for _, item := range list {
		gm, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: group entry must be a mapping", sourceFile)
		}
		g, err := DecodeGroup(gm)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sourceFile, err)
		}
		groups = append(groups, g)
	}
	return &Spec{SourceFile: sourceFile, Groups: groups}, nil
}

// IsSemanticConventionFile reports whether name should be traversed when
// importing a git-backed semconv directory: a `.yaml`/`.yml` file, not
// hidden, and not the reserved "next" staging file (spec §4.4 step 2,
// grounded on the original's import_sem_conv_specs filter).
func IsSemanticConventionFile(name string, schemaNextFileName string) bool {
	if len(name) == 0 || name[0] == '.' {
		return false
	}
	if name == schemaNextFileName {
		return false
	}
	return hasYAMLExt(name)
}

func hasYAMLExt(name string) bool {
	return hasSuffix(name, ".yaml") || hasSuffix(name, ".yml")
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
