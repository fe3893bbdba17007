package schema

import "fmt"

func decodeVersions(raw interface{}) (map[string]*VersionSpec, error) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("versions must be a mapping")
	}
	out := make(map[string]*VersionSpec, len(m))
	for verStr, v := range m {
		vm, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("version %q: must be a mapping", verStr)
		}
		if err := requireOnly(vm, "metrics", "spans", "logs", "resources"); err != nil {
			return nil, fmt.Errorf("version %q: %w", verStr, err)
		}
		spec := &VersionSpec{}
		var err error
		if spec.Metrics, err = decodeSignalChanges(vm["metrics"], true); err != nil {
			return nil, fmt.Errorf("version %q metrics: %w", verStr, err)
		}
		if spec.Spans, err = decodeSignalChanges(vm["spans"], false); err != nil {
			return nil, fmt.Errorf("version %q spans: %w", verStr, err)
		}
		if spec.Logs, err = decodeSignalChanges(vm["logs"], false); err != nil {
			return nil, fmt.Errorf("version %q logs: %w", verStr, err)
		}
		if spec.Resources, err = decodeSignalChanges(vm["resources"], false); err != nil {
			return nil, fmt.Errorf("version %q resources: %w", verStr, err)
		}
		out[verStr] = spec
	}
	return out, nil
}

func decodeSignalChanges(raw interface{}, isMetrics bool) (*SignalChanges, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("must be a mapping")
	}
	if err := requireOnly(m, "changes"); err != nil {
		return nil, err
	}
	list, ok := m["changes"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("changes must be a list")
	}
	sc := &SignalChanges{}
	for _, item := range list {
		cm, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("change entry must be a mapping")
		}
		block, err := decodeRenameBlock(cm, isMetrics)
		if err != nil {
			return nil, err
		}
		sc.Changes = append(sc.Changes, block)
	}
	return sc, nil
}

func decodeRenameBlock(m map[string]interface{}, isMetrics bool) (RenameBlock, error) {
	if isMetrics {
		if err := requireOnly(m, "rename_metrics"); err != nil {
			return RenameBlock{}, err
		}
		rm, ok := m["rename_metrics"].(map[string]interface{})
		if !ok {
			return RenameBlock{}, fmt.Errorf("rename_metrics must be a mapping")
		}
		return RenameBlock{RenameMetrics: stringMap(rm)}, nil
	}
	if err := requireOnly(m, "rename_attributes"); err != nil {
		return RenameBlock{}, err
	}
	ra, ok := m["rename_attributes"].(map[string]interface{})
	if !ok {
		return RenameBlock{}, fmt.Errorf("rename_attributes must be a mapping")
	}
	if err := requireOnly(ra, "attribute_map"); err != nil {
		return RenameBlock{}, err
	}
	am, ok := ra["attribute_map"].(map[string]interface{})
	if !ok {
		return RenameBlock{}, fmt.Errorf("attribute_map must be a mapping")
	}
	return RenameBlock{AttributeMap: stringMap(am)}, nil
}

func stringMap(m map[string]interface{}) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		s, _ := v.(string)
		out[k] = s
	}
	return out
}
