// Package registry implements the SemConv Registry (spec §4.2): it
// accumulates groups from many semconv files, expands `extends` edges to
// a fixed point, resolves intra-registry attribute `ref`s, and exposes
// lookup by group id and by metric name.
package registry

import "fmt"

// DuplicateGroupIDError is raised by AppendSpec when two files declare a
// group with the same id.
type DuplicateGroupIDError struct {
	ID    string
	First string
	Again string
}

func (e *DuplicateGroupIDError) Error() string {
	return fmt.Sprintf("duplicate group id %q (first seen in %s, again in %s)", e.ID, e.First, e.Again)
}

// UnknownExtendsError is raised when a group's `extends` names a group
// that does not exist in the registry.
type UnknownExtendsError struct {
	GroupID string
	Extends string
}

func (e *UnknownExtendsError) Error() string {
	return fmt.Sprintf("group %q extends unknown group %q", e.GroupID, e.Extends)
}

// ExtendsCycleError is raised when the `extends` graph contains a cycle.
type ExtendsCycleError struct {
	IDs []string
}

func (e *ExtendsCycleError) Error() string {
	return fmt.Sprintf("extends cycle: %v", e.IDs)
}

// UnknownAttributeRefError is raised when an attribute's `ref` does not
// resolve to any Id attribute in the registry.
type UnknownAttributeRefError struct {
	RefID string
}

func (e *UnknownAttributeRefError) Error() string {
	return fmt.Sprintf("unknown attribute ref %q", e.RefID)
}

// UnknownGroupError is raised by Attributes when group_id is not in the
// registry.
type UnknownGroupError struct {
	GroupID string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown group %q", e.GroupID)
}

// GroupKindMismatchError is raised by Attributes when the resolved
// group's kind differs from the caller's expected kind.
type GroupKindMismatchError struct {
	GroupID  string
	Expected string
	Found    string
}

func (e *GroupKindMismatchError) Error() string {
	return fmt.Sprintf("group %q: expected kind %s, found %s", e.GroupID, e.Expected, e.Found)
}
