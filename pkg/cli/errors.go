package cli

import "errors"

// ErrNotImplemented marks a seam this module exposes but does not
// implement: the generator and the interactive search index are treated
// as external collaborators (spec Non-goals).
var ErrNotImplemented = errors.New("not implemented: this command resolves the schema but delegates to an external tool not built here")
