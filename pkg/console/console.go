// Package console renders resolver diagnostics in a Rust-like
// `file:line:column: type: message` form, with ANSI styling applied only
// when stdout is a terminal.
package console

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/f5/otel-weaver-sub000/pkg/styles"
)

// Position locates a diagnostic within a source document. Line and Column
// are 1-based; a zero Line means the diagnostic has no known position
// (e.g. a structural error raised after parsing, such as UnknownAttributeRef).
type Position struct {
	File   string
	Line   int
	Column int
}

// Diagnostic is a single rendered message: an error, a warning, or an
// informational note.
type Diagnostic struct {
	Position Position
	Type     string // "error" (default), "warning", "info"
	Message  string
}

func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

func applyStyle(style interface{ Render(...string) string }, text string) string {
	if !isTTY() {
		return text
	}
	return style.Render(text)
}

// ToRelativePath converts an absolute path to one relative to the current
// working directory, falling back to the original path on any error.
func ToRelativePath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}

// FormatDiagnostic renders d as a single line, IDE-parseable when the
// position is known:
//
//	path/to/file.yaml:12:5: error: unknown attribute ref "http.method"
//	error: extends cycle: [a, b, a]
func FormatDiagnostic(d Diagnostic) string {
	label, style := diagnosticLabel(d.Type)
	prefix := ""
	if d.Position.File != "" {
		loc := ToRelativePath(d.Position.File)
		if d.Position.Line > 0 {
			loc = fmt.Sprintf("%s:%d:%d", loc, d.Position.Line, d.Position.Column)
		}
		prefix = applyStyle(styles.FilePath, loc) + ": "
	}
	return fmt.Sprintf("%s%s: %s", prefix, applyStyle(style, label), d.Message)
}

func diagnosticLabel(kind string) (string, interface{ Render(...string) string }) {
	switch kind {
	case "warning":
		return "warning", styles.Warning
	case "info":
		return "info", styles.Info
	default:
		return "error", styles.Error
	}
}

// FormatErrorMessage renders a plain error string as an "error:" diagnostic
// with no position, for errors that never reached a source document (flag
// parsing, fetch failures before any parse, and so on).
func FormatErrorMessage(message string) string {
	return FormatDiagnostic(Diagnostic{Type: "error", Message: message})
}

// FormatWarningMessage renders a plain warning string, used for non-fatal
// resolution warnings such as CatalogConflict.
func FormatWarningMessage(message string) string {
	return FormatDiagnostic(Diagnostic{Type: "warning", Message: message})
}

// FormatSuccessMessage renders a success line, styled green when the
// terminal supports it.
func FormatSuccessMessage(message string) string {
	return applyStyle(styles.Success, message)
}

// FormatInfoMessage renders an informational line (used for --version and
// similar non-diagnostic output).
func FormatInfoMessage(message string) string {
	return applyStyle(styles.Info, message)
}
