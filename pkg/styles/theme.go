// Package styles provides centralized style and color definitions for terminal output.
// It uses lipgloss.AdaptiveColor to automatically adapt colors based on the terminal background,
// ensuring good readability in both light and dark terminal themes.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colors that work well in both light and dark terminal themes.
var (
	// ColorError is used for error messages and critical issues.
	ColorError = lipgloss.AdaptiveColor{
		Light: "#D73737",
		Dark:  "#FF5555",
	}

	// ColorWarning is used for warning messages and cautionary information.
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#E67E22",
		Dark:  "#FFB86C",
	}

	// ColorSuccess is used for success messages and confirmations.
	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#27AE60",
		Dark:  "#50FA7B",
	}

	// ColorInfo is used for informational messages.
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2980B9",
		Dark:  "#8BE9FD",
	}

	// ColorPurple is used for file paths and highlights.
	ColorPurple = lipgloss.AdaptiveColor{
		Light: "#8E44AD",
		Dark:  "#BD93F9",
	}

	// ColorComment is used for secondary/muted information like line numbers.
	ColorComment = lipgloss.AdaptiveColor{
		Light: "#6C7A89",
		Dark:  "#6272A4",
	}

	// ColorForeground is used for primary text content.
	ColorForeground = lipgloss.AdaptiveColor{
		Light: "#2C3E50",
		Dark:  "#F8F8F2",
	}
)

// Error style for error messages - bold red.
var Error = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorError)

// Warning style for warning messages - bold orange.
var Warning = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWarning)

// Success style for success messages - bold green.
var Success = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorSuccess)

// Info style for informational messages - bold cyan.
var Info = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorInfo)

// FilePath style for file paths and locations - bold purple.
var FilePath = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorPurple)

// LineNumber style for line/column prefixes in diagnostics - muted.
var LineNumber = lipgloss.NewStyle().
	Foreground(ColorComment)

// ContextLine style for plain message text following a diagnostic prefix.
var ContextLine = lipgloss.NewStyle().
	Foreground(ColorForeground)
