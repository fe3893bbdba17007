package logger

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Logger represents a debug logger for a specific namespace
type Logger struct {
	namespace string
	enabled   bool
	lastLog   time.Time
	mu        sync.Mutex
	color     string
}

var (
	// DEBUG environment variable value, read once at initialization
	debugEnv = os.Getenv("DEBUG")

	// DEBUG_COLORS environment variable to control color output
	debugColors = os.Getenv("DEBUG_COLORS") != "0"

	// Check if stderr is a terminal (for color support)
	isTTY = isatty.IsTerminal(os.Stderr.Fd())

	// Color palette - chosen to be readable on both light and dark backgrounds
	// Using ANSI 256-color codes for better compatibility
	colorPalette = []string{
		"\033[38;5;33m",  // Blue
		"\033[38;5;35m",  // Green
		"\033[38;5;166m", // Orange
		"\033[38;5;125m", // Purple
		"\033[38;5;37m",  // Cyan
		"\033[38;5;161m", // Magenta
		"\033[38;5;136m", // Yellow
		"\033[38;5;124m", // Red
		"\033[38;5;28m",  // Dark green
		"\033[38;5;63m",  // Light blue
		"\033[38;5;95m",  // Brown
		"\033[38;5;21m",  // Dark blue
	}

	colorReset = "\033[0m"

	// patternCache memoizes computeEnabled's pattern-matching result per
	// namespace. New consults it once per logger (loggers are typically
	// package-level vars, but New is also called per sub-namespace via
	// Child); the result is stored on the logger, not re-checked per line.
	patternCache     = make(map[string]bool)
	patternCacheLock sync.RWMutex
)

// New creates a new Logger for the given namespace.
// The enabled state is computed at construction time based on the DEBUG environment variable.
// DEBUG syntax follows https://www.npmjs.com/package/debug patterns, which this
// pipeline's own namespaces (fetcher, fetcher:cache, semconv:registry,
// resolver, resolver:attribute, resolver:metric, schema:loader, cli:resolve,
// ...) are written to compose with:
//
//	DEBUG=*                    - enables every stage of the pipeline
//	DEBUG=resolver:*           - enables all resolver sub-loggers
//	DEBUG=fetcher,schema:loader - enables specific namespaces
//	DEBUG=resolver:*,-resolver:metric - a namespace minus one noisy child
//
// Colors are automatically assigned to each namespace if DEBUG_COLORS != "0" and stderr is a TTY.
func New(namespace string) *Logger {
	enabled := cachedEnabled(namespace)
	color := selectColor(namespace)
	return &Logger{
		namespace: namespace,
		enabled:   enabled,
		lastLog:   time.Now(),
		color:     color,
	}
}

// Child derives a sub-namespace logger, e.g. logger.New("resolver").Child("semconv-import")
// produces a logger with namespace "resolver:semconv-import" so DEBUG=resolver:*
// picks it up alongside its parent.
func (l *Logger) Child(name string) *Logger {
	return New(l.namespace + ":" + name)
}

// selectColor selects a color for the namespace based on its hash
func selectColor(namespace string) string {
	if !debugColors || !isTTY {
		return ""
	}

	// Use FNV-1a hash for consistent color assignment
	h := fnv.New32a()
	h.Write([]byte(namespace))
	hash := h.Sum32()

	// Select color from palette based on hash
	return colorPalette[hash%uint32(len(colorPalette))]
}

// Enabled returns whether this logger is enabled
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf prints a formatted message if the logger is enabled.
// A newline is always added at the end.
// Time diff since last log is displayed like the debug npm package.
func (l *Logger) Printf(format string, args ...interface{}) {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	if l.color != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, formatDuration(diff))
	} else {
		fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, formatDuration(diff))
	}
}

// Print prints a message if the logger is enabled.
// A newline is always added at the end.
// Time diff since last log is displayed like the debug npm package.
func (l *Logger) Print(args ...interface{}) {
	if !l.enabled {
		return
	}
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	message := fmt.Sprint(args...)
	if l.color != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, formatDuration(diff))
	} else {
		fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, formatDuration(diff))
	}
}

// Println prints a message followed by a newline if the logger is enabled,
// with the same namespace/color/timing prefix as Print.
func (l *Logger) Println(args ...interface{}) {
	if !l.enabled {
		return
	}
	l.Print(fmt.Sprintln(args...))
}

// LazyPrintf invokes fn and prints its result only if the logger is
// enabled, avoiding the cost of building a diagnostic message when nobody
// will see it (e.g. a per-attribute trace line during resolution).
func (l *Logger) LazyPrintf(fn func() string) {
	if !l.enabled {
		return
	}
	l.Print(fn())
}

// formatDuration formats a duration for display like the debug npm package
func formatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}

// cachedEnabled memoizes computeEnabled's result per namespace, since the
// same namespace's loggers are constructed repeatedly (once per package
// plus once per Child call) and DEBUG does not change at runtime.
func cachedEnabled(namespace string) bool {
	patternCacheLock.RLock()
	if enabled, ok := patternCache[namespace]; ok {
		patternCacheLock.RUnlock()
		return enabled
	}
	patternCacheLock.RUnlock()

	enabled := computeEnabled(namespace)

	patternCacheLock.Lock()
	patternCache[namespace] = enabled
	patternCacheLock.Unlock()

	return enabled
}

// computeEnabled computes whether a namespace matches the DEBUG patterns.
func computeEnabled(namespace string) bool {
	patterns := strings.Split(debugEnv, ",")

	enabled := false

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)

		// Handle exclusion patterns (starting with -)
		if strings.HasPrefix(pattern, "-") {
			excludePattern := strings.TrimPrefix(pattern, "-")
			if matchPattern(namespace, excludePattern) {
				return false // Exclusions take precedence
			}
			continue
		}

		// Check if pattern matches
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}

	return enabled
}

// matchPattern checks if a namespace matches a pattern
// Supports wildcards (*) for pattern matching
func matchPattern(namespace, pattern string) bool {
	// Exact match or wildcard-all
	if pattern == "*" || pattern == namespace {
		return true
	}

	// Pattern with wildcard
	if strings.Contains(pattern, "*") {
		// Replace * with .* for regex-like matching, but keep it simple
		// Convert pattern to prefix/suffix matching
		if strings.HasSuffix(pattern, "*") {
			prefix := strings.TrimSuffix(pattern, "*")
			return strings.HasPrefix(namespace, prefix)
		}
		if strings.HasPrefix(pattern, "*") {
			suffix := strings.TrimPrefix(pattern, "*")
			return strings.HasSuffix(namespace, suffix)
		}
		// Middle wildcard: split and check both parts
		parts := strings.SplitN(pattern, "*", 2)
		if len(parts) == 2 {
			prefix := parts[0]
			suffix := parts[1]
			return strings.HasPrefix(namespace, prefix) && strings.HasSuffix(namespace, suffix)
		}
	}

	return false
}
