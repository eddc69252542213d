package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnsupportedFormat is returned when a format name resolves to no formatter
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                     { return ff.ID }

// WriteFormatted runs a formatter and writes its output to w.
func WriteFormatted(w io.Writer, f Formatter, report *Report) error {
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s output: %w", f.Name(), err)
	}
	return nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// ResolveFormatter is GetFormatterByName with an error listing the choices.
func ResolveFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"table":       "console",
	"json-pretty": "json",
	"yml":         "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
