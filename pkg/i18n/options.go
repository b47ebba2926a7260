package i18n

import (
	"fmt"
	"log/slog"
	"strings"
)

// Defaults applied by New when the corresponding option is not given.
const (
	DefaultPath      = "lang"
	DefaultLang      = "en-us"
	DefaultNamespace = "errors"
)

// FileFormat selects the encoding and extension of namespace files.
type FileFormat string

const (
	FormatJSON FileFormat = "json"
	FormatYAML FileFormat = "yaml"
)

// ParseFileFormat converts a user supplied format name into a FileFormat.
// "yml" is accepted as an alias for "yaml".
func ParseFileFormat(s string) (FileFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("i18n: unsupported file format %q", s)
	}
}

// Ext returns the file extension including the leading dot.
func (f FileFormat) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// Option configures the Loader during construction.
type Option func(*Loader) error

// WithDebug toggles diagnostic logging of every filesystem decision.
// Debug logging is enabled by default.
func WithDebug(enabled bool) Option {
	return func(l *Loader) error {
		l.debug = enabled
		return nil
	}
}

// WithPath sets the base directory. Relative paths are resolved against
// the process working directory.
func WithPath(path string) Option {
	return func(l *Loader) error {
		if strings.TrimSpace(path) == "" {
			return ErrEmptyPath
		}
		l.path = path
		return nil
	}
}

// WithLanguages replaces the configured language codes.
// Codes are lower-cased and de-duplicated; order is preserved.
func WithLanguages(langs ...string) Option {
	return func(l *Loader) error {
		if len(langs) == 0 {
			return nil
		}
		normalized, err := normalizeNames(langs, ErrEmptyLanguage)
		if err != nil {
			return err
		}
		l.languages = normalized
		return nil
	}
}

// WithNamespaces replaces the configured namespace names.
// Names are lower-cased and de-duplicated; order is preserved.
func WithNamespaces(namespaces ...string) Option {
	return func(l *Loader) error {
		if len(namespaces) == 0 {
			return nil
		}
		normalized, err := normalizeNames(namespaces, ErrEmptyNamespace)
		if err != nil {
			return err
		}
		l.namespaces = normalized
		return nil
	}
}

// WithFileFormat selects between JSON (default) and YAML namespace files.
func WithFileFormat(format FileFormat) Option {
	return func(l *Loader) error {
		switch format {
		case FormatJSON, FormatYAML:
			l.format = format
			return nil
		default:
			return fmt.Errorf("i18n: unsupported file format %q", format)
		}
	}
}

// WithLogger sets the logger used for debug diagnostics.
// It only receives records when debug is enabled.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) error {
		if log != nil {
			l.logger = log
		}
		return nil
	}
}

func normalizeNames(names []string, errEmpty error) ([]string, error) {
	result := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		n := normalizeName(name)
		if n == "" {
			return nil, errEmpty
		}
		if n == "." || n == ".." || strings.ContainsAny(n, `/\`) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
