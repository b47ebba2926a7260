package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/langloader/pkg/logger"
)

// Loader keeps the on-disk layout <path>/<lang>/<namespace>.json in place
// and serves lookups from the namespaces loaded by Initialize.
// Configuration is immutable after New; lookups are safe for concurrent use.
type Loader struct {
	logger *slog.Logger

	// Published once per Initialize; nil until the first run finishes.
	catalog atomic.Pointer[catalog]

	path       string
	format     FileFormat
	languages  []string
	namespaces []string
	debug      bool
}

// catalog maps language -> namespace -> parsed document.
type catalog map[string]map[string]Value

type languageSlot struct {
	namespaces []namespaceSlot
	ready      bool
}

type namespaceSlot struct {
	value  Value
	loaded bool
}

// New creates a Loader with the given options.
// Without options it manages ./lang with language "en-us" and namespace "errors",
// and writes debug diagnostics to stdout.
func New(opts ...Option) (*Loader, error) {
	l := &Loader{
		path:       DefaultPath,
		format:     FormatJSON,
		languages:  []string{DefaultLang},
		namespaces: []string{DefaultNamespace},
		debug:      true,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	abs, err := filepath.Abs(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %q: %w", ErrDirectoryAccess, l.path, err)
	}
	l.path = abs

	switch {
	case !l.debug:
		l.logger = logger.NewNope()
	case l.logger == nil:
		l.logger = logger.NewDebug(os.Stdout)
	}

	return l, nil
}

// Initialize makes sure the base directory, every language directory and
// every namespace file exist, then loads the namespace files into memory.
//
// A failure on the base directory aborts immediately. Failures on a language
// or namespace only affect that branch: the remaining branches still run, the
// successfully loaded namespaces are published, and the first branch error is
// returned.
func (l *Loader) Initialize(ctx context.Context) error {
	if err := l.ensureDir(ctx, l.path); err != nil {
		return err
	}

	slots := make([]languageSlot, len(l.languages))

	var g errgroup.Group
	for i, lang := range l.languages {
		slots[i].namespaces = make([]namespaceSlot, len(l.namespaces))
		g.Go(func() error {
			return l.initLanguage(ctx, lang, &slots[i])
		})
	}
	err := g.Wait()

	l.catalog.Store(l.buildCatalog(slots))

	if err != nil {
		l.logger.ErrorContext(ctx, "initialization finished with errors", slog.String("error", err.Error()))
		return err
	}
	l.logger.DebugContext(ctx, "initialization finished", slog.String("path", l.path))
	return nil
}

func (l *Loader) initLanguage(ctx context.Context, lang string, slot *languageSlot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Join(l.path, lang)
	if err := l.ensureDir(ctx, dir, slog.String("lang", lang)); err != nil {
		return err
	}
	slot.ready = true

	var g errgroup.Group
	for i, ns := range l.namespaces {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file := filepath.Join(dir, ns+l.format.Ext())
			value, err := l.ensureNamespace(ctx, file, slog.String("lang", lang), slog.String("namespace", ns))
			if err != nil {
				return err
			}
			slot.namespaces[i] = namespaceSlot{value: value, loaded: true}
			return nil
		})
	}
	return g.Wait()
}

func (l *Loader) buildCatalog(slots []languageSlot) *catalog {
	c := make(catalog, len(slots))
	for i, slot := range slots {
		if !slot.ready {
			continue
		}
		namespaces := make(map[string]Value, len(slot.namespaces))
		for j, ns := range slot.namespaces {
			if ns.loaded {
				namespaces[l.namespaces[j]] = ns.value
			}
		}
		c[l.languages[i]] = namespaces
	}
	return &c
}

// Get resolves keyPath for the given language. The first dot-separated
// segment names the namespace; the rest walk the namespace document.
//
// When the resolved value is a string and at least one placeholder map is
// given, {{name}} tokens are substituted. Any resolution failure, including
// calls before Initialize, yields false. A null leaf counts as missing.
func (l *Loader) Get(language, keyPath string, placeholders ...M) (Value, bool) {
	if l == nil {
		return Value{}, false
	}
	c := l.catalog.Load()
	if c == nil {
		return Value{}, false
	}

	namespaces, ok := (*c)[normalizeName(language)]
	if !ok {
		return Value{}, false
	}

	nsName, rest, nested := strings.Cut(keyPath, ".")
	root, ok := namespaces[normalizeName(nsName)]
	if !ok {
		return Value{}, false
	}

	value := root
	if nested {
		if value, ok = root.Lookup(strings.Split(rest, ".")...); !ok {
			return Value{}, false
		}
	}
	if value.Kind() == KindNull {
		return Value{}, false
	}

	if s, isString := value.AsString(); isString && len(placeholders) > 0 {
		return StringValue(replacePlaceholdersWithMerge(s, placeholders...)), true
	}
	return value, true
}

// GetString is Get restricted to string leaves.
func (l *Loader) GetString(language, keyPath string, placeholders ...M) (string, bool) {
	value, ok := l.Get(language, keyPath, placeholders...)
	if !ok {
		return "", false
	}
	return value.AsString()
}

// T returns the string at keyPath, or keyPath itself when it cannot be resolved
// to a string.
func (l *Loader) T(language, keyPath string, placeholders ...M) string {
	if s, ok := l.GetString(language, keyPath, placeholders...); ok {
		return s
	}
	return keyPath
}

// Loaded returns, per language, the sorted names of the namespaces that were
// loaded by the last Initialize. Languages whose directory could not be
// prepared are omitted.
func (l *Loader) Loaded() map[string][]string {
	c := l.catalog.Load()
	if c == nil {
		return map[string][]string{}
	}
	result := make(map[string][]string, len(*c))
	for lang, namespaces := range *c {
		result[lang] = slices.Sorted(maps.Keys(namespaces))
	}
	return result
}

// Languages returns the configured language codes.
func (l *Loader) Languages() []string {
	return slices.Clone(l.languages)
}

// Namespaces returns the configured namespace names.
func (l *Loader) Namespaces() []string {
	return slices.Clone(l.namespaces)
}

// Path returns the absolute base directory.
func (l *Loader) Path() string {
	return l.path
}

// Format returns the namespace file format.
func (l *Loader) Format() FileFormat {
	return l.format
}

// Debug reports whether diagnostic logging is enabled.
func (l *Loader) Debug() bool {
	return l.debug
}
