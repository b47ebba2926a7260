// Package langloader keeps a localization directory tree in place and serves
// dotted key lookups with {{placeholder}} substitution from it.
//
// The implementation lives in pkg/i18n; this package re-exports its public
// API for the common case:
//
//	loader, err := langloader.New(
//		langloader.WithPath("lang"),
//		langloader.WithLanguages("en-us", "de"),
//		langloader.WithNamespaces("errors"),
//	)
//	if err != nil {
//		return err
//	}
//	if err := loader.Initialize(ctx); err != nil {
//		log.Error("translations partially loaded", "error", err)
//	}
//	msg := loader.T("de", "errors.notFound", langloader.M{"item": "Datei"})
package langloader

import (
	"log/slog"

	"github.com/dmitrymomot/langloader/pkg/i18n"
)

// Type aliases - public API
type (
	// Loader prepares the directory tree and resolves key paths.
	Loader = i18n.Loader

	// Option configures a Loader.
	Option = i18n.Option

	// Value is a node of a loaded namespace document.
	Value = i18n.Value

	// M maps placeholder names to values.
	M = i18n.M

	// Translator binds lookups to one language.
	Translator = i18n.Translator

	// FileFormat selects JSON or YAML namespace files.
	FileFormat = i18n.FileFormat
)

// Errors reported by Initialize.
var (
	ErrDirectoryAccess = i18n.ErrDirectoryAccess
	ErrNamespaceFile   = i18n.ErrNamespaceFile
)

// New creates a Loader. See i18n.New for defaults.
func New(opts ...Option) (*Loader, error) {
	return i18n.New(opts...)
}

// NewTranslator creates a Translator for language.
func NewTranslator(loader *Loader, language string) *Translator {
	return i18n.NewTranslator(loader, language)
}

// WithPath sets the base directory.
func WithPath(path string) Option { return i18n.WithPath(path) }

// WithLanguages sets the language codes.
func WithLanguages(langs ...string) Option { return i18n.WithLanguages(langs...) }

// WithNamespaces sets the namespace names.
func WithNamespaces(namespaces ...string) Option { return i18n.WithNamespaces(namespaces...) }

// WithDebug toggles filesystem diagnostics.
func WithDebug(enabled bool) Option { return i18n.WithDebug(enabled) }

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option { return i18n.WithLogger(l) }

// WithFileFormat selects the namespace file format.
func WithFileFormat(format FileFormat) Option { return i18n.WithFileFormat(format) }
