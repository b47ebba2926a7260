package i18n_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langloader/pkg/i18n"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newLoader(t *testing.T, opts ...i18n.Option) *i18n.Loader {
	t.Helper()
	loader, err := i18n.New(append([]i18n.Option{i18n.WithDebug(false)}, opts...)...)
	require.NoError(t, err)
	return loader
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()
		loader, err := i18n.New()
		require.NoError(t, err)

		wd, err := os.Getwd()
		require.NoError(t, err)

		require.Equal(t, []string{"en-us"}, loader.Languages())
		require.Equal(t, []string{"errors"}, loader.Namespaces())
		require.Equal(t, filepath.Join(wd, "lang"), loader.Path())
		require.Equal(t, i18n.FormatJSON, loader.Format())
		require.True(t, loader.Debug())
	})

	t.Run("lower-cases and de-duplicates names", func(t *testing.T) {
		t.Parallel()
		loader := newLoader(t,
			i18n.WithLanguages("EN-US", " de-DE ", "en-us"),
			i18n.WithNamespaces("Errors", "MAIL", "errors"),
		)
		require.Equal(t, []string{"en-us", "de-de"}, loader.Languages())
		require.Equal(t, []string{"errors", "mail"}, loader.Namespaces())
	})

	t.Run("resolves relative path", func(t *testing.T) {
		t.Parallel()
		loader := newLoader(t, i18n.WithPath("locales"))
		require.True(t, filepath.IsAbs(loader.Path()))
		require.Equal(t, "locales", filepath.Base(loader.Path()))
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			opt  i18n.Option
			err  error
		}{
			{name: "empty language", opt: i18n.WithLanguages("en", " "), err: i18n.ErrEmptyLanguage},
			{name: "empty namespace", opt: i18n.WithNamespaces(""), err: i18n.ErrEmptyNamespace},
			{name: "parent directory", opt: i18n.WithLanguages(".."), err: i18n.ErrInvalidName},
			{name: "path separator", opt: i18n.WithNamespaces("a/b"), err: i18n.ErrInvalidName},
			{name: "empty path", opt: i18n.WithPath(""), err: i18n.ErrEmptyPath},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				_, err := i18n.New(tt.opt)
				require.ErrorIs(t, err, tt.err)
			})
		}

		_, err := i18n.New(i18n.WithFileFormat("toml"))
		require.Error(t, err)
	})
}

func TestInitializeCreatesLayout(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "nested", "lang")
	loader := newLoader(t,
		i18n.WithPath(base),
		i18n.WithLanguages("EN-US", "de"),
		i18n.WithNamespaces("Errors", "mail"),
	)

	require.NoError(t, loader.Initialize(context.Background()))

	for _, lang := range []string{"en-us", "de"} {
		for _, ns := range []string{"errors", "mail"} {
			require.Equal(t, "{}", readFile(t, filepath.Join(base, lang, ns+".json")))
		}
	}

	require.Equal(t, map[string][]string{
		"en-us": {"errors", "mail"},
		"de":    {"errors", "mail"},
	}, loader.Loaded())

	value, ok := loader.Get("en-us", "errors")
	require.True(t, ok)
	require.Equal(t, i18n.KindObject, value.Kind())
	require.Zero(t, value.Len())

	_, ok = loader.Get("en-us", "errors.message")
	require.False(t, ok)
}

func TestInitializeLoadsExistingFiles(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeFile(t, filepath.Join(base, "en-us", "errors.json"), `{
		"errors": {"notFound": {"message": "Not found"}},
		"greeting": "hello {{name}}",
		"partial": "hi {{x}}",
		"list": ["first", "second"],
		"limits": {"max": 10}
	}`)
	writeFile(t, filepath.Join(base, "de", "errors.json"), `{"greeting": "hallo {{name}}"}`)

	loader := newLoader(t,
		i18n.WithPath(base),
		i18n.WithLanguages("en-us", "de"),
	)
	require.NoError(t, loader.Initialize(context.Background()))

	t.Run("nested key", func(t *testing.T) {
		t.Parallel()
		s, ok := loader.GetString("en-us", "errors.errors.notFound.message")
		require.True(t, ok)
		require.Equal(t, "Not found", s)
	})

	t.Run("substitutes variables", func(t *testing.T) {
		t.Parallel()
		s, ok := loader.GetString("en-us", "errors.greeting", i18n.M{"name": "World"})
		require.True(t, ok)
		require.Equal(t, "hello World", s)

		s, ok = loader.GetString("de", "errors.greeting", i18n.M{"name": "Welt"})
		require.True(t, ok)
		require.Equal(t, "hallo Welt", s)
	})

	t.Run("merges placeholder maps", func(t *testing.T) {
		t.Parallel()
		s, ok := loader.GetString("en-us", "errors.greeting", i18n.M{"name": "A"}, i18n.M{"name": "B"})
		require.True(t, ok)
		require.Equal(t, "hello B", s)
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		t.Parallel()
		s, ok := loader.GetString("en-us", "errors.partial", i18n.M{})
		require.True(t, ok)
		require.Equal(t, "hi {{x}}", s)
	})

	t.Run("no substitution without variables", func(t *testing.T) {
		t.Parallel()
		s, ok := loader.GetString("en-us", "errors.greeting")
		require.True(t, ok)
		require.Equal(t, "hello {{name}}", s)
	})

	t.Run("non-string values are returned as-is", func(t *testing.T) {
		t.Parallel()
		value, ok := loader.Get("en-us", "errors.limits", i18n.M{"max": 1})
		require.True(t, ok)
		require.Equal(t, i18n.KindObject, value.Kind())
		require.Equal(t, `{"max":10}`, value.String())

		_, ok = loader.GetString("en-us", "errors.limits.max")
		require.False(t, ok)
	})

	t.Run("array index", func(t *testing.T) {
		t.Parallel()
		s, ok := loader.GetString("en-us", "errors.list.1")
		require.True(t, ok)
		require.Equal(t, "second", s)
	})

	t.Run("language and namespace are case-insensitive", func(t *testing.T) {
		t.Parallel()
		s, ok := loader.GetString("EN-US", "ERRORS.greeting")
		require.True(t, ok)
		require.Equal(t, "hello {{name}}", s)

		_, ok = loader.GetString("en-us", "errors.GREETING")
		require.False(t, ok)
	})

	t.Run("T falls back to key path", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "hello Bob", loader.T("en-us", "errors.greeting", i18n.M{"name": "Bob"}))
		require.Equal(t, "errors.unknown", loader.T("en-us", "errors.unknown"))
		require.Equal(t, "errors.limits", loader.T("en-us", "errors.limits"))
	})
}

func TestGetNeverFails(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeFile(t, filepath.Join(base, "en-us", "errors.json"), `{"message": "Oops", "n": null}`)

	loader := newLoader(t, i18n.WithPath(base))
	require.NoError(t, loader.Initialize(context.Background()))

	tests := []struct {
		name    string
		lang    string
		keyPath string
	}{
		{name: "unknown language", lang: "xx-xx", keyPath: "errors.message"},
		{name: "unknown namespace", lang: "en-us", keyPath: "mail.message"},
		{name: "empty key path", lang: "en-us", keyPath: ""},
		{name: "trailing dot", lang: "en-us", keyPath: "errors."},
		{name: "double dot", lang: "en-us", keyPath: "errors..message"},
		{name: "walk into string", lang: "en-us", keyPath: "errors.message.text"},
		{name: "walk into null", lang: "en-us", keyPath: "errors.n.value"},
		{name: "empty language", lang: "", keyPath: "errors.message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.NotPanics(t, func() {
				value, ok := loader.Get(tt.lang, tt.keyPath, i18n.M{"x": 1})
				require.False(t, ok)
				require.False(t, value.IsDefined())
			})
		})
	}

	t.Run("uninitialized loader", func(t *testing.T) {
		t.Parallel()
		fresh := newLoader(t, i18n.WithPath(base))
		_, ok := fresh.Get("en-us", "errors.message")
		require.False(t, ok)
		require.Empty(t, fresh.Loaded())
	})

	t.Run("nil loader", func(t *testing.T) {
		t.Parallel()
		var nilLoader *i18n.Loader
		require.NotPanics(t, func() {
			_, ok := nilLoader.Get("en-us", "errors.message")
			require.False(t, ok)
			require.Equal(t, "errors.message", nilLoader.T("en-us", "errors.message"))
		})
	})

	t.Run("null leaf is missing", func(t *testing.T) {
		t.Parallel()
		value, ok := loader.Get("en-us", "errors.n", i18n.M{"x": 1})
		require.False(t, ok)
		require.False(t, value.IsDefined())
		require.Equal(t, "errors.n", loader.T("en-us", "errors.n"))
	})
}

func TestInitializeAcceptsByteOrderMark(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	file := filepath.Join(base, "en-us", "errors.json")
	content := "\xef\xbb\xbf{\"greeting\": \"hello\"}"
	writeFile(t, file, content)

	loader := newLoader(t, i18n.WithPath(base))
	require.NoError(t, loader.Initialize(context.Background()))
	require.Equal(t, "hello", loader.T("en-us", "errors.greeting"))
	require.Equal(t, content, readFile(t, file))
}

func TestInitializeNeverOverwrites(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	original := "{\n  \"kept\": \"as is\"\n}\n"
	file := filepath.Join(base, "en-us", "errors.json")
	writeFile(t, file, original)

	loader := newLoader(t, i18n.WithPath(base))
	require.NoError(t, loader.Initialize(context.Background()))
	require.NoError(t, loader.Initialize(context.Background()))

	require.Equal(t, original, readFile(t, file))
	require.Equal(t, "as is", loader.T("en-us", "errors.kept"))
}

func TestInitializeFailures(t *testing.T) {
	t.Parallel()

	t.Run("base path is a file", func(t *testing.T) {
		t.Parallel()
		base := filepath.Join(t.TempDir(), "lang")
		writeFile(t, base, "not a directory")

		loader := newLoader(t, i18n.WithPath(base))
		err := loader.Initialize(context.Background())
		require.ErrorIs(t, err, i18n.ErrDirectoryAccess)
		require.Empty(t, loader.Loaded())
	})

	t.Run("base path below a file", func(t *testing.T) {
		t.Parallel()
		parent := filepath.Join(t.TempDir(), "file")
		writeFile(t, parent, "x")

		loader := newLoader(t, i18n.WithPath(filepath.Join(parent, "lang")))
		err := loader.Initialize(context.Background())
		require.ErrorIs(t, err, i18n.ErrDirectoryAccess)
		require.NotErrorIs(t, err, i18n.ErrNamespaceFile)
	})

	t.Run("language path is a file", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		writeFile(t, filepath.Join(base, "de"), "x")
		writeFile(t, filepath.Join(base, "en-us", "errors.json"), `{"ok": "yes"}`)

		loader := newLoader(t, i18n.WithPath(base), i18n.WithLanguages("en-us", "de"))
		err := loader.Initialize(context.Background())
		require.ErrorIs(t, err, i18n.ErrDirectoryAccess)

		require.Equal(t, map[string][]string{"en-us": {"errors"}}, loader.Loaded())
		require.Equal(t, "yes", loader.T("en-us", "errors.ok"))
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		writeFile(t, filepath.Join(base, "en-us", "errors.json"), `{"broken": `)
		writeFile(t, filepath.Join(base, "en-us", "mail.json"), `{"subject": "Hi"}`)

		loader := newLoader(t, i18n.WithPath(base), i18n.WithNamespaces("errors", "mail", "auth"))
		err := loader.Initialize(context.Background())
		require.ErrorIs(t, err, i18n.ErrNamespaceFile)

		require.Equal(t, map[string][]string{"en-us": {"auth", "mail"}}, loader.Loaded())
		require.Equal(t, "Hi", loader.T("en-us", "mail.subject"))
		require.Equal(t, `{"broken": `, readFile(t, filepath.Join(base, "en-us", "errors.json")))
		require.Equal(t, "{}", readFile(t, filepath.Join(base, "en-us", "auth.json")))
	})

	t.Run("namespace path is a directory", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(base, "en-us", "errors.json"), 0o755))

		loader := newLoader(t, i18n.WithPath(base), i18n.WithNamespaces("errors", "mail"))
		err := loader.Initialize(context.Background())
		require.ErrorIs(t, err, i18n.ErrNamespaceFile)
		require.Equal(t, map[string][]string{"en-us": {"mail"}}, loader.Loaded())
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		base := filepath.Join(t.TempDir(), "lang")
		loader := newLoader(t, i18n.WithPath(base))
		err := loader.Initialize(ctx)
		require.ErrorIs(t, err, context.Canceled)

		_, statErr := os.Stat(filepath.Join(base, "en-us"))
		require.ErrorIs(t, statErr, os.ErrNotExist)
	})
}

func TestInitializeManyLanguages(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	langs := []string{"en-us", "en-gb", "de-de", "fr-fr", "pl-pl", "es-es", "it-it", "uk-ua"}
	namespaces := []string{"errors", "mail", "auth", "billing", "common"}

	for _, lang := range langs {
		writeFile(t, filepath.Join(base, lang, "common.json"), `{"lang": "`+lang+`"}`)
	}

	loader := newLoader(t,
		i18n.WithPath(base),
		i18n.WithLanguages(langs...),
		i18n.WithNamespaces(namespaces...),
	)
	require.NoError(t, loader.Initialize(context.Background()))

	loaded := loader.Loaded()
	require.Len(t, loaded, len(langs))

	var wg sync.WaitGroup
	for _, lang := range langs {
		require.ElementsMatch(t, namespaces, loaded[lang])

		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, lang, loader.T(lang, "common.lang"))
		}()
	}
	wg.Wait()
}

func TestYAMLFormat(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeFile(t, filepath.Join(base, "en-us", "errors.yaml"), "notFound:\n  message: \"{{item}} not found\"\ncodes:\n  - 404\n  - 410\n")

	loader := newLoader(t,
		i18n.WithPath(base),
		i18n.WithNamespaces("errors", "mail"),
		i18n.WithFileFormat(i18n.FormatYAML),
	)
	require.NoError(t, loader.Initialize(context.Background()))

	require.Equal(t, "User not found", loader.T("en-us", "errors.notFound.message", i18n.M{"item": "User"}))

	code, ok := loader.Get("en-us", "errors.codes.1")
	require.True(t, ok)
	require.Equal(t, "410", code.String())

	require.Equal(t, "{}", readFile(t, filepath.Join(base, "en-us", "mail.yaml")))
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs filesystem decisions", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		loader, err := i18n.New(
			i18n.WithPath(filepath.Join(t.TempDir(), "lang")),
			i18n.WithLogger(log),
		)
		require.NoError(t, err)
		require.NoError(t, loader.Initialize(context.Background()))

		out := buf.String()
		require.Contains(t, out, "directory does not exist, creating")
		require.Contains(t, out, "directory created")
		require.Contains(t, out, "namespace file created")
		require.Contains(t, out, "namespace=errors")
		require.Contains(t, out, "lang=en-us")
	})

	t.Run("silent when debug is disabled", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		loader, err := i18n.New(
			i18n.WithPath(filepath.Join(t.TempDir(), "lang")),
			i18n.WithLogger(log),
			i18n.WithDebug(false),
		)
		require.NoError(t, err)
		require.NoError(t, loader.Initialize(context.Background()))
		require.Empty(t, buf.String())
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "lang")
	loader := newLoader(t, i18n.WithPath(base))
	check := loader.Healthcheck()

	require.ErrorIs(t, check(context.Background()), i18n.ErrNotInitialized)

	require.NoError(t, loader.Initialize(context.Background()))
	require.NoError(t, check(context.Background()))

	require.NoError(t, os.RemoveAll(base))
	require.ErrorIs(t, check(context.Background()), i18n.ErrDirectoryAccess)
}
