package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// emptyDocument is written to newly created namespace files. It is valid
// JSON and valid YAML.
var emptyDocument = []byte("{}")

// ensureDir creates dir (and its parents) when it does not exist.
// Anything other than "not found" is reported as ErrDirectoryAccess.
func (l *Loader) ensureDir(ctx context.Context, dir string, attrs ...any) error {
	log := l.logger.With(attrs...).With(slog.String("path", dir))

	info, err := os.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			log.ErrorContext(ctx, "path exists but is not a directory")
			return fmt.Errorf("%w: %s is not a directory", ErrDirectoryAccess, dir)
		}
		log.DebugContext(ctx, "directory found")
		return nil

	case errors.Is(err, fs.ErrNotExist):
		log.DebugContext(ctx, "directory does not exist, creating")
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			log.ErrorContext(ctx, "failed to create directory", slog.String("error", err.Error()))
			return fmt.Errorf("%w: creating %s: %w", ErrDirectoryAccess, dir, err)
		}
		log.DebugContext(ctx, "directory created")
		return nil

	default:
		log.ErrorContext(ctx, "failed to access directory", slog.String("error", err.Error()))
		return fmt.Errorf("%w: checking %s: %w", ErrDirectoryAccess, dir, err)
	}
}

// ensureNamespace loads the namespace file, creating it with an empty
// document when it does not exist. Existing files are never written.
func (l *Loader) ensureNamespace(ctx context.Context, file string, attrs ...any) (Value, error) {
	log := l.logger.With(attrs...).With(slog.String("path", file))

	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		log.DebugContext(ctx, "namespace file found")
		return l.parseNamespace(ctx, log, file, data)

	case errors.Is(err, fs.ErrNotExist):
		log.DebugContext(ctx, "namespace file does not exist, creating")
		return l.createNamespace(ctx, log, file)

	default:
		log.ErrorContext(ctx, "failed to read namespace file", slog.String("error", err.Error()))
		return Value{}, fmt.Errorf("%w: reading %s: %w", ErrNamespaceFile, file, err)
	}
}

func (l *Loader) createNamespace(ctx context.Context, log *slog.Logger, file string) (Value, error) {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		// Created by someone else since the read above.
		log.DebugContext(ctx, "namespace file appeared concurrently, loading it")
		data, err := os.ReadFile(file)
		if err != nil {
			log.ErrorContext(ctx, "failed to read namespace file", slog.String("error", err.Error()))
			return Value{}, fmt.Errorf("%w: reading %s: %w", ErrNamespaceFile, file, err)
		}
		return l.parseNamespace(ctx, log, file, data)
	}
	if err != nil {
		log.ErrorContext(ctx, "failed to create namespace file", slog.String("error", err.Error()))
		return Value{}, fmt.Errorf("%w: creating %s: %w", ErrNamespaceFile, file, err)
	}

	if err := fillFile(f, func(w io.Writer) error {
		_, err := w.Write(emptyDocument)
		return err
	}); err != nil {
		log.ErrorContext(ctx, "failed to write namespace file", slog.String("error", err.Error()))
		return Value{}, fmt.Errorf("%w: writing %s: %w", ErrNamespaceFile, file, err)
	}

	log.DebugContext(ctx, "namespace file created")
	return ObjectValue(nil), nil
}

// fillFile runs write against a file this process just created and closes it.
// On failure the file is removed, so the next run creates it again instead of
// failing to parse a truncated document.
func fillFile(f *os.File, write func(io.Writer) error) error {
	err := errors.Join(write(f), f.Close())
	if err == nil {
		return nil
	}
	if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		err = errors.Join(err, rmErr)
	}
	return err
}

func (l *Loader) parseNamespace(ctx context.Context, log *slog.Logger, file string, data []byte) (Value, error) {
	value, err := decodeDocument(l.format, data)
	if err != nil {
		log.ErrorContext(ctx, "failed to parse namespace file", slog.String("error", err.Error()))
		return Value{}, fmt.Errorf("%w: parsing %s: %w", ErrNamespaceFile, file, err)
	}
	log.DebugContext(ctx, "namespace file loaded")
	return value, nil
}
