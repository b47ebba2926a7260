package i18n

import (
	"context"
	"fmt"
	"os"
)

// Healthcheck returns a probe compatible with func(context.Context) error
// health check registries. It fails until Initialize has completed once and
// whenever the base directory stops being an accessible directory.
func (l *Loader) Healthcheck() func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.catalog.Load() == nil {
			return ErrNotInitialized
		}
		info, err := os.Stat(l.path)
		if err != nil {
			return fmt.Errorf("%w: checking %s: %w", ErrDirectoryAccess, l.path, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: %s is not a directory", ErrDirectoryAccess, l.path)
		}
		return nil
	}
}
