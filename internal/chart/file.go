package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"nearstars/internal/blackbody"
	"nearstars/internal/catalog"
	"nearstars/internal/logging"
)

// ErrOutputLocked is returned when another process is writing the same image.
var ErrOutputLocked = errors.New("output is locked by another process")

// LockPath returns the advisory lock file guarding output.
func LockPath(output string) string {
	return output + ".lock"
}

// RenderFile renders to path. The image is written to a temp file in the same
// directory and renamed into place while holding the output lock.
func (r *Renderer) RenderFile(path string, table *catalog.Table, grid *blackbody.Grid) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure output directory: %w", err)
	}

	lock := flock.New(LockPath(path))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutputLocked, path)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release output lock", logging.String("lock", lock.Path()), logging.Error(err))
		}
	}()

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if err := r.Render(tmp, table, grid); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp output: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("move output into place: %w", err)
	}

	r.logger.Info("chart written", logging.String(logging.FieldPath, path))
	return nil
}
