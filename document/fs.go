package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/runes"
)

// ErrTooLarge is returned by FSStore.Open for files above MaxSize.
var ErrTooLarge = errors.New("file too large")

const defaultPerm fs.FileMode = 0o644

// FSStore reads and writes documents on the local filesystem.
//
// Reads replace ill-formed UTF-8 with U+FFFD. Writes go to a temporary file
// in the target directory that is renamed over the target, so a crash never
// leaves a half-written document.
type FSStore struct {
	// Perm is used for new files. Existing files keep their mode.
	Perm fs.FileMode
	// MaxSize rejects larger files on Open. Zero means unlimited.
	MaxSize int64
	Logger  *slog.Logger
}

func (s FSStore) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s FSStore) Open(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	if s.MaxSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return "", &IOError{Op: "open", Path: path, Err: err}
		}
		if info.Size() > s.MaxSize {
			return "", &IOError{Op: "open", Path: path, Err: fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, info.Size(), s.MaxSize)}
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Op: "open", Path: path, Err: err}
	}
	return runes.ReplaceIllFormed().String(string(data)), nil
}

func (s FSStore) Save(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	perm := s.Perm
	if perm == 0 {
		perm = defaultPerm
	}
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := atomicWriteFile(path, []byte(content), perm, s.logger()); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// atomicWriteFile writes data through a temp file and a rename.
func atomicWriteFile(filename string, data []byte, perm fs.FileMode, logger *slog.Logger) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, ".tmp-scribe-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	var success bool
	defer func() {
		if !success {
			if err := os.Remove(tempFile.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("failed to remove temporary file", "path", tempFile.Name(), "error", err)
			}
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file %q: %w", tempFile.Name(), err)
	}
	if err := os.Chmod(tempFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tempFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	success = true
	return nil
}
