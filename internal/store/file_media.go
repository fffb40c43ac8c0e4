package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fieldpress/fieldpress/internal/logger"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// mediaFileStore keeps uploaded files on the local filesystem. Each stored
// file gets a random prefix so repeated uploads of the same name never
// collide.
type mediaFileStore struct {
	dir    string
	logger *logger.Logger
}

// NewMediaFileStore creates the media directory if needed and returns a
// filesystem-backed [MediaStore].
func NewMediaFileStore(dir string, log *logger.Logger) (MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media directory %q: %w", dir, err)
	}

	return &mediaFileStore{
		dir:    dir,
		logger: log,
	}, nil
}

// Save streams r into a temporary file inside the media directory and renames
// it into place only once the copy fully succeeds. On any failure the
// temporary file is removed, so a partial upload never becomes visible.
func (s *mediaFileStore) Save(ctx context.Context, fileName string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	prefix, err := gonanoid.New(10)
	if err != nil {
		return "", fmt.Errorf("generating file prefix: %w", err)
	}
	storedName := prefix + "-" + sanitizeFileName(fileName)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*mediaFileStore.Save").Msg("error: creating temp file failed")
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.Err(err).Str("func", "*mediaFileStore.Save").Msg("error: writing upload failed")
		return "", fmt.Errorf("writing upload: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing upload: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, storedName)); err != nil {
		os.Remove(tmp.Name())
		log.Err(err).Str("func", "*mediaFileStore.Save").Msg("error: renaming upload failed")
		return "", fmt.Errorf("storing upload: %w", err)
	}

	return storedName, nil
}

// Remove deletes a stored file. Removing a file that is already gone is not
// an error.
func (s *mediaFileStore) Remove(ctx context.Context, storedName string) error {
	// Reject anything that could escape the media directory.
	if storedName == "" || storedName != filepath.Base(storedName) {
		return fmt.Errorf("%w: %q", ErrInvalidMediaName, storedName)
	}

	if err := os.Remove(filepath.Join(s.dir, storedName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing media file: %w", err)
	}
	return nil
}

// sanitizeFileName strips path components and replaces characters outside a
// conservative allowed set.
func sanitizeFileName(name string) string {
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		out = "file"
	}
	return out
}
