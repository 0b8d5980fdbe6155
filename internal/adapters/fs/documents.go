package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentStore = (*Documents)(nil)

// Documents reads source files straight from disk.
type Documents struct{}

// NewDocuments creates a new Documents store.
func NewDocuments() *Documents {
	return &Documents{}
}

// Open reads the whole file and fingerprints it.
func (d *Documents) Open(ctx context.Context, id domain.FileIdentity) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	data, err := os.ReadFile(id.Path())
	if err != nil {
		return domain.Document{}, zerr.With(domain.WithKind(domain.ErrFileOpenFailed, err), "path", id.Path())
	}

	text := string(data)
	return domain.Document{
		URI:       id,
		Text:      text,
		LineCount: strings.Count(text, "\n") + 1,
		Digest:    xxhash.Sum64String(text),
	}, nil
}

// Stat returns the modification time and size of the file.
func (d *Documents) Stat(ctx context.Context, id domain.FileIdentity) (domain.FileStat, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileStat{}, err
	}

	info, err := os.Stat(id.Path())
	if err != nil {
		return domain.FileStat{}, zerr.With(domain.WithKind(domain.ErrPathStatFailed, err), "path", id.Path())
	}
	if info.IsDir() {
		return domain.FileStat{}, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, "is a directory"), "path", id.Path())
	}
	return domain.FileStat{ModTime: info.ModTime(), Size: info.Size()}, nil
}

// Canonicalize makes path absolute and resolves symlinks, so that every
// spelling of the same file maps to one identity.
func (d *Documents) Canonicalize(path string) (domain.FileIdentity, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.FileIdentity{}, zerr.With(domain.WithKind(domain.ErrCanonicalizeFailed, err), "path", path)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return domain.FileIdentity{}, zerr.With(domain.WithKind(domain.ErrCanonicalizeFailed, err), "path", path)
	}
	return domain.NewFileIdentity(resolved), nil
}
