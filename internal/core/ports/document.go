package ports

import (
	"context"

	"go.trai.ch/incinfo/internal/core/domain"
)

// DocumentStore gives read access to file contents and metadata.
//
//go:generate mockgen -source=document.go -destination=mocks/mock_document.go -package=mocks
type DocumentStore interface {
	// Open returns the current content of the file.
	Open(ctx context.Context, id domain.FileIdentity) (domain.Document, error)
	// Stat returns the freshness token of the file.
	Stat(ctx context.Context, id domain.FileIdentity) (domain.FileStat, error)
	// Canonicalize turns a user supplied path into a FileIdentity.
	Canonicalize(path string) (domain.FileIdentity, error)
}
