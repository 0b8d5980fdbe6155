package ports

import (
	"context"

	"go.trai.ch/incinfo/internal/core/domain"
)

// PathResolver maps an include directive to the file it names.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// ResolveDefinition returns the definition targets for the directive at pos in file.
	// An empty result means the target is unknown; it is not an error.
	ResolveDefinition(ctx context.Context, file domain.FileIdentity, pos domain.Position) ([]domain.DefinitionTarget, error)
}

// IncludePathResolver is a PathResolver whose search roots are supplied per invocation.
type IncludePathResolver interface {
	PathResolver
	// Configure replaces the search paths, workspace root and ignore globs.
	Configure(cfg domain.Configuration)
}
