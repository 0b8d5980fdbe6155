package fs

import (
	"cmp"
	"context"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/hbollon/go-edlib"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports"
	"go.trai.ch/incinfo/internal/engine/scanner"
)

var _ ports.IncludePathResolver = (*Resolver)(nil)

// fuzzyThreshold is the minimum Jaro-Winkler similarity for a workspace file
// whose base name differs from the directive to still be offered.
const fuzzyThreshold = 0.9

// Resolver finds the file an include directive names.
//
// It searches the including file's directory (quoted includes only), then
// the include directories, then the system directories. When all of them
// miss, it falls back to an index of every file under the workspace root and
// offers the closest names first. Like an editor's index, the fallback can
// point at the wrong file.
type Resolver struct {
	docs   ports.DocumentStore
	walker *Walker

	mu    sync.Mutex
	cfg   domain.Configuration
	index map[string][]string
}

// NewResolver creates a Resolver reading sources through docs.
func NewResolver(docs ports.DocumentStore, walker *Walker) *Resolver {
	return &Resolver{docs: docs, walker: walker}
}

// Configure replaces the search paths. The workspace index is rebuilt lazily
// when the root or the ignore globs change.
func (r *Resolver) Configure(cfg domain.Configuration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg.Root != r.cfg.Root || !slices.Equal(cfg.Ignore, r.cfg.Ignore) {
		r.index = nil
	}
	r.cfg = cfg
}

// ResolveDefinition reads the directive at pos in file and returns every file
// it could refer to, best match first. A position that is not on a directive,
// or a directive nothing matches, yields an empty result.
func (r *Resolver) ResolveDefinition(ctx context.Context, file domain.FileIdentity, pos domain.Position) ([]domain.DefinitionTarget, error) {
	doc, err := r.docs.Open(ctx, file)
	if err != nil {
		return nil, err
	}

	directive, ok := scanner.DirectiveAt(scanner.NewSourceText(scanner.Strip(doc.Text)), pos)
	if !ok {
		return nil, nil
	}

	r.mu.Lock()
	cfg := r.cfg
	r.mu.Unlock()

	rel := filepath.FromSlash(directive.Name)
	if filepath.IsAbs(rel) {
		if target, ok := r.link(directive, rel); ok {
			return []domain.DefinitionTarget{target}, nil
		}
		return nil, nil
	}

	for _, dir := range searchDirs(file, directive, cfg) {
		if target, ok := r.link(directive, filepath.Join(dir, rel)); ok {
			return []domain.DefinitionTarget{target}, nil
		}
	}

	paths, err := r.lookup(ctx, directive.Name)
	if err != nil {
		return nil, err
	}
	targets := make([]domain.DefinitionTarget, 0, len(paths))
	seen := make(map[domain.FileIdentity]struct{}, len(paths))
	for _, p := range paths {
		target, ok := r.link(directive, p)
		if !ok {
			continue
		}
		if _, dup := seen[target.File]; dup {
			continue
		}
		seen[target.File] = struct{}{}
		targets = append(targets, target)
	}
	return targets, nil
}

func searchDirs(file domain.FileIdentity, directive domain.IncludeDirective, cfg domain.Configuration) []string {
	dirs := make([]string, 0, 1+len(cfg.SearchPaths.IncludeDirs)+len(cfg.SearchPaths.SystemDirs))
	if directive.Quoted {
		dirs = append(dirs, file.Dir())
	}
	for _, dir := range cfg.SearchPaths.IncludeDirs {
		dirs = append(dirs, absUnder(cfg.Root, dir))
	}
	for _, dir := range cfg.SearchPaths.SystemDirs {
		dirs = append(dirs, absUnder(cfg.Root, dir))
	}
	return dirs
}

func absUnder(root, dir string) string {
	if filepath.IsAbs(dir) || root == "" {
		return dir
	}
	return filepath.Join(root, dir)
}

// link points directive at the regular file p. The target identity is
// canonical, so every spelling of a path to one file yields the same identity.
func (r *Resolver) link(directive domain.IncludeDirective, p string) (domain.LocationLink, bool) {
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return domain.LocationLink{}, false
	}
	id, err := r.docs.Canonicalize(p)
	if err != nil {
		return domain.LocationLink{}, false
	}
	return domain.LocationLink{Origin: directive.Position, File: id}, true
}

// lookup returns workspace files matching name, ranked by similarity of
// their trailing path components to name.
func (r *Resolver) lookup(ctx context.Context, name string) ([]string, error) {
	index, err := r.workspaceIndex(ctx)
	if err != nil || len(index) == 0 {
		return nil, err
	}

	base := path.Base(name)
	candidates := index[base]
	if len(candidates) == 0 {
		for key, paths := range index {
			score, err := edlib.StringsSimilarity(base, key, edlib.JaroWinkler)
			if err == nil && score >= fuzzyThreshold {
				candidates = append(candidates, paths...)
			}
		}
	}
	return rank(name, candidates), nil
}

type scored struct {
	path  string
	score float32
}

func rank(name string, paths []string) []string {
	depth := strings.Count(name, "/") + 1
	list := make([]scored, 0, len(paths))
	for _, p := range paths {
		score, err := edlib.StringsSimilarity(name, tail(p, depth), edlib.Levenshtein)
		if err != nil {
			continue
		}
		list = append(list, scored{path: p, score: score})
	}

	slices.SortFunc(list, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.path, b.path)
	})

	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.path
	}
	return out
}

// tail returns the last n slash separated components of p.
func tail(p string, n int) string {
	parts := strings.Split(filepath.ToSlash(p), "/")
	if len(parts) > n {
		parts = parts[len(parts)-n:]
	}
	return strings.Join(parts, "/")
}

func (r *Resolver) workspaceIndex(ctx context.Context) (map[string][]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index != nil || r.cfg.Root == "" {
		return r.index, nil
	}

	index := make(map[string][]string)
	for p := range r.walker.WalkFiles(r.cfg.Root, r.cfg.Ignore) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		base := filepath.Base(p)
		index[base] = append(index[base], p)
	}
	r.index = index
	return index, nil
}
