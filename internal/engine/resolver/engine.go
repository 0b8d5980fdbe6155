// Package resolver resolves include directives to files and computes their metrics.
package resolver

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports"
	"go.trai.ch/incinfo/internal/engine/scanner"
	"go.trai.ch/incinfo/internal/engine/stdheader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Options controls a single resolution request.
type Options struct {
	// Recursive aggregates line and byte counts over all transitive includes.
	Recursive bool
	// Timeout bounds the whole request. Zero means no bound beyond ctx.
	Timeout time.Duration
}

// OptionsFrom derives request options from the invocation's configuration.
func OptionsFrom(cfg domain.Configuration) Options {
	return Options{Recursive: cfg.Recursive, Timeout: cfg.Timeout}
}

// Engine resolves include directives against a session scoped cache.
//
// Every scanned file is cached. Standard headers stay valid for the session,
// project headers only while their modification time is unchanged. Concurrent
// requests for the same file and modification time share a single scan.
type Engine struct {
	paths     ports.PathResolver
	docs      ports.DocumentStore
	cache     ports.ResolutionCache
	logger    ports.Logger
	telemetry ports.Telemetry
	now       func() time.Time

	mu       sync.Mutex
	fallback map[string]domain.FileIdentity

	inflight singleflight.Group
	scans    atomic.Int64
	onScan   func(domain.FileIdentity)
}

// New creates an Engine with its own fallback map. The cache is shared state
// owned by the caller; pass a fresh one to isolate sessions.
func New(
	paths ports.PathResolver,
	docs ports.DocumentStore,
	cache ports.ResolutionCache,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Engine {
	return &Engine{
		paths:     paths,
		docs:      docs,
		cache:     cache,
		logger:    logger,
		telemetry: telemetry,
		now:       time.Now,
		fallback:  make(map[string]domain.FileIdentity),
	}
}

// WithClock replaces the clock used for LastValidated.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// OnScan registers a hook called after every file scan.
func (e *Engine) OnScan(fn func(domain.FileIdentity)) *Engine {
	e.onScan = fn
	return e
}

// ScanCount returns how many files have been scanned since the engine was created.
func (e *Engine) ScanCount() int64 {
	return e.scans.Load()
}

// ResolveIncludeInfo resolves the directive at pos in source and returns the
// metrics of the file it names.
//
// Failures are reported as domain.ErrNoDirective, domain.ErrResolutionFailed,
// domain.ErrScanFailed or domain.ErrResolutionTimeout. None of them affect
// the cache.
func (e *Engine) ResolveIncludeInfo(
	ctx context.Context,
	source domain.FileIdentity,
	pos domain.Position,
	opts Options,
) (domain.FileMetrics, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	ctx, vertex := e.telemetry.Record(ctx, fmt.Sprintf("resolve %s:%s", source.Name(), pos))

	directive, err := e.directiveAt(ctx, source, pos)
	if err != nil {
		vertex.Complete(err)
		return domain.FileMetrics{}, err
	}

	m, cached, err := e.resolve(ctx, source, directive)
	if err == nil && opts.Recursive {
		m, err = e.aggregate(ctx, m)
	}
	err = timeoutError(ctx, err)

	switch {
	case err != nil:
		vertex.Complete(err)
		return domain.FileMetrics{}, err
	case cached && !opts.Recursive:
		vertex.Cached()
	default:
		vertex.Complete(nil)
	}
	return m, nil
}

// ListDirectIncludes returns the direct includes recorded by the last scan of file.
func (e *Engine) ListDirectIncludes(_ context.Context, file domain.FileIdentity) (map[string]domain.IncludeDirective, error) {
	entry, ok := e.cache.Get(file)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotResolved, file.Name()), "file", file.Path())
	}
	return entry.Metrics.IncludedNames, nil
}

// directiveAt reads source and returns the directive on the line of pos.
func (e *Engine) directiveAt(ctx context.Context, source domain.FileIdentity, pos domain.Position) (domain.IncludeDirective, error) {
	doc, err := e.docs.Open(ctx, source)
	if err != nil {
		return domain.IncludeDirective{}, domain.WithKind(domain.ErrScanFailed, err)
	}

	src := scanner.NewSourceText(scanner.Strip(doc.Text))
	directive, ok := scanner.DirectiveAt(src, pos)
	if !ok {
		err := zerr.Wrap(domain.ErrNoDirective, source.Name()+":"+strconv.Itoa(pos.Line+1))
		return domain.IncludeDirective{}, zerr.With(err, "file", source.Path())
	}
	return directive, nil
}

// resolve maps a known directive of source to its target and returns the target's metrics.
// The boolean is true when the metrics came from the cache.
func (e *Engine) resolve(
	ctx context.Context,
	source domain.FileIdentity,
	directive domain.IncludeDirective,
) (domain.FileMetrics, bool, error) {
	targets, err := e.paths.ResolveDefinition(ctx, source, directive.Position)
	if err != nil {
		return domain.FileMetrics{}, false, domain.WithKind(domain.ErrResolutionFailed, err)
	}
	if len(targets) == 0 || targets[0] == nil || targets[0].Target().File.IsZero() {
		err := zerr.Wrap(domain.ErrResolutionFailed, directive.Spelling())
		return domain.FileMetrics{}, false, zerr.With(err, "file", source.Path())
	}

	target := e.correctSpurious(directive, targets[0].Target().File)

	stat, err := e.docs.Stat(ctx, target)
	if err != nil {
		return domain.FileMetrics{}, false, domain.WithKind(domain.ErrScanFailed, err)
	}

	if e.cache.IsValid(target, stat.ModTime) {
		if entry, ok := e.cache.Get(target); ok {
			return entry.Metrics, true, nil
		}
	}

	m, err := e.scanShared(ctx, target, stat)
	return m, false, err
}

// correctSpurious replaces a candidate whose file name differs from the base
// name of the directive with the file previously resolved for the same
// directive text. Matching candidates are remembered; a spurious candidate
// with no recorded alternative is used as is but not remembered.
func (e *Engine) correctSpurious(directive domain.IncludeDirective, candidate domain.FileIdentity) domain.FileIdentity {
	e.mu.Lock()
	defer e.mu.Unlock()

	if path.Base(directive.Name) == candidate.Name() {
		e.fallback[directive.Name] = candidate
		return candidate
	}

	if known, ok := e.fallback[directive.Name]; ok {
		e.logger.Debug(fmt.Sprintf("corrected %s to %s (resolver offered %s)", directive.Spelling(), known, candidate))
		return known
	}

	e.logger.Warn(fmt.Sprintf("%s resolved to %s, which does not match its name", directive.Spelling(), candidate))
	return candidate
}

// scanShared scans target, joining an in-flight scan of the same file and
// modification time if there is one. The shared scan is detached from the
// caller's cancellation so that one caller giving up does not fail the others.
func (e *Engine) scanShared(ctx context.Context, target domain.FileIdentity, stat domain.FileStat) (domain.FileMetrics, error) {
	key := target.Path() + "@" + strconv.FormatInt(stat.ModTime.UnixNano(), 10)
	detached := context.WithoutCancel(ctx)

	ch := e.inflight.DoChan(key, func() (any, error) {
		return e.scan(detached, target, stat)
	})

	select {
	case <-ctx.Done():
		return domain.FileMetrics{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.FileMetrics{}, res.Err
		}
		m, _ := res.Val.(domain.FileMetrics)
		return m.Clone(), nil
	}
}

// scan reads target, records its direct includes and stores the result in the cache.
func (e *Engine) scan(ctx context.Context, target domain.FileIdentity, stat domain.FileStat) (domain.FileMetrics, error) {
	doc, err := e.docs.Open(ctx, target)
	if err != nil {
		return domain.FileMetrics{}, domain.WithKind(domain.ErrScanFailed, err)
	}

	masked := scanner.Strip(doc.Text)
	names := make(map[string]domain.IncludeDirective)
	for d := range scanner.Directives(scanner.NewSourceText(masked)) {
		if _, dup := names[d.Name]; !dup {
			names[d.Name] = d
		}
	}

	std := stdheader.IsStdHeader(target.Name())
	m := domain.FileMetrics{
		Identity:      target,
		LineCount:     doc.LineCount,
		ByteCount:     len(masked),
		IncludedCount: len(names),
		IncludedNames: names,
		Standard:      std,
		ModTime:       stat.ModTime,
		Digest:        doc.Digest,
		LastValidated: e.now(),
	}

	e.cache.Put(target, domain.CacheEntry{Metrics: m, Standard: std, Token: stat.ModTime})
	e.scans.Add(1)
	if e.onScan != nil {
		e.onScan(target)
	}

	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelDebug, fmt.Sprintf("scanned %s: %d lines, %d includes", target, m.LineCount, m.IncludedCount))
	}
	return m, nil
}

// aggregate sums line and byte counts over root and every distinct file it
// transitively includes. A file reached again is not counted twice; reaching
// a file that is still being expanded is a cycle and counts as zero.
func (e *Engine) aggregate(ctx context.Context, root domain.FileMetrics) (domain.FileMetrics, error) {
	agg := &domain.Aggregate{Files: 1}
	lines, bytes := root.LineCount, root.ByteCount
	visited := map[domain.FileIdentity]bool{root.Identity: true}
	onPath := map[domain.FileIdentity]bool{root.Identity: true}

	var walk func(m domain.FileMetrics) error
	walk = func(m domain.FileMetrics) error {
		for _, d := range inOrder(m.IncludedNames) {
			if err := ctx.Err(); err != nil {
				return err
			}

			child, _, err := e.resolve(ctx, m.Identity, d)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				agg.Unresolved = append(agg.Unresolved, m.Identity.Name()+": "+d.Spelling())
				continue
			}

			id := child.Identity
			if onPath[id] {
				agg.Cycles++
				continue
			}
			if visited[id] {
				continue
			}
			visited[id] = true
			agg.Files++
			lines += child.LineCount
			bytes += child.ByteCount

			onPath[id] = true
			if err := walk(child); err != nil {
				return err
			}
			delete(onPath, id)
		}
		return nil
	}

	if err := walk(root); err != nil {
		return domain.FileMetrics{}, err
	}

	out := root.Clone()
	out.LineCount = lines
	out.ByteCount = bytes
	out.Transitive = agg
	return out, nil
}

// inOrder returns the directives sorted by their position in the file.
func inOrder(names map[string]domain.IncludeDirective) []domain.IncludeDirective {
	out := make([]domain.IncludeDirective, 0, len(names))
	for _, d := range names {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b domain.IncludeDirective) int {
		if c := cmp.Compare(a.Position.Line, b.Position.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.Position.Column, b.Position.Column)
	})
	return out
}

func timeoutError(ctx context.Context, err error) error {
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.WithKind(domain.ErrResolutionTimeout, err)
	}
	return err
}
