// Package app implements the application layer for incinfo.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"runtime"
	"slices"
	"time"

	"go.trai.ch/incinfo/internal/adapters/linear"
	"go.trai.ch/incinfo/internal/adapters/telemetry/progrock"
	"go.trai.ch/incinfo/internal/adapters/watcher"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports"
	"go.trai.ch/incinfo/internal/engine/format"
	"go.trai.ch/incinfo/internal/engine/resolver"
	"go.trai.ch/incinfo/internal/engine/scanner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	docs         ports.DocumentStore
	paths        ports.IncludePathResolver
	engine       *resolver.Engine
	watcher      ports.Watcher
	telemetry    ports.Telemetry
	logger       ports.Logger
	debounce     time.Duration
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	docs ports.DocumentStore,
	paths ports.IncludePathResolver,
	engine *resolver.Engine,
	w ports.Watcher,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		docs:         docs,
		paths:        paths,
		engine:       engine,
		watcher:      w,
		telemetry:    telemetry,
		logger:       log,
		debounce:     watcher.DefaultDebounceWindow,
	}
}

// WithDebounce sets the window used to coalesce file events in Watch.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// WithWorkDir sets the directory settings are discovered from.
// It defaults to the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// SetLogMode switches the logger to debug output and/or JSON records
// when the logger supports it.
func (a *App) SetLogMode(verbose, json bool) {
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(json)
	}
}

// Close releases the watcher and flushes telemetry.
func (a *App) Close() error {
	return errors.Join(a.watcher.Stop(), a.telemetry.Close())
}

// Overrides carries command line values that take precedence over the settings file.
// Nil fields keep the configured value.
type Overrides struct {
	SizeUnit      *domain.SizeUnit
	DecimalDigits *int
	Separator     *domain.DigitSeparator
	Recursive     *bool
	Timeout       *time.Duration
	// IncludeDirs are searched before the configured include directories.
	IncludeDirs []string
	// SystemDirs are searched before the configured system directories.
	SystemDirs []string
}

// Apply returns cfg with the overrides applied.
func (o Overrides) Apply(cfg domain.Configuration) domain.Configuration {
	if o.SizeUnit != nil {
		cfg.SizeUnit = *o.SizeUnit
	}
	if o.DecimalDigits != nil {
		cfg.DecimalDigits = *o.DecimalDigits
	}
	if o.Separator != nil {
		cfg.Separator = *o.Separator
	}
	if o.Recursive != nil {
		cfg.Recursive = *o.Recursive
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}
	if len(o.IncludeDirs) > 0 {
		cfg.SearchPaths.IncludeDirs = append(append([]string(nil), o.IncludeDirs...), cfg.SearchPaths.IncludeDirs...)
	}
	if len(o.SystemDirs) > 0 {
		cfg.SearchPaths.SystemDirs = append(append([]string(nil), o.SystemDirs...), cfg.SearchPaths.SystemDirs...)
	}
	return cfg
}

// InfoOptions configuration for the Info method.
type InfoOptions struct {
	File string
	// Line is one-based. Zero annotates every directive of File.
	Line      int
	Overrides Overrides
}

// Info prints the annotation of one directive, or of every directive in the file.
//
// A directive that cannot be resolved is shown as "No info". Asking for a
// line that holds no directive is an error.
func (a *App) Info(ctx context.Context, out io.Writer, opts InfoOptions) error {
	cfg, source, err := a.prepare(opts.File, opts.Overrides)
	if err != nil {
		return err
	}

	var directives []domain.IncludeDirective
	if opts.Line > 0 {
		d, err := a.directiveOn(ctx, source, opts.Line)
		if err != nil {
			return err
		}
		directives = []domain.IncludeDirective{d}
	} else {
		directives, err = a.directives(ctx, source)
		if err != nil {
			return err
		}
	}

	rows := make([]linear.Row, len(directives))
	ropts := resolver.OptionsFrom(cfg)

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, d := range directives {
		g.Go(func() error {
			m, err := a.engine.ResolveIncludeInfo(ctx, source, d.Position, ropts)
			if err != nil {
				a.logger.Debug(fmt.Sprintf("%s:%d: %v", source.Name(), d.Position.Line+1, err))
				rows[i] = linear.Row{Directive: d, Text: format.NoInfo, Missing: true}
				return nil
			}
			a.describe(d, m)
			rows[i] = linear.Row{Directive: d, Text: format.Annotation(m, cfg), Standard: m.Standard}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	linear.NewRenderer(out).Annotations(source, rows)
	a.logStats()
	return nil
}

// ListOptions configuration for the List method.
type ListOptions struct {
	File string
	// Line is one-based and must hold an include directive.
	Line      int
	Overrides Overrides
}

// List prints where each include of the file named on Line resolves to,
// followed by the file itself.
func (a *App) List(ctx context.Context, out io.Writer, opts ListOptions) error {
	if opts.Line < 1 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidPosition, "list"), "line", opts.Line)
	}

	cfg, source, err := a.prepare(opts.File, opts.Overrides)
	if err != nil {
		return err
	}

	m, err := a.engine.ResolveIncludeInfo(ctx, source, domain.Position{Line: opts.Line - 1}, resolver.Options{Timeout: cfg.Timeout})
	if err != nil {
		return err
	}

	names, err := a.engine.ListDirectIncludes(ctx, m.Identity)
	if err != nil {
		return err
	}

	entries := make([]linear.Entry, 0, len(names))
	for _, d := range sortedDirectives(names) {
		entry := linear.Entry{Directive: d}
		targets, err := a.paths.ResolveDefinition(ctx, m.Identity, d.Position)
		switch {
		case err != nil:
			a.logger.Debug(fmt.Sprintf("%s: %v", d.Spelling(), err))
		case len(targets) > 0 && targets[0] != nil:
			entry.Target = targets[0].Target().File
		}
		entries = append(entries, entry)
	}

	linear.NewRenderer(out).Includes(m.Identity, entries)
	return nil
}

// prepare loads the configuration, points the path resolver at it and
// canonicalizes file.
func (a *App) prepare(file string, overrides Overrides) (domain.Configuration, domain.FileIdentity, error) {
	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return domain.Configuration{}, domain.FileIdentity{}, zerr.Wrap(err, "failed to get working directory")
		}
		dir = wd
	}

	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return domain.Configuration{}, domain.FileIdentity{}, zerr.Wrap(err, "failed to load configuration")
	}
	cfg = overrides.Apply(cfg)
	a.paths.Configure(cfg)

	source, err := a.docs.Canonicalize(file)
	if err != nil {
		return domain.Configuration{}, domain.FileIdentity{}, err
	}
	return cfg, source, nil
}

// directives returns every include directive of source in file order.
func (a *App) directives(ctx context.Context, source domain.FileIdentity) ([]domain.IncludeDirective, error) {
	doc, err := a.docs.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	var out []domain.IncludeDirective
	for d := range scanner.Directives(scanner.NewSourceText(scanner.Strip(doc.Text))) {
		out = append(out, d)
	}
	return out, nil
}

// directiveOn returns the directive on the one-based line of source.
func (a *App) directiveOn(ctx context.Context, source domain.FileIdentity, line int) (domain.IncludeDirective, error) {
	doc, err := a.docs.Open(ctx, source)
	if err != nil {
		return domain.IncludeDirective{}, err
	}
	d, ok := scanner.DirectiveAt(scanner.NewSourceText(scanner.Strip(doc.Text)), domain.Position{Line: line - 1})
	if !ok {
		err := zerr.Wrap(domain.ErrNoDirective, fmt.Sprintf("%s:%d", source.Name(), line))
		return domain.IncludeDirective{}, zerr.With(err, "file", source.Path())
	}
	return d, nil
}

func (a *App) describe(d domain.IncludeDirective, m domain.FileMetrics) {
	a.logger.Debug(fmt.Sprintf("%s → %s (xxhash %016x)", d.Spelling(), m.Identity, m.Digest))
	if m.Transitive == nil {
		return
	}
	if m.Transitive.Cycles > 0 {
		a.logger.Debug(fmt.Sprintf("%s: %d include cycles skipped", d.Spelling(), m.Transitive.Cycles))
	}
	for _, u := range m.Transitive.Unresolved {
		a.logger.Debug(fmt.Sprintf("%s: unresolved %s", d.Spelling(), u))
	}
}

func (a *App) logStats() {
	if rec, ok := a.telemetry.(*progrock.Recorder); ok {
		a.logger.Debug(rec.Stats().String())
	}
}

// sortedDirectives returns the directives ordered by line.
func sortedDirectives(names map[string]domain.IncludeDirective) []domain.IncludeDirective {
	out := slices.Collect(maps.Values(names))
	slices.SortFunc(out, func(a, b domain.IncludeDirective) int {
		if a.Position.Before(b.Position) {
			return -1
		}
		if b.Position.Before(a.Position) {
			return 1
		}
		return 0
	})
	return out
}
