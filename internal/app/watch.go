package app

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/incinfo/internal/adapters/linear"
	"go.trai.ch/incinfo/internal/adapters/watcher"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	File      string
	Overrides Overrides
}

// watchSet records the files a refresh depends on.
type watchSet struct {
	mu    sync.Mutex
	files map[string]struct{}
}

func newWatchSet() *watchSet {
	return &watchSet{files: make(map[string]struct{})}
}

func (s *watchSet) add(id domain.FileIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[id.Path()] = struct{}{}
}

func (s *watchSet) has(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[filepath.Clean(path)]
	return ok
}

func (s *watchSet) dirs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.files))
	for p := range s.files {
		out = append(out, filepath.Dir(p))
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Watch prints the annotations of file and prints them again whenever the
// file, one of its scanned includes or a settings file next to them changes.
// It returns when ctx is cancelled.
//
// Directories are collected from the first run; includes that appear in
// later refreshes are annotated but their directories are not watched.
func (a *App) Watch(ctx context.Context, out io.Writer, opts WatchOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	source, err := a.docs.Canonicalize(opts.File)
	if err != nil {
		return err
	}

	set := newWatchSet()
	set.add(source)
	a.engine.OnScan(set.add)

	info := InfoOptions{File: opts.File, Overrides: opts.Overrides}
	if err := a.Info(ctx, out, info); err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, set.dirs()); err != nil {
		_ = a.watcher.Stop()
		return zerr.Wrap(err, "failed to watch includes")
	}

	refresh := make(chan []string)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case refresh <- paths:
		case <-ctx.Done():
		}
	})

	var wg sync.WaitGroup
	wg.Go(func() {
		for event := range a.watcher.Events() {
			if set.has(event.Path) || isSettingsFile(event.Path) {
				debouncer.Add(event.Path)
			}
		}
	})
	defer func() {
		cancel()
		_ = a.watcher.Stop()
		wg.Wait()
		debouncer.Stop()
	}()

	renderer := linear.NewRenderer(out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-refresh:
			renderer.Changed(paths)
			if err := a.Info(ctx, out, info); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.logger.Error(err)
			}
		}
	}
}

func isSettingsFile(path string) bool {
	return slices.Contains(domain.ConfigFileNames(), filepath.Base(path))
}
