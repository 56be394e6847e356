package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/xcscheme/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/xcscheme/internal/core/ports"
	"go.trai.ch/xcscheme/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FormatOptions configuration for the Format and Watch methods.
type FormatOptions struct {
	ProjectOptions
	// Check reports unformatted files instead of rewriting them.
	Check bool
}

// formatResult is the outcome of formatting one file.
type formatResult struct {
	path    string
	changed bool
}

// Format rewrites scheme files in their canonical form. Without paths every scheme of the
// project is formatted. Directories are searched for scheme files.
func (a *App) Format(ctx context.Context, paths []string, opts FormatOptions) (err error) {
	ctx, span := a.tracer.Start(ctx, "scheme.format", ports.WithAttribute("check", opts.Check))
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	files, err := a.formatTargets(paths, opts.ProjectOptions)
	if err != nil {
		return err
	}
	span.SetAttribute("files", len(files))

	results, err := a.formatFiles(ctx, files, opts.Check)
	if err != nil {
		return err
	}

	var dirty int
	for _, r := range results {
		if !r.changed {
			continue
		}
		dirty++
		if opts.Check {
			a.logger.Warn(fmt.Sprintf("%s is not formatted", r.path))
		} else {
			a.logger.Info(style.Changed("formatted " + r.path))
		}
	}

	if opts.Check && dirty > 0 {
		return zerr.With(domain.ErrSchemeNotFormatted, "count", dirty)
	}
	return nil
}

// formatFiles formats files in parallel. In check mode nothing is written and changed reports
// whether the file differs from its canonical rendering. Results keep the order of files.
func (a *App) formatFiles(ctx context.Context, files []string, check bool) ([]formatResult, error) {
	results := make([]formatResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i].path = path
			if check {
				ok, err := a.store.Formatted(path)
				if err != nil {
					return err
				}
				results[i].changed = !ok
				return nil
			}

			s, err := a.store.Load(path)
			if err != nil {
				return err
			}
			changed, err := a.store.Write(path, s)
			if err != nil {
				return err
			}
			results[i].changed = changed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// formatTargets expands the arguments of Format into a sorted list of scheme files.
func (a *App) formatTargets(paths []string, opts ProjectOptions) ([]string, error) {
	if len(paths) == 0 {
		p, user, err := a.project(opts)
		if err != nil {
			return nil, err
		}
		refs, err := a.store.List(p.Path, user)
		if err != nil {
			return nil, err
		}
		files := make([]string, 0, len(refs))
		for _, ref := range refs {
			files = append(files, ref.Path)
		}
		return files, nil
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSchemeReadFailed.Error()), "path", path)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isSchemeFile(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSchemeReadFailed.Error()), "path", path)
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func isSchemeFile(path string) bool {
	return strings.HasSuffix(path, domain.SchemeExt)
}

// Watch formats every scheme of the project, then keeps formatting schemes as they change
// until ctx is canceled.
func (a *App) Watch(ctx context.Context, opts FormatOptions) error {
	if err := a.Format(ctx, nil, FormatOptions{ProjectOptions: opts.ProjectOptions}); err != nil {
		return err
	}

	p, _, err := a.project(opts.ProjectOptions)
	if err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, p.Path); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info(fmt.Sprintf("watching %s", p.Path))

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		existing := slices.DeleteFunc(paths, func(path string) bool {
			_, statErr := os.Stat(path)
			return statErr != nil
		})
		if len(existing) == 0 {
			return
		}
		if err := a.Format(ctx, existing, FormatOptions{ProjectOptions: opts.ProjectOptions}); err != nil {
			a.logger.Error(err)
		}
	})

	for event := range a.watcher.Events() {
		if event.Operation == ports.OpRemove || !isSchemeFile(event.Path) {
			continue
		}
		debouncer.Add(event.Path)
	}
	debouncer.Flush()

	return nil
}
