// Package app implements the application layer for xcscheme.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/xcscheme/internal/core/ports"
	"go.trai.ch/xcscheme/internal/scheme"
	"go.trai.ch/xcscheme/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.ProjectLoader
	store   ports.SchemeStore
	logger  ports.Logger
	tracer  ports.Tracer
	watcher ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	store ports.SchemeStore,
	log ports.Logger,
	tracer ports.Tracer,
	watcher ports.Watcher,
) *App {
	return &App{
		loader:  loader,
		store:   store,
		logger:  log,
		tracer:  tracer,
		watcher: watcher,
	}
}

// ProjectOptions select the project an operation works on.
type ProjectOptions struct {
	// Config is the manifest file or a directory to search upwards from. Empty means ".".
	Config string
	// Project overrides the project bundle path of the manifest.
	Project string
	// User overrides the owner of per-user schemes.
	User string
}

// SetJSONLog switches the logger to JSON output when it supports it.
func (a *App) SetJSONLog(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// project loads the manifest and applies the overrides of opts.
func (a *App) project(opts ProjectOptions) (*domain.Project, string, error) {
	path := opts.Config
	if path == "" {
		path = "."
	}

	p, err := a.loader.Load(path)
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to load project")
	}

	if opts.Project != "" {
		p.Relocate(opts.Project)
	}
	if opts.User != "" {
		p.User = opts.User
	}
	return p, p.SchemeUser(), nil
}

// target resolves an optional target name. Empty names resolve to nil.
func target(p *domain.Project, name string) (*domain.Target, error) {
	if name == "" {
		return nil, nil
	}
	return p.Target(name)
}

// open loads the named scheme of the project.
func (a *App) open(p *domain.Project, user, name string) (domain.SchemeRef, *scheme.Scheme, error) {
	ref, err := a.store.Find(p.Path, name, user)
	if err != nil {
		return domain.SchemeRef{}, nil, err
	}

	s, err := a.store.Load(ref.Path)
	if err != nil {
		return domain.SchemeRef{}, nil, err
	}
	return ref, s, nil
}

// commit writes s back to ref and reports the outcome.
func (a *App) commit(ref domain.SchemeRef, s *scheme.Scheme) error {
	changed, err := a.store.Write(ref.Path, s)
	if err != nil {
		return err
	}

	if changed {
		a.logger.Info(style.Success("updated " + ref.Path))
	} else {
		a.logger.Info(fmt.Sprintf("%s is up to date", ref.Name))
	}
	return nil
}

// update runs edit against the named scheme and writes the result.
func (a *App) update(
	ctx context.Context,
	op, name string,
	opts ProjectOptions,
	edit func(p *domain.Project, s *scheme.Scheme) error,
) (err error) {
	_, span := a.tracer.Start(ctx, op, ports.WithAttribute("scheme", name))
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	p, user, err := a.project(opts)
	if err != nil {
		return err
	}

	ref, s, err := a.open(p, user, name)
	if err != nil {
		return err
	}
	span.SetAttribute("path", ref.Path)

	if err := edit(p, s); err != nil {
		return zerr.With(err, "scheme", name)
	}
	return a.commit(ref, s)
}
