package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/xcscheme/internal/core/ports"
	"go.trai.ch/xcscheme/internal/scheme"
	"go.trai.ch/xcscheme/internal/ui/style"
	"go.trai.ch/zerr"
)

// CreateOptions configuration for the Create method.
type CreateOptions struct {
	ProjectOptions
	// Runnable is the target launched and profiled by the scheme.
	Runnable string
	// Test is the target tested by the scheme.
	Test string
	// Shared stores the scheme in the team-visible location.
	Shared bool
	// Force replaces an existing scheme of the same name.
	Force bool
}

// Create writes a new scheme, configured with the given targets when any are named.
func (a *App) Create(ctx context.Context, name string, opts CreateOptions) (err error) {
	_, span := a.tracer.Start(ctx, "scheme.create",
		ports.WithAttribute("scheme", name),
		ports.WithAttribute("shared", opts.Shared),
	)
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	p, user, err := a.project(opts.ProjectOptions)
	if err != nil {
		return err
	}

	runnable, err := target(p, opts.Runnable)
	if err != nil {
		return err
	}
	test, err := target(p, opts.Test)
	if err != nil {
		return err
	}

	if ref, findErr := a.store.Find(p.Path, name, user); findErr == nil && !opts.Force {
		return zerr.With(domain.ErrSchemeAlreadyExists, "path", ref.Path)
	}

	s := scheme.New(scheme.WithLastUpgradeVersion(p.LastUpgradeVersion))
	if runnable != nil || test != nil {
		s.ConfigureWithTargets(runnable, test)
	}

	path, _, err := a.store.Save(p.Path, name, opts.Shared, user, s)
	if err != nil {
		return err
	}
	span.SetAttribute("path", path)

	a.logger.Info(style.Success("created " + path))
	return nil
}

// ConfigureOptions configuration for the Configure method.
type ConfigureOptions struct {
	ProjectOptions
	Runnable string
	Test     string
}

// Configure replaces the build, test, launch, profile, analyze and archive sections of an
// existing scheme with the defaults for the given targets.
func (a *App) Configure(ctx context.Context, name string, opts ConfigureOptions) error {
	return a.update(ctx, "scheme.configure", name, opts.ProjectOptions, func(p *domain.Project, s *scheme.Scheme) error {
		runnable, err := target(p, opts.Runnable)
		if err != nil {
			return err
		}
		test, err := target(p, opts.Test)
		if err != nil {
			return err
		}
		s.ConfigureWithTargets(runnable, test)
		return nil
	})
}

// BuildTargetOptions configuration for the AddBuildTarget method.
type BuildTargetOptions struct {
	ProjectOptions
	// NoRun excludes the entry from the running phase.
	NoRun bool
}

// AddBuildTarget appends a build entry for the target to the scheme.
func (a *App) AddBuildTarget(ctx context.Context, name, targetName string, opts BuildTargetOptions) error {
	return a.update(ctx, "scheme.add_build_target", name, opts.ProjectOptions, func(p *domain.Project, s *scheme.Scheme) error {
		t, err := p.Target(targetName)
		if err != nil {
			return err
		}
		s.AddBuildTarget(t, !opts.NoRun)
		return nil
	})
}

// AddTestTarget appends a testable for the target to the scheme.
func (a *App) AddTestTarget(ctx context.Context, name, targetName string, opts ProjectOptions) error {
	return a.update(ctx, "scheme.add_test_target", name, opts, func(p *domain.Project, s *scheme.Scheme) error {
		t, err := p.Target(targetName)
		if err != nil {
			return err
		}
		s.AddTestTarget(t)
		return nil
	})
}

// LaunchOptions configuration for the SetLaunchTarget method.
type LaunchOptions struct {
	ProjectOptions
	// Env holds KEY=VALUE assignments for the launch environment. Empty leaves the current ones.
	Env []string
	// Args holds launch arguments. Empty leaves the current ones.
	Args []string
}

// SetLaunchTarget makes the target the product launched and profiled by the scheme.
func (a *App) SetLaunchTarget(ctx context.Context, name, targetName string, opts LaunchOptions) error {
	vars, err := ParseEnvironment(opts.Env)
	if err != nil {
		return err
	}

	return a.update(ctx, "scheme.set_launch_target", name, opts.ProjectOptions, func(p *domain.Project, s *scheme.Scheme) error {
		t, err := p.Target(targetName)
		if err != nil {
			return err
		}
		s.SetLaunchTarget(t)

		launch := s.LaunchAction()
		if len(vars) > 0 {
			launch.SetEnvironmentVariables(vars)
		}
		if len(opts.Args) > 0 {
			args := make([]scheme.CommandLineArgument, 0, len(opts.Args))
			for _, arg := range opts.Args {
				args = append(args, scheme.CommandLineArgument{Argument: arg, Enabled: true})
			}
			launch.SetCommandLineArguments(args)
		}
		return nil
	})
}

// ParseEnvironment turns KEY=VALUE assignments into enabled environment variables.
func ParseEnvironment(assignments []string) ([]scheme.EnvironmentVariable, error) {
	vars := make([]scheme.EnvironmentVariable, 0, len(assignments))
	for _, assignment := range assignments {
		key, value, ok := strings.Cut(assignment, "=")
		if !ok || key == "" {
			return nil, zerr.With(domain.ErrInvalidEnvironmentVariable, "value", assignment)
		}
		vars = append(vars, scheme.EnvironmentVariable{Key: key, Value: value, Enabled: true})
	}
	return vars, nil
}

// PhaseOptions configuration for the SetBuildPhases method.
type PhaseOptions struct {
	ProjectOptions
	Enable  []string
	Disable []string
}

// SetBuildPhases toggles the phases of every build entry that refers to the target.
func (a *App) SetBuildPhases(ctx context.Context, name, targetName string, opts PhaseOptions) error {
	enable, err := parsePhases(opts.Enable)
	if err != nil {
		return err
	}
	disable, err := parsePhases(opts.Disable)
	if err != nil {
		return err
	}

	return a.update(ctx, "scheme.set_build_phases", name, opts.ProjectOptions, func(p *domain.Project, s *scheme.Scheme) error {
		t, err := p.Target(targetName)
		if err != nil {
			return err
		}

		entries := s.BuildAction().EntriesFor(t)
		if len(entries) == 0 {
			return zerr.With(domain.ErrTargetNotFound, "target_name", targetName)
		}

		for _, entry := range entries {
			for _, phase := range enable {
				entry.SetBuildFor(phase, true)
			}
			for _, phase := range disable {
				entry.SetBuildFor(phase, false)
			}
		}
		return nil
	})
}

func parsePhases(names []string) ([]scheme.Phase, error) {
	phases := make([]scheme.Phase, 0, len(names))
	for _, name := range names {
		phase, err := scheme.ParsePhase(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return nil, err
		}
		phases = append(phases, phase)
	}
	return phases, nil
}

// Show returns the canonical rendering of the named scheme.
func (a *App) Show(ctx context.Context, name string, opts ProjectOptions) (_ string, err error) {
	_, span := a.tracer.Start(ctx, "scheme.show", ports.WithAttribute("scheme", name))
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	p, user, err := a.project(opts)
	if err != nil {
		return "", err
	}

	_, s, err := a.open(p, user, name)
	if err != nil {
		return "", err
	}
	return s.Render(), nil
}

// List returns the shared and user schemes of the project.
func (a *App) List(ctx context.Context, opts ProjectOptions) (_ []domain.SchemeRef, err error) {
	_, span := a.tracer.Start(ctx, "scheme.list")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	p, user, err := a.project(opts)
	if err != nil {
		return nil, err
	}

	refs, err := a.store.List(p.Path, user)
	if err != nil {
		return nil, err
	}
	span.SetAttribute("count", len(refs))
	return refs, nil
}

// Share moves a user scheme into the shared location.
func (a *App) Share(ctx context.Context, name string, opts ProjectOptions) error {
	return a.move(ctx, "scheme.share", name, opts, a.store.Share)
}

// Unshare moves a shared scheme into the user location.
func (a *App) Unshare(ctx context.Context, name string, opts ProjectOptions) error {
	return a.move(ctx, "scheme.unshare", name, opts, a.store.Unshare)
}

func (a *App) move(
	ctx context.Context,
	op, name string,
	opts ProjectOptions,
	fn func(projectPath, name, user string) (string, error),
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

	path, err := fn(p.Path, name, user)
	if err != nil {
		return err
	}
	span.SetAttribute("path", path)

	a.logger.Info(style.Success(fmt.Sprintf("moved %s to %s", name, path)))
	return nil
}
