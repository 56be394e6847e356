// Package config loads the xcscheme.yaml project manifest.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/xcscheme/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ProjectLoader using a YAML manifest.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the local filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load reads the manifest at path and returns the project it describes.
// When path is a directory, the nearest manifest walking up from it is used.
func (l *Loader) Load(path string) (*domain.Project, error) {
	manifestPath := path
	isDir, err := l.FS.IsDir(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "path", path)
	}
	if isDir {
		root, rootErr := l.DiscoverRoot(path)
		if rootErr != nil {
			return nil, rootErr
		}
		manifestPath = filepath.Join(root, domain.ManifestFileName)
	}

	var manifest Manifest
	if err := l.readManifest(manifestPath, &manifest); err != nil {
		return nil, zerr.With(err, "config", manifestPath)
	}

	project, err := l.buildProject(filepath.Dir(manifestPath), &manifest)
	if err != nil {
		return nil, zerr.With(err, "config", manifestPath)
	}
	return project, nil
}

// DiscoverRoot walks up from cwd to the first directory containing the manifest.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	current, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}
	for {
		if _, err := l.FS.Stat(filepath.Join(current, domain.ManifestFileName)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		current = parent
	}
}

// readManifest decodes the manifest strictly: unknown keys are rejected.
func (l *Loader) readManifest(path string, target *Manifest) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func (l *Loader) buildProject(dir string, m *Manifest) (*domain.Project, error) {
	if m.Project == "" {
		return nil, domain.ErrMissingProjectPath
	}

	projectPath := m.Project
	if !filepath.IsAbs(projectPath) {
		projectPath = filepath.Join(dir, projectPath)
	}
	if ok, _ := l.FS.IsDir(projectPath); !ok {
		l.Logger.Warn(fmt.Sprintf("project bundle %s does not exist yet", projectPath))
	}

	p := domain.NewProject(projectPath)
	p.LastUpgradeVersion = m.LastUpgradeVersion
	p.User = m.User

	for _, dto := range m.Targets {
		t := &domain.Target{
			Name:        dto.Name,
			UUID:        dto.UUID,
			ProductName: dto.ProductName,
			ProductType: dto.ProductType,
		}
		if err := p.AddTarget(t); err != nil {
			return nil, err
		}
	}
	return p, nil
}
