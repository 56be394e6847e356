// Package domain contains the core domain models shared by the scheme model and its adapters.
package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Project is the read-only project model the scheme tooling builds against.
type Project struct {
	// Path is the project bundle path (the directory that holds xcshareddata and xcuserdata).
	Path string
	// LastUpgradeVersion is written into newly created schemes. Empty means the model default.
	LastUpgradeVersion string
	// User overrides the owner of per-user schemes. Empty means CurrentUser.
	User string

	targets map[string]*Target
	order   []string
}

// NewProject creates an empty Project rooted at path.
func NewProject(path string) *Project {
	return &Project{
		Path:    path,
		targets: make(map[string]*Target),
	}
}

// AddTarget adds a target to the project.
// It returns an error if the target is incomplete or a target with the same name already exists.
func (p *Project) AddTarget(t *Target) error {
	if t.Name == "" || t.UUID == "" {
		return zerr.With(ErrInvalidTarget, "target_name", t.Name)
	}
	if _, exists := p.targets[t.Name]; exists {
		return zerr.With(ErrDuplicateTarget, "target_name", t.Name)
	}
	if t.ProjectPath == "" {
		t.ProjectPath = p.Path
	}
	p.targets[t.Name] = t
	p.order = append(p.order, t.Name)
	return nil
}

// Target returns the named target.
func (p *Project) Target(name string) (*Target, error) {
	t, ok := p.targets[name]
	if !ok {
		return nil, zerr.With(ErrTargetNotFound, "target_name", name)
	}
	return t, nil
}

// Targets returns all targets in declaration order.
func (p *Project) Targets() []*Target {
	res := make([]*Target, 0, len(p.order))
	for _, name := range p.order {
		res = append(res, p.targets[name])
	}
	return res
}

// TargetNames returns the sorted target names.
func (p *Project) TargetNames() []string {
	names := slices.Clone(p.order)
	slices.Sort(names)
	return names
}

// SchemeUser returns the owner of per-user schemes for this project.
func (p *Project) SchemeUser() string {
	if p.User != "" {
		return p.User
	}
	return CurrentUser()
}

// Relocate moves the project to path. Targets that belonged to the old path follow it.
func (p *Project) Relocate(path string) {
	for _, t := range p.targets {
		if t.ProjectPath == p.Path {
			t.ProjectPath = path
		}
	}
	p.Path = path
}
