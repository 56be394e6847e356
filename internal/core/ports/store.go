package ports

import (
	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/xcscheme/internal/scheme"
)

// SchemeStore defines the interface for reading and writing scheme files of a project.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SchemeStore interface {
	// Load reads the scheme file at path.
	Load(path string) (*scheme.Scheme, error)

	// Write renders s to path. It reports whether the file changed; identical content is not rewritten.
	Write(path string, s *scheme.Scheme) (bool, error)

	// Formatted reports whether the file at path already matches its canonical rendering.
	Formatted(path string) (bool, error)

	// Save writes s as the named scheme of the project, shared or owned by user.
	// It returns the path and whether the file changed.
	Save(projectPath, name string, shared bool, user string, s *scheme.Scheme) (string, bool, error)

	// Find locates the named scheme. Shared schemes take precedence over user schemes.
	Find(projectPath, name, user string) (domain.SchemeRef, error)

	// List returns the shared and user schemes of the project, sorted by name.
	List(projectPath, user string) ([]domain.SchemeRef, error)

	// Share moves a user scheme into the shared location and returns its new path.
	Share(projectPath, name, user string) (string, error)

	// Unshare moves a shared scheme into the user location and returns its new path.
	Unshare(projectPath, name, user string) (string, error)
}
