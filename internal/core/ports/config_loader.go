package ports

import "go.trai.ch/xcscheme/internal/core/domain"

// ProjectLoader defines the interface for loading the project manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads the manifest at path. When path is a directory, the nearest manifest found
	// walking up from it is used.
	Load(path string) (*domain.Project, error)

	// DiscoverRoot walks up from cwd to find the directory containing the manifest.
	DiscoverRoot(cwd string) (string, error)
}
