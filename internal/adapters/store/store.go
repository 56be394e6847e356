// Package store reads and writes the scheme files of a project.
package store

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/xcscheme/internal/core/ports"
	"go.trai.ch/xcscheme/internal/scheme"
	"go.trai.ch/zerr"
)

var _ ports.SchemeStore = (*Store)(nil)

// Store implements ports.SchemeStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the scheme file at path.
func (s *Store) Load(path string) (*scheme.Scheme, error) {
	return scheme.Load(path)
}

// Write renders sc to path, creating missing directories. A file whose content
// already matches is left untouched and reported as unchanged.
func (s *Store) Write(path string, sc *scheme.Scheme) (bool, error) {
	rendered := sc.Render()

	if existing, err := fileDigest(path); err == nil && existing == xxhash.Sum64String(rendered) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrSchemeDirCreateFailed.Error()), "path", dir)
	}
	if err := writeAtomic(path, rendered); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrSchemeWriteFailed.Error()), "path", path)
	}
	return true, nil
}

// Formatted reports whether the file at path is byte-identical to its rendering.
func (s *Store) Formatted(path string) (bool, error) {
	sc, err := scheme.Load(path)
	if err != nil {
		return false, err
	}
	existing, err := fileDigest(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrSchemeReadFailed.Error()), "path", path)
	}
	return existing == xxhash.Sum64String(sc.Render()), nil
}

// Save writes sc as the named scheme of the project.
func (s *Store) Save(projectPath, name string, shared bool, user string, sc *scheme.Scheme) (string, bool, error) {
	if !domain.ValidSchemeName(name) {
		return "", false, zerr.With(domain.ErrInvalidSchemeName, "name", name)
	}
	path := domain.SchemePath(projectPath, name, shared, user)
	changed, err := s.Write(path, sc)
	return path, changed, err
}

// Find locates the named scheme, preferring the shared copy.
func (s *Store) Find(projectPath, name, user string) (domain.SchemeRef, error) {
	if !domain.ValidSchemeName(name) {
		return domain.SchemeRef{}, zerr.With(domain.ErrInvalidSchemeName, "name", name)
	}
	for _, shared := range []bool{true, false} {
		path := domain.SchemePath(projectPath, name, shared, user)
		if exists(path) {
			return domain.SchemeRef{Name: name, Path: path, Shared: shared}, nil
		}
	}
	return domain.SchemeRef{}, zerr.With(domain.ErrSchemeNotFound, "name", name)
}

// List returns every shared and user scheme of the project sorted by name, shared first on ties.
func (s *Store) List(projectPath, user string) ([]domain.SchemeRef, error) {
	var refs []domain.SchemeRef
	for _, shared := range []bool{true, false} {
		dir := domain.UserSchemesDir(projectPath, user)
		if shared {
			dir = domain.SharedSchemesDir(projectPath)
		}

		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrSchemeReadFailed.Error()), "path", dir)
		}

		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != domain.SchemeExt {
				continue
			}
			path := filepath.Join(dir, e.Name())
			refs = append(refs, domain.SchemeRef{Name: domain.SchemeName(path), Path: path, Shared: shared})
		}
	}

	slices.SortStableFunc(refs, func(a, b domain.SchemeRef) int {
		return strings.Compare(a.Name, b.Name)
	})
	return refs, nil
}

// Share moves the user's scheme into the shared location.
func (s *Store) Share(projectPath, name, user string) (string, error) {
	return move(
		domain.SchemePath(projectPath, name, false, user),
		domain.SchemePath(projectPath, name, true, user),
	)
}

// Unshare moves a shared scheme into the user's location.
func (s *Store) Unshare(projectPath, name, user string) (string, error) {
	return move(
		domain.SchemePath(projectPath, name, true, user),
		domain.SchemePath(projectPath, name, false, user),
	)
}

func move(src, dst string) (string, error) {
	name := domain.SchemeName(src)
	if !domain.ValidSchemeName(name) {
		return "", zerr.With(domain.ErrInvalidSchemeName, "name", name)
	}
	if !exists(src) {
		return "", zerr.With(zerr.With(domain.ErrSchemeNotFound, "name", name), "path", src)
	}
	if exists(dst) {
		return "", zerr.With(zerr.With(domain.ErrSchemeAlreadyExists, "name", name), "path", dst)
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSchemeDirCreateFailed.Error()), "path", dir)
	}
	if err := os.Rename(src, dst); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSchemeMoveFailed.Error()), "path", src)
	}
	return dst, nil
}

// fileDigest computes the xxhash of a file's content.
func fileDigest(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is a scheme location chosen by the caller
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path, data string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.WriteString(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
