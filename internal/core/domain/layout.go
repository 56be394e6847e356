package domain

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const (
	// SchemeExt is the file extension of scheme documents.
	SchemeExt = ".xcscheme"

	// SharedDataDirName is the team-visible data directory inside a project bundle.
	SharedDataDirName = "xcshareddata"

	// UserDataDirName is the per-developer data directory inside a project bundle.
	UserDataDirName = "xcuserdata"

	// UserDataDirExt is appended to the user name to form its per-user data directory.
	UserDataDirExt = ".xcuserdatad"

	// SchemesDirName is the directory holding scheme files.
	SchemesDirName = "xcschemes"

	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "xcscheme.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// SharedSchemesDir returns <project>/xcshareddata/xcschemes.
func SharedSchemesDir(projectPath string) string {
	return filepath.Join(projectPath, SharedDataDirName, SchemesDirName)
}

// UserSchemesDir returns <project>/xcuserdata/<user>.xcuserdatad/xcschemes.
func UserSchemesDir(projectPath, userName string) string {
	return filepath.Join(projectPath, UserDataDirName, userName+UserDataDirExt, SchemesDirName)
}

// SchemePath returns the location of the named scheme, either shared or owned by userName.
func SchemePath(projectPath, name string, shared bool, userName string) string {
	dir := UserSchemesDir(projectPath, userName)
	if shared {
		dir = SharedSchemesDir(projectPath)
	}
	return filepath.Join(dir, name+SchemeExt)
}

// SchemeName strips the directory and extension from a scheme path.
func SchemeName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), SchemeExt)
}

// ValidSchemeName reports whether name can be used as a scheme file name.
func ValidSchemeName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// CurrentUser returns the name used for per-user scheme directories.
// It prefers $USER and falls back to the account of the running process.
func CurrentUser() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "default"
}
