package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedSchemeFormat is returned when a scheme's version attribute is not the supported format version.
	ErrUnsupportedSchemeFormat = zerr.New("unsupported scheme format version")

	// ErrSchemeRootMissing is returned when a document has no root Scheme element.
	ErrSchemeRootMissing = zerr.New("document has no Scheme root element")

	// ErrSchemeParseFailed is returned when scheme bytes are not well-formed XML.
	ErrSchemeParseFailed = zerr.New("failed to parse scheme")

	// ErrSchemeReadFailed is returned when a scheme file cannot be read.
	ErrSchemeReadFailed = zerr.New("failed to read scheme file")

	// ErrSchemeWriteFailed is returned when a scheme file cannot be written.
	ErrSchemeWriteFailed = zerr.New("failed to write scheme file")

	// ErrSchemeDirCreateFailed is returned when the scheme directory cannot be created.
	ErrSchemeDirCreateFailed = zerr.New("failed to create scheme directory")

	// ErrSchemeNotFound is returned when no scheme with the requested name exists.
	ErrSchemeNotFound = zerr.New("scheme not found")

	// ErrSchemeAlreadyExists is returned when a scheme would overwrite an existing one.
	ErrSchemeAlreadyExists = zerr.New("scheme already exists")

	// ErrSchemeMoveFailed is returned when a scheme cannot be moved between shared and user locations.
	ErrSchemeMoveFailed = zerr.New("failed to move scheme")

	// ErrSchemeNotFormatted is returned by a format check when a file differs from its canonical rendering.
	ErrSchemeNotFormatted = zerr.New("scheme is not formatted")

	// ErrInvalidSchemeName is returned when a scheme name is empty or contains a path separator.
	ErrInvalidSchemeName = zerr.New("invalid scheme name")

	// ErrTargetNotFound is returned when a target name is not declared in the project manifest.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrInvalidTarget is returned when a manifest target is missing its name or identifier.
	ErrInvalidTarget = zerr.New("invalid target, expected a name and a uuid")

	// ErrDuplicateTarget is returned when two manifest targets share a name.
	ErrDuplicateTarget = zerr.New("duplicate target name")

	// ErrMissingProjectPath is returned when the manifest does not name a project bundle.
	ErrMissingProjectPath = zerr.New("missing project path")

	// ErrConfigNotFound is returned when no manifest can be found.
	ErrConfigNotFound = zerr.New("could not find " + ManifestFileName)

	// ErrConfigReadFailed is returned when the manifest cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the manifest cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidEnvironmentVariable is returned when an environment assignment is not KEY=VALUE.
	ErrInvalidEnvironmentVariable = zerr.New("invalid environment variable, expected KEY=VALUE")

	// ErrUnknownBuildPhase is returned when a build phase name is not recognized.
	ErrUnknownBuildPhase = zerr.New("unknown build phase, expected testing, running, profiling, archiving or analyzing")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch for scheme changes")
)
