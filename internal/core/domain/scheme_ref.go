package domain

// SchemeRef locates a scheme file on disk.
type SchemeRef struct {
	// Name is the scheme name without extension.
	Name string
	// Path is the scheme file path.
	Path string
	// Shared reports whether the scheme lives in the team-visible location.
	Shared bool
}
