package domain

import "path/filepath"

// Target is a buildable target as described by the project model.
// The scheme model only reads targets; it never mutates them.
type Target struct {
	// Name is the target's display name (BlueprintName).
	Name string
	// UUID is the target's identifier inside the project (BlueprintIdentifier).
	UUID string
	// ProductName is the file name of the built product (BuildableName).
	// When empty, Name is used.
	ProductName string
	// ProductType is the product type identifier, e.g. com.apple.product-type.application.
	ProductType string
	// ProjectPath is the path of the project bundle that contains the target.
	ProjectPath string
}

// BuildableName returns the product name, falling back to the target name.
func (t *Target) BuildableName() string {
	if t.ProductName != "" {
		return t.ProductName
	}
	return t.Name
}

// ContainerReference returns the project reference written into ReferencedContainer.
func (t *Target) ContainerReference() string {
	return "container:" + filepath.Base(t.ProjectPath)
}
