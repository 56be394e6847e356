package config

// Manifest represents the structure of the xcscheme.yaml file.
type Manifest struct {
	// Project is the project bundle path, relative to the manifest.
	Project            string      `yaml:"project"`
	LastUpgradeVersion string      `yaml:"lastUpgradeVersion"`
	User               string      `yaml:"user"`
	Targets            []TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target declaration in the manifest.
type TargetDTO struct {
	Name        string `yaml:"name"`
	UUID        string `yaml:"uuid"`
	ProductName string `yaml:"productName"`
	ProductType string `yaml:"productType"`
}
