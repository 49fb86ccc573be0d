package config

// SchemaPackageConfig describes one entry of package-configs.json for JSON schema generation.
// Any other manifest field is accepted and merged into the generated package.json.
type SchemaPackageConfig struct {
	Directory        string            `json:"directory" jsonschema:"required,description=Package directory relative to the repository root"`
	Description      string            `json:"description,omitempty" jsonschema:"description=Package description"`
	Main             string            `json:"main,omitempty" jsonschema:"description=CommonJS entry point"`
	Module           string            `json:"module,omitempty" jsonschema:"description=ES module entry point"`
	Types            string            `json:"types,omitempty" jsonschema:"description=Type declarations entry point"`
	Exports          map[string]any    `json:"exports,omitempty" jsonschema:"description=Package exports map"`
	Files            []string          `json:"files,omitempty" jsonschema:"description=Files included when publishing"`
	Scripts          map[string]string `json:"scripts,omitempty"`
	Dependencies     map[string]string `json:"dependencies,omitempty"`
	DevDependencies  map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies map[string]string `json:"peerDependencies,omitempty"`
	Keywords         []string          `json:"keywords,omitempty"`
}

// SchemaPackageConfigs is the exported type for package-configs.json schema generation.
type SchemaPackageConfigs struct {
	Packages map[string]SchemaPackageConfig `json:"packages" jsonschema:"required,description=Package configurations keyed by package name"`
}
