package util

// File and directory names shared across packages.
const (
	// ManifestFilename is the per-package manifest file name.
	ManifestFilename = "package.json"
	// TemplateFilename is the shared template file name.
	TemplateFilename = "package-template.json"
	// ConfigsFilename is the per-package configuration file name.
	ConfigsFilename = "package-configs.json"
	// RCFilename is the project-level settings file.
	RCFilename = ".monosyncrc.json"
	// RCTomlFilename is the TOML variant of the project-level settings file.
	RCTomlFilename = ".monosyncrc.toml"
	// ConfigDir is the recommended directory for monosync files.
	ConfigDir = ".monosync"
	// WorkspaceFilename is the pnpm workspace declaration file.
	WorkspaceFilename = "pnpm-workspace.yaml"
)
