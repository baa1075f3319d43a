package messages

// Settings loading and validation messages.
const (
	ConfigMissingFileFmt       = "failed to read %s: %w"
	ConfigInvalidConfigFmt     = "invalid settings in %s: %w"
	ConfigUnrecognizedKeysFmt  = "unrecognized keys in %s: %v."
	ConfigFailedReadTemplate   = "failed to read embedded settings template: %w"
	ConfigValidationGuidance   = "Compare against the template written by 'stackpilot install'."
	ConfigCatalogPathRequired  = "catalog.path is required"
	ConfigHostTargetRequired   = "host.target is required"
	ConfigTargetsRequired      = "dryrun.targets must list at least one target"
	ConfigTargetCommandFmt     = "dryrun.targets[%d].command is required"
	ConfigTargetArtifactFmt    = "dryrun.targets[%d].artifact is required"
	ConfigResolveHomeFailedFmt = "resolve home directory: %w"
)
