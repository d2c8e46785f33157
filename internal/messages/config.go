package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt        = "missing config file %s: %w"
	ConfigMissingEnvFileFmt     = "missing env file %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigInvalidEnvFileFmt     = "invalid env file %s: %w"
	ConfigFailedReadTemplateFmt = "read embedded config template: %w"
	ConfigFSRequired            = "config filesystem is required"
	ConfigRootRequired          = "config root path is required"
	ConfigPathOutsideRootFmt    = "path %s is outside root %s"

	ConfigUnrecognizedKeysFmt = "%s: unrecognized config keys: %w"
	ConfigURIInvalidFmt       = "%s: core.uri %q is not a valid URI"
	ConfigInterpBlankFmt      = "%s: interpreter.bin must not be blank when set"

	// ConfigValidationGuidance is appended to validation errors to direct users to repair tools.
	ConfigValidationGuidance = "(edit .orsh/config.toml or re-run 'orsh init')"
)
