package messages

// Status messages for the status command and its checks.
const (
	// StatusUse is the status command name.
	StatusUse   = "status"
	StatusShort = "Report the discovered root, site, configuration, and environment health"

	StatusHeaderFmt = "🔎 Checking Oriel environment in %s...\n"

	StatusCheckRoot    = "Root"
	StatusCheckSite    = "Site"
	StatusCheckConfig  = "Config"
	StatusCheckOS      = "OS"
	StatusCheckCache   = "Cache"
	StatusCheckInterp  = "Interpreter"
	StatusCheckHandoff = "SiteLocal"

	StatusRootFoundFmt      = "Root found: %s (%s)"
	StatusRootNotFoundFmt   = "No root found above %s"
	StatusRootNotFoundHint  = "Run orsh inside an Oriel codebase or pass --root."
	StatusSiteFoundFmt      = "Site: %s"
	StatusSiteFailedFmt     = "Failed to resolve site: %v"
	StatusSiteNotFound      = "No site directory found (no sites/*/settings.toml)"
	StatusSiteNotFoundHint  = "Run 'orsh init' to scaffold sites/default."
	StatusConfigLoadedFmt   = "Configuration loaded: %s"
	StatusConfigMissingFmt  = "No configuration file at %s (defaults in effect)"
	StatusConfigInvalidFmt  = "Failed to load configuration: %v"
	StatusConfigInvalidHint = "Fix .orsh/config.toml or re-run 'orsh init'."
	StatusOSFmt             = "%s (windows-like: %v, posix shell: %v)"
	StatusCacheFmt          = "Cache directory: %s"
	StatusCacheFailedFmt    = "No writable cache directory: %v"
	StatusCacheFailedHint   = "Set ORSH_CACHE_DIR to a writable location."
	StatusInterpOKFmt       = "Interpreter: %s"
	StatusHandoffFmt        = "Site-local orsh present: %s"
	StatusHandoffNone       = "No site-local orsh under vendor/bin"

	StatusFailureSummary = "❌ Some checks failed. Please address the items above."
	StatusFailureError   = "status checks failed"
	StatusSuccessSummary = "✅ Environment looks good. orsh is ready."

	StatusOKLabel              = "[OK]  "
	StatusWarnLabel            = "[WARN]"
	StatusFailLabel            = "[FAIL]"
	StatusResultLineFmt        = "%s %-12s %s\n"
	StatusRecommendationPrefix = "       💡 "
	StatusRecommendationIndent = "         "
)
