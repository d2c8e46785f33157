package messages

// System messages for internal operations.
const (
	// RootStartPathRequired indicates the locator was called without a start path.
	RootStartPathRequired = "start path is required"

	SiteRootRequired      = "root path is required"
	SiteStartPathRequired = "start path is required to resolve a site"
	SiteListFailedFmt     = "list sites under %s: %w"

	AliasReadFailedFmt  = "read alias map %s: %w"
	AliasParseFailedFmt = "parse alias map %s: %w"
	AliasWriteFailedFmt = "write alias map %s: %w"
	AliasKeyRequired    = "alias key is required"
	AliasDirRequired    = "alias directory is required"

	// CacheNoWritableDirFmt lists every cache base that was probed.
	CacheNoWritableDirFmt   = "no writable cache directory; tried: %s"
	CacheCreateDirFmt       = "create cache dir %s: %w"
	CacheSubdirRequired     = "cache subdirectory is required"
	CacheClearFmt           = "clear cache %s: %w"
	CacheLockOpenFmt        = "open cache lock %s: %w"
	CacheLockFmt            = "lock cache %s: %w"
	CacheLockTimeoutFmt     = "cache is locked by another orsh process (waited %s)"
	CacheActiveSiteReadFmt  = "read active site: %w"
	CacheActiveSiteWriteFmt = "write active site: %w"

	// HandoffErrHandedOff indicates the run was taken over by a site-local orsh.
	HandoffErrHandedOff    = "handed off to site-local orsh"
	HandoffArgv0Required   = "missing argv[0]"
	HandoffCwdRequired     = "working directory is required"
	HandoffExitRequired    = "exit handler is required"
	HandoffSystemRequired  = "handoff system is required"
	HandoffRunFailedFmt    = "run site-local orsh %s: %w"
	HandoffStderrNoticeFmt = "orsh: using site-local orsh at %s\n"

	// EnvfileLineErrorFmt formats envfile line errors.
	EnvfileLineErrorFmt            = "line %d: %w"
	EnvfileReadFailedFmt           = "failed to read env content: %w"
	EnvfileExpectedKeyValue        = "expected KEY=VALUE"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "invalid trailing characters after quoted value"

	TemplateReadFailedFmt = "read template %s: %w"

	// FsutilCreateTempFmt formats atomic-write staging failures.
	FsutilCreateTempFmt = "create temp file: %w"
	FsutilWriteTempFmt  = "write temp file: %w"
	FsutilSyncTempFmt   = "sync temp file: %w"
	FsutilCloseTempFmt  = "close temp file: %w"
	FsutilChmodTempFmt  = "chmod temp file: %w"
	FsutilRenameTempFmt = "move temp file into place: %w"

	WriteFileFmt = "write %s: %w"
	CreateDirFmt = "create directory %s: %w"
)
