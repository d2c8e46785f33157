package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "orsh"
	// RootShort is the short description for the root command.
	RootShort       = "Oriel administration shell"
	RootVersionFlag = "Print version and exit"

	RootFlagRoot    = "Oriel codebase root (default: discovered from the working directory)"
	RootFlagURI     = "Site URI to operate on (default: the active site, then sites/default)"
	RootFlagVerbose = "Print informational diagnostics to stderr"
	RootFlagDebug   = "Print debug diagnostics to stderr (implies --verbose)"
	RootFlagNoLocal = "Skip handing off to a site-local orsh found under the root"

	RootNotFoundFmt = "no Oriel root found above %s; run from inside a codebase or pass --root"

	// VersionCommitFmt formats the commit hash for version display.
	VersionUse       = "version"
	VersionShort     = "Print version and build metadata"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// SiteUse is the site command group name.
	SiteUse   = "site"
	SiteShort = "Inspect and select the site directory orsh operates on"

	SiteListUse      = "list"
	SiteListShort    = "List site directories under the root"
	SiteListNone     = "No sites found (no sites/*/settings.toml under the root)."
	SiteListEntryFmt = "%s%s\n"
	SiteListActive   = " (active)"

	SiteResolveUse        = "resolve [uri]"
	SiteResolveShort      = "Show which site directory a URI resolves to"
	SiteResolvePathFmt    = "site path: %s\n"
	SiteResolveNoPath     = "site path: (not found)\n"
	SiteResolveConfFmt    = "conf path: %s\n"
	SiteResolveFlagExists = "Accept candidate directories without settings.toml"

	SiteSetUse         = "set [site]"
	SiteSetShort       = "Record the active site used as the default URI"
	SiteSetFlagClear   = "Clear the recorded active site"
	SiteSetPickerTitle = "Select the active site"
	SiteSetDoneFmt     = "Active site set to %s\n"
	SiteSetClearedMsg  = "Active site cleared\n"
	SiteSetNoSites     = "no sites to choose from; run 'orsh init' first"
	SiteSetNeedsTTY    = "site selection requires an interactive terminal; pass the site name explicitly"
	SiteSetUnknownFmt  = "unknown site %q (no sites/%s/settings.toml); run 'orsh site list'"

	// AliasUse is the alias command group name.
	AliasUse   = "alias"
	AliasShort = "Inspect and edit the host alias map in sites/sites.toml"

	AliasListUse      = "list"
	AliasListShort    = "List host aliases"
	AliasListNone     = "No aliases defined."
	AliasListEntryFmt = "%s -> %s\n"

	AliasSetUse        = "set <host> <dir>"
	AliasSetShort      = "Map a host key to a site directory"
	AliasSetFlagDryRun = "Show the change as a unified diff without writing"
	AliasSetDoneFmt    = "Mapped %s -> %s in %s\n"
	AliasSetNoChange   = "Alias already set; nothing to do.\n"

	// CacheUse is the cache command group name.
	CacheUse   = "cache"
	CacheShort = "Inspect and clear the orsh cache"

	CacheDirUse     = "dir"
	CacheDirShort   = "Print the resolved cache directory"
	CacheClearUse   = "clear"
	CacheClearShort = "Remove cached data"
	CacheClearedFmt = "Cleared cache at %s\n"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Scaffold .orsh and sites/default in this codebase"

	InitRootRequiredFmt    = "init requires an Oriel root; none found above %s (pass --root)"
	InitOverwritePromptFmt = "Overwrite existing %s?"
	InitFlagForce          = "Overwrite existing scaffold files without prompting"
	InitWroteFmt           = "Wrote %s\n"
	InitSkippedFmt         = "Skipped %s (kept existing)\n"
	InitDoneFmt            = "Initialized orsh scaffolding under %s\n"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt   = "%s [Y/n]: "
	PromptNoDefaultFmt    = "%s [y/N]: "
	PromptInvalidResponse = "invalid response %q"
	PromptRetryYesNo      = "Please enter y or n."
)
