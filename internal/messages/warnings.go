package messages

// Warning messages for environment checks.
const (
	// WarningsInterpDirectiveFmt names a restrictive directive and its value.
	WarningsInterpDirectiveFmt    = "interpreter options enable %s (%s)"
	WarningsInterpDirectiveFixFmt = "remove the -d %s assignment from the interpreter options"

	WarningsInterpDisabledFnsFmt = "interpreter options disable %s"
	WarningsInterpDisabledFnsFix = "orsh shells out through exec and system; re-enable them"

	WarningsInterpNotFoundFmt = "interpreter %s was not found"
	WarningsInterpNotFoundFix = "install the interpreter or update interpreter.bin in .orsh/config.toml"
)
