package config

// Config models .orsh/config.toml. Both tables are optional; an absent
// file behaves like the zero value.
type Config struct {
	Core        CoreConfig        `toml:"core"`
	Interpreter InterpreterConfig `toml:"interpreter"`
}

// CoreConfig carries root-wide defaults.
type CoreConfig struct {
	// URI is the default site address used when no --uri flag or
	// ORSH_URI override is present. Bare hostnames are accepted.
	URI string `toml:"uri"`
}

// InterpreterConfig pins the interpreter used to run .php scripts.
type InterpreterConfig struct {
	// Bin distinguishes "not configured" (nil) from "configured blank",
	// which validation rejects.
	Bin     *string `toml:"bin"`
	Options string  `toml:"options"`
}
