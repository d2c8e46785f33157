package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/oriel-cms/orsh/internal/messages"
)

// Validate ensures the config is usable. Unset values pass; set values
// must hold.
func (c *Config) Validate(path string) error {
	if c.Core.URI != "" && !isValidURI(c.Core.URI) {
		return fmt.Errorf(messages.ConfigURIInvalidFmt, path, c.Core.URI)
	}
	if c.Interpreter.Bin != nil && strings.TrimSpace(*c.Interpreter.Bin) == "" {
		return fmt.Errorf(messages.ConfigInterpBlankFmt, path)
	}
	return nil
}

// isValidURI accepts anything url.Parse does, minus embedded whitespace.
// Site addresses are often bare hostnames without a scheme, so no scheme
// is required.
func isValidURI(uri string) bool {
	if strings.ContainsAny(uri, " \t") {
		return false
	}
	_, err := url.Parse(uri)
	return err == nil
}
