package main

import (
	"fmt"

	"github.com/oriel-cms/orsh/internal/messages"
	"github.com/oriel-cms/orsh/internal/root"
)

// resolveRoot locates the Oriel root for this invocation. Discovery walks
// upward from --root when given, otherwise from the working directory.
func resolveRoot() (string, error) {
	start := rootOpts.rootDir
	if start == "" {
		start = getwd()
	}
	desc, found, err := root.Find(start, nil)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf(messages.RootNotFoundFmt, start)
	}
	return desc.Root, nil
}
