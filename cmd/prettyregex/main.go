// Command prettyregex lists, inspects and tests the built-in patterns and
// generates Go files declaring patterns from a YAML manifest.
//
// Usage:
//
//	# List catalog patterns
//	prettyregex list
//
//	# Show a pattern and its structure
//	prettyregex show zip
//
//	# Test inputs against a pattern
//	prettyregex match zip 12345 1234 --strict
//
//	# Generate code, regenerating whenever the manifest changes
//	prettyregex generate --config patterns.yaml --watch
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
