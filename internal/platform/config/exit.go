package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitWriter io.Writer = os.Stderr
	exitFunc             = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// Entry points use it for configuration errors the process cannot start with.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitWriter, format+"\n", args...)
	exitFunc(1)
}

// ExitIfError calls Exitf with "<what>: <err>" when err is non-nil.
func ExitIfError(what string, err error) {
	if err == nil {
		return
	}
	Exitf("%s: %v", what, err)
}
