// Command seqdemo runs the sequence operator demonstration.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kbukum/seqkit/errors"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to a process exit status.
func exitCode(err error) int {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.ExitCode()
	}
	return 1
}
