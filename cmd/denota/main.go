// SPDX-License-Identifier: MIT

// Command denota inspects project files: it lists forms, prints and queries
// denotators, combines Power denotators and folds string-valued collections.
//
// Usage:
//
//	denota -p score.yaml forms
//	denota -p score.yaml show score
//	denota -p score.yaml select score --form Pitch
//	denota -p score.yaml set union a b
//	denota -p words.yaml fold lyrics
//	denota prime 65537
//
// Exit status is 0 on success, 1 on a failed command and 2 on a usage error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintln(stderr, "denota:", err)

	var fail *failure
	if errors.As(err, &fail) {
		return exitFailure
	}

	return exitUsage
}

// failure marks errors of a command that was invoked correctly.
type failure struct{ err error }

func (f *failure) Error() string { return f.err.Error() }
func (f *failure) Unwrap() error { return f.err }

func failed(err error) error {
	if err == nil {
		return nil
	}

	return &failure{err: err}
}
