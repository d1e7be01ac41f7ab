package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spboyer/toklens/internal/textio"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Analysis completed
	ExitNoInput = 1 // Nothing to analyze
	ExitError   = 2 // Configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, textio.ErrNoInput):
		return ExitNoInput
	default:
		return ExitError
	}
}
