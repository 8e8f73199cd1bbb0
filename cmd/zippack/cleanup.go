package main

import (
	"os"

	"github.com/zippack/zippack/internal/debug"
)

// Exit terminates the process with the given exit code.
func Exit(code int) {
	debug.Log("exiting with status code %d", code)
	os.Exit(code)
}
