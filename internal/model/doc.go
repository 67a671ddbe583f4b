// Package model defines the domain types and value objects for the gen CLI.
//
// This package contains pure data structures with no external dependencies.
// Params and the generated string are transient: they are parsed once per
// invocation, written, and discarded. There is no persistent state.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
