package model

import (
	"fmt"
)

// LowercaseLetters is the full ordered alphabet test inputs are drawn from.
const LowercaseLetters = "abcdefghijklmnopqrstuvwxyz"

// Domain bounds for the numeric arguments.
const (
	// MinLength is the shortest string the generator will produce.
	MinLength = 1

	// MinAlphabetSize and MaxAlphabetSize bound M: at least "a",
	// at most the whole lowercase alphabet.
	MinAlphabetSize = 1
	MaxAlphabetSize = len(LowercaseLetters)
)

// Alphabet returns the first m lowercase Latin letters ("a" .. m-th letter).
// m is clamped to [0, MaxAlphabetSize] so callers never slice out of range.
func Alphabet(m int) string {
	if m < 0 {
		m = 0
	}
	if m > MaxAlphabetSize {
		m = MaxAlphabetSize
	}
	return LowercaseLetters[:m]
}

// Params holds the three positional arguments of a generator invocation.
//
// A Params value returned by the CLI parser has always passed Validate;
// the generator and file writer rely on that and do not re-check.
type Params struct {
	// Length is N, the number of characters to generate (>= 1).
	Length int `json:"length" yaml:"length"`

	// AlphabetSize is M, the number of leading lowercase letters
	// eligible for sampling (1-26).
	AlphabetSize int `json:"alphabetSize" yaml:"alphabetSize"`

	// OutputPath is the file the generated line is written to.
	// An existing file is overwritten.
	OutputPath string `json:"path" yaml:"path"`
}

// Validate checks both numeric arguments against their domains.
// Length is checked before AlphabetSize, so an invocation with both out of
// range reports the length problem.
func (p Params) Validate() error {
	if err := ValidateLength(p.Length); err != nil {
		return err
	}
	return ValidateAlphabetSize(p.AlphabetSize)
}

// ValidateLength returns a domain error when n < MinLength.
func ValidateLength(n int) error {
	if n < MinLength {
		return NewDomainError(fmt.Sprintf("Domain error: N < %d (got %d)", MinLength, n))
	}
	return nil
}

// ValidateAlphabetSize returns a domain error when m is outside
// [MinAlphabetSize, MaxAlphabetSize].
func ValidateAlphabetSize(m int) error {
	if m < MinAlphabetSize || m > MaxAlphabetSize {
		return NewDomainError(fmt.Sprintf("Domain error: M must be in [%d, %d] (got %d)",
			MinAlphabetSize, MaxAlphabetSize, m))
	}
	return nil
}

// ExitCode defines the process exit codes of the gen CLI.
// Usage and domain errors share code 1; I/O failures use 2, the same code
// the Go runtime uses for an abnormal termination.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError covers usage, domain and input errors.
	ExitGeneralError ExitCode = 1

	// ExitIOError indicates the output file could not be opened or written.
	ExitIOError ExitCode = 2
)

// ErrorKind classifies a CLIError. Exit codes alone cannot tell usage and
// domain errors apart, but the CLI prints usage only for the former.
type ErrorKind string

const (
	// KindUsage is a wrong number of command-line arguments.
	KindUsage ErrorKind = "usage"

	// KindDomain is a numeric argument that is not an integer or is
	// outside its permitted range.
	KindDomain ErrorKind = "domain"

	// KindIO is a failure to open or write an output file.
	KindIO ErrorKind = "io"

	// KindInput is a manifest or count input that cannot be read or parsed.
	KindInput ErrorKind = "input"
)

// String returns the string representation of ErrorKind.
func (k ErrorKind) String() string {
	return string(k)
}

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Kind classifies the failure (usage, domain, io, input).
	Kind ErrorKind

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewUsageError reports a wrong argument count.
func NewUsageError(message string) *CLIError {
	return &CLIError{Code: ExitGeneralError, Kind: KindUsage, Message: message}
}

// NewDomainError reports a numeric argument outside its domain.
func NewDomainError(message string) *CLIError {
	return &CLIError{Code: ExitGeneralError, Kind: KindDomain, Message: message}
}

// WrapIOError wraps a filesystem failure on an output path.
func WrapIOError(message string, err error) *CLIError {
	return &CLIError{Code: ExitIOError, Kind: KindIO, Message: message, Err: err}
}

// WrapInputError wraps a failure to read or parse an input file.
func WrapInputError(message string, err error) *CLIError {
	return &CLIError{Code: ExitGeneralError, Kind: KindInput, Message: message, Err: err}
}
