// Package output persists generated test inputs.
//
// A test input file holds exactly one line: the generated string, one
// space, and a newline. Files are replaced atomically via
// github.com/moby/sys/atomicwriter, so a failed write never leaves a
// truncated or half-written file behind.
package output
