// Package generator produces random test-input strings for the
// subpalindromes exercise.
//
// Randomness is injected through the Sampler interface, so tests can
// substitute a stub and reproducible runs can use a seeded PCG source.
package generator
