package generator

import (
	"github.com/shinji-kodama/subpalindromes/internal/model"
)

// Generate returns a string of exactly length characters, each drawn
// independently and uniformly from the first alphabetSize lowercase letters.
//
// Both arguments must already be validated (see model.Params.Validate);
// Generate panics on non-positive values.
func Generate(s Sampler, length, alphabetSize int) string {
	letters := model.Alphabet(alphabetSize)

	b := make([]byte, length)
	for i := range b {
		b[i] = letters[s.IntN(len(letters))]
	}
	return string(b)
}
