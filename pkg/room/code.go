package room

import (
	"shithead-server/internal/rng"
)

// CodeLength is the length of a room code
const CodeLength = 6

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateCode returns a random room code of uppercase letters and digits
func generateCode(gen rng.Generator) string {
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = codeAlphabet[gen.Intn(len(codeAlphabet))]
	}

	return string(b)
}
