package rng

import (
	"crypto/rand"
	"math/big"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Crypto is a Generator backed by crypto/rand
type Crypto struct{}

// Intn returns a random number in [0, n)
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
