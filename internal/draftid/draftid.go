// draftid generates the short human-typeable draft codes and allows mocking
package draftid

import (
	"math/rand"
)

// Length is the number of letters in a draft code
const Length = 4

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Generator is an interface for generating draft codes
type Generator interface {
	New() string
}

// RandomGenerator implements the Generator interface using math/rand
type RandomGenerator struct{}

// New generates a fresh 4-lowercase-letter code. Uniqueness against the
// registry is the caller's job; codes collide often enough at this length
// that creation retries until unused.
func (g *RandomGenerator) New() string {
	code := make([]byte, Length)
	for i := range code {
		code[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(code)
}

// NewRandomGenerator creates a new RandomGenerator
func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}
