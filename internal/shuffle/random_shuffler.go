package shuffle

import (
	"math/rand"
)

// randomShuffler implements Shuffler using math/rand
type randomShuffler struct{}

// NewRandomShuffler creates a new random shuffler
func NewRandomShuffler() Shuffler {
	return &randomShuffler{}
}

// Shuffle implements Shuffler.Shuffle
func (s *randomShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// Perm implements Shuffler.Perm
func (s *randomShuffler) Perm(n int) []int {
	return rand.Perm(n)
}
