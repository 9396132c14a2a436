package shuffle

import (
	"sync"
)

// MockShuffler implements Shuffler for testing with predetermined results.
// Shuffle leaves the order untouched; Perm returns queued permutations and
// falls back to the identity permutation when none are queued.
type MockShuffler struct {
	mu    sync.Mutex
	perms [][]int
}

// NewMockShuffler creates a new mock shuffler
func NewMockShuffler() *MockShuffler {
	return &MockShuffler{}
}

// QueuePerm queues the next permutation Perm returns
func (m *MockShuffler) QueuePerm(perm []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.perms = append(m.perms, perm)
}

// Shuffle implements Shuffler.Shuffle as a no-op, keeping input order
func (m *MockShuffler) Shuffle(n int, swap func(i, j int)) {}

// Perm implements Shuffler.Perm
func (m *MockShuffler) Perm(n int) []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.perms) > 0 {
		perm := m.perms[0]
		m.perms = m.perms[1:]
		return perm
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
