package shuffle

// Shuffler provides an interface for the randomness the draft engine
// consumes. This allows us to inject deterministic implementations for
// testing.
type Shuffler interface {
	// Shuffle randomizes the order of n elements via the swap function
	Shuffle(n int, swap func(i, j int))

	// Perm returns a random permutation of the integers [0, n)
	Perm(n int) []int
}
