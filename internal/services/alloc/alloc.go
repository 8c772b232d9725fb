package alloc

import (
	"fmt"
	"math/rand"
)

// RandomAllocation generates n random integer percentages summing to 100.
// The generator is injected so callers control determinism; the last slot
// absorbs the remainder and may be negative when the draws oversubscribe,
// mirroring a naive equal-odds draw rather than a Dirichlet split.
func RandomAllocation(n int, rng *rand.Rand) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("allocation size must be positive, got %d", n)
	}
	if rng == nil {
		return nil, fmt.Errorf("rng is required")
	}

	out := make([]int, 0, n)
	total := 0
	for i := 0; i < n-1; i++ {
		p := rng.Intn(100) + 1
		out = append(out, p)
		total += p
	}
	out = append(out, 100-total)
	return out, nil
}
