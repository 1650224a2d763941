package change

import (
	"sort"
)

// Solver describes the behaviour required from a change solver.
type Solver interface {
	Change(target int, denominations []int) ([]int, error)
}

type dpSolver struct{}

// New creates a Solver based on dynamic programming.
func New() Solver {
	return &dpSolver{}
}

// Change returns a minimal-count decomposition of target into the given
// denomination values, ordered from largest to smallest. Denominations are
// scanned in the order given: when several choices are equally good for an
// amount, the first one scanned wins, so the input order decides which of
// the tied decompositions is returned (never the count itself).
func (s *dpSolver) Change(target int, denominations []int) ([]int, error) {
	if target < 0 {
		return nil, ErrInvalidTarget
	}
	if len(denominations) == 0 {
		return nil, ErrInvalidDenominations
	}
	for _, d := range denominations {
		if d <= 0 {
			return nil, ErrInvalidDenominations
		}
	}
	if target == 0 {
		return []int{}, nil
	}

	// cost[w] is the minimum piece count summing exactly to w; unreachable
	// amounts keep the sentinel. choice[w] records the denomination index
	// used for the last piece at w.
	unreachable := target + 1
	cost := make([]int, target+1)
	choice := make([]int, target+1)
	for w := 1; w <= target; w++ {
		cost[w] = unreachable
		choice[w] = -1
	}

	for w := 1; w <= target; w++ {
		for i, d := range denominations {
			if d <= w && cost[w-d]+1 < cost[w] {
				cost[w] = cost[w-d] + 1
				choice[w] = i
			}
		}
	}

	if cost[target] >= unreachable {
		return nil, ErrNoExactChange
	}

	counts := make([]int, len(denominations))
	for v := target; v > 0; {
		i := choice[v]
		counts[i]++
		v -= denominations[i]
	}

	// Emit largest value first, equal values contiguous.
	order := make([]int, len(denominations))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return denominations[order[a]] > denominations[order[b]]
	})

	result := make([]int, 0, cost[target])
	for _, i := range order {
		for n := 0; n < counts[i]; n++ {
			result = append(result, denominations[i])
		}
	}

	return result, nil
}
