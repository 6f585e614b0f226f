// Package combin provides the small combinatorial enumeration kernels the
// evaluator core and its table generator share: k-of-n subset enumeration
// over a hand of cards, and exhaustive enumeration of rank-count histograms
// used to build the non-flush lookup tables.
package combin

import "github.com/lox/pokereval/card"

// CardSubsets returns every k-element subset of cards, as a fresh slice per
// subset, in lexicographic index order. Used by the Omaha, Deuce-to-Seven
// slow path, and Badugi/Baduci evaluators to enumerate candidate 5-card (or
// smaller) selections from a larger hand.
func CardSubsets(cards []card.Card, k int) [][]card.Card {
	n := len(cards)
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]card.Card{{}}
	}

	var out [][]card.Card
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		subset := make([]card.Card, k)
		for i, j := range idx {
			subset[i] = cards[j]
		}
		out = append(out, subset)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}

	return out
}

// Choose returns the binomial coefficient C(n,k).
func Choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// RankHistogram is the occupancy per rank (0..4) of a card multiset with
// suits ignored — the key domain of the non-flush lookup tables.
type RankHistogram [card.RankCount]uint8

// Size returns the total card count the histogram represents.
func (h RankHistogram) Size() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// RankHistograms enumerates every histogram with total occupancy in
// [0,maxSize] and per-rank multiplicity in [0,4], the exact domain the
// generator walks per §4.11 step 1 for the non-flush tables (sizes 0-7 cover
// both the documented 5-7 card lookups and the degenerate fewer-than-5-card
// inputs).
func RankHistograms(maxSize int) []RankHistogram {
	var out []RankHistogram
	var h RankHistogram

	// Enumerate every size from 0 to maxSize by capping remaining at each
	// size individually so histograms whose true total is smaller than
	// maxSize are still emitted (padded implicitly, since size 4 and size 7
	// with three empty ranks are the same histogram bit pattern).
	seen := make(map[RankHistogram]bool)
	for size := 0; size <= maxSize; size++ {
		h = RankHistogram{}
		var walk func(rank, remaining int)
		walk = func(rank, remaining int) {
			if rank == card.RankCount {
				if !seen[h] {
					seen[h] = true
					cp := h
					out = append(out, cp)
				}
				return
			}
			maxHere := 4
			if remaining < maxHere {
				maxHere = remaining
			}
			for count := 0; count <= maxHere; count++ {
				h[rank] = uint8(count)
				walk(rank+1, remaining-count)
			}
			h[rank] = 0
		}
		walk(0, size)
	}

	return out
}

// Key computes the injective non-flush table signature for a histogram,
// given the per-rank weight vector (§4.3).
func (h RankHistogram) Key(weights [card.RankCount]uint32) uint64 {
	var key uint64
	for r, count := range h {
		key += uint64(count) * uint64(weights[r])
	}
	return key
}
