package combin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokereval/card"
	"github.com/lox/pokereval/internal/combin"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		n, k, want int
	}{
		{5, 2, 10},
		{7, 3, 35},
		{4, 4, 1},
		{4, 0, 1},
		{4, 5, 0},
		{5, -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, combin.Choose(tt.n, tt.k))
	}
}

func TestCardSubsetsCount(t *testing.T) {
	cards, err := card.ParseHand("2c 3c 4c 5c 6c 7c 8c")
	assert.NoError(t, err)
	subsets := combin.CardSubsets(cards.Cards(), 5)
	assert.Len(t, subsets, combin.Choose(7, 5))

	for _, s := range subsets {
		assert.Len(t, s, 5)
		seen := make(map[card.Card]bool)
		for _, c := range s {
			assert.False(t, seen[c])
			seen[c] = true
		}
	}
}

func TestCardSubsetsEdgeCases(t *testing.T) {
	cards, _ := card.ParseHand("2c 3c")
	assert.Nil(t, combin.CardSubsets(cards.Cards(), 3))
	assert.Equal(t, [][]card.Card{{}}, combin.CardSubsets(cards.Cards(), 0))
}

func TestRankHistogramSize(t *testing.T) {
	var h combin.RankHistogram
	h[card.Ace] = 2
	h[card.Two] = 1
	assert.Equal(t, 3, h.Size())
}

func TestRankHistogramsCoversEverySize(t *testing.T) {
	histograms := combin.RankHistograms(3)
	sizes := make(map[int]bool)
	for _, h := range histograms {
		sizes[h.Size()] = true
	}
	for size := 0; size <= 3; size++ {
		assert.True(t, sizes[size], "missing histograms of size %d", size)
	}
}

func TestRankHistogramsAreUnique(t *testing.T) {
	histograms := combin.RankHistograms(5)
	seen := make(map[combin.RankHistogram]bool)
	for _, h := range histograms {
		assert.False(t, seen[h])
		seen[h] = true
	}
}

func TestRankHistogramKeyIsInjectiveForDistinctHistograms(t *testing.T) {
	weights := [card.RankCount]uint32{
		0x2000, 0x8001, 0x11000, 0x3a000, 0x91000, 0x176005, 0x366000,
		0x41a013, 0x47802e, 0x479068, 0x48c0e4, 0x48f211, 0x494493,
	}
	histograms := combin.RankHistograms(7)
	seen := make(map[uint64]bool, len(histograms))
	for _, h := range histograms {
		key := h.Key(weights)
		assert.False(t, seen[key], "signature collision for histogram %v", h)
		seen[key] = true
	}
}
