package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/lox/pokereval/card"
	"github.com/lox/pokereval/poker"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestVariantRanker(t *testing.T) {
	tests := []struct {
		variant string
		wantOK  bool
	}{
		{"standard", true},
		{"", true},
		{"ace-to-five", true},
		{"deuce-to-seven", true},
		{"six-plus", true},
		{"badugi", true},
		{"baduci", true},
		{"omaha", false},
		{"bogus", false},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			rank, names, ok := variantRanker(tt.variant)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.NotNil(t, rank)
				assert.NotEmpty(t, names)
			}
		})
	}
}

func TestDealRandomHandsDealsDistinctSevenCardHands(t *testing.T) {
	hands := dealRandomHands(testLogger(), 3)
	seen := make(map[card.Card]bool)
	for _, h := range hands {
		assert.Equal(t, 7, h.Len())
		for _, c := range h.Cards() {
			assert.False(t, seen[c], "card dealt twice across hands: %s", c)
			seen[c] = true
		}
	}
}

func TestVariantCategoriesMatchPokerRankCategoryCount(t *testing.T) {
	_, names, _ := variantRanker("standard")
	h, _ := card.ParseHand("Ah Kh Qh Jh Th")
	rank := poker.PokerRank(h)
	assert.Less(t, int(rank.Category()), len(names))
}
