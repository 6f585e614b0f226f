package handrank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokereval/card"
	"github.com/lox/pokereval/handrank"
)

func TestCompare(t *testing.T) {
	weak := handrank.Encode(0, 5)
	strong := handrank.Encode(1, 0)
	assert.Equal(t, -1, weak.Compare(strong))
	assert.Equal(t, 1, strong.Compare(weak))
	assert.Equal(t, 0, weak.Compare(weak))
}

func TestCategoryRoundTrips(t *testing.T) {
	r := handrank.Encode(7, 12345)
	assert.Equal(t, uint32(7), r.Category())
}

func TestRadixEncodeDigitsOrdersLikeRankSlices(t *testing.T) {
	a := handrank.RadixEncodeDigits([]uint32{handrank.Digit(card.King, true), handrank.Digit(card.Two, true)})
	b := handrank.RadixEncodeDigits([]uint32{handrank.Digit(card.King, true), handrank.Digit(card.Three, true)})
	c := handrank.RadixEncodeDigits([]uint32{handrank.Digit(card.Ace, true), handrank.Digit(card.Two, true)})
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestDigitMissingSortsBelowEveryRealRank(t *testing.T) {
	missing := handrank.Digit(card.Two, false)
	for r := card.Two; r <= card.Ace; r++ {
		present := handrank.Digit(r, true)
		assert.Less(t, missing, present)
	}
}

func TestRadixEncodeDigitsOrdering(t *testing.T) {
	full := handrank.RadixEncodeDigits([]uint32{
		handrank.Digit(card.Ace, true),
		handrank.Digit(card.King, true),
	})
	partial := handrank.RadixEncodeDigits([]uint32{
		handrank.Digit(card.Ace, true),
		handrank.Digit(card.King, false),
	})
	assert.Greater(t, full, partial)
}

func TestEncodeSeparatesCategoriesRegardlessOfTiebreak(t *testing.T) {
	lowCategoryHighTiebreak := handrank.Encode(0, (1<<26)-1)
	highCategoryLowTiebreak := handrank.Encode(1, 0)
	assert.Less(t, lowCategoryHighTiebreak, highCategoryLowTiebreak)
}
