// Package poker implements the public rank functions for every supported
// variant: standard high poker, ace-to-five and deuce-to-seven lowball,
// six-plus short-deck, Badugi/Baduci, and Omaha/Omaha Hi-Lo. Each reduces its
// input to one or more lookups against the tables built in internal/tables.
package poker

import (
	"math/bits"

	"github.com/lox/pokereval/card"
	"github.com/lox/pokereval/handrank"
	"github.com/lox/pokereval/internal/combin"
	"github.com/lox/pokereval/internal/tables"
)

// PokerRank ranks a 0-7 card hand under standard high-poker rules: the best
// of the flush-table lookup (if some suit reaches 5 cards) and the
// non-flush-table lookup.
func PokerRank(h card.Hand) handrank.Rank {
	best := tables.StandardNonFlush(combin.RankHistogram(h.RankCounts()))
	for _, mask := range h.SuitMasks() {
		if bits.OnesCount16(mask) < 5 {
			continue
		}
		if r := tables.StandardFlush(mask); r > best {
			best = r
		}
	}
	return best
}

// AceToFiveRank ranks a 0-7 card hand under ace-to-five lowball rules: no
// straights or flushes, ace counts low, lower multisets are stronger.
func AceToFiveRank(h card.Hand) handrank.Rank {
	return tables.AceToFiveNonFlush(combin.RankHistogram(h.RankCounts()))
}

// SixPlusRank ranks a 0-7 card hand under six-plus (short-deck) rules: flush
// beats full house, three-of-a-kind beats straight, and the wheel is
// A-6-7-8-9. Cards below rank Six are outside this variant's domain and
// produce an undefined result; the caller is responsible for dealing from a
// short deck.
func SixPlusRank(h card.Hand) handrank.Rank {
	best := tables.SixPlusNonFlush(combin.RankHistogram(h.RankCounts()))
	for _, mask := range h.SuitMasks() {
		if bits.OnesCount16(mask) < 5 {
			continue
		}
		if r := tables.SixPlusFlush(mask); r > best {
			best = r
		}
	}
	return best
}

// DeuceToSevenRank ranks a 0-7 card hand under deuce-to-seven lowball rules:
// ace is always high, straights and flushes count against the hand. Hands of
// 5 or fewer cards are looked up directly; hands of 6 or 7 cards enumerate
// every 5-card subset and keep the numerically largest (best) result, since a
// flush-capable hand may need to discard a card to avoid making one.
func DeuceToSevenRank(h card.Hand) handrank.Rank {
	cards := h.Cards()
	if len(cards) <= 5 {
		return deuceToSevenFive(cards)
	}
	var best handrank.Rank
	for i, subset := range combin.CardSubsets(cards, 5) {
		r := deuceToSevenFive(subset)
		if i == 0 || r > best {
			best = r
		}
	}
	return best
}

func deuceToSevenFive(cards []card.Card) handrank.Rank {
	hand := card.FromCards(cards)
	if len(cards) == 5 {
		for _, mask := range hand.SuitMasks() {
			if bits.OnesCount16(mask) == 5 {
				return tables.DeuceToSevenFlush(mask)
			}
		}
	}
	return tables.DeuceToSevenBase(combin.RankHistogram(hand.RankCounts()))
}

// BadugiRank ranks a hand under Badugi rules: aces high, all-distinct-suits
// and all-distinct-ranks subsets of up to 4 cards, more cards always beating
// fewer.
func BadugiRank(h card.Hand) handrank.Rank {
	return badugiRank(h, tables.Badugi)
}

// BaduciRank ranks a hand under Baduci rules: identical to Badugi but with
// aces counting low.
func BaduciRank(h card.Hand) handrank.Rank {
	return badugiRank(h, tables.Baduci)
}

func badugiRank(h card.Hand, lookup func(uint16) handrank.Rank) handrank.Rank {
	cards := h.Cards()
	maxK := len(cards)
	if maxK > 4 {
		maxK = 4
	}
	var best handrank.Rank
	for k := maxK; k >= 1; k-- {
		found := false
		for _, subset := range combin.CardSubsets(cards, k) {
			if !distinctSuitsAndRanks(subset) {
				continue
			}
			found = true
			if r := lookup(rankMaskOf(subset)); r > best {
				best = r
			}
		}
		if found {
			break
		}
	}
	return best
}

func distinctSuitsAndRanks(cards []card.Card) bool {
	var suits, ranks uint16
	for _, c := range cards {
		sBit := uint16(1) << uint(c.Suit())
		rBit := uint16(1) << uint(c.Rank())
		if suits&sBit != 0 || ranks&rBit != 0 {
			return false
		}
		suits |= sBit
		ranks |= rBit
	}
	return true
}

func rankMaskOf(cards []card.Card) uint16 {
	var mask uint16
	for _, c := range cards {
		mask |= 1 << uint(c.Rank())
	}
	return mask
}

// OmahaRank ranks an Omaha hand: exactly 4 hole cards, exactly 5 board
// cards. The rules require exactly 2 hole cards and exactly 3 board cards in
// the final 5-card hand, so this enumerates all C(4,2)*C(5,3) = 60
// combinations and returns the best.
func OmahaRank(hole, board card.Hand) handrank.Rank {
	var best handrank.Rank
	forEachOmahaCombo(hole, board, func(i int, combo []card.Card) {
		r := PokerRank(card.FromCards(combo))
		if i == 0 || r > best {
			best = r
		}
	})
	return best
}

// OmahaHiLoRank ranks an Omaha Hi-Lo hand, returning the best high hand, the
// best qualifying low hand (ace-to-five, 8-or-better, no pairs), and whether
// any combination qualified for low.
func OmahaHiLoRank(hole, board card.Hand) (hi handrank.Rank, lo handrank.Rank, loQualifies bool) {
	forEachOmahaCombo(hole, board, func(i int, combo []card.Card) {
		hand := card.FromCards(combo)
		if r := PokerRank(hand); i == 0 || r > hi {
			hi = r
		}
		if qualifiesForLow(combo) {
			r := AceToFiveRank(hand)
			if !loQualifies || r > lo {
				lo = r
			}
			loQualifies = true
		}
	})
	return hi, lo, loQualifies
}

func forEachOmahaCombo(hole, board card.Hand, f func(i int, combo []card.Card)) {
	holeCards := hole.Cards()
	boardCards := board.Cards()
	i := 0
	for _, h2 := range combin.CardSubsets(holeCards, 2) {
		for _, b3 := range combin.CardSubsets(boardCards, 3) {
			combo := make([]card.Card, 0, 5)
			combo = append(combo, h2...)
			combo = append(combo, b3...)
			f(i, combo)
			i++
		}
	}
}

// qualifiesForLow reports whether a 5-card combination is a valid
// eight-or-better ace-to-five low: no pairs, and every rank is either Ace or
// no higher than Eight.
func qualifiesForLow(cards []card.Card) bool {
	var seen uint16
	for _, c := range cards {
		r := c.Rank()
		if r != card.Ace && r > card.Eight {
			return false
		}
		bit := uint16(1) << uint(r)
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}
