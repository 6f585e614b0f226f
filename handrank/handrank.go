// Package handrank implements the shared hand-class ranking scheme: packing
// a (category, primary ranks, kickers) tuple into a single comparable 32-bit
// integer such that numeric order matches poker order, for every variant.
package handrank

import "github.com/lox/pokereval/card"

// Rank is a 32-bit hand strength. Larger is always stronger, for every
// variant — low variants achieve this by inverting rank order internally
// before encoding, never by inverting the comparison at the call site.
type Rank uint32

// Compare returns -1, 0, or 1 as r is weaker, equal to, or stronger than
// other.
func (r Rank) Compare(other Rank) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	default:
		return 0
	}
}

const (
	categoryShift = 26
	tiebreakMask  = 1<<categoryShift - 1 // 26 bits: room for a base-14 numeral of up to 6 digits
)

// Encode packs a category index and an ordered tiebreak numeral (built by
// RadixEncodeDigits over the category's primary ranks followed by its
// kickers, most significant first) into a Rank. Rather than separate
// "primary<<13 | kicker" fields, the primary ranks and kickers form one
// base-14 positional numeral; within a category it orders the same way,
// primary ranks first and kickers after.
func Encode(category uint32, tiebreak uint32) Rank {
	return Rank(category<<categoryShift | (tiebreak & tiebreakMask))
}

// Category extracts the category index a Rank was encoded with.
func (r Rank) Category() uint32 {
	return uint32(r) >> categoryShift
}

// Digit converts a possibly-absent kicker rank into a base-14 positional
// digit for use with RadixEncodeDigits: present ranks map to 1+rank, and an
// absent kicker maps to 0, sorting below every real rank so that a missing
// kicker is always the worst possible value, per the "missing cards act as
// worst-possible kickers" rule.
func Digit(r card.Rank, present bool) uint32 {
	if !present {
		return 0
	}
	return uint32(r) + 1
}

// digitRadix is one more than the rank count, reserving digit 0 for "no
// card here" below every real rank's digit (1..13).
const digitRadix = card.RankCount + 1

// RadixEncodeDigits packs a small slice of base-14 digits (see Digit), most
// significant first, into a single positional numeral. Used wherever a
// tiebreak position may legitimately be unfilled, e.g. hands with fewer than
// 5 cards.
func RadixEncodeDigits(digits []uint32) uint32 {
	var v uint32
	for _, d := range digits {
		v = v*digitRadix + d
	}
	return v
}
