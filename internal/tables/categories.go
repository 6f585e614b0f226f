package tables

// Standard hand categories, ascending strength, matching the 9-value
// enumeration in the data model: HighCard < Pair < TwoPair < ThreeKind <
// Straight < Flush < FullHouse < FourKind < StraightFlush. An ace-high
// straight flush is still reported as StraightFlush — there is no separate
// royal category.
const (
	StdHighCard uint32 = iota
	StdPair
	StdTwoPair
	StdThreeKind
	StdStraight
	StdFlush
	StdFullHouse
	StdFourKind
	StdStraightFlush
)

// Ace-to-five categories, ascending strength. Straights and flushes are
// suppressed entirely, so there are only six categories.
const (
	A5FourKind uint32 = iota
	A5FullHouse
	A5ThreeKind
	A5TwoPair
	A5Pair
	A5HighCard
)

// Six-plus (short-deck) categories, ascending strength. Flush beats full
// house, and three-of-a-kind beats straight, both swapped relative to the
// standard ordering.
const (
	SPHighCard uint32 = iota
	SPPair
	SPTwoPair
	SPStraight
	SPThreeKind
	SPFullHouse
	SPFlush
	SPFourKind
	SPStraightFlush
)

// Deuce-to-seven categories, ascending strength (a plain high card unsuited
// hand is the best possible result in this variant, a straight flush the
// worst).
const (
	D7StraightFlush uint32 = iota
	D7FourKind
	D7FullHouse
	D7Flush
	D7Straight
	D7ThreeKind
	D7TwoPair
	D7Pair
	D7HighCard
)

// Badugi/Baduci categories, ascending by cardinality: more valid cards is
// always better regardless of rank.
const (
	BadugiOneCard uint32 = iota
	BadugiTwoCards
	BadugiThreeCards
	BadugiFourCards
)
