package tables

import "github.com/lox/pokereval/card"

// signatureWeights are the per-rank multipliers used to fold a rank-count
// histogram into a single injective 64-bit signature (§4.3). This exact
// vector is carried forward from the reference implementation these tables
// are grounded on — it is known to be injective over every 0-7 card rank
// histogram, a property that is expensive to re-derive from scratch and
// unnecessary to when a verified vector already exists.
var signatureWeights = [card.RankCount]uint32{
	0x2000, 0x8001, 0x11000, 0x3a000, 0x91000, 0x176005, 0x366000,
	0x41a013, 0x47802e, 0x479068, 0x48c0e4, 0x48f211, 0x494493,
}
