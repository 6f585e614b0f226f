// Package tables owns the per-variant perfect-hash and direct-address
// lookup tables (§4.3, §4.4, §4.11): each is built once, the first time this
// package is imported, by enumerating its key domain and running the brute
// force ranker in ranker.go over every key. Building the several
// independent tables is embarrassingly parallel, so it is done with an
// errgroup.
package tables

import (
	"math/bits"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokereval/card"
	"github.com/lox/pokereval/handrank"
	"github.com/lox/pokereval/internal/combin"
	"github.com/lox/pokereval/internal/mphf"
)

const flushDomain = 1 << card.RankCount

var (
	stdNonFlushTbl *mphf.Table[handrank.Rank]
	stdFlushTbl    [flushDomain]handrank.Rank

	a5NonFlushTbl *mphf.Table[handrank.Rank]

	spNonFlushTbl *mphf.Table[handrank.Rank]
	spFlushTbl    [flushDomain]handrank.Rank

	d7BaseTbl  *mphf.Table[handrank.Rank]
	d7FlushTbl [flushDomain]handrank.Rank

	badugiTbl [flushDomain]handrank.Rank
	baduciTbl [flushDomain]handrank.Rank
)

// Stat describes one built lookup table, for the table generator command to
// report; the evaluator core itself never logs.
type Stat struct {
	Name     string
	KeyCount int
	Codomain int
}

var (
	statsMu sync.Mutex
	stats   []Stat
)

var buildDuration time.Duration

// BuildDuration returns how long package init spent building every table.
func BuildDuration() time.Duration {
	return buildDuration
}

func init() {
	start := time.Now()
	defer func() { buildDuration = time.Since(start) }()

	var g errgroup.Group

	g.Go(func() error {
		histograms := combin.RankHistograms(7)
		stdNonFlushTbl = buildNonFlush(histograms, stdNonFlush)
		recordStat("standard/non-flush", len(histograms), stdNonFlushTbl.Len())
		return nil
	})
	g.Go(func() error {
		buildFlushArray(&stdFlushTbl, stdFlush)
		recordStat("standard/flush", flushDomain, flushDomain)
		return nil
	})
	g.Go(func() error {
		histograms := combin.RankHistograms(7)
		a5NonFlushTbl = buildNonFlush(histograms, aceFiveNonFlush)
		recordStat("ace-to-five/non-flush", len(histograms), a5NonFlushTbl.Len())
		return nil
	})
	g.Go(func() error {
		histograms := combin.RankHistograms(7)
		spNonFlushTbl = buildNonFlush(histograms, sixPlusNonFlush)
		recordStat("six-plus/non-flush", len(histograms), spNonFlushTbl.Len())
		return nil
	})
	g.Go(func() error {
		buildFlushArray(&spFlushTbl, sixPlusFlush)
		recordStat("six-plus/flush", flushDomain, flushDomain)
		return nil
	})
	g.Go(func() error {
		histograms := combin.RankHistograms(5)
		d7BaseTbl = buildNonFlush(histograms, deuceSevenNonFlush)
		recordStat("deuce-to-seven/base", len(histograms), d7BaseTbl.Len())
		return nil
	})
	g.Go(func() error {
		buildFlushArray(&d7FlushTbl, deuceSevenFlush)
		recordStat("deuce-to-seven/flush", flushDomain, flushDomain)
		return nil
	})
	g.Go(func() error {
		buildBadugiArray(&badugiTbl, false)
		recordStat("badugi", flushDomain, flushDomain)
		return nil
	})
	g.Go(func() error {
		buildBadugiArray(&baduciTbl, true)
		recordStat("baduci", flushDomain, flushDomain)
		return nil
	})

	_ = g.Wait()
}

func recordStat(name string, keyCount, codomain int) {
	statsMu.Lock()
	defer statsMu.Unlock()
	stats = append(stats, Stat{Name: name, KeyCount: keyCount, Codomain: codomain})
}

// Stats returns a snapshot of every table built at package init.
func Stats() []Stat {
	statsMu.Lock()
	defer statsMu.Unlock()
	out := make([]Stat, len(stats))
	copy(out, stats)
	return out
}

func buildNonFlush(histograms []combin.RankHistogram, ranker func(combin.RankHistogram) handrank.Rank) *mphf.Table[handrank.Rank] {
	keys := make([]uint64, len(histograms))
	values := make([]handrank.Rank, len(histograms))
	for i, h := range histograms {
		keys[i] = h.Key(signatureWeights)
		values[i] = ranker(h)
	}
	t, err := mphf.Build(keys, values, mphf.BuildOptions{})
	if err != nil {
		panic(err)
	}
	return t
}

func buildFlushArray(dst *[flushDomain]handrank.Rank, ranker func(uint16) handrank.Rank) {
	for mask := 0; mask < flushDomain; mask++ {
		dst[mask] = ranker(uint16(mask))
	}
}

func buildBadugiArray(dst *[flushDomain]handrank.Rank, aceLow bool) {
	for mask := 0; mask < flushDomain; mask++ {
		popcount := bits.OnesCount16(uint16(mask))
		if popcount == 0 || popcount > 4 {
			continue
		}
		var ranks []card.Rank
		for r := 0; r < card.RankCount; r++ {
			if mask&(1<<uint(r)) != 0 {
				ranks = append(ranks, card.Rank(r))
			}
		}
		category := uint32(popcount - 1)
		dst[mask] = handrank.Encode(category, badugiTiebreak(ranks, aceLow))
	}
}

// StandardNonFlush looks up the best non-flush hand for a rank histogram
// under standard hand-category rules.
func StandardNonFlush(h combin.RankHistogram) handrank.Rank {
	return stdNonFlushTbl.Get(h.Key(signatureWeights))
}

// StandardFlush looks up the best flush/straight-flush hand for a single
// suit's 13-bit rank mask under standard rules.
func StandardFlush(mask uint16) handrank.Rank {
	return stdFlushTbl[mask]
}

// AceToFiveNonFlush looks up the best hand for a rank histogram under
// ace-to-five lowball rules.
func AceToFiveNonFlush(h combin.RankHistogram) handrank.Rank {
	return a5NonFlushTbl.Get(h.Key(signatureWeights))
}

// SixPlusNonFlush and SixPlusFlush mirror the standard lookups under the
// six-plus (short-deck) category ordering.
func SixPlusNonFlush(h combin.RankHistogram) handrank.Rank {
	return spNonFlushTbl.Get(h.Key(signatureWeights))
}

func SixPlusFlush(mask uint16) handrank.Rank {
	return spFlushTbl[mask]
}

// DeuceToSevenBase looks up a single 5-card (or fewer) non-flush selection
// under deuce-to-seven rules; callers with 6 or 7 cards enumerate C(n,5)
// subsets and call this once per subset.
func DeuceToSevenBase(h combin.RankHistogram) handrank.Rank {
	return d7BaseTbl.Get(h.Key(signatureWeights))
}

// DeuceToSevenFlush looks up a single-suit 5-card (or fewer) selection under
// deuce-to-seven rules.
func DeuceToSevenFlush(mask uint16) handrank.Rank {
	return d7FlushTbl[mask]
}

// Badugi looks up the lowness rank of a rank subset (encoded as a 13-bit
// mask, popcount 1-4) with aces high.
func Badugi(mask uint16) handrank.Rank {
	return badugiTbl[mask]
}

// Baduci looks up the lowness rank of a rank subset with aces low.
func Baduci(mask uint16) handrank.Rank {
	return baduciTbl[mask]
}
