// Command pokereval is a small demo that ranks and compares poker hands
// across every variant this module supports, in the same idiom as this
// repository's other CLI tools: kong for flags, lipgloss for the result
// table, charmbracelet/log for diagnostics.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokereval/card"
	"github.com/lox/pokereval/handrank"
	"github.com/lox/pokereval/poker"
)

type CLI struct {
	Variant string   `arg:"" optional:"" help:"standard, ace-to-five, deuce-to-seven, six-plus, badugi, baduci, omaha, omaha-hi-lo"`
	Hands   []string `arg:"" optional:"" help:"Hands to compare, e.g. 'Ah Kh Qh Jh Th' (quoted, space separated). Omitted for --random"`
	Board   string   `short:"b" help:"Community board, exactly 5 cards (omaha and omaha-hi-lo only)"`
	Random  int      `short:"r" help:"Deal this many random 7-card hands instead of parsing hand arguments"`
	Config  string   `short:"c" default:"pokereval.hcl" help:"Optional HCL config file"`
	Verbose bool     `short:"v" help:"Verbose logging"`
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	handStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	rankStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	cfg, err := LoadDisplayConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		ctx.Exit(1)
	}

	level := log.WarnLevel
	if cli.Verbose || cfg.Defaults.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	variant := cli.Variant
	if variant == "" {
		variant = cfg.Defaults.Variant
	}
	logger.Debug("resolved variant", "variant", variant)

	if variant == "omaha" || variant == "omaha-hi-lo" {
		runOmaha(ctx, logger, variant, cli)
		return
	}

	rank, names, ok := variantRanker(variant)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown variant: %s\n", variant)
		ctx.Exit(1)
	}

	var hands []card.Hand
	if cli.Random > 0 {
		hands = dealRandomHands(logger, cli.Random)
	} else {
		if len(cli.Hands) == 0 {
			fmt.Fprintf(os.Stderr, "at least one hand is required (or use --random)\n")
			ctx.Exit(1)
		}
		for i, s := range cli.Hands {
			h, err := card.ParseHand(s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "hand %d: %v\n", i+1, err)
				ctx.Exit(1)
			}
			hands = append(hands, h)
		}
	}

	type entry struct {
		text string
		rank handrank.Rank
	}
	entries := make([]entry, 0, len(hands))
	for _, h := range hands {
		r := rank(h)
		logger.Debug("evaluated hand", "hand", h.String(), "category", names[r.Category()], "rank", uint32(r))
		entries = append(entries, entry{text: h.String(), rank: r})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].rank > entries[j].rank })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("hand"), headerStyle.Render("category"), headerStyle.Render("rank"))
	for i, e := range entries {
		style := rankStyle
		if i == 0 {
			style = winStyle
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			handStyle.Render(e.text),
			style.Render(names[e.rank.Category()]),
			style.Render(fmt.Sprintf("%d", uint32(e.rank))))
	}
	w.Flush()
}

func dealRandomHands(logger *log.Logger, n int) []card.Hand {
	deck := card.NewDeck(rand.New(rand.NewSource(time.Now().UnixNano())))
	hands := make([]card.Hand, n)
	for i := range hands {
		hands[i] = card.FromCards(deck.Deal(7))
		logger.Debug("dealt hand", "hand", hands[i].String())
	}
	return hands
}

func runOmaha(ctx *kong.Context, logger *log.Logger, variant string, cli CLI) {
	if len(cli.Hands) != 1 {
		fmt.Fprintf(os.Stderr, "%s requires exactly one hole hand of 4 cards\n", variant)
		ctx.Exit(1)
	}
	hole, err := card.ParseHand(cli.Hands[0])
	if err != nil || hole.Len() != 4 {
		fmt.Fprintf(os.Stderr, "hole hand must be exactly 4 cards\n")
		ctx.Exit(1)
	}
	board, err := card.ParseHand(cli.Board)
	if err != nil || board.Len() != 5 {
		fmt.Fprintf(os.Stderr, "board must be exactly 5 cards\n")
		ctx.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if variant == "omaha" {
		r := poker.OmahaRank(hole, board)
		logger.Debug("evaluated omaha hand", "hole", hole.String(), "board", board.String(), "rank", uint32(r))
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hi rank"), winStyle.Render(fmt.Sprintf("%d", uint32(r))))
		w.Flush()
		return
	}

	hi, lo, loQualifies := poker.OmahaHiLoRank(hole, board)
	logger.Debug("evaluated omaha hi-lo hand", "hole", hole.String(), "board", board.String(),
		"hi", uint32(hi), "lo", uint32(lo), "loQualifies", loQualifies)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hi rank"), winStyle.Render(fmt.Sprintf("%d", uint32(hi))))
	if loQualifies {
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("lo rank"), winStyle.Render(fmt.Sprintf("%d", uint32(lo))))
	} else {
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("lo rank"), rankStyle.Render("no qualifying low"))
	}
	w.Flush()
}

var standardCategories = []string{
	"High Card", "Pair", "Two Pair", "Three of a Kind", "Straight",
	"Flush", "Full House", "Four of a Kind", "Straight Flush",
}

var aceToFiveCategories = []string{
	"Four of a Kind", "Full House", "Three of a Kind", "Two Pair", "Pair", "High Card",
}

var sixPlusCategories = []string{
	"High Card", "Pair", "Two Pair", "Straight", "Three of a Kind",
	"Full House", "Flush", "Four of a Kind", "Straight Flush",
}

var deuceToSevenCategories = []string{
	"Straight Flush", "Four of a Kind", "Full House", "Flush", "Straight",
	"Three of a Kind", "Two Pair", "Pair", "High Card",
}

var badugiCategories = []string{"One Card", "Two Card", "Three Card", "Four Card"}

func variantRanker(variant string) (func(card.Hand) handrank.Rank, []string, bool) {
	switch variant {
	case "standard", "":
		return poker.PokerRank, standardCategories, true
	case "ace-to-five":
		return poker.AceToFiveRank, aceToFiveCategories, true
	case "deuce-to-seven":
		return poker.DeuceToSevenRank, deuceToSevenCategories, true
	case "six-plus":
		return poker.SixPlusRank, sixPlusCategories, true
	case "badugi":
		return poker.BadugiRank, badugiCategories, true
	case "baduci":
		return poker.BaduciRank, badugiCategories, true
	default:
		return nil, nil, false
	}
}
