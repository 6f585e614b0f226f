// Command handgen drives construction of the evaluator's lookup tables and
// reports what was built. The tables themselves are ordinary package vars in
// internal/tables, populated once at package init via a minimal perfect hash
// construction; this command exists to force that initialization outside of
// the test suite and report timing and size statistics.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokereval/internal/tables"
)

type CLI struct {
	Verbose bool `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	level := log.InfoLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	stats := tables.Stats()
	elapsed := tables.BuildDuration()

	for _, s := range stats {
		logger.Info("table built", "name", s.Name, "keys", s.KeyCount, "codomain", s.Codomain)
	}
	logger.Info("all tables ready", "count", len(stats), "elapsed", elapsed)
	fmt.Printf("%d tables built in %v\n", len(stats), elapsed.Truncate(time.Microsecond))
}
