package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"evict"
	"evict/config"
	"evict/report"
)

var Run = cli.Command{
	Action: run,
	Name:   "run",
	Usage:  "print the page table and the page chosen by NRU, FIFO, LRU and Second Chance",
	Flags:  append(sessionFlags(), &resultsTableFlag),
}

var resultsTableFlag = cli.BoolFlag{
	Name:  "results-table",
	Usage: "also print the results as a table",
}

func run(ctx *cli.Context) error {
	s, err := newSession(ctx)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.logger.Sync()

	engine := evict.NewEngine(evict.WithRand(s.rnd), evict.WithLogger(s.logger))
	w := ctx.App.Writer
	for i, mode := range s.datasets {
		if err := evaluate(w, engine, s, i+1, mode, ctx.Bool(resultsTableFlag.Name)); err != nil {
			return cli.Exit(report.Rejection(err), 1)
		}
	}
	return nil
}

func evaluate(w io.Writer, engine *evict.Engine, s *session, n int, mode string, table bool) error {
	ps, err := s.pageSet(mode)
	if err != nil {
		return err
	}
	values := "static values"
	if mode == config.DatasetRandom {
		values = "random values"
	}
	fmt.Fprintf(w, "\n%d. Here is the table with the %s and the results.\n\n", n, values)
	report.WritePages(w, ps)
	fmt.Fprintln(w)

	rep, err := engine.Evaluate(ps)
	if err != nil {
		return err
	}
	if table {
		report.WriteResults(w, rep)
	}
	return report.WriteSummary(w, rep)
}
