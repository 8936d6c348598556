package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"evict"
	"evict/report"
)

var Drain = cli.Command{
	Action: drain,
	Name:   "drain",
	Usage:  "replay the queue model of a policy and print the full eviction order",
	Flags:  append(sessionFlags(), &policyFlag),
}

var policyFlag = cli.StringFlag{
	Name:  "policy",
	Usage: "fifo, lru or second-chance",
	Value: "second-chance",
}

func drain(ctx *cli.Context) error {
	policy, err := evict.ParsePolicy(ctx.String(policyFlag.Name))
	if err == nil {
		err = evict.CheckQueueModel(policy)
	}
	if err != nil {
		return cli.Exit(err, 1)
	}

	s, err := newSession(ctx)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer s.logger.Sync()
	w := ctx.App.Writer
	for _, mode := range s.datasets {
		ps, err := s.pageSet(mode)
		if err != nil {
			return cli.Exit(report.Rejection(err), 1)
		}
		r, err := evict.NewReplacerFromPageSet(policy, ps)
		if err != nil {
			return cli.Exit(report.Rejection(err), 1)
		}
		order := evict.Drain(r)
		s.logger.Debug("queue drained", zap.Stringer("policy", policy), zap.Ints("order", order))

		ids := make([]string, len(order))
		for i, id := range order {
			ids[i] = strconv.Itoa(id)
		}
		report.WritePages(w, ps)
		fmt.Fprintf(w, "%s eviction order (%s): %s\n", policy.Title(), mode, strings.Join(ids, " "))
	}
	return nil
}
