package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/definer"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	n, err := deps.Words.Lookups(deps.Ctx, c.Word)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", definer.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "lookups: %d\n", n)

	entry, err := deps.Store.FindEntry(deps.Ctx, definer.WordKey(c.Word))
	switch {
	case definer.ErrorCode(err) == definer.ENOTFOUND:
		fmt.Fprintln(deps.Stdout, "cached: no")
	case err != nil:
		fmt.Fprintf(deps.Stderr, "error: %s\n", definer.ErrorMessage(err))
		return err
	default:
		fmt.Fprintf(deps.Stdout, "cached: yes (written %s, hash %s)\n",
			entry.UpdatedAt.Format(time.RFC3339), entry.Hash)
	}

	total, err := deps.Store.CountEntries(deps.Ctx, definer.WordKey(""))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", definer.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "words cached: %d\n", total)
	return nil
}
