package main

import (
	"fmt"

	"github.com/fwojciec/pagecheck"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the patterns command.
func (c *PatternsCmd) Run(deps *Dependencies) error {
	set, err := c.PatternSet()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}
	if err := set.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Pattern set %s (%d patterns):\n", set.Name, len(set.Patterns))

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Region", "Expression", "Selector"})
	for _, p := range set.Patterns {
		t.AppendRow(table.Row{p.Region, p.Expr, p.Selector})
	}
	t.Render()

	if c.PatternFile == "" {
		fmt.Fprintf(deps.Stdout, "\nBuilt-in sets: %v\n", pagecheck.PatternSetNames())
	}
	return nil
}
