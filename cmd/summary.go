package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/dev-sufyaan/personal-finance-manager"
	"github.com/dev-sufyaan/personal-finance-manager/renderer"
)

type summaryCmd struct {
	filters filterFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show balances and the credit/debit breakdown" }
func (*summaryCmd) Usage() string {
	return `pfm summary [filter flags]

  Shows the total, online and cash balances and the credit/debit by
  mode breakdown, over the whole ledger or a filtered selection. See
  'pfm topic filters' for the filter flags.

Usage Examples:
$ pfm summary
$ pfm summary -p month
$ pfm summary -c Food -s 2025-01-01
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.filters.register(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	matches, err := c.filters.selectTransactions(ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	s := finance.Summarize(matches)
	total := finance.Balance(matches, "")
	online := finance.Balance(matches, finance.Online)
	cash := finance.Balance(matches, finance.Cash)

	printMarkdown(renderer.Summary(s, total, online, cash, *defaultCurrency))
	return subcommands.ExitSuccess
}
