package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dev-sufyaan/personal-finance-manager/renderer"
)

type txCmd struct {
	filters filterFlags
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `pfm tx [filter flags] [-head <n>] [-tail <n>]

  Lists transactions from the ledger, with options for filtering and
  limiting the output. See 'pfm topic filters' for the filter flags.

Usage Examples:
$ pfm tx -p month -t Debit
$ pfm tx -s 2025-01-01 -e 2025-03-31 -c Food
$ pfm tx -q coffee -tail 10
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.filters.register(f)
	f.IntVar(&c.head, "head", 0, "Show only the first N matching transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N matching transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	rows, err := c.filters.selectRows(ledger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if c.head > 0 && len(rows) > c.head {
		rows = rows[:c.head]
	}
	if c.tail > 0 && len(rows) > c.tail {
		rows = rows[len(rows)-c.tail:]
	}

	printMarkdown(renderer.Transactions(rows, *defaultCurrency))
	return subcommands.ExitSuccess
}
