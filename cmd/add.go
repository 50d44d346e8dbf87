package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct {
	input txInput
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction in the ledger" }
func (*addCmd) Usage() string {
	return `pfm add -t <type> -c <category> -r <reason> -a <amount> [-d <date>] [-n <notes>] [-m <mode>]

  Records a new transaction. The date defaults to today and the mode to
  Online.

Usage Examples:
$ pfm add -t Debit -c Food -r "lunch" -a 12.50
$ pfm add -t Credit -c Salary -r "august" -a 2500 -m Online -n "wire transfer"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	c.input.register(f)
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	categories, err := LoadCategories()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tx, err := c.input.parse(categories)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	id := ledger.Add(tx)

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Added transaction %s: %s\n", id[:8], tx)
	return subcommands.ExitSuccess
}
