package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"

	finance "github.com/dev-sufyaan/personal-finance-manager"
	"github.com/dev-sufyaan/personal-finance-manager/date"
)

type editCmd struct {
	input txInput
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "modify an existing transaction" }
func (*editCmd) Usage() string {
	return `pfm edit [-d <date>] [-t <type>] [-c <category>] [-r <reason>] [-a <amount>] [-n <notes>] [-m <mode>] <n>

  Modifies transaction number <n>, as printed by 'pfm tx'. Only the
  given flags change, the other fields keep their value. Flags come
  before the transaction number.

Usage Examples:
$ pfm edit -a 15.00 3
$ pfm edit -c Transportation -n "" 3
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.input.register(f)
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: a transaction number is required, see 'pfm tx'.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	id, err := resolvePosition(ledger, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	tx, ok := ledger.Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no transaction %s.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	// Apply only the flags the user actually set.
	var parseErr error
	f.Visit(func(fl *flag.Flag) {
		var err error
		switch fl.Name {
		case "d":
			tx.Date, err = date.Parse(c.input.date)
		case "t":
			tx.Type, err = finance.ParseType(c.input.typ)
		case "c":
			tx.Category = c.input.category
		case "r":
			tx.Reason = strings.TrimSpace(c.input.reason)
		case "a":
			tx.Amount, err = finance.ParseAmount(c.input.amount)
		case "n":
			tx.Notes = strings.TrimSpace(c.input.notes)
		case "m":
			tx.Mode, err = finance.ParseMode(c.input.mode)
		}
		if err != nil && parseErr == nil {
			parseErr = err
		}
	})
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", parseErr)
		return subcommands.ExitUsageError
	}

	categories, err := LoadCategories()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if !slices.Contains(categories, tx.Category) {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q, see 'pfm category' for the registered ones.\n", tx.Category)
		return subcommands.ExitUsageError
	}
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if err := ledger.Replace(id, tx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Updated transaction %s: %s\n", f.Arg(0), tx)
	return subcommands.ExitSuccess
}
