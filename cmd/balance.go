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

type balanceCmd struct {
	mode string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the current balance" }
func (*balanceCmd) Usage() string {
	return `pfm balance [-m <mode>]

  Prints the signed balance over the whole ledger: credits minus
  debits. With -m, only transactions of that payment mode count.

Usage Examples:
$ pfm balance
$ pfm balance -m Cash
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "m", "", "Restrict to one payment mode (Online or Cash).")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var mode finance.Mode
	if c.mode != "" {
		m, err := finance.ParseMode(c.mode)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		mode = m
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	balance := finance.Balance(ledger.Snapshot(), mode)

	label := "Balance"
	if mode != "" {
		label = fmt.Sprintf("%s balance", mode)
	}
	fmt.Printf("%s: %s\n", label, renderer.Amount(balance, *defaultCurrency))
	return subcommands.ExitSuccess
}
