package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the ledger file in the canonical quoted format"
}
func (*fmtCmd) Usage() string {
	return `pfm fmt

  Reads the ledger, legacy rows included, and writes it back in the
  canonical CSV format where commas in notes are quoted instead of
  splitting the row. Reading never rewrites by itself, this command is
  the one-time migration.

Usage Examples:
$ pfm fmt
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Formatted %s, %d transactions.\n", *ledgerFile, ledger.Len())
	return subcommands.ExitSuccess
}
