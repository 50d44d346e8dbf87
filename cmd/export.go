package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/dev-sufyaan/personal-finance-manager"
)

type exportCmd struct {
	filters filterFlags
	output  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions to an XLSX spreadsheet" }
func (*exportCmd) Usage() string {
	return `pfm export [filter flags] [-o <file>]

  Writes the selected transactions to an XLSX spreadsheet. The filter
  flags are the same as for 'pfm tx'.

Usage Examples:
$ pfm export
$ pfm export -p year -o 2025.xlsx
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.filters.register(f)
	f.StringVar(&c.output, "o", "transactions.xlsx", "Output file name.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := finance.ExportXLSX(c.output, matches); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Exported %d transactions to %s.\n", len(matches), c.output)
	return subcommands.ExitSuccess
}
