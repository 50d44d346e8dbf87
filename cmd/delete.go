package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a transaction from the ledger" }
func (*deleteCmd) Usage() string {
	return `pfm delete <n>

  Removes transaction number <n>, as printed by 'pfm tx'.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := ledger.Remove(id); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Deleted transaction %s: %s\n", f.Arg(0), tx)
	return subcommands.ExitSuccess
}
