// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	finance "github.com/dev-sufyaan/personal-finance-manager"
)

// Commands lists every subcommand of the application. A main package
// registers them all on a subcommands.Commander.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&clearCmd{},
	&txCmd{},
	&summaryCmd{},
	&balanceCmd{},
	&categoryCmd{},
	&exportCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// loadDefaults computes the flag default values. It reads a .env file in
// the working directory first, which fills in variables not already set
// in the environment. The flag vars below depend on its results, so it
// runs before they initialize.
func loadDefaults() (ledger, categories, currency string) {
	godotenv.Load()
	return envOr("PFM_LEDGER_FILE", "transactions.csv"),
		envOr("PFM_CATEGORIES_FILE", "categories.txt"),
		envOr("PFM_CURRENCY", "INR")
}

var defaultLedger, defaultCategories, currencyCode = loadDefaults()

var (
	ledgerFile      = flag.String("ledger-file", defaultLedger, "Path to the ledger file containing transactions (CSV format)")
	categoriesFile  = flag.String("categories-file", defaultCategories, "Path to the category registry file")
	defaultCurrency = flag.String("currency", currencyCode, "Currency code used to display amounts")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DecodeLedger loads the app ledger file. Rows that could not be
// decoded are reported on stderr and skipped.
func DecodeLedger() (*finance.Ledger, error) {
	if _, err := os.Stat(*ledgerFile); errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger")
	}
	ledger, warnings, err := finance.LoadLedger(*ledgerFile)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger %q: %w", *ledgerFile, err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", *ledgerFile, w)
	}
	return ledger, nil
}

// SaveLedger writes the ledger back to the app ledger file.
func SaveLedger(ledger *finance.Ledger) error {
	if err := finance.SaveLedger(*ledgerFile, ledger); err != nil {
		return fmt.Errorf("could not save ledger %q: %w", *ledgerFile, err)
	}
	return nil
}

// LoadCategories loads the app category registry, seeding it with the
// defaults on first use.
func LoadCategories() ([]string, error) {
	cats, err := finance.LoadCategories(*categoriesFile)
	if err != nil {
		return nil, fmt.Errorf("could not load categories %q: %w", *categoriesFile, err)
	}
	return cats, nil
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the renderer cannot be set up (e.g. no TTY).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
