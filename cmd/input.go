package cmd

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	finance "github.com/dev-sufyaan/personal-finance-manager"
	"github.com/dev-sufyaan/personal-finance-manager/date"
	"github.com/dev-sufyaan/personal-finance-manager/renderer"
)

// txInput holds the raw flag values describing a transaction. Commands
// bind them with registerInput and turn them into a validated
// finance.Transaction with parse.
type txInput struct {
	date     string
	typ      string
	category string
	reason   string
	amount   string
	notes    string
	mode     string
}

func (in *txInput) register(f *flag.FlagSet) {
	f.StringVar(&in.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD).")
	f.StringVar(&in.typ, "t", "", "Transaction type (Credit or Debit).")
	f.StringVar(&in.category, "c", "", "Category, must exist in the registry.")
	f.StringVar(&in.reason, "r", "", "Reason, what the money was for.")
	f.StringVar(&in.amount, "a", "", "Amount, a strictly positive number.")
	f.StringVar(&in.notes, "n", "", "Optional notes.")
	f.StringVar(&in.mode, "m", string(finance.Online), "Payment mode (Online or Cash).")
}

// parse validates the raw values and builds a transaction. The category
// must be one of the registered ones.
func (in *txInput) parse(categories []string) (finance.Transaction, error) {
	var tx finance.Transaction

	d, err := date.Parse(in.date)
	if err != nil {
		return tx, fmt.Errorf("invalid date %q: %w", in.date, err)
	}
	typ, err := finance.ParseType(in.typ)
	if err != nil {
		return tx, err
	}
	mode, err := finance.ParseMode(in.mode)
	if err != nil {
		return tx, err
	}
	amount, err := finance.ParseAmount(in.amount)
	if err != nil {
		return tx, err
	}
	if strings.TrimSpace(in.reason) == "" {
		return tx, fmt.Errorf("a reason is required")
	}
	if !slices.Contains(categories, in.category) {
		return tx, fmt.Errorf("unknown category %q, see 'pfm category' for the registered ones", in.category)
	}

	tx = finance.Transaction{
		Date:     d,
		Type:     typ,
		Category: in.category,
		Reason:   strings.TrimSpace(in.reason),
		Amount:   amount,
		Notes:    strings.TrimSpace(in.notes),
		Mode:     mode,
	}
	return tx, tx.Validate()
}

// filterFlags holds the selection flags shared by tx, summary and
// export.
type filterFlags struct {
	start    string
	end      string
	period   string
	typ      string
	mode     string
	category string
	search   string
}

func (ff *filterFlags) register(f *flag.FlagSet) {
	f.StringVar(&ff.start, "s", "", "Start date of the range, inclusive. Overrides -p.")
	f.StringVar(&ff.end, "e", "", "End date of the range, inclusive. Overrides -p.")
	f.StringVar(&ff.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&ff.typ, "t", "", "Filter by type (Credit or Debit).")
	f.StringVar(&ff.mode, "m", "", "Filter by mode (Online or Cash).")
	f.StringVar(&ff.category, "c", "", "Filter by exact category.")
	f.StringVar(&ff.search, "q", "", "Case-insensitive text search over reason, category and notes.")
}

// criteria turns the flags into filter criteria. The -p shortcut fills
// the date bounds unless -s or -e was given explicitly.
func (ff *filterFlags) criteria() (finance.Criteria, error) {
	c := finance.Criteria{
		Start:    ff.start,
		End:      ff.end,
		Search:   ff.search,
		Category: ff.category,
	}
	if ff.typ != "" {
		typ, err := finance.ParseType(ff.typ)
		if err != nil {
			return c, err
		}
		c.Type = typ
	}
	if ff.mode != "" {
		mode, err := finance.ParseMode(ff.mode)
		if err != nil {
			return c, err
		}
		c.Mode = mode
	}
	if ff.period != "" && ff.start == "" && ff.end == "" {
		period, err := date.ParsePeriod(ff.period)
		if err != nil {
			return c, err
		}
		r := period.Range(date.Today())
		c.Start = r.From.String()
		c.End = r.To.String()
	}
	return c, nil
}

// selectTransactions applies the flags to the ledger and prints any
// filter warnings on stderr.
func (ff *filterFlags) selectTransactions(ledger *finance.Ledger) ([]finance.Transaction, error) {
	c, err := ff.criteria()
	if err != nil {
		return nil, err
	}
	matches, warnings := finance.Apply(ledger.Snapshot(), c)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	return matches, nil
}

// selectRows is selectTransactions keeping the 1-based ledger position
// of each match, for display.
func (ff *filterFlags) selectRows(ledger *finance.Ledger) ([]renderer.Row, error) {
	matches, err := ff.selectTransactions(ledger)
	if err != nil {
		return nil, err
	}
	pos := make(map[string]int, ledger.Len())
	for i, tx := range ledger.Snapshot() {
		pos[tx.ID()] = i + 1
	}
	rows := make([]renderer.Row, 0, len(matches))
	for _, tx := range matches {
		rows = append(rows, renderer.Row{Pos: pos[tx.ID()], Tx: tx})
	}
	return rows, nil
}

// resolvePosition turns a 1-based ledger position, as printed by 'pfm
// tx', into the transaction id the store works with.
func resolvePosition(ledger *finance.Ledger, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("invalid transaction number %q", arg)
	}
	if n < 1 || n > ledger.Len() {
		return "", fmt.Errorf("no transaction %d, the ledger has %d", n, ledger.Len())
	}
	return ledger.Snapshot()[n-1].ID(), nil
}
