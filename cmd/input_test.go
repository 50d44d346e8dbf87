package cmd

import (
	"flag"
	"testing"

	finance "github.com/dev-sufyaan/personal-finance-manager"
	"github.com/dev-sufyaan/personal-finance-manager/date"
)

var testCategories = []string{"Food", "Salary"}

// parseInput drives txInput the way a command does: bind the flags,
// parse argv, then validate.
func parseInput(t *testing.T, args ...string) (finance.Transaction, error) {
	t.Helper()
	var in txInput
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	in.register(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("flag parsing failed: %v", err)
	}
	return in.parse(testCategories)
}

func TestTxInputParse(t *testing.T) {
	tx, err := parseInput(t, "-d", "2025-08-20", "-t", "Debit", "-c", "Food", "-r", "lunch", "-a", "12.5", "-n", "canteen", "-m", "Cash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := finance.Transaction{
		Date:     date.MustParse("2025-08-20"),
		Type:     finance.Debit,
		Category: "Food",
		Reason:   "lunch",
		Amount:   finance.M(12.50),
		Notes:    "canteen",
		Mode:     finance.Cash,
	}
	if !tx.Amount.Equal(want.Amount) || tx.Date != want.Date || tx.Type != want.Type ||
		tx.Category != want.Category || tx.Reason != want.Reason || tx.Notes != want.Notes || tx.Mode != want.Mode {
		t.Errorf("parsed %v, want %v", tx, want)
	}
}

func TestTxInputDefaults(t *testing.T) {
	tx, err := parseInput(t, "-t", "credit", "-c", "Salary", "-r", "august", "-a", "2500")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Date != date.Today() {
		t.Errorf("date should default to today, got %s", tx.Date)
	}
	if tx.Mode != finance.Online {
		t.Errorf("mode should default to Online, got %s", tx.Mode)
	}
	if tx.Type != finance.Credit {
		t.Errorf("type parsing should be case-insensitive, got %s", tx.Type)
	}
}

func TestTxInputRejects(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"bad date", []string{"-d", "20-08-2025", "-t", "Debit", "-c", "Food", "-r", "x", "-a", "1"}},
		{"bad type", []string{"-t", "Transfer", "-c", "Food", "-r", "x", "-a", "1"}},
		{"bad mode", []string{"-t", "Debit", "-c", "Food", "-r", "x", "-a", "1", "-m", "Card"}},
		{"zero amount", []string{"-t", "Debit", "-c", "Food", "-r", "x", "-a", "0"}},
		{"negative amount", []string{"-t", "Debit", "-c", "Food", "-r", "x", "-a", "-5"}},
		{"unparsable amount", []string{"-t", "Debit", "-c", "Food", "-r", "x", "-a", "ten"}},
		{"blank reason", []string{"-t", "Debit", "-c", "Food", "-r", "  ", "-a", "1"}},
		{"unknown category", []string{"-t", "Debit", "-c", "Rent", "-r", "x", "-a", "1"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseInput(t, tc.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFilterFlagsCriteria(t *testing.T) {
	var ff filterFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	ff.register(f)
	if err := f.Parse([]string{"-s", "2025-01-01", "-t", "debit", "-m", "cash", "-c", "Food", "-q", "coffee"}); err != nil {
		t.Fatal(err)
	}
	c, err := ff.criteria()
	if err != nil {
		t.Fatal(err)
	}
	want := finance.Criteria{Start: "2025-01-01", Type: finance.Debit, Mode: finance.Cash, Category: "Food", Search: "coffee"}
	if c != want {
		t.Errorf("criteria = %+v, want %+v", c, want)
	}
}

func TestFilterFlagsPeriod(t *testing.T) {
	var ff filterFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	ff.register(f)
	if err := f.Parse([]string{"-p", "month"}); err != nil {
		t.Fatal(err)
	}
	c, err := ff.criteria()
	if err != nil {
		t.Fatal(err)
	}
	r := date.Monthly.Range(date.Today())
	if c.Start != r.From.String() || c.End != r.To.String() {
		t.Errorf("criteria = %+v, want range %s..%s", c, r.From, r.To)
	}
}

func TestFilterFlagsExplicitDatesWinOverPeriod(t *testing.T) {
	var ff filterFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	ff.register(f)
	if err := f.Parse([]string{"-p", "month", "-s", "2025-01-01"}); err != nil {
		t.Fatal(err)
	}
	c, err := ff.criteria()
	if err != nil {
		t.Fatal(err)
	}
	if c.Start != "2025-01-01" || c.End != "" {
		t.Errorf("explicit -s should win over -p, got %+v", c)
	}
}

func TestFilterFlagsBadPeriod(t *testing.T) {
	var ff filterFlags
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	ff.register(f)
	if err := f.Parse([]string{"-p", "fortnight"}); err != nil {
		t.Fatal(err)
	}
	if _, err := ff.criteria(); err == nil {
		t.Error("expected an error for an unknown period")
	}
}

func TestResolvePosition(t *testing.T) {
	ledger := finance.NewLedger()
	first := ledger.Add(finance.Transaction{
		Date: date.MustParse("2025-08-20"), Type: finance.Debit, Category: "Food",
		Reason: "lunch", Amount: finance.M(10), Mode: finance.Cash,
	})
	second := ledger.Add(finance.Transaction{
		Date: date.MustParse("2025-08-21"), Type: finance.Credit, Category: "Salary",
		Reason: "august", Amount: finance.M(2500), Mode: finance.Online,
	})

	if id, err := resolvePosition(ledger, "1"); err != nil || id != first {
		t.Errorf("resolvePosition(1) = %q, %v, want %q", id, err, first)
	}
	if id, err := resolvePosition(ledger, "2"); err != nil || id != second {
		t.Errorf("resolvePosition(2) = %q, %v, want %q", id, err, second)
	}
	for _, arg := range []string{"0", "3", "-1", "two", ""} {
		if _, err := resolvePosition(ledger, arg); err == nil {
			t.Errorf("resolvePosition(%q) should fail", arg)
		}
	}
}
