package finance

import (
	"errors"
	"testing"
)

func TestLedger_AddAssignsUniqueIDs(t *testing.T) {
	ledger := NewLedger()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := ledger.Add(tx("2024-01-01", Credit, "Salary", "Pay", 10, "", Online))
		if id == "" {
			t.Fatal("Add returned an empty id")
		}
		if seen[id] {
			t.Fatalf("Add reused id %q", id)
		}
		seen[id] = true
	}
	if ledger.Len() != 100 {
		t.Errorf("Len() = %d, want 100", ledger.Len())
	}
}

func TestLedger_AddIgnoresPresetID(t *testing.T) {
	ledger := NewLedger()
	preset := tx("2024-01-01", Credit, "Salary", "Pay", 10, "", Online)
	preset.id = "sneaky"
	id := ledger.Add(preset)
	if id == "sneaky" {
		t.Error("Add must mint its own id, not adopt the caller's")
	}
}

func TestLedger_Replace(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(tx("2024-01-01", Credit, "Salary", "Pay", 10, "", Online))
	id := ledger.Add(tx("2024-01-02", Debit, "Food", "Lunch", 12, "", Cash))
	ledger.Add(tx("2024-01-03", Debit, "Food", "Dinner", 30, "", Cash))

	want := tx("2024-01-02", Debit, "Food", "Brunch", 15, "changed", Online)
	if err := ledger.Replace(id, want); err != nil {
		t.Fatalf("Replace error: %v", err)
	}

	got, ok := ledger.Get(id)
	if !ok {
		t.Fatal("Get after Replace: transaction gone")
	}
	if got.ID() != id {
		t.Errorf("Replace changed the id to %q", got.ID())
	}
	if !sameValues(got, want) {
		t.Errorf("Replace stored %+v, want %+v", got, want)
	}
	if snap := ledger.Snapshot(); !sameValues(snap[1], want) {
		t.Error("Replace moved the transaction out of position 1")
	}
}

func TestLedger_Remove(t *testing.T) {
	ledger := NewLedger()
	first := ledger.Add(tx("2024-01-01", Credit, "Salary", "Pay", 10, "", Online))
	second := ledger.Add(tx("2024-01-02", Debit, "Food", "Lunch", 12, "", Cash))
	third := ledger.Add(tx("2024-01-03", Debit, "Food", "Dinner", 30, "", Cash))

	if err := ledger.Remove(second); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("Len() after Remove = %d, want 2", ledger.Len())
	}
	snap := ledger.Snapshot()
	if snap[0].ID() != first || snap[1].ID() != third {
		t.Error("Remove broke the remaining order")
	}
	// the index must still resolve the shifted transaction
	if _, ok := ledger.Get(third); !ok {
		t.Error("Get cannot find a transaction that moved down after Remove")
	}
}

func TestLedger_NotFound(t *testing.T) {
	ledger := NewLedger()
	id := ledger.Add(tx("2024-01-01", Credit, "Salary", "Pay", 10, "", Online))
	before := ledger.Snapshot()

	var nfe NotFoundError
	if err := ledger.Replace("missing", tx("2024-01-02", Debit, "Food", "x", 1, "", Cash)); !errors.As(err, &nfe) {
		t.Errorf("Replace(missing) error = %v, want NotFoundError", err)
	}
	if err := ledger.Remove("missing"); !errors.As(err, &nfe) {
		t.Errorf("Remove(missing) error = %v, want NotFoundError", err)
	}

	after := ledger.Snapshot()
	if len(after) != len(before) || after[0].ID() != id || !sameValues(after[0], before[0]) {
		t.Error("failed mutations must leave the ledger unchanged")
	}
}

func TestLedger_Clear(t *testing.T) {
	ledger := NewLedger()
	id := ledger.Add(tx("2024-01-01", Credit, "Salary", "Pay", 10, "", Online))
	ledger.Clear()
	if ledger.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", ledger.Len())
	}
	if _, ok := ledger.Get(id); ok {
		t.Error("Get found a transaction after Clear")
	}
}

func TestLedger_SnapshotIsACopy(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(tx("2024-01-01", Credit, "Salary", "Pay", 10, "", Online))

	snap := ledger.Snapshot()
	snap[0].Reason = "tampered"

	if got := ledger.Snapshot()[0].Reason; got != "Pay" {
		t.Errorf("mutating a snapshot leaked into the ledger: reason = %q", got)
	}
}

func TestLedger_TransactionsPredicates(t *testing.T) {
	ledger := NewLedger()
	ledger.Add(tx("2024-01-01", Credit, "Salary", "Pay", 10, "", Online))
	ledger.Add(tx("2024-01-02", Debit, "Food", "Lunch", 12, "", Cash))
	ledger.Add(tx("2024-01-03", Debit, "Food", "Dinner", 30, "", Online))

	var count int
	for _, transaction := range ledger.Transactions(ByType(Debit), ByMode(Online)) {
		count++
		if transaction.Reason != "Dinner" {
			t.Errorf("unexpected match %q", transaction.Reason)
		}
	}
	if count != 1 {
		t.Errorf("matched %d transactions, want 1", count)
	}
}
