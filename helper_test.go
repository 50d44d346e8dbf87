package finance

import "github.com/dev-sufyaan/personal-finance-manager/date"

// tx is a helper for tests to build a transaction from constants.
func tx(day string, t Type, category, reason string, amount float64, notes string, mode Mode) Transaction {
	return Transaction{
		Date:     date.MustParse(day),
		Type:     t,
		Category: category,
		Reason:   reason,
		Amount:   M(amount),
		Notes:    notes,
		Mode:     mode,
	}
}

// sameValues reports whether two transactions carry the same field values,
// ignoring their identities.
func sameValues(a, b Transaction) bool {
	a.id, b.id = "", ""
	return a.Date == b.Date && a.Type == b.Type && a.Category == b.Category &&
		a.Reason == b.Reason && a.Amount.Equal(b.Amount) && a.Notes == b.Notes &&
		a.Mode == b.Mode
}
