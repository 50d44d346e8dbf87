package finance

import (
	"fmt"
	"strings"

	"github.com/dev-sufyaan/personal-finance-manager/date"
)

// Type qualifies a transaction as money coming in or going out.
type Type string

const (
	Credit Type = "Credit"
	Debit  Type = "Debit"
)

// ParseType parses a transaction type, accepting any case.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "credit":
		return Credit, nil
	case "debit":
		return Debit, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q (want Credit or Debit)", s)
	}
}

// Mode is the payment channel of a transaction.
type Mode string

const (
	Online Mode = "Online"
	Cash   Mode = "Cash"
)

// ParseMode parses a payment mode, accepting any case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "online":
		return Online, nil
	case "cash":
		return Cash, nil
	default:
		return "", fmt.Errorf("unknown payment mode %q (want Online or Cash)", s)
	}
}

// Transaction is one recorded financial event. It is a value: editing a
// transaction means replacing it wholesale in the ledger, the id is the only
// part that survives an edit.
type Transaction struct {
	id       string // assigned by the ledger, never derived from content
	Date     date.Date
	Type     Type
	Category string
	Reason   string
	Amount   Money
	Notes    string
	Mode     Mode
}

// ID returns the opaque stable identifier assigned by the ledger, or ""
// for a transaction that was never added to one.
func (t Transaction) ID() string { return t.id }

// Validate checks the transaction invariants that must hold inside a ledger.
// Reason and category contents are the input boundary's business and are not
// re-checked here, except that a category name must not be blank.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("transaction has no date")
	}
	if t.Type != Credit && t.Type != Debit {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	if t.Mode != Online && t.Mode != Cash {
		return fmt.Errorf("invalid payment mode %q", t.Mode)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("transaction has no category")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount %s is not positive", t.Amount)
	}
	return nil
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s %s", t.Date, t.Type, t.Category, t.Amount, t.Mode)
}
