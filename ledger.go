package finance

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// NotFoundError reports a ledger mutation that referenced an unknown
// transaction id. The ledger is left unchanged when it is returned.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no transaction with id %q", e.ID)
}

// Ledger is the ordered collection of all transactions for the user.
//
// The order is insertion order, not chronological order: entries may be
// recorded out of date order and the ledger never resorts them. Reordering
// for display is a report concern layered on top.
//
// The ledger is the single owner of its transactions. Mutations go through
// Add, Replace, Remove and Clear; readers get value copies via Snapshot or
// Transactions. Nothing here touches the disk: persisting after a mutation
// is the caller's job (see SaveLedger).
type Ledger struct {
	transactions []Transaction
	index        map[string]int // id to position, kept in sync with transactions
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		index:        make(map[string]int),
	}
}

// Add mints a fresh unique id for tx, appends it at the end of the ledger,
// and returns the id. Any id already set on tx is discarded: identities are
// assigned here and only here.
func (l *Ledger) Add(tx Transaction) string {
	tx.id = uuid.NewString()
	l.index[tx.id] = len(l.transactions)
	l.transactions = append(l.transactions, tx)
	return tx.id
}

// Replace swaps the transaction with the given id for tx, keeping the id and
// the position in the ledger. The previous value is discarded wholesale.
func (l *Ledger) Replace(id string, tx Transaction) error {
	i, ok := l.index[id]
	if !ok {
		return NotFoundError{ID: id}
	}
	tx.id = id
	l.transactions[i] = tx
	return nil
}

// Remove deletes the transaction with the given id, closing the gap.
func (l *Ledger) Remove(id string) error {
	i, ok := l.index[id]
	if !ok {
		return NotFoundError{ID: id}
	}
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	delete(l.index, id)
	for j := i; j < len(l.transactions); j++ {
		l.index[l.transactions[j].id] = j
	}
	return nil
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.transactions = l.transactions[:0]
	l.index = make(map[string]int)
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (Transaction, bool) {
	i, ok := l.index[id]
	if !ok {
		return Transaction{}, false
	}
	return l.transactions[i], true
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Snapshot returns a copy of the transaction sequence in ledger order.
// The copy is the caller's; mutating it does not affect the ledger.
func (l *Ledger) Snapshot() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Transactions returns an iterator over the transactions, in ledger order,
// that satisfy all the given predicates.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}
