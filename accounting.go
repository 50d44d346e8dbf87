package finance

// This file computes balances and summaries over any transaction sequence,
// full ledger or filtered view alike. The functions are pure: they take the
// sequence as a parameter and hold no notion of a "current" view.
//
// Sums accumulate exact decimals and are rounded to 2 fractional digits once,
// at the aggregation point, so no drift builds up across many transactions.

// Summary is the six-way credit/debit by payment-mode breakdown of a
// transaction sequence. Each sum is non-negative, and the totals partition
// by mode: TotalCredits = OnlineCredits + CashCredits, same for debits.
type Summary struct {
	TotalCredits  Money
	TotalDebits   Money
	OnlineCredits Money
	OnlineDebits  Money
	CashCredits   Money
	CashDebits    Money
}

// Net returns the signed balance TotalCredits - TotalDebits.
func (s Summary) Net() Money { return s.TotalCredits.Sub(s.TotalDebits) }

// Balance sums credit amounts and subtracts debit amounts over txs,
// restricted to the given payment mode when mode is not "".
func Balance(txs []Transaction, mode Mode) Money {
	var balance Money
	for _, tx := range txs {
		if mode != "" && tx.Mode != mode {
			continue
		}
		switch tx.Type {
		case Credit:
			balance = balance.Add(tx.Amount)
		case Debit:
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance.Round2()
}

// Summarize computes the six-way summary over txs.
func Summarize(txs []Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Type {
		case Credit:
			s.TotalCredits = s.TotalCredits.Add(tx.Amount)
			if tx.Mode == Online {
				s.OnlineCredits = s.OnlineCredits.Add(tx.Amount)
			} else {
				s.CashCredits = s.CashCredits.Add(tx.Amount)
			}
		case Debit:
			s.TotalDebits = s.TotalDebits.Add(tx.Amount)
			if tx.Mode == Online {
				s.OnlineDebits = s.OnlineDebits.Add(tx.Amount)
			} else {
				s.CashDebits = s.CashDebits.Add(tx.Amount)
			}
		}
	}
	s.TotalCredits = s.TotalCredits.Round2()
	s.TotalDebits = s.TotalDebits.Round2()
	s.OnlineCredits = s.OnlineCredits.Round2()
	s.OnlineDebits = s.OnlineDebits.Round2()
	s.CashCredits = s.CashCredits.Round2()
	s.CashDebits = s.CashDebits.Round2()
	return s
}
