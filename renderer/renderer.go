// Package renderer turns ledger data into markdown reports for the CLI.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/Rhymond/go-money"
	md "github.com/nao1215/markdown"

	finance "github.com/dev-sufyaan/personal-finance-manager"
)

// Amount formats a monetary value in the given display currency, e.g.
// "₹1,234.50". Unknown currency codes fall back to the bare amount.
func Amount(m finance.Money, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return m.String()
	}
	minor := m.Decimal().Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// Row pairs a transaction with its 1-based position in the ledger, so a
// filtered view still shows the position that edit and delete take.
type Row struct {
	Pos int
	Tx  finance.Transaction
}

// Transactions renders a transaction sequence as a markdown table, in the
// given display currency.
func Transactions(rows []Row, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transaction History")
	if len(rows) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		tx := row.Tx
		cells = append(cells, []string{
			fmt.Sprintf("%d", row.Pos),
			tx.Date.String(),
			string(tx.Type),
			tx.Category,
			tx.Reason,
			Amount(tx.Amount, currency),
			tx.Notes,
			string(tx.Mode),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"#", "Date", "Type", "Category", "Reason", "Amount", "Notes", "Mode"},
		Rows:   cells,
	})
	doc.PlainText(fmt.Sprintf("Showing %d transactions.", len(rows)))
	return doc.String()
}

// Summary renders the account summary: the three running balances and the
// six-way credit/debit by mode breakdown.
func Summary(s finance.Summary, total, online, cash finance.Money, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Summary")
	doc.Table(md.TableSet{
		Header: []string{"Balance", "Amount"},
		Rows: [][]string{
			{"Total", Amount(total, currency)},
			{"Online", Amount(online, currency)},
			{"Cash", Amount(cash, currency)},
		},
	})

	doc.H2("Credits and Debits")
	doc.Table(md.TableSet{
		Header: []string{"", "Credits", "Debits"},
		Rows: [][]string{
			{"Total", Amount(s.TotalCredits, currency), Amount(s.TotalDebits, currency)},
			{"Online", Amount(s.OnlineCredits, currency), Amount(s.OnlineDebits, currency)},
			{"Cash", Amount(s.CashCredits, currency), Amount(s.CashDebits, currency)},
		},
	})
	return doc.String()
}

// Categories renders the category registry as a markdown list.
func Categories(categories []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Categories")
	if len(categories) == 0 {
		doc.PlainText("No categories.")
		return doc.String()
	}
	doc.BulletList(categories...)
	return doc.String()
}
