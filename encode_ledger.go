package finance

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dev-sufyaan/personal-finance-manager/date"
)

// Header is the exact column sequence of the persisted transaction file.
var Header = []string{"Date", "Type", "Category", "Reason", "Amount", "Notes", "Mode"}

// DecodeError reports a single row of the persisted file that could not be
// decoded, or the non-fatal header mismatch warning. Rows with a DecodeError
// are skipped; the load carries on.
type DecodeError struct {
	Line   int
	Reason string
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// decodeRow converts one data row into a Transaction.
//
// The row has five fixed leading fields (date, type, category, reason,
// amount) followed by a variable trailing group that older files wrote
// without a Mode column. The trailing group is disambiguated as follows:
//
//   - no trailing field: notes "", mode Online.
//   - one trailing field: it is the mode if it reads exactly "Online" or
//     "Cash", otherwise it is the notes and the mode defaults to Online.
//   - exactly two: notes then mode, the canonical shape. Notes are kept
//     verbatim so a quoted note round-trips exactly.
//   - three or more: the last is the mode, the rest are joined without any
//     separator to reconstruct notes that the row reader split on commas.
//
// The join loses the original commas. That is the historical behavior,
// kept bit for bit for files written before quoting; newly written files
// quote notes so they never take this path. Only the legacy shapes trim
// surrounding whitespace from notes, the way the historical reader did.
func decodeRow(fields []string) (Transaction, error) {
	if len(fields) < 5 {
		return Transaction{}, fmt.Errorf("want at least 5 fields, got %d", len(fields))
	}

	day, err := date.Parse(fields[0])
	if err != nil {
		return Transaction{}, err
	}
	txType, err := ParseType(fields[1])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseAmount(fields[4])
	if err != nil {
		return Transaction{}, err
	}

	trailing := fields[5:]
	notes := ""
	mode := Online
	switch {
	case len(trailing) == 1:
		if trailing[0] == string(Online) || trailing[0] == string(Cash) {
			mode = Mode(trailing[0])
		} else {
			notes = strings.TrimSpace(trailing[0])
		}
	case len(trailing) == 2:
		mode, err = ParseMode(trailing[1])
		if err != nil {
			return Transaction{}, err
		}
		notes = trailing[0]
	case len(trailing) >= 3:
		last := trailing[len(trailing)-1]
		mode, err = ParseMode(last)
		if err != nil {
			return Transaction{}, err
		}
		notes = strings.TrimSpace(strings.Join(trailing[:len(trailing)-1], ""))
	}

	return Transaction{
		Date:     day,
		Type:     txType,
		Category: fields[2],
		Reason:   fields[3],
		Amount:   amount,
		Notes:    notes,
		Mode:     mode,
	}, nil
}

// encodeRow converts a transaction into the fixed seven-column row form.
func encodeRow(tx Transaction) []string {
	return []string{
		tx.Date.String(),
		string(tx.Type),
		tx.Category,
		tx.Reason,
		tx.Amount.String(),
		tx.Notes,
		string(tx.Mode),
	}
}

// DecodeLedger reads the persisted transaction file from r and returns the
// decoded ledger together with the per-row decode errors that were skipped.
//
// The first row is the header; if it differs from [Header] the decode emits
// a schema-mismatch warning in the error list and keeps reading the data
// rows positionally. Malformed rows are skipped and collected, never fatal.
// The returned error is reserved for I/O level failures.
func DecodeLedger(r io.Reader) (*Ledger, []DecodeError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // legacy rows have a varying number of trailing fields

	ledger := NewLedger()
	var decodeErrs []DecodeError

	header, err := cr.Read()
	if err == io.EOF {
		return ledger, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read header row: %w", err)
	}
	if !slices.Equal(header, Header) {
		decodeErrs = append(decodeErrs, DecodeError{
			Line:   1,
			Reason: fmt.Sprintf("header mismatch: want %v, got %v", Header, header),
		})
	}

	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if parseErr, ok := err.(*csv.ParseError); ok {
				decodeErrs = append(decodeErrs, DecodeError{Line: parseErr.Line, Reason: parseErr.Err.Error()})
				continue
			}
			return nil, decodeErrs, fmt.Errorf("cannot read transaction row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		tx, err := decodeRow(fields)
		if err != nil {
			decodeErrs = append(decodeErrs, DecodeError{Line: line, Reason: err.Error()})
			continue
		}
		ledger.Add(tx)
	}

	return ledger, decodeErrs, nil
}

// EncodeLedger writes the header row followed by one row per transaction,
// in ledger order. Fields containing the delimiter or quotes are quoted per
// standard CSV escaping, so notes round-trip exactly in newly written files.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("cannot write header row: %w", err)
	}
	for _, tx := range ledger.Snapshot() {
		if err := cw.Write(encodeRow(tx)); err != nil {
			return fmt.Errorf("cannot write transaction row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot flush transaction rows: %w", err)
	}
	return nil
}
