package finance

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadLedger reads the transaction file at path. A missing file is a first
// run, not an error: it yields an empty ledger. Decode errors for individual
// rows are returned alongside the ledger; any other failure is fatal.
func LoadLedger(path string) (*Ledger, []DecodeError, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, decodeErrs, err := DecodeLedger(f)
	if err != nil {
		return nil, decodeErrs, fmt.Errorf("cannot decode ledger file %q: %w", path, err)
	}
	return ledger, decodeErrs, nil
}

// SaveLedger writes the whole ledger to path. The write is crash-safe: the
// encoded file is written to a temporary file in the destination directory,
// synced, and atomically renamed over the destination. An interrupted save
// leaves the previous file untouched.
func SaveLedger(path string, ledger *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary ledger file in %q: %w", dir, err)
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := EncodeLedger(tmp, ledger); err != nil {
		return fmt.Errorf("cannot encode ledger to %q: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("cannot sync ledger file %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close ledger file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace ledger file %q: %w", path, err)
	}
	tmp = nil // the rename consumed the temporary file
	return nil
}
