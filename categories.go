package finance

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// DefaultCategories seeds the category registry on first run.
var DefaultCategories = []string{"Food", "Utilities", "Salary", "Entertainment", "Transportation", "Other"}

// LoadCategories reads the category registry: one name per line, UTF-8, no
// header. Names are deduplicated and sorted lexicographically. A missing
// file seeds the registry with [DefaultCategories] and persists it.
func LoadCategories(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := SaveCategories(path, DefaultCategories); err != nil {
			return nil, err
		}
		cats := slices.Clone(DefaultCategories)
		slices.Sort(cats)
		return cats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open categories file %q: %w", path, err)
	}
	defer f.Close()

	var cats []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		cats = append(cats, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read categories file %q: %w", path, err)
	}

	slices.Sort(cats)
	return slices.Compact(cats), nil
}

// SaveCategories writes the registry, one name per line, in the given order.
func SaveCategories(path string, categories []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create categories file %q: %w", path, err)
	}
	defer f.Close()

	for _, name := range categories {
		if _, err := fmt.Fprintln(f, name); err != nil {
			return fmt.Errorf("cannot write categories file %q: %w", path, err)
		}
	}
	return nil
}
