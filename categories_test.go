package finance

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadCategories_SeedsDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.txt")

	got, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories error: %v", err)
	}
	want := []string{"Entertainment", "Food", "Other", "Salary", "Transportation", "Utilities"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadCategories() = %v, want %v", got, want)
	}

	// the default set must have been persisted
	if _, err := os.Stat(path); err != nil {
		t.Errorf("first run did not persist the registry: %v", err)
	}
}

func TestLoadCategories_DedupesAndSorts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.txt")
	content := "Food\nRent\nFood\n\n  Travel  \nrent\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories error: %v", err)
	}
	// case-sensitive: "Rent" and "rent" are distinct entries
	want := []string{"Food", "Rent", "Travel", "rent"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadCategories() = %v, want %v", got, want)
	}
}

func TestSaveCategories_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.txt")
	want := []string{"Food", "Rent", "Travel"}
	if err := SaveCategories(path, want); err != nil {
		t.Fatalf("SaveCategories error: %v", err)
	}
	got, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}
