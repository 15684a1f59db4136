package dataset

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/openglam/artroulette/internal/harvardart"
)

func testRecords() []harvardart.ObjectRecord {
	return []harvardart.ObjectRecord{
		{
			Title:           "Vase",
			People:          []harvardart.Person{{Name: "Unknown"}},
			Culture:         "Greek",
			Century:         "5th century B.C.",
			Dated:           "450 BC",
			Medium:          "Clay",
			PrimaryImageURL: "http://x/1.jpg",
		},
		{
			Title:   "Print",
			Culture: "Japanese",
			Century: "19th century",
		},
	}
}

func TestSaveAndLoadJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objects.jsonl")
	records := testRecords()

	if err := Save(path, records); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	loaded, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}

	if !reflect.DeepEqual(records, loaded) {
		t.Errorf("Round trip mismatch:\nwrote %+v\nread  %+v", records, loaded)
	}
}

func TestSaveAndLoadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objects.parquet")
	records := testRecords()

	if err := Save(path, records); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	loaded, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}

	if len(loaded) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(loaded))
	}
	for i := range records {
		if records[i].Title != loaded[i].Title || records[i].Culture != loaded[i].Culture {
			t.Errorf("Record %d mismatch: wrote %+v, read %+v", i, records[i], loaded[i])
		}
	}
}

func TestUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objects.csv")

	if err := Save(path, testRecords()); err == nil {
		t.Error("Expected error saving unsupported format")
	}
	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error loading unsupported format")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing.jsonl")).Load(); err == nil {
		t.Error("Expected error for a missing snapshot file")
	}
}
