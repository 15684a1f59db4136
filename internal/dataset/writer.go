package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openglam/artroulette/internal/harvardart"
	"github.com/parquet-go/parquet-go"
)

// Save writes one fetched batch to a snapshot file. The format follows the
// file extension: .parquet, or .jsonl/.json for JSON lines.
func Save(path string, records []harvardart.ObjectRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".parquet":
		return saveParquet(path, records)
	case ".jsonl", ".json":
		return saveJSONL(path, records)
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

func saveJSONL(path string, records []harvardart.ObjectRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	for i, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, err)
		}
	}

	return nil
}

func saveParquet(path string, records []harvardart.ObjectRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[harvardart.ObjectRecord](file)
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return nil
}
