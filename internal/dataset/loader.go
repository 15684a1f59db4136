package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/openglam/artroulette/internal/harvardart"
	"github.com/parquet-go/parquet-go"
)

// Loader reads artwork snapshot files written by Save.
type Loader struct {
	snapshotPath string
}

// NewLoader creates a loader for one snapshot file.
func NewLoader(snapshotPath string) *Loader {
	return &Loader{
		snapshotPath: snapshotPath,
	}
}

// Load reads records from a snapshot file (JSONL or Parquet, by extension).
func (l *Loader) Load() ([]harvardart.ObjectRecord, error) {
	ext := strings.ToLower(filepath.Ext(l.snapshotPath))

	switch ext {
	case ".parquet":
		return l.loadParquet()
	case ".jsonl", ".json":
		return l.loadJSONL()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

func (l *Loader) loadJSONL() ([]harvardart.ObjectRecord, error) {
	file, err := os.Open(l.snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	var records []harvardart.ObjectRecord
	scanner := bufio.NewScanner(file)

	// Room for records with long provenance strings
	const maxCapacity = 1024 * 1024
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(line) == 0 {
			continue
		}

		var record harvardart.ObjectRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}

		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}

	slog.Debug("Finished reading JSONL snapshot", "total_records", len(records))

	return records, nil
}

func (l *Loader) loadParquet() ([]harvardart.ObjectRecord, error) {
	file, err := os.Open(l.snapshotPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[harvardart.ObjectRecord](pf)
	defer reader.Close()

	var records []harvardart.ObjectRecord
	rows := make([]harvardart.ObjectRecord, 128) // Read in batches

	for {
		n, err := reader.Read(rows)
		if n > 0 {
			records = append(records, rows[:n]...)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("Finished reading Parquet snapshot", "total_records", len(records), "num_rows", pf.NumRows())

	return records, nil
}
