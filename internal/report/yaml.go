package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SampleConfig records how a sampling run was configured.
type SampleConfig struct {
	SnapshotPath string              `yaml:"snapshotpath"`
	Draws        int                 `yaml:"draws"`
	Seed         int64               `yaml:"seed"`
	Bans         map[string][]string `yaml:"bans,omitempty"`
	Timestamp    string              `yaml:"timestamp"`
}

// RecordFrequency is how often one eligible record was selected.
type RecordFrequency struct {
	Title     string  `yaml:"title"`
	Artist    string  `yaml:"artist"`
	Culture   string  `yaml:"culture"`
	Century   string  `yaml:"century"`
	Count     int     `yaml:"count"`
	Frequency float64 `yaml:"frequency"`
}

// SampleReport is the complete sampling report. With a uniform selector every
// eligible record's frequency should converge to ExpectedFrequency as draws
// grow.
type SampleReport struct {
	Config            SampleConfig      `yaml:"config"`
	BatchSize         int               `yaml:"batchsize"`
	EligibleRecords   int               `yaml:"eligiblerecords"`
	ExpectedFrequency float64           `yaml:"expectedfrequency"`
	Results           []RecordFrequency `yaml:"results"`
}

// SaveToYAML writes a sampling report into the reports/ directory and returns
// the file path.
func SaveToYAML(rep *SampleReport) (string, error) {
	if err := os.MkdirAll("reports", 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	rep.Config.Timestamp = timestamp

	data, err := yaml.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	filename := fmt.Sprintf("reports/sample-%s.yaml", timestamp)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
