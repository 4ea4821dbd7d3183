package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// saveReport writes a workflow report to path, creating parent directories
// as needed.
func saveReport(path string, r *yamlReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return writeYAMLReport(f, r)
}
