package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/engagehq/engagement-report/internal/service"
)

// WriteScores serializes the ranked comparison to a single CSV file at path,
// creating the parent directory if needed and overwriting any previous file.
// Downstream consumers always see exactly one file.
func WriteScores(path string, scores []service.TitleScore) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"JobTitle", "AvgEngagementLevel"}); err != nil {
		f.Close()
		return fmt.Errorf("write header to %s: %w", path, err)
	}
	for _, s := range scores {
		if err := w.Write([]string{s.JobTitle, service.FormatScore(s.AvgEngagementLevel)}); err != nil {
			f.Close()
			return fmt.Errorf("write row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
