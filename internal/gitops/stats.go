package gitops

import (
	"encoding/json"
	"fmt"
	"os"
)

// loadStats reads the counters file fully into memory.
// A missing file is not an error: fresh repos start from zero.
func loadStats(path string) (Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Stats{}, nil
		}
		return Stats{}, fmt.Errorf("read stats file: %w", err)
	}

	var stats Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return Stats{}, fmt.Errorf("parse stats file: %w", err)
	}
	return stats, nil
}

// saveStats rewrites the counters file in full. No partial writes, no
// locking against concurrent processes.
func saveStats(path string, stats Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	return nil
}
