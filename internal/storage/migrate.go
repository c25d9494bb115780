// ABOUTME: Data migration between storage backends.
// ABOUTME: Copies every collection key verbatim from source to destination.

package storage

import (
	"errors"
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated keys.
type MigrateSummary struct {
	Keys    int
	Skipped int
	Bytes   int
}

// MigrateData copies all collections from src to dst storage.
// Keys that were never written in src are skipped and left untouched in dst.
// The destination should be empty before calling this function; existing
// values under the same keys are overwritten.
func MigrateData(src, dst Store) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	for _, key := range AllKeys {
		value, err := src.Get(key)
		if errors.Is(err, ErrNotFound) {
			summary.Skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", key, err)
		}

		if err := dst.Set(key, value); err != nil {
			return nil, fmt.Errorf("write destination %s: %w", key, err)
		}
		summary.Keys++
		summary.Bytes += len(value)
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
