// Package scores keeps puzzle best times between runs in a small JSON file.
package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

type file struct {
	BestTimesMS []int64   `json:"best_times_ms"`
	Updated     time.Time `json:"updated"`
}

// Load returns the stored best times, fastest first. A missing file has no
// times.
func Load(filename string) ([]time.Duration, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode scores %s: %w", filename, err)
	}

	times := make([]time.Duration, 0, len(f.BestTimesMS))
	for _, ms := range f.BestTimesMS {
		if ms > 0 {
			times = append(times, time.Duration(ms)*time.Millisecond)
		}
	}
	slices.Sort(times)
	return times, nil
}

// Save replaces the stored best times.
func Save(filename string, times []time.Duration) error {
	f := file{
		BestTimesMS: make([]int64, len(times)),
		Updated:     time.Now().UTC(),
	}
	for i, d := range times {
		f.BestTimesMS[i] = d.Milliseconds()
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(filename, append(data, '\n'), 0o644)
}

// writeFileAtomic writes to a temporary file in the same directory and
// renames it over filename, so readers see the old or the new file and
// never a partial one.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
