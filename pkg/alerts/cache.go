package alerts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long bulletins are kept before refetching
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time  `json:"timestamp"`
	Bulletins []Bulletin `json:"bulletins"`
}

func getCachePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".eggycommutes_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, "bulletins.json"), nil
}

// readCache checks if a valid, unexpired bulletin cache exists
func readCache() ([]Bulletin, bool) {
	path, err := getCachePath()
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Bulletins, true
}

// writeCache saves the bulletins to disk
func writeCache(bulletins []Bulletin) {
	path, err := getCachePath()
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Bulletins: bulletins,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
