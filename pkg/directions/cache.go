package directions

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration bounds how stale a fallback response may be. A day-old
// schedule is still a usable daily schedule; anything older is noise.
const cacheDuration = 24 * time.Hour

// CacheEntry is the disk format for one stored response.
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Response  *Response `json:"response"`
}

// cacheKey derives a stable filesystem name from a request's identity.
func cacheKey(r Request) string {
	sum := sha256.Sum256([]byte(r.Origin + "|" + r.Destination + "|" + r.Mode + "|" + r.TransitMode))
	return hex.EncodeToString(sum[:8])
}

func getCachePath(r Request) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".eggycommutes_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, cacheKey(r)+".json"), nil
}

// readCache returns the last good response for this request, if one exists
// and has not expired.
func readCache(r Request) (*Response, bool) {
	path, err := getCachePath(r)
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
	if entry.Response == nil {
		return nil, false
	}

	return entry.Response, true
}

// writeCache saves a known-good response to disk. Failures are swallowed;
// the cache is best-effort.
func writeCache(r Request, resp *Response) {
	path, err := getCachePath(r)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Response:  resp,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
