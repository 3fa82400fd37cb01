package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Tweet represents a single record from the collection file.
// The "Twitter Profile" key is what the source collection actually uses.
type Tweet struct {
	Content    string `json:"content"`
	TweetDate  string `json:"tweetDate"`
	TweetURL   string `json:"tweetUrl"`
	ProfileURL string `json:"Twitter Profile"`
}

// dateLayouts are tried in order by ParseDate. Collections mix full
// ISO-8601 timestamps with bare dates, and some use slashes.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ParseDate parses a tweet date permissively. A trailing "Z" is treated
// as UTC. Returns the zero time and false when no layout matches, so an
// unparseable date sorts before every real one instead of failing.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortKey returns the timestamp used to order a tweet. Unparseable
// dates map to the zero time.
func SortKey(t Tweet) time.Time {
	parsed, _ := ParseDate(t.TweetDate)
	return parsed
}

// Load reads the collection file and returns the tweets sorted by date
// ascending. The sort is stable, so tweets with unparseable dates keep
// their file order at the front. A missing or malformed file is fatal
// to the caller.
func Load(path string) ([]Tweet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}

	var tweets []Tweet
	if err := json.Unmarshal(data, &tweets); err != nil {
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}

	sort.SliceStable(tweets, func(i, j int) bool {
		return SortKey(tweets[i]).Before(SortKey(tweets[j]))
	})

	return tweets, nil
}

var (
	// loaded is the singleton corpus for the process
	loaded []Tweet
	// loadOnce ensures the collection is read only once
	loadOnce sync.Once
	// loadErr stores any error from the first load
	loadErr error
)

// Get returns the process-wide corpus, loading it on first call and
// reusing the result for all subsequent calls. Indices into the
// returned slice are the stable record identities for the session.
func Get(path string) ([]Tweet, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Load(path)
	})
	return loaded, loadErr
}

// Reset discards the cached corpus so the next Get loads again.
// Only intended for tests.
func Reset() {
	loaded = nil
	loadErr = nil
	loadOnce = sync.Once{}
}

// Username derives the handle from a twitter.com profile URL.
func Username(profileURL string) string {
	marker := "twitter.com/"
	idx := strings.LastIndex(profileURL, marker)
	if idx == -1 {
		return "Unknown user"
	}
	handle := strings.Trim(profileURL[idx+len(marker):], "/")
	if handle == "" {
		return "Unknown user"
	}
	return handle
}
