package corpus

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantTime time.Time
	}{
		{
			name:     "RFC3339 with Z suffix",
			input:    "2021-05-01T10:30:00Z",
			wantOK:   true,
			wantTime: time.Date(2021, 5, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 with offset",
			input:    "2021-05-01T10:30:00+02:00",
			wantOK:   true,
			wantTime: time.Date(2021, 5, 1, 10, 30, 0, 0, time.FixedZone("", 2*3600)),
		},
		{
			name:     "bare ISO date",
			input:    "2021-05-01",
			wantOK:   true,
			wantTime: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "slash date",
			input:    "2021/05/01",
			wantOK:   true,
			wantTime: time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "datetime without zone",
			input:    "2021-05-01 10:30:00",
			wantOK:   true,
			wantTime: time.Date(2021, 5, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:   "unparseable text",
			input:  "bad-date",
			wantOK: false,
		},
		{
			name:   "empty string",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				if !got.IsZero() {
					t.Errorf("ParseDate(%q) = %v, want zero time for unparseable input", tt.input, got)
				}
				return
			}
			if !got.Equal(tt.wantTime) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.wantTime)
			}
		})
	}
}

func writeCollection(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tweets.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write collection: %v", err)
	}
	return path
}

func TestLoadSortsUnparseableFirst(t *testing.T) {
	path := writeCollection(t, `[
		{"content": "first", "tweetDate": "2021/05/01"},
		{"content": "broken", "tweetDate": "bad-date"},
		{"content": "second", "tweetDate": "2021/05/02"}
	]`)

	tweets, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"broken", "first", "second"}
	if len(tweets) != len(want) {
		t.Fatalf("expected %d tweets, got %d", len(want), len(tweets))
	}
	for i, content := range want {
		if tweets[i].Content != content {
			t.Errorf("position %d: expected %q, got %q", i, content, tweets[i].Content)
		}
	}
}

func TestLoadSortIsStable(t *testing.T) {
	// Two unparseable dates must keep their file order
	path := writeCollection(t, `[
		{"content": "a", "tweetDate": "???"},
		{"content": "b", "tweetDate": "also bad"},
		{"content": "c", "tweetDate": "2020-01-01"}
	]`)

	tweets, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if tweets[0].Content != "a" || tweets[1].Content != "b" {
		t.Errorf("unparseable dates reordered: got [%s %s]", tweets[0].Content, tweets[1].Content)
	}
	if tweets[2].Content != "c" {
		t.Errorf("parseable date should sort last, got %q", tweets[2].Content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing collection file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeCollection(t, `{"not": "an array"`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed collection file")
	}
}

func TestGetCachesResult(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := writeCollection(t, `[{"content": "only", "tweetDate": "2021-01-01"}]`)

	first, err := Get(path)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	// A second Get must reuse the cached corpus even if the path differs
	second, err := Get(filepath.Join(t.TempDir(), "other.json"))
	if err != nil {
		t.Fatalf("cached Get failed: %v", err)
	}
	if len(second) != 1 || second[0].Content != first[0].Content {
		t.Error("Get did not return the cached corpus")
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain profile", "https://twitter.com/someuser", "someuser"},
		{"trailing slash", "https://twitter.com/someuser/", "someuser"},
		{"no twitter domain", "https://example.com/someuser", "Unknown user"},
		{"empty", "", "Unknown user"},
		{"domain only", "https://twitter.com/", "Unknown user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Username(tt.url); got != tt.want {
				t.Errorf("Username(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
