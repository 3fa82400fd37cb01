package session

import (
	"strings"
	"time"

	"github.com/rsaidi/tweetscope/internal/corpus"
)

// TagAll is the sentinel tag option that disables the tag predicate.
const TagAll = "All"

// rangeLayout is the date-range token format typed by the analyst.
const rangeLayout = "2006/01/02"

// Criteria holds the active filter settings. Zero values disable the
// matching predicate, so the zero Criteria keeps every record.
type Criteria struct {
	Tag            string // exact match against saved annotation tags; "" or "All" disables
	Keyword        string // case-sensitive substring of tweet content
	DateRange      string // free text "YYYY/MM/DD - YYYY/MM/DD"; malformed text is ignored
	BookmarkedOnly bool
}

// Filtered returns the indices of tweets that satisfy every active
// predicate, ascending in original order. The result is recomputed
// from scratch on each call; an empty result means "no matches", not
// an error.
func (s *Session) Filtered(tweets []corpus.Tweet) []int {
	c := s.Criteria

	tagActive := c.Tag != "" && c.Tag != TagAll
	start, end, rangeActive := parseDateRange(c.DateRange)

	var indices []int
	for i, t := range tweets {
		if tagActive {
			ann, ok := s.Annotations[i]
			if !ok || ann.Tag != c.Tag {
				continue
			}
		}
		if c.Keyword != "" && !strings.Contains(t.Content, c.Keyword) {
			continue
		}
		if rangeActive {
			key := corpus.SortKey(t)
			if key.Before(start) || key.After(end) {
				continue
			}
		}
		if c.BookmarkedOnly {
			if _, ok := s.Bookmarks[i]; !ok {
				continue
			}
		}
		indices = append(indices, i)
	}
	return indices
}

// parseDateRange parses the free-text range field. The text must split
// on "-" into exactly two tokens, each a "YYYY/MM/DD" date after
// trimming. Anything else (including the untouched placeholder text)
// reports ok=false and the predicate is skipped for that evaluation.
func parseDateRange(text string) (start, end time.Time, ok bool) {
	if !strings.Contains(text, "-") {
		return time.Time{}, time.Time{}, false
	}
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(rangeLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(rangeLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
