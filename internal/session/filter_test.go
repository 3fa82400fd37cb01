package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/rsaidi/tweetscope/internal/corpus"
)

// testTweets mirrors the loaded-and-sorted order: the unparseable date
// sorts first.
func testTweets() []corpus.Tweet {
	return []corpus.Tweet{
		{Content: "broken clock", TweetDate: "bad-date"},
		{Content: "mourning thread", TweetDate: "2021/05/01"},
		{Content: "supportive reply", TweetDate: "2021/05/02"},
		{Content: "late arrival", TweetDate: "2021/05/07"},
	}
}

func TestFilteredNoCriteria(t *testing.T) {
	s := New()
	got := s.Filtered(testTweets())
	want := []int{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filtered with zero criteria = %v, want %v", got, want)
	}
}

func TestFilteredByTag(t *testing.T) {
	s := New()
	s.Save(0, Annotation{Tag: "grief"})
	s.Save(2, Annotation{Tag: "support"})

	s.Criteria.Tag = "grief"
	got := s.Filtered(testTweets())
	if !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("tag filter = %v, want [0]", got)
	}

	// "All" disables the predicate
	s.Criteria.Tag = TagAll
	if got := s.Filtered(testTweets()); len(got) != 4 {
		t.Errorf("All sentinel should disable the tag predicate, got %v", got)
	}
}

func TestFilteredTagIsCaseSensitive(t *testing.T) {
	s := New()
	s.Save(1, Annotation{Tag: "Grief"})

	s.Criteria.Tag = "grief"
	if got := s.Filtered(testTweets()); len(got) != 0 {
		t.Errorf("tag match must be case-sensitive, got %v", got)
	}
}

func TestFilteredByKeyword(t *testing.T) {
	s := New()

	s.Criteria.Keyword = "mourning"
	got := s.Filtered(testTweets())
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("keyword filter = %v, want [1]", got)
	}

	// Substring match is case-sensitive
	s.Criteria.Keyword = "Mourning"
	if got := s.Filtered(testTweets()); len(got) != 0 {
		t.Errorf("keyword must be case-sensitive, got %v", got)
	}
}

func TestFilteredByDateRange(t *testing.T) {
	s := New()
	s.Criteria.DateRange = "2021/05/01 - 2021/05/02"

	got := s.Filtered(testTweets())
	want := []int{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("date range filter = %v, want %v", got, want)
	}
}

func TestFilteredDateRangeSkippedWhenMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"placeholder text", "YYYY/MM/DD - YYYY/MM/DD"},
		{"no separator", "2021/05/01 2021/05/02"},
		{"too many separators", "2021-05-01 - 2021-05-02"},
		{"garbage tokens", "start - end"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Criteria.DateRange = tt.text
			if got := s.Filtered(testTweets()); len(got) != 4 {
				t.Errorf("malformed range %q should be skipped, got %v", tt.text, got)
			}
		})
	}
}

func TestFilteredByBookmark(t *testing.T) {
	s := New()
	s.ToggleBookmark(2)
	s.Criteria.BookmarkedOnly = true

	got := s.Filtered(testTweets())
	if !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("bookmark filter = %v, want [2]", got)
	}
}

func TestFilteredConjunction(t *testing.T) {
	s := New()
	s.Save(1, Annotation{Tag: "grief"})
	s.Save(3, Annotation{Tag: "grief"})
	s.ToggleBookmark(1)

	s.Criteria.Tag = "grief"
	s.Criteria.BookmarkedOnly = true

	got := s.Filtered(testTweets())
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("conjunction = %v, want [1]", got)
	}
}

func TestFilteredIsIdempotent(t *testing.T) {
	s := New()
	s.Save(1, Annotation{Tag: "grief"})
	s.Criteria.Tag = "grief"
	s.Criteria.DateRange = "2021/05/01 - 2021/05/07"

	first := s.Filtered(testTweets())
	second := s.Filtered(testTweets())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("filtering is not idempotent: %v then %v", first, second)
	}
}

func TestFilteredEmptyResult(t *testing.T) {
	s := New()
	s.Criteria.Keyword = "no such text anywhere"

	if got := s.Filtered(testTweets()); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestParseDateRange(t *testing.T) {
	start, end, ok := parseDateRange(" 2021/05/01 - 2021/05/02 ")
	if !ok {
		t.Fatal("expected well-formed range to parse")
	}
	if !start.Equal(time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2021, 5, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
}
