package session

import (
	"math/rand"
	"sort"
	"time"
)

// Annotation is the analyst's saved judgment for one tweet. Content,
// Date and URL are copied from the record at save time so the export
// stands on its own; User is the editable display-only username.
type Annotation struct {
	Tag     string `json:"tag"`
	Note    string `json:"note"`
	Content string `json:"content"`
	Date    string `json:"date"`
	User    string `json:"user"`
	URL     string `json:"url"`
}

// Session owns all mutable state for one review session: saved
// annotations, the bookmark set, the active filter criteria and the
// cursor. Everything is in-memory only; nothing outlives the process
// unless exported.
type Session struct {
	Annotations map[int]Annotation
	Bookmarks   map[int]struct{}
	Criteria    Criteria
	Index       int

	rng *rand.Rand
}

// New creates an empty session.
func New() *Session {
	return &Session{
		Annotations: make(map[int]Annotation),
		Bookmarks:   make(map[int]struct{}),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Save inserts or overwrites the annotation at index. Any text is
// accepted, including empty fields; prior values are replaced in full.
func (s *Session) Save(index int, ann Annotation) {
	s.Annotations[index] = ann
}

// Annotation returns the saved annotation for index, if any.
func (s *Session) Annotation(index int) (Annotation, bool) {
	ann, ok := s.Annotations[index]
	return ann, ok
}

// ToggleBookmark adds the index to the bookmark set if absent and
// removes it if present.
func (s *Session) ToggleBookmark(index int) {
	if _, ok := s.Bookmarks[index]; ok {
		delete(s.Bookmarks, index)
	} else {
		s.Bookmarks[index] = struct{}{}
	}
}

// Bookmarked reports whether index is in the bookmark set.
func (s *Session) Bookmarked(index int) bool {
	_, ok := s.Bookmarks[index]
	return ok
}

// Tags returns the distinct non-empty tags across all saved
// annotations, sorted lexicographically. The UI prepends its "All"
// sentinel; tag options come from saved annotations, never from the
// records themselves.
func (s *Session) Tags() []string {
	seen := make(map[string]struct{})
	for _, ann := range s.Annotations {
		if ann.Tag != "" {
			seen[ann.Tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Revalidate clamps the cursor to the filtered list: if the current
// index is no longer a member, it resets to the first element. With an
// empty list the cursor is left alone; the caller must not display or
// navigate in that state.
func (s *Session) Revalidate(filtered []int) {
	if len(filtered) == 0 {
		return
	}
	if s.position(filtered) == -1 {
		s.Index = filtered[0]
	}
}

// Prev moves the cursor to the previous element of the filtered list,
// clamping at the first.
func (s *Session) Prev(filtered []int) {
	if len(filtered) == 0 {
		return
	}
	p := s.position(filtered)
	if p <= 0 {
		s.Index = filtered[0]
		return
	}
	s.Index = filtered[p-1]
}

// Next moves the cursor to the next element of the filtered list,
// clamping at the last.
func (s *Session) Next(filtered []int) {
	if len(filtered) == 0 {
		return
	}
	p := s.position(filtered)
	if p == -1 {
		s.Index = filtered[0]
		return
	}
	if p < len(filtered)-1 {
		s.Index = filtered[p+1]
	}
}

// Random moves the cursor to a uniformly chosen element of the
// filtered list. It may land on the current element.
func (s *Session) Random(filtered []int) {
	if len(filtered) == 0 {
		return
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.Index = filtered[s.rng.Intn(len(filtered))]
}

// position returns the cursor's offset within filtered, or -1.
func (s *Session) position(filtered []int) int {
	for i, idx := range filtered {
		if idx == s.Index {
			return i
		}
	}
	return -1
}

// Position returns the 1-based position of the cursor within filtered
// for display, or 0 when the cursor is not a member.
func (s *Session) Position(filtered []int) int {
	return s.position(filtered) + 1
}
