// Package navigation holds the per-session browsing state: the back/forward
// history, visit counts, the home page and the single favorite.
//
// A State is safe for concurrent use. Every method runs under one lock, so a
// visit's truncate-then-append sequence is never observed half done.
package navigation

import (
	"fmt"
	"strings"
	"sync"
)

// Direction selects a history move.
type Direction int

const (
	Back    Direction = -1
	Forward Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Back:
		return "back"
	case Forward:
		return "forward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// State is the navigation model for one browser session.
type State struct {
	mu sync.Mutex

	history []Location
	cursor  int // index into history, -1 when empty

	counts map[Location]int
	order  []Location // first-visit order, used to break ranking ties

	home     Location
	favorite Location
}

// New creates an empty session state.
func New() *State {
	return &State{
		cursor: -1,
		counts: make(map[Location]int),
	}
}

// Complete turns user-typed or link-derived text into a location. It tries,
// in order: the text as-is, the text with DefaultScheme prepended, and the
// text appended to the current location. ok is false when nothing parsed.
func (s *State) Complete(candidate string) (loc Location, ok bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return Location{}, false
	}

	if loc, err := ParseLocation(candidate); err == nil {
		return loc, true
	}
	if loc, err := ParseLocation(DefaultScheme + candidate); err == nil {
		return loc, true
	}

	current, hasCurrent := s.Current()
	if !hasCurrent {
		return Location{}, false
	}
	if loc, err := ParseLocation(current.String() + "/" + candidate); err == nil {
		return loc, true
	}
	return Location{}, false
}

// RecordVisit registers a successful navigation to loc. If the cursor is
// not at the end of the history the forward entries are discarded first.
func (s *State) RecordVisit(loc Location) {
	if loc.IsZero() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seen := s.counts[loc]; !seen {
		s.order = append(s.order, loc)
	}
	s.counts[loc]++

	if s.cursor < len(s.history)-1 {
		s.history = s.history[:s.cursor+1]
	}
	s.history = append(s.history, loc)
	s.cursor = len(s.history) - 1
}

// Navigate moves the cursor one step in dir and returns the location it
// lands on. A move past either end leaves the cursor where it was and
// returns the current location. Visit counts are not touched.
// Navigate fails with ErrOutOfRange only when the history is empty.
func (s *State) Navigate(dir Direction) (Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return Location{}, fmt.Errorf("navigate %s on empty history: %w", dir, ErrOutOfRange)
	}

	next := s.cursor + int(dir)
	if next >= 0 && next < len(s.history) {
		s.cursor = next
	}
	return s.history[s.cursor], nil
}

// Current returns the location at the cursor.
func (s *State) Current() (Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *State) currentLocked() (Location, bool) {
	if s.cursor < 0 || s.cursor >= len(s.history) {
		return Location{}, false
	}
	return s.history[s.cursor], true
}

// CanGoBack reports whether Navigate(Back) would move the cursor.
func (s *State) CanGoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor > 0
}

// CanGoForward reports whether Navigate(Forward) would move the cursor.
func (s *State) CanGoForward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor < len(s.history)-1
}

// History returns a copy of the visited locations, oldest first.
func (s *State) History() []Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Location, len(s.history))
	copy(out, s.history)
	return out
}

// Cursor returns the current history index, or -1 when empty.
func (s *State) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Len returns the number of history entries.
func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// VisitCount returns how many times loc was recorded.
func (s *State) VisitCount(loc Location) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[loc]
}

// SetHomeToCurrent makes the current location the home page. It reports
// false, leaving home unchanged, when nothing has been visited yet.
func (s *State) SetHomeToCurrent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.currentLocked()
	if !ok {
		return false
	}
	s.home = cur
	return true
}

// Home returns the home page, if set.
func (s *State) Home() (Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.home, !s.home.IsZero()
}

// SetFavoriteToCurrent replaces the favorite with the current location.
func (s *State) SetFavoriteToCurrent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.currentLocked()
	if !ok {
		return false
	}
	s.favorite = cur
	return true
}

// Favorite returns the favorite, if set.
func (s *State) Favorite() (Location, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorite, !s.favorite.IsZero()
}

// Reset clears history and visit counts. Home and favorite are kept.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.cursor = -1
	s.counts = make(map[Location]int)
	s.order = nil
}
