package navigation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visitAll(s *State, locs ...Location) {
	for _, l := range locs {
		s.RecordVisit(l)
	}
}

func TestNewStateIsEmpty(t *testing.T) {
	s := New()

	assert.Equal(t, -1, s.Cursor())
	assert.Equal(t, 0, s.Len())
	_, ok := s.Current()
	assert.False(t, ok)
	_, ok = s.Home()
	assert.False(t, ok)
	_, ok = s.Favorite()
	assert.False(t, ok)
	assert.Empty(t, s.TopFrequent(DefaultTopK))
}

func TestCompleteAbsolute(t *testing.T) {
	s := New()
	for _, raw := range []string{
		"http://example.com",
		"https://golang.org/doc/effective_go",
		"ftp://files.example.org/pub",
		"file:///tmp/index.html",
		"http://localhost:8080/path?q=1#frag",
	} {
		want, err := ParseLocation(raw)
		require.NoError(t, err, raw)

		got, ok := s.Complete(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestCompleteEmpty(t *testing.T) {
	s := New()
	for _, in := range []string{"", "   ", "\t\n"} {
		_, ok := s.Complete(in)
		assert.False(t, ok, "Complete(%q)", in)
	}
}

func TestCompleteAddsDefaultScheme(t *testing.T) {
	s := New()

	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "http://example.com"},
		{"youtube.com", "http://youtube.com"},
		{"localhost:3000/app", "http://localhost:3000/app"},
		{"  golang.org/pkg  ", "http://golang.org/pkg"},
	}
	for _, tt := range tests {
		got, ok := s.Complete(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, MustParseLocation(tt.want), got, "Complete(%q)", tt.in)
	}
}

func TestCompleteRelativeToCurrent(t *testing.T) {
	s := New()

	// Not parseable with or without the scheme, and nothing to resolve against.
	_, ok := s.Complete("/docs")
	assert.False(t, ok)

	s.RecordVisit(MustParseLocation("http://example.com/guide"))
	got, ok := s.Complete("/docs")
	require.True(t, ok)
	assert.Equal(t, "http://example.com/guide//docs", got.String())
}

func TestCompleteNotFound(t *testing.T) {
	s := New()
	s.RecordVisit(MustParseLocation("http://example.com"))

	// Control characters are rejected by every rule.
	_, ok := s.Complete("exa\x7fmple")
	assert.False(t, ok)

	cur, _ := s.Current()
	assert.Equal(t, MustParseLocation("http://example.com"), cur)
}

func TestParseLocationRejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"example.com",
		"mailto:someone@example.com",
		"http://",
		"https:///path",
		"javascript:alert(1)",
	} {
		_, err := ParseLocation(raw)
		assert.ErrorIs(t, err, ErrInvalidLocation, "ParseLocation(%q)", raw)
	}
}

func TestParseLocationNormalizes(t *testing.T) {
	a := MustParseLocation("HTTP://Example.COM/Path")
	b := MustParseLocation("http://example.com/Path")
	assert.Equal(t, a, b)
	assert.Equal(t, "http://example.com/Path", a.String())
}

func TestRecordVisitCounts(t *testing.T) {
	s := New()
	a := MustParseLocation("http://a.com")
	b := MustParseLocation("http://b.com")

	visitAll(s, a, b, a)

	assert.Equal(t, 2, s.VisitCount(a))
	assert.Equal(t, 1, s.VisitCount(b))
	assert.Equal(t, []Location{a, b}, s.TopFrequent(5))
	assert.Equal(t, []Location{a, b, a}, s.History())
	assert.Equal(t, 2, s.Cursor())

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, a, cur)
}

func TestRecordVisitIgnoresZeroLocation(t *testing.T) {
	s := New()
	s.RecordVisit(Location{})
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.Cursor())
}

func TestBranchingDiscardsForward(t *testing.T) {
	s := New()
	a := MustParseLocation("http://a.com")
	b := MustParseLocation("http://b.com")
	c := MustParseLocation("http://c.com")
	d := MustParseLocation("http://d.com")

	visitAll(s, a, b, c)

	got, err := s.Navigate(Back)
	require.NoError(t, err)
	assert.Equal(t, b, got)
	got, err = s.Navigate(Back)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	s.RecordVisit(d)
	assert.Equal(t, []Location{a, d}, s.History())
	assert.False(t, s.CanGoForward())

	got, err = s.Navigate(Forward)
	require.NoError(t, err)
	assert.Equal(t, d, got)
	assert.Equal(t, 1, s.Cursor())

	// Discarded entries keep their counts.
	assert.Equal(t, 1, s.VisitCount(b))
	assert.Equal(t, 1, s.VisitCount(c))
}

func TestNavigateClampsAtEnds(t *testing.T) {
	s := New()
	a := MustParseLocation("http://a.com")
	b := MustParseLocation("http://b.com")
	visitAll(s, a)

	got, err := s.Navigate(Back)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.Equal(t, 0, s.Cursor())

	got, err = s.Navigate(Forward)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.Equal(t, 0, s.Cursor())

	s.RecordVisit(b)
	assert.True(t, s.CanGoBack())
	got, err = s.Navigate(Back)
	require.NoError(t, err)
	assert.Equal(t, a, got)
	assert.True(t, s.CanGoForward())
}

func TestNavigateEmptyHistory(t *testing.T) {
	s := New()
	_, err := s.Navigate(Back)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.Navigate(Forward)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, -1, s.Cursor())
}

func TestNavigateDoesNotCountVisits(t *testing.T) {
	s := New()
	a := MustParseLocation("http://a.com")
	b := MustParseLocation("http://b.com")
	visitAll(s, a, b)

	for i := 0; i < 3; i++ {
		_, _ = s.Navigate(Back)
		_, _ = s.Navigate(Forward)
	}

	assert.Equal(t, 1, s.VisitCount(a))
	assert.Equal(t, 1, s.VisitCount(b))
	assert.Equal(t, []Location{a, b}, s.History())
}

func TestHomeAndFavorite(t *testing.T) {
	s := New()
	assert.False(t, s.SetHomeToCurrent())
	assert.False(t, s.SetFavoriteToCurrent())

	a := MustParseLocation("http://a.com")
	b := MustParseLocation("http://b.com")

	s.RecordVisit(a)
	require.True(t, s.SetHomeToCurrent())
	require.True(t, s.SetFavoriteToCurrent())

	s.RecordVisit(b)
	require.True(t, s.SetFavoriteToCurrent())

	home, ok := s.Home()
	require.True(t, ok)
	assert.Equal(t, a, home)

	fav, ok := s.Favorite()
	require.True(t, ok)
	assert.Equal(t, b, fav)
}

func TestHomeSurvivesReset(t *testing.T) {
	s := New()
	a := MustParseLocation("http://a.com")
	s.RecordVisit(a)
	s.SetHomeToCurrent()

	s.Reset()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.Cursor())
	assert.Equal(t, 0, s.VisitCount(a))
	home, ok := s.Home()
	assert.True(t, ok)
	assert.Equal(t, a, home)
}

func TestConcurrentVisits(t *testing.T) {
	s := New()
	a := MustParseLocation("http://a.com")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RecordVisit(a)
			_, _ = s.Navigate(Back)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.VisitCount(a))
	assert.LessOrEqual(t, s.Cursor(), s.Len()-1)
	assert.GreaterOrEqual(t, s.Cursor(), 0)
}
