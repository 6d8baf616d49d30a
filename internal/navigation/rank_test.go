package navigation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopFrequentEmpty(t *testing.T) {
	s := New()
	got := s.TopFrequent(DefaultTopK)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopFrequentFewerThanK(t *testing.T) {
	s := New()
	a := MustParseLocation("http://a.com")
	b := MustParseLocation("http://b.com")
	visitAll(s, a, b, b)

	assert.Equal(t, []Location{b, a}, s.TopFrequent(5))
}

func TestTopFrequentLimitsToK(t *testing.T) {
	s := New()
	sites := []string{"youtube", "naver", "yahoo", "facebook", "instagram", "netflix"}
	var locs []Location
	for _, name := range sites {
		locs = append(locs, MustParseLocation(fmt.Sprintf("http://%s.com", name)))
	}
	visitAll(s, locs...)
	s.RecordVisit(locs[5])

	got := s.TopFrequent(DefaultTopK)
	assert.Len(t, got, DefaultTopK)
	assert.Equal(t, locs[5], got[0], "most visited ranks first")
	// Remaining slots go to the earliest first visits.
	assert.Equal(t, locs[:4], got[1:])
}

func TestTopFrequentTieBreakByFirstVisit(t *testing.T) {
	s := New()
	a := MustParseLocation("http://a.com")
	b := MustParseLocation("http://b.com")
	c := MustParseLocation("http://c.com")

	visitAll(s, c, a, b, a, c, b)

	assert.Equal(t, []Location{c, a, b}, s.TopFrequent(3))
	// Same answer on repeated calls.
	assert.Equal(t, s.TopFrequent(3), s.TopFrequent(3))
}

func TestTopFrequentNonPositiveK(t *testing.T) {
	s := New()
	visitAll(s, MustParseLocation("http://a.com"))
	assert.Empty(t, s.TopFrequent(0))
	assert.Empty(t, s.TopFrequent(-1))
}

func TestTopFrequentReturnsCopy(t *testing.T) {
	s := New()
	a := MustParseLocation("http://a.com")
	b := MustParseLocation("http://b.com")
	visitAll(s, a, b)

	got := s.TopFrequent(2)
	got[0] = b

	assert.Equal(t, []Location{a, b}, s.TopFrequent(2))
}
