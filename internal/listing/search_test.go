package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	flight := fakeRecord{text: []string{"Flight Request", "Ana Cruz"}}
	leave := fakeRecord{text: []string{"Leave Request", "Ben Reyes"}}

	assert.True(t, MatchesSearch(flight, "FLIGHT"))
	assert.False(t, MatchesSearch(leave, "FLIGHT"))
	assert.True(t, MatchesSearch(leave, "ben re"))
	assert.True(t, MatchesSearch(flight, "quest"))
}

func TestBlankSearchMatchesEverything(t *testing.T) {
	r := fakeRecord{text: []string{"anything"}}
	assert.True(t, MatchesSearch(r, ""))
	assert.True(t, MatchesSearch(r, "   "))
	assert.True(t, MatchesSearch(fakeRecord{}, "\t"))
	assert.True(t, NewSearch(" ").Empty())
}

func TestSearchFoldsUnicode(t *testing.T) {
	r := fakeRecord{text: []string{"Élodie Ñúñez"}}
	assert.True(t, MatchesSearch(r, "élodie"))
	assert.True(t, MatchesSearch(r, "ÑÚÑEZ"))
}

func TestSearchNoMatchWithoutSearchableText(t *testing.T) {
	assert.False(t, MatchesSearch(fakeRecord{text: []string{"", ""}}, "x"))
}

func TestSearchKeepsTermAsTyped(t *testing.T) {
	s := NewSearch(" Cruz")
	assert.Equal(t, " Cruz", s.Term())
	assert.True(t, s.Match(fakeRecord{text: []string{"Ana Cruz"}}))
	assert.False(t, s.Match(fakeRecord{text: []string{"Cruz"}}))
}
