package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPage_FirstPageAndEmpty(t *testing.T) {
	page := NewPage([]TelevisionShow{}, 1, true, time.Now())

	assert.True(t, page.IsFirstPage())
	assert.True(t, page.IsEmpty())
	assert.Equal(t, 0, page.NextPage())
}

func TestPage_NextPage(t *testing.T) {
	page := NewPage([]Movie{{ID: 1}, {ID: 2}}, 3, false, time.Now())

	assert.False(t, page.IsFirstPage())
	assert.False(t, page.IsEmpty())
	assert.Equal(t, 4, page.NextPage())
}

func TestMedia_Year(t *testing.T) {
	assert.Equal(t, "2008", TelevisionShow{FirstAirDate: "2008-01-20"}.Year())
	assert.Equal(t, "1999", Movie{ReleaseDate: "1999-03-31"}.Year())
	assert.Equal(t, "", Movie{ReleaseDate: ""}.Year())
	assert.Equal(t, "", Movie{ReleaseDate: "n/a-01-01"}.Year())
}

func TestPersonCredit_Conversion(t *testing.T) {
	credit := PersonCredit{ID: 1396, MediaType: MediaTypeTelevisionShow, Title: "Breaking Bad", ReleaseDate: "2008-01-20", VoteAverage: 8.9}

	assert.True(t, credit.IsTelevisionShow())
	assert.False(t, credit.IsMovie())

	show := credit.TelevisionShow()
	assert.Equal(t, 1396, show.ID)
	assert.Equal(t, "Breaking Bad", show.Name)
	assert.Equal(t, "2008", show.Year())

	movie := PersonCredit{ID: 603, MediaType: MediaTypeMovie, Title: "The Matrix"}.Movie()
	assert.Equal(t, "The Matrix", movie.Title)
}
