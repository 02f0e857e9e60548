package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub-bot/internal/model"
)

func TestCreateSelectKeyboard(t *testing.T) {
	keyboard := createSelectKeyboard(callbackTelevisionShowSelect, []int{1, 2, 3, 4, 5, 6, 7}, 20)

	require.Len(t, keyboard.InlineKeyboard, 2)
	assert.Len(t, keyboard.InlineKeyboard[0], 5)
	assert.Len(t, keyboard.InlineKeyboard[1], 2)
	assert.Equal(t, "21", keyboard.InlineKeyboard[0][0].Text)
	assert.Equal(t, "tv_select:1", *keyboard.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "27", keyboard.InlineKeyboard[1][1].Text)
}

func TestCreateMoreKeyboard(t *testing.T) {
	cases := map[string]string{
		model.ScreenTelevisionShows: "tv_more",
		model.ScreenMovies:          "movie_more",
		model.ScreenPersons:         "person_more",
	}
	for screen, data := range cases {
		keyboard := createMoreKeyboard(screen)
		assert.Equal(t, data, *keyboard.InlineKeyboard[0][0].CallbackData, screen)
		assert.Equal(t, "cancel", *keyboard.InlineKeyboard[0][1].CallbackData, screen)
	}
}

func TestTopCredits(t *testing.T) {
	details := model.NewPersonDetails(
		model.Person{ID: 1},
		[]model.PersonCredit{
			{ID: 10, MediaType: model.MediaTypeMovie, Title: "A"},
			{ID: 10, MediaType: model.MediaTypeMovie, Title: "A again"},
			{ID: 10, MediaType: model.MediaTypeTelevisionShow, Title: "Same id, other type"},
			{ID: 11, MediaType: "episode", Title: "Unknown type"},
		},
		[]model.PersonCredit{
			{ID: 12, MediaType: model.MediaTypeMovie, Title: "Directed", Job: "Director"},
		},
	)

	credits := topCredits(details, 8)
	require.Len(t, credits, 3)
	assert.Equal(t, "A", credits[0].Title)
	assert.Equal(t, "Same id, other type", credits[1].Title)
	assert.Equal(t, "Directed", credits[2].Title)

	assert.Len(t, topCredits(details, 1), 1)
}
