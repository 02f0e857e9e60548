package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub-bot/internal/apperrors"
	"moviehub-bot/internal/model"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *TMDBAPI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewTMDBAPI(Options{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		ImageBaseURL: "https://images.test/t/p/",
		Language:     "en-US",
		Timeout:      2 * time.Second,
		MaxRetries:   2,
		RetryDelay:   time.Millisecond,
	})
	client.now = func() time.Time { return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC) }
	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestPopularTelevisionShows(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/popular", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		writeJSON(w, http.StatusOK, `{
			"page": 2,
			"total_pages": 3,
			"results": [
				{"id": 1396, "name": "Breaking Bad", "overview": "A chemistry drama.", "poster_path": "/bb.jpg", "vote_average": 8.9, "first_air_date": "2008-01-20"},
				{"id": 7, "name": ""},
				{"id": 1399, "name": "Game of Thrones", "first_air_date": "2011-04-17"}
			]
		}`)
	})

	page, err := client.PopularTelevisionShows(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, page.PageNumber)
	assert.False(t, page.IsLastPage)
	assert.Equal(t, time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC), page.LastRefresh)
	require.Len(t, page.Items, 2)
	assert.Equal(t, model.TelevisionShow{
		ID:           1396,
		Name:         "Breaking Bad",
		Overview:     "A chemistry drama.",
		PosterPath:   "/bb.jpg",
		VoteAverage:  8.9,
		FirstAirDate: "2008-01-20",
	}, page.Items[0])
	assert.Equal(t, "Game of Thrones", page.Items[1].Name)
}

func TestPopularMovies_LastPage(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"page": 3, "total_pages": 3, "results": [{"id": 603, "title": "The Matrix", "release_date": "1999-03-31"}]}`)
	})

	page, err := client.PopularMovies(context.Background(), 3)
	require.NoError(t, err)

	assert.True(t, page.IsLastPage)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "1999", page.Items[0].Year())
}

func TestPopularPersons_PageCap(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"page": 500, "total_pages": 9000, "results": [{"id": 287, "name": "Brad Pitt", "known_for_department": "Acting"}]}`)
	})

	page, err := client.PopularPersons(context.Background(), 500)
	require.NoError(t, err)
	assert.True(t, page.IsLastPage)
	assert.Equal(t, "Acting", page.Items[0].KnownForDepartment)
}

func TestInvalidPage_NoRequest(t *testing.T) {
	var calls atomic.Int32
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := client.PopularTelevisionShows(context.Background(), 0)

	assert.True(t, errors.Is(err, &apperrors.ErrInvalidPage{}))
	assert.Equal(t, int32(0), calls.Load())
}

func TestPersonDetails(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/person/287", r.URL.Path)
		assert.Equal(t, "combined_credits", r.URL.Query().Get("append_to_response"))
		writeJSON(w, http.StatusOK, `{
			"id": 287,
			"name": "Brad Pitt",
			"biography": "An actor.",
			"birthday": "1963-12-18",
			"place_of_birth": "Shawnee, Oklahoma, USA",
			"profile_path": "/brad.jpg",
			"combined_credits": {
				"cast": [
					{"id": 550, "media_type": "movie", "title": "Fight Club", "character": "Tyler Durden", "release_date": "1999-10-15"},
					{"id": 1668, "media_type": "tv", "name": "Friends", "character": "Will Colbert", "first_air_date": "1994-09-22"}
				],
				"crew": [
					{"id": 1422, "media_type": "movie", "title": "The Departed", "job": "Producer", "department": "Production"}
				]
			}
		}`)
	})

	details, err := client.PersonDetails(context.Background(), 287)
	require.NoError(t, err)

	assert.Equal(t, "Brad Pitt", details.Person.Name)
	assert.Equal(t, "Shawnee, Oklahoma, USA", details.Person.PlaceOfBirth)
	require.Len(t, details.Cast, 2)
	assert.True(t, details.Cast[0].IsMovie())
	assert.Equal(t, "Fight Club", details.Cast[0].Title)
	assert.True(t, details.Cast[1].IsTelevisionShow())
	assert.Equal(t, "Friends", details.Cast[1].Title)
	assert.Equal(t, "1994-09-22", details.Cast[1].ReleaseDate)
	require.Len(t, details.Crew, 1)
	assert.Equal(t, "Producer", details.Crew[0].Job)
}

func TestPersonDetails_NotFound(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"status_code": 34, "status_message": "The resource you requested could not be found."}`)
	})

	_, err := client.PersonDetails(context.Background(), 1)

	assert.True(t, errors.Is(err, &apperrors.ErrNotFound{}))
}

func TestRetry_TemporaryStatus(t *testing.T) {
	var calls atomic.Int32
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, `{}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id": 1396, "name": "Breaking Bad"}`)
	})

	show, err := client.TelevisionShow(context.Background(), 1396)
	require.NoError(t, err)

	assert.Equal(t, "Breaking Bad", show.Name)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRetry_PermanentStatusNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusUnauthorized, `{"status_code": 7, "status_message": "Invalid API key"}`)
	})

	_, err := client.Movie(context.Background(), 603)

	var status *apperrors.ErrBadStatus
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusUnauthorized, status.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewTMDBAPI(Options{BaseURL: url, MaxRetries: 1, RetryDelay: time.Millisecond})

	_, err := client.PopularTelevisionShows(context.Background(), 1)

	assert.True(t, apperrors.IsNetwork(err))
	assert.Equal(t, apperrors.NetworkErrorMessage, apperrors.UserMessage(err))
}

func TestMisconfiguredBaseURL_NotRetried(t *testing.T) {
	client := NewTMDBAPI(Options{BaseURL: "htps://api.themoviedb.org/3", MaxRetries: 3, RetryDelay: time.Millisecond})

	_, err := client.PopularMovies(context.Background(), 1)

	require.Error(t, err)
	assert.False(t, apperrors.IsNetwork(err))
	assert.False(t, isRetryable(err))
	assert.Equal(t, apperrors.GenericErrorMessage, apperrors.UserMessage(err))
}

func TestImageURL(t *testing.T) {
	client := NewTMDBAPI(Options{ImageBaseURL: "https://image.tmdb.org/t/p/"})

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/bb.jpg", client.ImageURL("/bb.jpg", PosterSize))
	assert.Equal(t, "", client.ImageURL("", PosterSize))
}
