package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"moviehub-bot/internal/apperrors"
	"moviehub-bot/internal/config"
	"moviehub-bot/internal/model"
)

const (
	// TMDB refuses pages above 500 even when total_pages is larger.
	maxPage = 500

	PosterSize  = "w500"
	ProfileSize = "w185"
)

type Options struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	Language     string
	Timeout      time.Duration
	MaxRetries   int
	RetryDelay   time.Duration
}

type TMDBAPI struct {
	apiKey       string
	baseUrl      string
	imageBaseUrl string
	language     string
	httpClient   *http.Client
	retryPolicy  retrypolicy.RetryPolicy[[]byte]
	now          func() time.Time
}

func NewTMDBAPI(opts Options) *TMDBAPI {
	if opts.BaseURL == "" {
		opts.BaseURL = config.DefaultTMDBBaseURL
	}
	if opts.ImageBaseURL == "" {
		opts.ImageBaseURL = config.DefaultImageBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 200 * time.Millisecond
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	policy := retrypolicy.NewBuilder[[]byte]().
		HandleIf(func(_ []byte, err error) bool {
			return isRetryable(err)
		}).
		WithBackoff(opts.RetryDelay, 10*opts.RetryDelay).
		WithMaxRetries(opts.MaxRetries).
		ReturnLastFailure().
		Build()

	return &TMDBAPI{
		apiKey:       opts.APIKey,
		baseUrl:      strings.TrimRight(opts.BaseURL, "/"),
		imageBaseUrl: strings.TrimRight(opts.ImageBaseURL, "/"),
		language:     opts.Language,
		httpClient:   &http.Client{Timeout: opts.Timeout},
		retryPolicy:  policy,
		now:          time.Now,
	}
}

// NewTMDBAPIFromConfig builds a client from the application config.
func NewTMDBAPIFromConfig(cfg *config.Config) *TMDBAPI {
	return NewTMDBAPI(Options{
		APIKey:       cfg.TMDB.APIKey,
		BaseURL:      cfg.TMDB.BaseURL,
		ImageBaseURL: cfg.TMDB.ImageBaseURL,
		Language:     cfg.TMDB.Language,
		Timeout:      cfg.TMDB.Timeout,
		MaxRetries:   cfg.TMDB.MaxRetries,
	})
}

func isRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if apperrors.IsNetwork(err) {
		return true
	}
	var status *apperrors.ErrBadStatus
	return errors.As(err, &status) && status.Temporary()
}

// ImageURL returns the full URL of an image path at the given size, or ""
// when the item has no image.
func (t *TMDBAPI) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return t.imageBaseUrl + "/" + size + path
}

func (t *TMDBAPI) doRequest(ctx context.Context, endpoint, path string, params url.Values, result interface{}) error {
	logger := config.GetLogger()
	start := time.Now()
	defer func() {
		RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", t.apiKey)
	if t.language != "" {
		params.Set("language", t.language)
	}
	requestUrl := t.baseUrl + path + "?" + params.Encode()

	body, err := failsafe.With(t.retryPolicy).WithContext(ctx).Get(func() ([]byte, error) {
		return t.fetch(ctx, requestUrl)
	})
	if err != nil {
		RequestsTotal.WithLabelValues(endpoint, statusLabel(err)).Inc()
		logger.Error().Err(err).Str("endpoint", endpoint).Msg("TMDB request failed")
		return err
	}
	RequestsTotal.WithLabelValues(endpoint, "ok").Inc()

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (t *TMDBAPI) fetch(ctx context.Context, requestUrl string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Classify(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.StatusMessage != "" {
			logger := config.GetLogger()
			logger.Debug().
				Int("status", resp.StatusCode).
				Str("message", apiErr.StatusMessage).
				Msg("TMDB error response")
		}
		return nil, &apperrors.ErrBadStatus{StatusCode: resp.StatusCode}
	}
	return body, nil
}

func statusLabel(err error) string {
	var status *apperrors.ErrBadStatus
	switch {
	case errors.As(err, &status):
		return strconv.Itoa(status.StatusCode)
	case apperrors.IsNetwork(err):
		return "network"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}

func checkPage(page int) error {
	if page < 1 {
		return &apperrors.ErrInvalidPage{Page: page}
	}
	return nil
}

func pageParams(page int) url.Values {
	return url.Values{"page": {strconv.Itoa(page)}}
}

func isLastPage(page, totalPages int) bool {
	return page >= totalPages || page >= maxPage
}

func notFound(err error, resource string, id int) error {
	var status *apperrors.ErrBadStatus
	if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
		return apperrors.NewNotFoundError(resource, id)
	}
	return err
}

func (t *TMDBAPI) PopularTelevisionShows(ctx context.Context, page int) (*model.TelevisionShowsPage, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}

	var data pagedResponse[TelevisionShowResponse]
	if err := t.doRequest(ctx, "tv_popular", "/tv/popular", pageParams(page), &data); err != nil {
		return nil, err
	}

	shows := make([]model.TelevisionShow, 0, len(data.Results))
	for _, doc := range data.Results {
		if doc.Name == "" {
			continue
		}
		shows = append(shows, doc.toModel())
	}
	return model.NewPage(shows, page, isLastPage(page, data.TotalPages), t.now()), nil
}

func (t *TMDBAPI) PopularMovies(ctx context.Context, page int) (*model.MoviesPage, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}

	var data pagedResponse[MovieResponse]
	if err := t.doRequest(ctx, "movie_popular", "/movie/popular", pageParams(page), &data); err != nil {
		return nil, err
	}

	movies := make([]model.Movie, 0, len(data.Results))
	for _, doc := range data.Results {
		if doc.Title == "" {
			continue
		}
		movies = append(movies, doc.toModel())
	}
	return model.NewPage(movies, page, isLastPage(page, data.TotalPages), t.now()), nil
}

func (t *TMDBAPI) PopularPersons(ctx context.Context, page int) (*model.PersonsPage, error) {
	if err := checkPage(page); err != nil {
		return nil, err
	}

	var data pagedResponse[PersonResponse]
	if err := t.doRequest(ctx, "person_popular", "/person/popular", pageParams(page), &data); err != nil {
		return nil, err
	}

	persons := make([]model.Person, 0, len(data.Results))
	for _, doc := range data.Results {
		if doc.Name == "" {
			continue
		}
		persons = append(persons, doc.toModel())
	}
	return model.NewPage(persons, page, isLastPage(page, data.TotalPages), t.now()), nil
}

func (t *TMDBAPI) PersonDetails(ctx context.Context, personId int) (*model.PersonDetails, error) {
	params := url.Values{"append_to_response": {"combined_credits"}}

	var data PersonDetailsResponse
	if err := t.doRequest(ctx, "person_details", fmt.Sprintf("/person/%d", personId), params, &data); err != nil {
		return nil, notFound(err, "person", personId)
	}

	cast := make([]model.PersonCredit, 0, len(data.CombinedCredits.Cast))
	for _, c := range data.CombinedCredits.Cast {
		cast = append(cast, c.toModel())
	}
	crew := make([]model.PersonCredit, 0, len(data.CombinedCredits.Crew))
	for _, c := range data.CombinedCredits.Crew {
		crew = append(crew, c.toModel())
	}
	return model.NewPersonDetails(data.PersonResponse.toModel(), cast, crew), nil
}

func (t *TMDBAPI) TelevisionShow(ctx context.Context, showId int) (*model.TelevisionShow, error) {
	var data TelevisionShowResponse
	if err := t.doRequest(ctx, "tv_details", fmt.Sprintf("/tv/%d", showId), nil, &data); err != nil {
		return nil, notFound(err, "television show", showId)
	}
	show := data.toModel()
	return &show, nil
}

func (t *TMDBAPI) Movie(ctx context.Context, movieId int) (*model.Movie, error) {
	var data MovieResponse
	if err := t.doRequest(ctx, "movie_details", fmt.Sprintf("/movie/%d", movieId), nil, &data); err != nil {
		return nil, notFound(err, "movie", movieId)
	}
	movie := data.toModel()
	return &movie, nil
}

func (r TelevisionShowResponse) toModel() model.TelevisionShow {
	return model.TelevisionShow{
		ID:           r.Id,
		Name:         r.Name,
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		VoteAverage:  r.VoteAverage,
		FirstAirDate: r.FirstAirDate,
	}
}

func (r MovieResponse) toModel() model.Movie {
	return model.Movie{
		ID:           r.Id,
		Title:        r.Title,
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		VoteAverage:  r.VoteAverage,
		ReleaseDate:  r.ReleaseDate,
	}
}

func (r PersonResponse) toModel() model.Person {
	return model.Person{
		ID:                 r.Id,
		Name:               r.Name,
		Biography:          r.Biography,
		Birthday:           r.Birthday,
		Deathday:           r.Deathday,
		PlaceOfBirth:       r.PlaceOfBirth,
		ProfilePath:        r.ProfilePath,
		KnownForDepartment: r.KnownForDepartment,
		Popularity:         r.Popularity,
	}
}

func (r creditResponse) toModel() model.PersonCredit {
	credit := model.PersonCredit{
		ID:          r.Id,
		MediaType:   r.MediaType,
		Title:       r.Title,
		Character:   r.Character,
		Job:         r.Job,
		Department:  r.Department,
		PosterPath:  r.PosterPath,
		ReleaseDate: r.ReleaseDate,
		VoteAverage: r.VoteAverage,
	}
	if r.MediaType == model.MediaTypeTelevisionShow {
		credit.Title = r.Name
		credit.ReleaseDate = r.FirstAirDate
	}
	return credit
}
