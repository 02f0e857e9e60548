package model

const (
	MediaTypeMovie          = "movie"
	MediaTypeTelevisionShow = "tv"
)

type Person struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Biography          string  `json:"biography"`
	Birthday           string  `json:"birthday"`
	Deathday           string  `json:"deathday"`
	PlaceOfBirth       string  `json:"place_of_birth"`
	ProfilePath        string  `json:"profile_path"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
}

// PersonCredit is a single cast or crew entry of a person's filmography.
// Title holds the movie title or the show name depending on MediaType.
type PersonCredit struct {
	ID          int     `json:"id"`
	MediaType   string  `json:"media_type"`
	Title       string  `json:"title"`
	Character   string  `json:"character,omitempty"`
	Job         string  `json:"job,omitempty"`
	Department  string  `json:"department,omitempty"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

func (c PersonCredit) IsMovie() bool {
	return c.MediaType == MediaTypeMovie
}

func (c PersonCredit) IsTelevisionShow() bool {
	return c.MediaType == MediaTypeTelevisionShow
}

func (c PersonCredit) Movie() Movie {
	return Movie{
		ID:          c.ID,
		Title:       c.Title,
		PosterPath:  c.PosterPath,
		ReleaseDate: c.ReleaseDate,
		VoteAverage: c.VoteAverage,
	}
}

func (c PersonCredit) TelevisionShow() TelevisionShow {
	return TelevisionShow{
		ID:           c.ID,
		Name:         c.Title,
		PosterPath:   c.PosterPath,
		FirstAirDate: c.ReleaseDate,
		VoteAverage:  c.VoteAverage,
	}
}

// PersonDetails bundles a person with their cast and crew credits.
type PersonDetails struct {
	Person Person         `json:"person"`
	Cast   []PersonCredit `json:"cast"`
	Crew   []PersonCredit `json:"crew"`
}

func NewPersonDetails(person Person, cast, crew []PersonCredit) *PersonDetails {
	return &PersonDetails{Person: person, Cast: cast, Crew: crew}
}
