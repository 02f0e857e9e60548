package model

import "time"

type TelevisionShow struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	FirstAirDate string  `json:"first_air_date"`
}

// Year returns the first four characters of the air date, or "" when unknown.
func (t TelevisionShow) Year() string {
	return yearOf(t.FirstAirDate)
}

type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	ReleaseDate  string  `json:"release_date"`
}

func (m Movie) Year() string {
	return yearOf(m.ReleaseDate)
}

func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	if _, err := time.Parse("2006", date[:4]); err != nil {
		return ""
	}
	return date[:4]
}
