package model

const (
	ScreenTelevisionShows = "tv"
	ScreenMovies          = "movies"
	ScreenPersons         = "persons"
	ScreenPersonDetails   = "person"
)

// BrowseState is what a chat is looking at, kept between updates so that
// "More" and retry buttons keep working after the bot restarts.
type BrowseState struct {
	Screen          string `json:"screen"`
	Page            int    `json:"page"`
	IsLastPage      bool   `json:"is_last_page"`
	PersonID        int    `json:"person_id,omitempty"`
	FooterMessageID int    `json:"footer_message_id,omitempty"`
}
