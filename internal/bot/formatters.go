package bot

import (
	"fmt"
	"html"
	"strings"

	"moviehub-bot/internal/model"
)

const siteBaseURL = "https://www.themoviedb.org"

// truncate cuts s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func yearSuffix(year string) string {
	if year == "" {
		return ""
	}
	return " (" + year + ")"
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "–"
	}
	return fmt.Sprintf("%.1f", rating)
}

func formatTelevisionShowCaption(show model.TelevisionShow) string {
	caption := fmt.Sprintf("📺 %s%s\n⭐ %s\n📖 %s",
		show.Name, yearSuffix(show.Year()), formatRating(show.VoteAverage), show.Overview)
	return truncate(caption, telegramCaptionLimit)
}

func formatMovieCaption(movie model.Movie) string {
	caption := fmt.Sprintf("🎬 %s%s\n⭐ %s\n📖 %s",
		movie.Title, yearSuffix(movie.Year()), formatRating(movie.VoteAverage), movie.Overview)
	return truncate(caption, telegramCaptionLimit)
}

func formatTelevisionShowDescription(show model.TelevisionShow) string {
	return fmt.Sprintf(
		`<a href="%s/tv/%d">%s</a>%s`,
		siteBaseURL,
		show.ID,
		html.EscapeString(show.Name),
		yearSuffix(show.Year()),
	)
}

func formatMovieDescription(movie model.Movie) string {
	return fmt.Sprintf(
		`<a href="%s/movie/%d">%s</a>%s`,
		siteBaseURL,
		movie.ID,
		html.EscapeString(movie.Title),
		yearSuffix(movie.Year()),
	)
}

// cardOverviewLimit leaves room in a photo caption for the title line and
// the escaping of the overview.
const cardOverviewLimit = 600

func formatTelevisionShowCard(show model.TelevisionShow) string {
	return fmt.Sprintf("📺 %s\n⭐ %s\n\n%s",
		formatTelevisionShowDescription(show),
		formatRating(show.VoteAverage),
		html.EscapeString(truncate(show.Overview, cardOverviewLimit)))
}

func formatMovieCard(movie model.Movie) string {
	return fmt.Sprintf("🎬 %s\n⭐ %s\n\n%s",
		formatMovieDescription(movie),
		formatRating(movie.VoteAverage),
		html.EscapeString(truncate(movie.Overview, cardOverviewLimit)))
}

func formatPersonDescription(person model.Person) string {
	description := html.EscapeString(person.Name)
	if person.KnownForDepartment != "" {
		description += ", " + html.EscapeString(person.KnownForDepartment)
	}
	return description
}

func formatPersonTitle(person model.Person) string {
	return "👤 <b>" + html.EscapeString(person.Name) + "</b>"
}

// formatPersonCaption builds the HTML caption of a person card. The
// biography is cut before escaping so the markup stays intact.
func formatPersonCaption(person model.Person) string {
	var sb strings.Builder
	sb.WriteString(formatPersonTitle(person))
	if person.KnownForDepartment != "" {
		sb.WriteString("\n🎭 " + html.EscapeString(person.KnownForDepartment))
	}
	if person.Birthday != "" {
		born := person.Birthday
		if person.Deathday != "" {
			born += " – " + person.Deathday
		}
		sb.WriteString("\n🎂 " + html.EscapeString(born))
	}
	if person.PlaceOfBirth != "" {
		sb.WriteString("\n📍 " + html.EscapeString(person.PlaceOfBirth))
	}

	header := sb.String()
	if person.Biography == "" {
		return header
	}
	room := telegramCaptionLimit - len([]rune(header)) - 2
	if room < 4 {
		return header
	}
	return header + "\n\n" + html.EscapeString(truncate(person.Biography, room/2))
}

func formatCreditLabel(credit model.PersonCredit) string {
	icon := "🎬"
	year := credit.Movie().Year()
	if credit.IsTelevisionShow() {
		icon = "📺"
		year = credit.TelevisionShow().Year()
	}
	label := icon + " " + credit.Title + yearSuffix(year)
	switch {
	case credit.Character != "":
		label += " as " + credit.Character
	case credit.Job != "":
		label += ", " + credit.Job
	}
	return truncate(label, 64)
}
