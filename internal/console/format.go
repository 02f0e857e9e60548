package console

import (
	"fmt"
	"io"
	"strings"

	"moviehub-bot/internal/model"
)

func withYear(title, year string) string {
	if year == "" {
		return title
	}
	return title + " (" + year + ")"
}

func formatTelevisionShow(show model.TelevisionShow) string {
	return fmt.Sprintf("%s  ★ %.1f", withYear(show.Name, show.Year()), show.VoteAverage)
}

func formatMovie(movie model.Movie) string {
	return fmt.Sprintf("%s  ★ %.1f", withYear(movie.Title, movie.Year()), movie.VoteAverage)
}

func formatPerson(person model.Person) string {
	if person.KnownForDepartment == "" {
		return fmt.Sprintf("%s [%d]", person.Name, person.ID)
	}
	return fmt.Sprintf("%s, %s [%d]", person.Name, person.KnownForDepartment, person.ID)
}

func printTelevisionShow(w io.Writer, show model.TelevisionShow) {
	fmt.Fprintln(w, formatTelevisionShow(show))
	if show.Overview != "" {
		fmt.Fprintln(w, show.Overview)
	}
}

func printMovie(w io.Writer, movie model.Movie) {
	fmt.Fprintln(w, formatMovie(movie))
	if movie.Overview != "" {
		fmt.Fprintln(w, movie.Overview)
	}
}

func formatCredit(credit model.PersonCredit) string {
	kind := "movie"
	year := credit.Movie().Year()
	if credit.IsTelevisionShow() {
		kind = "tv"
		year = credit.TelevisionShow().Year()
	}
	line := fmt.Sprintf("[%s] %s", kind, withYear(credit.Title, year))
	switch {
	case credit.Character != "":
		line += " as " + credit.Character
	case credit.Job != "":
		line += ", " + credit.Job
	}
	return line
}

func writePersonDetails(sb *strings.Builder, details *model.PersonDetails) {
	person := details.Person
	sb.WriteString(person.Name + "\n")
	sb.WriteString(strings.Repeat("=", len([]rune(person.Name))) + "\n")
	if person.KnownForDepartment != "" {
		sb.WriteString("Known for: " + person.KnownForDepartment + "\n")
	}
	if person.Birthday != "" {
		born := person.Birthday
		if person.PlaceOfBirth != "" {
			born += ", " + person.PlaceOfBirth
		}
		sb.WriteString("Born: " + born + "\n")
	}
	if person.Deathday != "" {
		sb.WriteString("Died: " + person.Deathday + "\n")
	}
	if person.Biography != "" {
		sb.WriteString("\n" + person.Biography + "\n")
	}

	for _, section := range []struct {
		name    string
		credits []model.PersonCredit
	}{
		{"Cast", details.Cast},
		{"Crew", details.Crew},
	} {
		if len(section.credits) == 0 {
			continue
		}
		sb.WriteString("\n" + section.name + ":\n")
		for _, credit := range section.credits {
			sb.WriteString("  " + formatCredit(credit) + "\n")
		}
	}
}
