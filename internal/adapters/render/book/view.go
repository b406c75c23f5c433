package book

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/bnema/callbook/internal/domain"
	"github.com/bnema/callbook/internal/ports"
)

const Menu = "1. Add Contact\n2. Search Contact\n3. Start Call\n4. Most Talked Contact\n5. Show Favourites\n6. Recently Contacted\n7. Exit"

func Contact(contact domain.Contact) string {
	s := defaultStyles
	return s.label.Render("Name:") + " " + s.name.Render(Sanitize(contact.Name)) + "\n" +
		s.label.Render("Contact number:") + " " + s.phone.Render(Sanitize(contact.Phone))
}

func Contacts(contacts []domain.Contact) string {
	s := defaultStyles
	if len(contacts) == 0 {
		return s.empty.Render("No contacts yet.")
	}

	lines := []string{s.title.Render(fmt.Sprintf("contacts: %d", len(contacts)))}
	for _, contact := range contacts {
		lines = append(lines, s.bullet.Render("-")+" "+s.name.Render(Sanitize(contact.Name))+" "+s.phone.Render(Sanitize(contact.Phone)))
	}

	return strings.Join(lines, "\n")
}

func MostTalked(top domain.TalkTime) string {
	s := defaultStyles
	return s.title.Render("Most talked contact:") + " " + s.name.Render(Sanitize(top.Name)) +
		" " + s.seconds.Render(fmt.Sprintf("(%d seconds)", top.Seconds))
}

func Favourites(names []string) string {
	s := defaultStyles
	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, s.bullet.Render("-")+" "+s.name.Render(Sanitize(name)))
	}

	return strings.Join(lines, "\n")
}

func Recent(name string) string {
	return defaultStyles.name.Render(Sanitize(name))
}

// Empty renders the informational message for an empty-state error, and
// reports false for any other error.
func Empty(err error) (string, bool) {
	var msg string
	switch {
	case errors.Is(err, domain.ErrNoCalls):
		msg = "No calls made yet."
	case errors.Is(err, domain.ErrNoFavourites):
		msg = "No favourites yet."
	case errors.Is(err, domain.ErrNoRecent):
		msg = "No recent contacts."
	default:
		return "", false
	}

	return defaultStyles.empty.Render(msg), true
}

func Notice(notice ports.Notice) string {
	s := defaultStyles
	name := Sanitize(notice.Name)

	switch notice.Kind {
	case ports.NoticeContactNotFound:
		return s.warning.Render("Contact not found.") + "\n\n" + s.title.Render("Did you mean:")
	case ports.NoticeSuggestion:
		return s.bullet.Render("-") + " " + s.name.Render(name)
	case ports.NoticeSuggestionDeclined:
		return s.empty.Render("Consider retyping the contact.")
	case ports.NoticeCallEnded:
		return fmt.Sprintf("Call with %s ended. Duration: %s", s.name.Render(name), s.seconds.Render(fmt.Sprintf("%d seconds", notice.Seconds)))
	case ports.NoticeFavouriteAdded:
		return s.name.Render(name) + " added to favourites."
	default:
		return name
	}
}

func Question(question ports.Question) string {
	s := defaultStyles
	name := Sanitize(question.Name)

	switch question.Kind {
	case ports.QuestionAddFavourite:
		return s.warning.Render("Long call detected!") + " " + s.prompt.Render(fmt.Sprintf("Add %s to favourites? (y/n):", name)) + " "
	case ports.QuestionCallSuggestion:
		return s.prompt.Render(fmt.Sprintf("Want to call %s? (y/n):", name)) + " "
	default:
		return s.prompt.Render(fmt.Sprintf("%s? (y/n):", name)) + " "
	}
}

func CallStart(name string) string {
	return "\n" + defaultStyles.prompt.Render(fmt.Sprintf("Press Enter to start the call with %s...", Sanitize(name)))
}

func CallEnd() string {
	return defaultStyles.prompt.Render("Call started. Press Enter again to end the call...")
}

// IsYes accepts answers whose first non-space character is y or Y.
func IsYes(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	return trimmed != "" && (trimmed[0] == 'y' || trimmed[0] == 'Y')
}

// Sanitize drops control characters so stored names cannot drive the
// terminal.
func Sanitize(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
