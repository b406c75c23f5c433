package book

import (
	"strings"
	"testing"

	"github.com/bnema/callbook/internal/domain"
	"github.com/bnema/callbook/internal/ports"
	"github.com/stretchr/testify/assert"
)

func TestContactShowsNameAndNumber(t *testing.T) {
	out := Contact(domain.Contact{Name: "Alice", Phone: "555-0100"})

	assert.Contains(t, out, "Name: Alice")
	assert.Contains(t, out, "Contact number: 555-0100")
}

func TestContactsListsInOrder(t *testing.T) {
	out := Contacts([]domain.Contact{{Name: "Bob", Phone: "1"}, {Name: "Alice", Phone: "2"}})

	assert.Contains(t, out, "contacts: 2")
	assert.Less(t, strings.Index(out, "Bob"), strings.Index(out, "Alice"))

	assert.Contains(t, Contacts(nil), "No contacts yet.")
}

func TestMostTalked(t *testing.T) {
	out := MostTalked(domain.TalkTime{Name: "Bob", Seconds: 42})

	assert.Contains(t, out, "Most talked contact: Bob (42 seconds)")
}

func TestEmptyMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "calls", err: domain.ErrNoCalls, want: "No calls made yet."},
		{name: "favourites", err: domain.ErrNoFavourites, want: "No favourites yet."},
		{name: "recent", err: domain.ErrNoRecent, want: "No recent contacts."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Empty(tt.err)
			assert.True(t, ok)
			assert.Contains(t, got, tt.want)
		})
	}

	_, ok := Empty(assert.AnError)
	assert.False(t, ok)
}

func TestNoticeAndQuestionText(t *testing.T) {
	assert.Contains(t, Notice(ports.Notice{Kind: ports.NoticeContactNotFound, Name: "zed"}), "Did you mean:")
	assert.Contains(t, Notice(ports.Notice{Kind: ports.NoticeCallEnded, Name: "Bob", Seconds: 7}), "Call with Bob ended. Duration: 7 seconds")
	assert.Contains(t, Notice(ports.Notice{Kind: ports.NoticeFavouriteAdded, Name: "Bob"}), "Bob added to favourites.")
	assert.Contains(t, Question(ports.Question{Kind: ports.QuestionAddFavourite, Name: "Bob"}), "Add Bob to favourites? (y/n)")
	assert.Contains(t, Question(ports.Question{Kind: ports.QuestionCallSuggestion, Name: "Alice"}), "Want to call Alice? (y/n)")
}

func TestIsYes(t *testing.T) {
	for _, answer := range []string{"y", "Y", " yes", "Yep\n"} {
		assert.True(t, IsYes(answer), answer)
	}
	for _, answer := range []string{"", "n", "no", " ", "sure"} {
		assert.False(t, IsYes(answer), answer)
	}
}

func TestSanitizeDropsControlCharacters(t *testing.T) {
	assert.Equal(t, "Eve[31m", Sanitize("Eve\x1b[31m"))
}

func TestFavouritesOnePerLine(t *testing.T) {
	assert.Equal(t, "- Bob\n- Cara", Favourites([]string{"Bob", "Cara"}))
}
