package domain

// Book holds the four collections of a contact book in memory.
type Book struct {
	Contacts   []Contact
	TalkTime   *TalkTimeLedger
	Favourites *Favourites
	Recent     *RecentLog
}

func NewBook() *Book {
	return &Book{
		TalkTime:   NewTalkTimeLedger(),
		Favourites: NewFavourites(),
		Recent:     NewRecentLog(),
	}
}

// FindExact returns the first contact, in insertion order, whose name equals
// query ignoring ASCII case.
func (b *Book) FindExact(query string) (Contact, bool) {
	for _, contact := range b.Contacts {
		if contact.MatchesExactly(query) {
			return contact, true
		}
	}

	return Contact{}, false
}

// Suggestions returns every contact whose name contains query ignoring ASCII
// case, in insertion order.
func (b *Book) Suggestions(query string) []Contact {
	var matches []Contact
	for _, contact := range b.Contacts {
		if contact.MatchesPartially(query) {
			matches = append(matches, contact)
		}
	}

	return matches
}
