package domain

import "strings"

// Contact is a single entry of the contact book. Name is the natural key used
// by the ledger, favourites and recent log but is not required to be unique.
type Contact struct {
	Name  string
	Phone string
}

// FoldName lowercases ASCII letters only. Non-ASCII bytes are kept as-is so
// matching never depends on the host locale.
func FoldName(name string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, name)
}

func (c Contact) MatchesExactly(query string) bool {
	return FoldName(c.Name) == FoldName(query)
}

func (c Contact) MatchesPartially(query string) bool {
	return strings.Contains(FoldName(c.Name), FoldName(query))
}
