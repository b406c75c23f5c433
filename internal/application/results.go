package application

import "github.com/bnema/callbook/internal/domain"

type CallResult struct {
	Name    string
	Seconds int64
	// LongCall is set when the call exceeded the favourite threshold and the
	// user was asked about promotion.
	LongCall   bool
	Favourited bool
}

type Suggestion struct {
	Contact domain.Contact
	Call    *CallResult
}

type SearchResult struct {
	Query       string
	Match       *domain.Contact
	Suggestions []Suggestion
}

func (r SearchResult) Found() bool {
	return r.Match != nil
}
