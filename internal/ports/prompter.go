package ports

import "context"

type NoticeKind string

const (
	NoticeContactNotFound    NoticeKind = "contact_not_found"
	NoticeSuggestion         NoticeKind = "suggestion"
	NoticeSuggestionDeclined NoticeKind = "suggestion_declined"
	NoticeCallEnded          NoticeKind = "call_ended"
	NoticeFavouriteAdded     NoticeKind = "favourite_added"
)

// Notice is an informational message emitted while an operation is still
// running, before its result is returned.
type Notice struct {
	Kind    NoticeKind
	Name    string
	Seconds int64
}

type QuestionKind string

const (
	QuestionAddFavourite   QuestionKind = "add_favourite"
	QuestionCallSuggestion QuestionKind = "call_suggestion"
)

type Question struct {
	Kind QuestionKind
	Name string
}

// Prompter is the interactive side of a call: the user starts and ends calls
// and answers yes/no questions. Every method may block indefinitely.
type Prompter interface {
	WaitCallStart(ctx context.Context, name string) error
	WaitCallEnd(ctx context.Context, name string) error
	Confirm(ctx context.Context, question Question) (bool, error)
	Notify(ctx context.Context, notice Notice) error
}
