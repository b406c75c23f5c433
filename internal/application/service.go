package application

import (
	"context"
	"fmt"

	"github.com/bnema/callbook/internal/domain"
	"github.com/bnema/callbook/internal/ports"
)

// Service owns the in-memory contact book and mirrors every mutation to its
// repositories before returning.
type Service struct {
	repos    ports.Repositories
	prompter ports.Prompter
	clock    ports.Clock
	book     *domain.Book
}

func NewService(repos ports.Repositories, prompter ports.Prompter, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		repos:    repos,
		prompter: prompter,
		clock:    clock,
		book:     domain.NewBook(),
	}
}

// Load replaces the in-memory book with the persisted collections.
func (s *Service) Load(ctx context.Context) error {
	contacts, err := s.repos.Contacts.List(ctx)
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}

	ledger, err := s.repos.TalkTime.Load(ctx)
	if err != nil {
		return fmt.Errorf("load talk time: %w", err)
	}

	favourites, err := s.repos.Favourites.Load(ctx)
	if err != nil {
		return fmt.Errorf("load favourites: %w", err)
	}

	recent, err := s.repos.Recent.Load(ctx)
	if err != nil {
		return fmt.Errorf("load recent contacts: %w", err)
	}

	s.book = &domain.Book{
		Contacts:   contacts,
		TalkTime:   ledger,
		Favourites: favourites,
		Recent:     recent,
	}

	return nil
}

// Book exposes the in-memory state for read-only use such as exports.
func (s *Service) Book() *domain.Book {
	return s.book
}

func (s *Service) AddContact(ctx context.Context, name, phone string) (domain.Contact, error) {
	contact := domain.Contact{Name: name, Phone: phone}
	s.book.Contacts = append(s.book.Contacts, contact)

	if err := s.repos.Contacts.Append(ctx, contact); err != nil {
		return domain.Contact{}, fmt.Errorf("save contact: %w", err)
	}

	return contact, nil
}

func (s *Service) Contacts() []domain.Contact {
	return append([]domain.Contact(nil), s.book.Contacts...)
}

// SimulateCall times a call between the start and end signals of the
// prompter, adds the whole seconds to the ledger and records the callee as
// most recent. Calls longer than the favourite threshold offer the callee as
// a favourite.
func (s *Service) SimulateCall(ctx context.Context, name string) (CallResult, error) {
	if err := s.prompter.WaitCallStart(ctx, name); err != nil {
		return CallResult{}, fmt.Errorf("start call with %s: %w", name, err)
	}
	start := s.clock.Now()

	if err := s.prompter.WaitCallEnd(ctx, name); err != nil {
		return CallResult{}, fmt.Errorf("end call with %s: %w", name, err)
	}
	end := s.clock.Now()

	result := CallResult{Name: name, Seconds: domain.CallSeconds(start, end)}

	if err := s.book.TalkTime.Add(name, result.Seconds); err != nil {
		return CallResult{}, err
	}
	if err := s.repos.TalkTime.Save(ctx, s.book.TalkTime); err != nil {
		return CallResult{}, fmt.Errorf("save talk time: %w", err)
	}

	if err := s.recordRecent(ctx, name); err != nil {
		return CallResult{}, err
	}

	if err := s.prompter.Notify(ctx, ports.Notice{Kind: ports.NoticeCallEnded, Name: name, Seconds: result.Seconds}); err != nil {
		return CallResult{}, err
	}

	if !domain.QualifiesForFavourite(result.Seconds) {
		return result, nil
	}

	result.LongCall = true
	accepted, err := s.prompter.Confirm(ctx, ports.Question{Kind: ports.QuestionAddFavourite, Name: name})
	if err != nil {
		return CallResult{}, fmt.Errorf("confirm favourite %s: %w", name, err)
	}
	if !accepted {
		return result, nil
	}

	s.book.Favourites.Add(name)
	if err := s.repos.Favourites.Save(ctx, s.book.Favourites); err != nil {
		return CallResult{}, fmt.Errorf("save favourites: %w", err)
	}
	result.Favourited = true

	if err := s.prompter.Notify(ctx, ports.Notice{Kind: ports.NoticeFavouriteAdded, Name: name}); err != nil {
		return CallResult{}, err
	}

	return result, nil
}

func (s *Service) MostTalked() (domain.TalkTime, error) {
	top, ok := s.book.TalkTime.Top()
	if !ok {
		return domain.TalkTime{}, domain.ErrNoCalls
	}

	return top, nil
}

func (s *Service) Favourites() ([]string, error) {
	if s.book.Favourites.Len() == 0 {
		return nil, domain.ErrNoFavourites
	}

	return s.book.Favourites.Names(), nil
}

// SearchContact looks for the first contact whose name equals query ignoring
// ASCII case. Without an exact match every contact whose name contains the
// query is offered in turn, and each accepted suggestion is called at once.
func (s *Service) SearchContact(ctx context.Context, query string) (SearchResult, error) {
	result := SearchResult{Query: query}

	if match, ok := s.book.FindExact(query); ok {
		result.Match = &match
		if err := s.recordRecent(ctx, match.Name); err != nil {
			return SearchResult{}, err
		}
		return result, nil
	}

	if err := s.prompter.Notify(ctx, ports.Notice{Kind: ports.NoticeContactNotFound, Name: query}); err != nil {
		return SearchResult{}, err
	}

	for _, candidate := range s.book.Suggestions(query) {
		suggestion := Suggestion{Contact: candidate}

		if err := s.prompter.Notify(ctx, ports.Notice{Kind: ports.NoticeSuggestion, Name: candidate.Name}); err != nil {
			return SearchResult{}, err
		}

		accepted, err := s.prompter.Confirm(ctx, ports.Question{Kind: ports.QuestionCallSuggestion, Name: candidate.Name})
		if err != nil {
			return SearchResult{}, fmt.Errorf("confirm call to %s: %w", candidate.Name, err)
		}

		if accepted {
			call, err := s.SimulateCall(ctx, candidate.Name)
			if err != nil {
				return SearchResult{}, err
			}
			suggestion.Call = &call
		} else if err := s.prompter.Notify(ctx, ports.Notice{Kind: ports.NoticeSuggestionDeclined, Name: candidate.Name}); err != nil {
			return SearchResult{}, err
		}

		result.Suggestions = append(result.Suggestions, suggestion)
	}

	return result, nil
}

func (s *Service) RecentlyContacted() (string, error) {
	name, ok := s.book.Recent.Last()
	if !ok {
		return "", domain.ErrNoRecent
	}

	return name, nil
}

func (s *Service) recordRecent(ctx context.Context, name string) error {
	s.book.Recent.Append(name)
	if err := s.repos.Recent.Save(ctx, s.book.Recent); err != nil {
		return fmt.Errorf("save recent contacts: %w", err)
	}

	return nil
}
