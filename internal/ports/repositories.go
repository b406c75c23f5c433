package ports

import (
	"context"

	"github.com/bnema/callbook/internal/domain"
)

type ContactRepository interface {
	List(ctx context.Context) ([]domain.Contact, error)
	Append(ctx context.Context, contact domain.Contact) error
}

type TalkTimeRepository interface {
	Load(ctx context.Context) (*domain.TalkTimeLedger, error)
	Save(ctx context.Context, ledger *domain.TalkTimeLedger) error
}

type FavouritesRepository interface {
	Load(ctx context.Context) (*domain.Favourites, error)
	Save(ctx context.Context, favourites *domain.Favourites) error
}

type RecentRepository interface {
	Load(ctx context.Context) (*domain.RecentLog, error)
	Save(ctx context.Context, recent *domain.RecentLog) error
}

// Repositories groups the four independently persisted collections.
type Repositories struct {
	Contacts   ContactRepository
	TalkTime   TalkTimeRepository
	Favourites FavouritesRepository
	Recent     RecentRepository
}
