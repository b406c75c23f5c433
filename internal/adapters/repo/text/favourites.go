package text

import (
	"context"

	"github.com/bnema/callbook/internal/domain"
	"github.com/bnema/callbook/internal/ports"
)

type FavouritesRepository struct {
	file file
}

var _ ports.FavouritesRepository = (*FavouritesRepository)(nil)

func (r *FavouritesRepository) Load(ctx context.Context) (*domain.Favourites, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.file.mu.RLock()
	defer r.file.mu.RUnlock()

	lines, err := r.file.readLines()
	if err != nil {
		return nil, err
	}

	favourites := domain.NewFavourites()
	for _, name := range lines {
		favourites.Add(name)
	}

	return favourites, nil
}

func (r *FavouritesRepository) Save(ctx context.Context, favourites *domain.Favourites) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	return r.file.writeLines(sanitizeAll(favourites.Names()))
}

func sanitizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, sanitizeField(value))
	}
	return out
}
