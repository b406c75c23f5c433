package text

import (
	"context"

	"github.com/bnema/callbook/internal/domain"
	"github.com/bnema/callbook/internal/ports"
)

type RecentRepository struct {
	file file
}

var _ ports.RecentRepository = (*RecentRepository)(nil)

func (r *RecentRepository) Load(ctx context.Context) (*domain.RecentLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.file.mu.RLock()
	defer r.file.mu.RUnlock()

	lines, err := r.file.readLines()
	if err != nil {
		return nil, err
	}

	return domain.NewRecentLog(lines...), nil
}

func (r *RecentRepository) Save(ctx context.Context, recent *domain.RecentLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	return r.file.writeLines(sanitizeAll(recent.Names()))
}
