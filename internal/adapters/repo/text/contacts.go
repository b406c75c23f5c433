package text

import (
	"context"
	"strings"

	"github.com/bnema/callbook/internal/domain"
	"github.com/bnema/callbook/internal/ports"
)

// ContactRepository stores one "name,phone" line per contact. The first comma
// separates name from phone, so phones may contain commas but names may not.
type ContactRepository struct {
	file file
}

var _ ports.ContactRepository = (*ContactRepository)(nil)

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.file.mu.RLock()
	defer r.file.mu.RUnlock()

	lines, err := r.file.readLines()
	if err != nil {
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(lines))
	for i, line := range lines {
		name, phone, ok := strings.Cut(line, ",")
		if !ok {
			r.file.logger.Warn("skipping contact line without comma", "line", i+1)
			continue
		}
		contacts = append(contacts, domain.Contact{Name: name, Phone: phone})
	}

	return contacts, nil
}

func (r *ContactRepository) Append(ctx context.Context, contact domain.Contact) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	return r.file.appendLine(sanitizeField(contact.Name) + "," + sanitizeField(contact.Phone))
}
