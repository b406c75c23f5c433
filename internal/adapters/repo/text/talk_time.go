package text

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bnema/callbook/internal/domain"
	"github.com/bnema/callbook/internal/ports"
)

// TalkTimeRepository stores one "name,seconds" line per ledger entry. Seconds
// never contain a comma, so the last comma splits the line.
type TalkTimeRepository struct {
	file file
}

var _ ports.TalkTimeRepository = (*TalkTimeRepository)(nil)

var errMissingSeparator = errors.New("missing comma separator")

// Load skips malformed lines and logs them as parse errors instead of
// failing the whole ledger.
func (r *TalkTimeRepository) Load(ctx context.Context) (*domain.TalkTimeLedger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.file.mu.RLock()
	defer r.file.mu.RUnlock()

	lines, err := r.file.readLines()
	if err != nil {
		return nil, err
	}

	ledger := domain.NewTalkTimeLedger()
	for i, line := range lines {
		name, seconds, err := parseTalkTimeLine(line)
		if err != nil {
			parseErr := &domain.ParseError{Path: r.file.path, Line: i + 1, Err: err}
			r.file.logger.Warn("skipping malformed talk time line", "err", parseErr)
			continue
		}
		if err := ledger.Set(name, seconds); err != nil {
			parseErr := &domain.ParseError{Path: r.file.path, Line: i + 1, Err: err}
			r.file.logger.Warn("skipping malformed talk time line", "err", parseErr)
		}
	}

	return ledger, nil
}

func (r *TalkTimeRepository) Save(ctx context.Context, ledger *domain.TalkTimeLedger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	entries := ledger.Entries()
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, sanitizeField(entry.Name)+","+strconv.FormatInt(entry.Seconds, 10))
	}

	return r.file.writeLines(lines)
}

func parseTalkTimeLine(line string) (string, int64, error) {
	idx := strings.LastIndex(line, ",")
	if idx < 0 {
		return "", 0, errMissingSeparator
	}

	seconds, err := strconv.ParseInt(strings.TrimSpace(line[idx+1:]), 10, 64)
	if err != nil {
		return "", 0, err
	}

	return line[:idx], seconds, nil
}
