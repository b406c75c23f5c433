package toml

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/callbook/internal/domain"
	"github.com/bnema/callbook/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	BookFile        = "book.toml"
	bookFileMode    = 0o600
	bookDirMode     = 0o700
	tempFilePattern = ".book-*.toml.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// bookFile keeps all four collections in one versioned TOML document. Each
// repository rewrites only its own section.
type bookFile struct {
	path   string
	mu     *sync.RWMutex
	logger *slog.Logger
}

func NewRepositories(path string, logger *slog.Logger) (ports.Repositories, error) {
	if strings.TrimSpace(path) == "" {
		return ports.Repositories{}, errors.New("book path is empty")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	path, err := normalizeBookPath(path)
	if err != nil {
		return ports.Repositories{}, err
	}

	book := &bookFile{path: path, mu: lockForPath(path), logger: logger.With("file", path)}

	return ports.Repositories{
		Contacts:   &ContactRepository{book: book},
		TalkTime:   &TalkTimeRepository{book: book},
		Favourites: &FavouritesRepository{book: book},
		Recent:     &RecentRepository{book: book},
	}, nil
}

// Encode renders a whole in-memory book in the same format the repositories
// persist.
func Encode(book *domain.Book) ([]byte, error) {
	file := fileSchema{
		Favourites: book.Favourites.Names(),
		Recent:     book.Recent.Names(),
		Contacts:   toContactSchemas(book.Contacts),
		TalkTime:   toTalkTimeSchemas(book.TalkTime),
	}
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode book: %w", err)
	}

	return data, nil
}

type ContactRepository struct {
	book *bookFile
}

var _ ports.ContactRepository = (*ContactRepository)(nil)

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.book.mu.RLock()
	defer r.book.mu.RUnlock()

	file, err := r.book.readSchema()
	if err != nil {
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(file.Contacts))
	for _, entry := range file.Contacts {
		contacts = append(contacts, domain.Contact{Name: entry.Name, Phone: entry.Phone})
	}

	return contacts, nil
}

func (r *ContactRepository) Append(ctx context.Context, contact domain.Contact) error {
	return r.book.update(ctx, func(file *fileSchema) {
		file.Contacts = append(file.Contacts, contactSchema{Name: contact.Name, Phone: contact.Phone})
	})
}

type TalkTimeRepository struct {
	book *bookFile
}

var _ ports.TalkTimeRepository = (*TalkTimeRepository)(nil)

func (r *TalkTimeRepository) Load(ctx context.Context) (*domain.TalkTimeLedger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.book.mu.RLock()
	defer r.book.mu.RUnlock()

	file, err := r.book.readSchema()
	if err != nil {
		return nil, err
	}

	ledger := domain.NewTalkTimeLedger()
	for i, entry := range file.TalkTime {
		if err := ledger.Set(entry.Name, entry.Seconds); err != nil {
			parseErr := &domain.ParseError{Path: r.book.path, Line: i + 1, Err: err}
			r.book.logger.Warn("skipping malformed talk time entry", "err", parseErr)
		}
	}

	return ledger, nil
}

func (r *TalkTimeRepository) Save(ctx context.Context, ledger *domain.TalkTimeLedger) error {
	return r.book.update(ctx, func(file *fileSchema) {
		file.TalkTime = toTalkTimeSchemas(ledger)
	})
}

type FavouritesRepository struct {
	book *bookFile
}

var _ ports.FavouritesRepository = (*FavouritesRepository)(nil)

func (r *FavouritesRepository) Load(ctx context.Context) (*domain.Favourites, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.book.mu.RLock()
	defer r.book.mu.RUnlock()

	file, err := r.book.readSchema()
	if err != nil {
		return nil, err
	}

	favourites := domain.NewFavourites()
	for _, name := range file.Favourites {
		favourites.Add(name)
	}

	return favourites, nil
}

func (r *FavouritesRepository) Save(ctx context.Context, favourites *domain.Favourites) error {
	return r.book.update(ctx, func(file *fileSchema) {
		file.Favourites = favourites.Names()
	})
}

type RecentRepository struct {
	book *bookFile
}

var _ ports.RecentRepository = (*RecentRepository)(nil)

func (r *RecentRepository) Load(ctx context.Context) (*domain.RecentLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.book.mu.RLock()
	defer r.book.mu.RUnlock()

	file, err := r.book.readSchema()
	if err != nil {
		return nil, err
	}

	return domain.NewRecentLog(file.Recent...), nil
}

func (r *RecentRepository) Save(ctx context.Context, recent *domain.RecentLog) error {
	return r.book.update(ctx, func(file *fileSchema) {
		file.Recent = recent.Names()
	})
}

func (b *bookFile) update(ctx context.Context, mutate func(*fileSchema)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	file, err := b.readSchema()
	if err != nil {
		return err
	}

	mutate(&file)

	if err := ctx.Err(); err != nil {
		return err
	}

	return b.writeSchema(file)
}

func (b *bookFile) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read book file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode book file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (b *bookFile) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(b.path), bookDirMode); err != nil {
		return fmt.Errorf("create book directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode book file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(b.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp book file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp book file: %w", err)
	}

	if err := tempFile.Chmod(bookFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp book file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp book file: %w", err)
	}

	if err := os.Rename(tempName, b.path); err != nil {
		return fmt.Errorf("replace book file: %w", err)
	}

	cleanup = false
	b.logger.Debug("rewrote book file")

	return nil
}

func normalizeBookPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve book path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toContactSchemas(contacts []domain.Contact) []contactSchema {
	out := make([]contactSchema, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, contactSchema{Name: contact.Name, Phone: contact.Phone})
	}
	return out
}

func toTalkTimeSchemas(ledger *domain.TalkTimeLedger) []talkTimeSchema {
	entries := ledger.Entries()
	out := make([]talkTimeSchema, 0, len(entries))
	for _, entry := range entries {
		out = append(out, talkTimeSchema{Name: entry.Name, Seconds: entry.Seconds})
	}
	return out
}
