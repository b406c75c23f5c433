package text

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/callbook/internal/ports"
)

const (
	ContactsFile   = "contacts.txt"
	TalkTimeFile   = "talk_time.txt"
	FavouritesFile = "favourites.txt"
	RecentFile     = "recent.txt"

	dataFileMode    = 0o600
	dataDirMode     = 0o700
	tempFilePattern = ".callbook-*.txt.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// file is a single line-oriented data file guarded by a lock shared by every
// repository opened on the same path.
type file struct {
	path   string
	mu     *sync.RWMutex
	logger *slog.Logger
}

// NewRepositories opens the four flat files of a contact book inside dir.
// Files are created lazily on first write.
func NewRepositories(dir string, logger *slog.Logger) (ports.Repositories, error) {
	if strings.TrimSpace(dir) == "" {
		return ports.Repositories{}, errors.New("data directory is empty")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return ports.Repositories{}, fmt.Errorf("resolve data directory: %w", err)
	}
	absDir = filepath.Clean(absDir)

	return ports.Repositories{
		Contacts:   &ContactRepository{file: openFile(absDir, ContactsFile, logger)},
		TalkTime:   &TalkTimeRepository{file: openFile(absDir, TalkTimeFile, logger)},
		Favourites: &FavouritesRepository{file: openFile(absDir, FavouritesFile, logger)},
		Recent:     &RecentRepository{file: openFile(absDir, RecentFile, logger)},
	}, nil
}

func openFile(dir, name string, logger *slog.Logger) file {
	path := filepath.Join(dir, name)
	return file{path: path, mu: lockForPath(path), logger: logger.With("file", path)}
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

// readLines returns every line of the file without trailing newlines. A
// missing file reads as empty.
func (f file) readLines() ([]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", filepath.Base(f.path), err)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", filepath.Base(f.path), err)
	}

	return lines, nil
}

// writeLines replaces the file contents through a temp file and rename.
func (f file) writeLines(lines []string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), dataDirMode); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	tempFile, err := os.CreateTemp(filepath.Dir(f.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp %s: %w", filepath.Base(f.path), err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(buf.Bytes()); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp %s: %w", filepath.Base(f.path), err)
	}

	if err := tempFile.Chmod(dataFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp %s: %w", filepath.Base(f.path), err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp %s: %w", filepath.Base(f.path), err)
	}

	if err := os.Rename(tempName, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(f.path), err)
	}

	cleanup = false
	f.logger.Debug("rewrote data file", "lines", len(lines))

	return nil
}

func (f file) appendLine(line string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), dataDirMode); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	out, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, dataFileMode)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", filepath.Base(f.path), err)
	}

	if _, err := out.WriteString(line + "\n"); err != nil {
		_ = out.Close()
		return fmt.Errorf("append %s: %w", filepath.Base(f.path), err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(f.path), err)
	}

	f.logger.Debug("appended data line")

	return nil
}

// sanitizeField keeps a value on a single line.
func sanitizeField(value string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(value)
}
