package text

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/callbook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFilesLoadAsEmpty(t *testing.T) {
	t.Parallel()

	repos, err := NewRepositories(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	contacts, err := repos.Contacts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	ledger, err := repos.TalkTime.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.Len())

	favourites, err := repos.Favourites.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, favourites.Len())

	recent, err := repos.Recent.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, recent.Len())
}

func TestNewRepositoriesRejectsEmptyDir(t *testing.T) {
	t.Parallel()

	_, err := NewRepositories("  ", nil)
	assert.ErrorContains(t, err, "data directory is empty")
}

func TestContactsAppendRoundTripKeepsOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repos, err := NewRepositories(dir, nil)
	require.NoError(t, err)
	ctx := context.Background()

	want := []domain.Contact{
		{Name: "Alice", Phone: "555-0100"},
		{Name: "Bob", Phone: "+1 (555) 0101, ext 2"},
		{Name: "Alice", Phone: "555-0102"},
		{Name: "", Phone: ""},
	}
	for _, contact := range want {
		require.NoError(t, repos.Contacts.Append(ctx, contact))
	}

	reopened, err := NewRepositories(dir, nil)
	require.NoError(t, err)
	got, err := reopened.Contacts.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(filepath.Join(dir, ContactsFile))
	require.NoError(t, err)
	assert.Equal(t, "Alice,555-0100\nBob,+1 (555) 0101, ext 2\nAlice,555-0102\n,\n", string(data))
}

func TestContactsListSkipsLinesWithoutComma(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ContactsFile), []byte("Alice,1\ngarbage\nBob,2\r\n"), 0o600))

	repos, err := NewRepositories(dir, nil)
	require.NoError(t, err)

	got, err := repos.Contacts.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Contact{{Name: "Alice", Phone: "1"}, {Name: "Bob", Phone: "2"}}, got)
}

func TestTalkTimeRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repos, err := NewRepositories(dir, nil)
	require.NoError(t, err)
	ctx := context.Background()

	ledger := domain.NewTalkTimeLedger()
	require.NoError(t, ledger.Add("Bob", 42))
	require.NoError(t, ledger.Add("Cara", 700))
	require.NoError(t, ledger.Add("Bob", 8))

	require.NoError(t, repos.TalkTime.Save(ctx, ledger))

	got, err := repos.TalkTime.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ledger.Entries(), got.Entries())

	data, err := os.ReadFile(filepath.Join(dir, TalkTimeFile))
	require.NoError(t, err)
	assert.Equal(t, "Bob,50\nCara,700\n", string(data))
}

func TestTalkTimeLoadSkipsMalformedLinesAndLogs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := "Bob,50\nCara,abc\nno separator\nDan,-3\nSmith, Jr.,12\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, TalkTimeFile), []byte(content), 0o600))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	repos, err := NewRepositories(dir, logger)
	require.NoError(t, err)

	got, err := repos.TalkTime.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.TalkTime{
		{Name: "Bob", Seconds: 50},
		{Name: "Smith, Jr.", Seconds: 12},
	}, got.Entries())
	assert.Contains(t, logs.String(), "line 2")
	assert.Contains(t, logs.String(), "line 3")
	assert.Contains(t, logs.String(), "line 4")
}

func TestFavouritesRoundTrip(t *testing.T) {
	t.Parallel()

	repos, err := NewRepositories(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	favourites := domain.NewFavourites()
	favourites.Add("Cara")
	favourites.Add("Alice")

	require.NoError(t, repos.Favourites.Save(ctx, favourites))

	got, err := repos.Favourites.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cara", "Alice"}, got.Names())
}

func TestRecentRoundTripKeepsDuplicatesAndOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repos, err := NewRepositories(dir, nil)
	require.NoError(t, err)
	ctx := context.Background()

	recent := domain.NewRecentLog("Bob", "Cara", "Bob")
	require.NoError(t, repos.Recent.Save(ctx, recent))

	got, err := repos.Recent.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Cara", "Bob"}, got.Names())

	data, err := os.ReadFile(filepath.Join(dir, RecentFile))
	require.NoError(t, err)
	assert.Equal(t, "Bob\nCara\nBob\n", string(data))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repos, err := NewRepositories(dir, nil)
	require.NoError(t, err)

	require.NoError(t, repos.Recent.Save(context.Background(), domain.NewRecentLog("Bob")))

	matches, err := filepath.Glob(filepath.Join(dir, ".callbook-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	info, err := os.Stat(filepath.Join(dir, RecentFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(dataFileMode), info.Mode().Perm())
}

func TestSanitizeFieldKeepsSingleLine(t *testing.T) {
	assert.Equal(t, "a b  c", sanitizeField("a\nb\r\nc"))
}

func TestCancelledContextIsRejected(t *testing.T) {
	t.Parallel()

	repos, err := NewRepositories(t.TempDir(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repos.Contacts.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repos.Recent.Save(ctx, domain.NewRecentLog()), context.Canceled)
}
