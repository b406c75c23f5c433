package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	textrepo "github.com/bnema/callbook/internal/adapters/repo/text"
	tomlrepo "github.com/bnema/callbook/internal/adapters/repo/toml"
	"github.com/bnema/callbook/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddThenListShowsContactsInOrder(t *testing.T) {
	dataDir := t.TempDir()

	stdout, _, err := executeCLI(t, dataDir, "", "add", "--name", "Bob", "--phone", "555-0101")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Contact saved.")

	_, _, err = executeCLI(t, dataDir, "", "add", "--name", "Alice", "--phone", "555-0100")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, dataDir, "", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "contacts: 2")
	assert.Less(t, strings.Index(stdout, "Bob"), strings.Index(stdout, "Alice"))

	raw, err := os.ReadFile(filepath.Join(dataDir, textrepo.ContactsFile))
	require.NoError(t, err)
	assert.Equal(t, "Bob,555-0101\nAlice,555-0100\n", string(raw))
}

func TestAddAsksForMissingFields(t *testing.T) {
	dataDir := t.TempDir()

	stdout, _, err := executeCLI(t, dataDir, "Cara\n555-0102\n", "add")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Enter name: ")
	assert.Contains(t, stdout, "Enter phone number: ")
	assert.Contains(t, stdout, "Contact saved.")

	stdout, _, err = executeCLI(t, dataDir, "", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Cara 555-0102")
}

func TestSearchExactMatchShowsContactAndRecordsRecent(t *testing.T) {
	dataDir := t.TempDir()
	_, _, err := executeCLI(t, dataDir, "", "add", "--name", "Alice", "--phone", "555-0100")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, dataDir, "", "search", "ALICE")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Name: Alice")
	assert.Contains(t, stdout, "Contact number: 555-0100")

	stdout, _, err = executeCLI(t, dataDir, "", "recent")
	require.NoError(t, err)
	assert.Equal(t, "Alice\n", stdout)
}

func TestSearchMissOffersSuggestions(t *testing.T) {
	dataDir := t.TempDir()
	_, _, err := executeCLI(t, dataDir, "", "add", "--name", "Alice", "--phone", "1")
	require.NoError(t, err)
	_, _, err = executeCLI(t, dataDir, "", "add", "--name", "Alison", "--phone", "2")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, dataDir, "n\nn\n", "search", "ali")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Contact not found.")
	assert.Contains(t, stdout, "Did you mean:")
	assert.Contains(t, stdout, "Want to call Alice? (y/n):")
	assert.Contains(t, stdout, "Want to call Alison? (y/n):")
	assert.Equal(t, 2, strings.Count(stdout, "Consider retyping the contact."))

	stdout, _, err = executeCLI(t, dataDir, "", "recent")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No recent contacts.")
}

func TestSearchSuggestionCanStartCall(t *testing.T) {
	dataDir := t.TempDir()
	_, _, err := executeCLI(t, dataDir, "", "add", "--name", "Alison", "--phone", "2")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, dataDir, "y\n\n\n", "search", "ali")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Press Enter to start the call with Alison...")
	assert.Contains(t, stdout, "Call with Alison ended.")

	stdout, _, err = executeCLI(t, dataDir, "", "recent")
	require.NoError(t, err)
	assert.Equal(t, "Alison\n", stdout)
}

func TestCallRecordsTalkTimeAndRecent(t *testing.T) {
	dataDir := t.TempDir()

	stdout, _, err := executeCLI(t, dataDir, "\n\n", "call", "Bob")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Call started. Press Enter again to end the call...")
	assert.Contains(t, stdout, "Call with Bob ended. Duration: 0 seconds")
	assert.NotContains(t, stdout, "Long call detected!")

	stdout, _, err = executeCLI(t, dataDir, "", "most-talked")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Most talked contact: Bob (0 seconds)")

	stdout, _, err = executeCLI(t, dataDir, "", "recent")
	require.NoError(t, err)
	assert.Equal(t, "Bob\n", stdout)

	raw, err := os.ReadFile(filepath.Join(dataDir, textrepo.TalkTimeFile))
	require.NoError(t, err)
	assert.Equal(t, "Bob,0\n", string(raw))
}

func TestEmptyStatesAreInformational(t *testing.T) {
	dataDir := t.TempDir()

	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"most-talked"}, want: "No calls made yet.\n"},
		{args: []string{"favourites"}, want: "No favourites yet.\n"},
		{args: []string{"favorites"}, want: "No favourites yet.\n"},
		{args: []string{"recent"}, want: "No recent contacts.\n"},
		{args: []string{"list"}, want: "No contacts yet.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			stdout, _, err := executeCLI(t, dataDir, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestFavouritesListsStoredNames(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, textrepo.FavouritesFile), []byte("Bob\nCara\n"), 0o600))

	stdout, _, err := executeCLI(t, dataDir, "", "favourites")
	require.NoError(t, err)
	assert.Equal(t, "- Bob\n- Cara\n", stdout)
}

func TestMenuRunsChoicesUntilExit(t *testing.T) {
	dataDir := t.TempDir()

	stdin := "1\nAlice\n555-0100\n6\n9\n2\nalice\n6\n7\n4\n"
	stdout, _, err := executeCLI(t, dataDir, stdin)
	require.NoError(t, err)

	assert.Contains(t, stdout, "1. Add Contact")
	assert.Contains(t, stdout, "7. Exit")
	assert.Contains(t, stdout, "Contact saved.")
	assert.Contains(t, stdout, "No recent contacts.")
	assert.Contains(t, stdout, "Invalid choice.")
	assert.Contains(t, stdout, "Name: Alice")
	// choice 4 comes after exit and is never read.
	assert.NotContains(t, stdout, "No calls made yet.")
	assert.Equal(t, 6, strings.Count(stdout, "Enter choice: "))
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	dataDir := t.TempDir()

	stdout, _, err := executeCLI(t, dataDir, "4\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No calls made yet.")
	assert.Equal(t, 2, strings.Count(stdout, "Enter choice: "))
}

func TestTOMLStorageKeepsOneBookFile(t *testing.T) {
	dataDir := t.TempDir()

	_, _, err := executeCLI(t, dataDir, "", "--storage", "toml", "add", "--name", "Alice", "--phone", "555-0100")
	require.NoError(t, err)
	_, _, err = executeCLI(t, dataDir, "\n\n", "--storage", "toml", "call", "Alice")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dataDir, tomlrepo.BookFile))
	assert.NoFileExists(t, filepath.Join(dataDir, textrepo.ContactsFile))

	stdout, _, err := executeCLI(t, dataDir, "", "--storage", "toml", "recent")
	require.NoError(t, err)
	assert.Equal(t, "Alice\n", stdout)
}

func TestExportWritesTOMLSnapshot(t *testing.T) {
	dataDir := t.TempDir()
	_, _, err := executeCLI(t, dataDir, "", "add", "--name", "Alice", "--phone", "555-0100")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, dataDir, "", "export")
	require.NoError(t, err)
	assert.Contains(t, stdout, "version = 1")
	assert.Contains(t, stdout, "Alice")

	target := filepath.Join(t.TempDir(), "snapshot.toml")
	_, _, err = executeCLI(t, dataDir, "", "export", "--output", target)
	require.NoError(t, err)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(raw))
}

func TestUnsupportedStorageFormatFails(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "", "--storage", "sqlite", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage format")
}

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestUnknownCommandFails(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "", "dial")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"dial\"")
}

func executeCLI(t *testing.T, dataDir, stdin string, args ...string) (string, string, error) {
	t.Helper()

	configFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configFile, nil, 0o600))

	cmd := newRootCmd()
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configFile, "--data-dir", dataDir}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
