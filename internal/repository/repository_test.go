package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoresR_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewScoresRepository(filepath.Join(t.TempDir(), "scores.json"))

	scores := map[int64]models.UserScore{
		1: {UserID: 1, Username: "Ali", Score: 30, LastAnswerTime: 1700000000},
		2: {UserID: 2, Username: "Zainab", Score: 50, LastAnswerTime: 1700000100},
	}

	require.NoError(t, repo.SaveScores(scores))

	loaded, err := repo.LoadScores()
	require.NoError(t, err)
	assert.Equal(t, scores, loaded)
}

func TestScoresR_LoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	repo := NewScoresRepository(filepath.Join(t.TempDir(), "scores.json"))

	loaded, err := repo.LoadScores()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestScoresR_LoadMalformedFileFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewScoresRepository(path).LoadScores()
	assert.Error(t, err)
}

func TestPreferencesR_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewPreferencesRepository(filepath.Join(t.TempDir(), "prefs.json"))

	last := int64(1700000000)
	prefs := map[int64]models.UserReminderPreferences{
		42: {UserID: 42, Username: "Umar", OptedIn: true, LastReminder: &last},
		43: {UserID: 43, Username: "Bilal", OptedIn: false},
	}

	require.NoError(t, repo.SavePreferences(prefs))

	loaded, err := repo.LoadOrInitPreferences()
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestPreferencesR_LoadOrInitCreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	repo := NewPreferencesRepository(path)

	loaded, err := repo.LoadOrInitPreferences()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// The empty registry is now durable.
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestPreferencesR_LoadMalformedFileFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	_, err := NewPreferencesRepository(path).LoadOrInitPreferences()
	assert.Error(t, err)
}

func TestPreferencesR_SaveLeavesNoTempFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.json")
	repo := NewPreferencesRepository(path)

	require.NoError(t, repo.SavePreferences(map[int64]models.UserReminderPreferences{
		1: {UserID: 1, OptedIn: true},
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prefs.json", entries[0].Name())
}
