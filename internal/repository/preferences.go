package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
)

// PreferencesR persists the reminder preference registry as a single JSON
// file. Saves go through a temporary file and an atomic rename, so a reader
// never observes a half-written snapshot.
type PreferencesR struct {
	path string
}

func NewPreferencesRepository(path string) *PreferencesR {
	return &PreferencesR{path: path}
}

func (r *PreferencesR) SavePreferences(prefs map[int64]models.UserReminderPreferences) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary preferences file: %w", err)
	}

	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace preferences file: %w", err)
	}

	return nil
}

// LoadOrInitPreferences reads the registry snapshot, creating an empty
// durable file first when none exists. Malformed content is an error.
func (r *PreferencesR) LoadOrInitPreferences() (map[int64]models.UserReminderPreferences, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			empty := make(map[int64]models.UserReminderPreferences)
			if err := r.SavePreferences(empty); err != nil {
				return nil, err
			}
			return empty, nil
		}
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	prefs := make(map[int64]models.UserReminderPreferences)
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}

	return prefs, nil
}
