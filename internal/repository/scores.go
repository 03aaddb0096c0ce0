package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
)

// ScoresR persists the score ledger as a single JSON file. Saves overwrite
// the file in place; a crash mid-write can truncate it, which is the accepted
// contract for this file.
type ScoresR struct {
	path string
}

func NewScoresRepository(path string) *ScoresR {
	return &ScoresR{path: path}
}

func (r *ScoresR) SaveScores(scores map[int64]models.UserScore) error {
	data, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scores file: %w", err)
	}

	return nil
}

// LoadScores reads the ledger snapshot, returning an empty map when the file
// does not exist. A file that exists but does not parse is an error: starting
// over with an empty ledger must never happen silently.
func (r *ScoresR) LoadScores() (map[int64]models.UserScore, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[int64]models.UserScore), nil
		}
		return nil, fmt.Errorf("failed to read scores file: %w", err)
	}

	scores := make(map[int64]models.UserScore)
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, fmt.Errorf("failed to parse scores file: %w", err)
	}

	return scores, nil
}
