package repository

// Repository bundles the file-backed snapshot stores. Scores and preferences
// each live in their own JSON file on local disk.
type Repository struct {
	*ScoresR
	*PreferencesR
}

func NewRepository(scoresPath, preferencesPath string) Repository {
	return Repository{
		ScoresR:      NewScoresRepository(scoresPath),
		PreferencesR: NewPreferencesRepository(preferencesPath),
	}
}
