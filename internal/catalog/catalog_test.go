package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeQuestionsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadQuestions(t *testing.T) {
	t.Parallel()

	path := writeQuestionsFile(t, `id,question,correct_answer,option1,option2,option3,option4,category,points
1,2+2?,4,3,4,5,6,Math,10
2,Capital of France?,Paris,London,Berlin,Paris,Rome,Geography,5
`)

	questions, err := LoadQuestions(path)
	require.NoError(t, err)
	require.Len(t, questions, 2)

	assert.Equal(t, models.Question{
		ID:            1,
		Question:      "2+2?",
		CorrectAnswer: "4",
		Option1:       "3",
		Option2:       "4",
		Option3:       "5",
		Option4:       "6",
		Category:      "Math",
		Points:        10,
	}, questions[0])
	assert.Equal(t, []string{"London", "Berlin", "Paris", "Rome"}, questions[1].Options())
}

func TestLoadQuestions_MissingColumn(t *testing.T) {
	t.Parallel()

	path := writeQuestionsFile(t, `id,question,correct_answer,option1,option2,option3,option4,category
1,2+2?,4,3,4,5,6,Math
`)

	_, err := LoadQuestions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points")
}

func TestLoadQuestions_BadRowFails(t *testing.T) {
	t.Parallel()

	path := writeQuestionsFile(t, `id,question,correct_answer,option1,option2,option3,option4,category,points
one,2+2?,4,3,4,5,6,Math,10
`)

	_, err := LoadQuestions(path)
	assert.Error(t, err)
}

func TestLoadQuestions_NoRows(t *testing.T) {
	t.Parallel()

	path := writeQuestionsFile(t, "id,question,correct_answer,option1,option2,option3,option4,category,points\n")

	_, err := LoadQuestions(path)
	assert.Error(t, err)
}

func TestParseTemplates(t *testing.T) {
	t.Parallel()

	in := strings.NewReader(`message,arabic,transliteration,translation,reference
Remember Allah often,ٱللّٰه,Allah,God,Quran 33:41
Short row only has a message
,missing message row is skipped
`)

	templates, err := ParseTemplates(in, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, templates, 2)

	assert.Equal(t, models.ReminderTemplate{
		Message:         "Remember Allah often",
		Arabic:          "ٱللّٰه",
		Transliteration: "Allah",
		Translation:     "God",
		Reference:       "Quran 33:41",
	}, templates[0])
	assert.Equal(t, "Short row only has a message", templates[1].Message)
}

func TestParseTemplates_EmptyFails(t *testing.T) {
	t.Parallel()

	_, err := ParseTemplates(strings.NewReader("message,arabic\n"), zap.NewNop())
	assert.Error(t, err)
}

func TestParseTemplateActs(t *testing.T) {
	t.Parallel()

	in := strings.NewReader(`message,act,reference
Sunnah of the week,Use miswak,Bukhari 887
`)

	acts, err := ParseTemplateActs(in, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, models.ReminderTemplateAct{
		Message:   "Sunnah of the week",
		Act:       "Use miswak",
		Reference: "Bukhari 887",
	}, acts[0])
}

func TestCatalog_ByCategory(t *testing.T) {
	t.Parallel()

	cat := &Catalog{Questions: []models.Question{
		{ID: 1, Category: "Seerah"},
		{ID: 2, Category: "Fiqh"},
		{ID: 3, Category: "seerah"},
	}}

	filtered := cat.ByCategory("SEERAH")
	require.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 3, filtered[1].ID)

	assert.Empty(t, cat.ByCategory("History"))
}
