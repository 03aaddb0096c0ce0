package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
	"go.uber.org/zap"
)

// Catalog is the immutable, process-lifetime set of questions and reminder
// templates. Loaded once at startup; everything else reads it.
type Catalog struct {
	Questions    []models.Question
	Templates    []models.ReminderTemplate
	TemplateActs []models.ReminderTemplateAct
}

// ByCategory returns the questions whose category matches, ignoring case.
func (c *Catalog) ByCategory(category string) []models.Question {
	var filtered []models.Question
	for _, q := range c.Questions {
		if strings.EqualFold(q.Category, category) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// LoadQuestions reads the question feed from a local CSV file with a header
// row of id,question,correct_answer,option1..option4,category,points. Any
// malformed row is an error: the bot must not start on a broken catalog.
func LoadQuestions(path string) ([]models.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open questions file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read questions csv: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("questions file has no data rows")
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range []string{"id", "question", "correct_answer", "option1", "option2", "option3", "option4", "category", "points"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("questions file missing column %q", name)
		}
	}

	questions := make([]models.Question, 0, len(records)-1)
	for i, row := range records[1:] {
		id, err := strconv.Atoi(strings.TrimSpace(row[col["id"]]))
		if err != nil {
			return nil, fmt.Errorf("questions row %d: bad id: %w", i+1, err)
		}
		points, err := strconv.Atoi(strings.TrimSpace(row[col["points"]]))
		if err != nil {
			return nil, fmt.Errorf("questions row %d: bad points: %w", i+1, err)
		}

		questions = append(questions, models.Question{
			ID:            id,
			Question:      strings.TrimSpace(row[col["question"]]),
			CorrectAnswer: strings.TrimSpace(row[col["correct_answer"]]),
			Option1:       strings.TrimSpace(row[col["option1"]]),
			Option2:       strings.TrimSpace(row[col["option2"]]),
			Option3:       strings.TrimSpace(row[col["option3"]]),
			Option4:       strings.TrimSpace(row[col["option4"]]),
			Category:      strings.TrimSpace(row[col["category"]]),
			Points:        points,
		})
	}

	return questions, nil
}

// ParseTemplates reads the primary reminder sheet: message plus optional
// arabic, transliteration, translation and reference columns. The feed is
// hand-maintained, so rows may have fewer fields; a row without a message is
// skipped with a log line instead of failing the load.
func ParseTemplates(in io.Reader, log *zap.Logger) ([]models.ReminderTemplate, error) {
	rows, err := readFlexible(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates csv: %w", err)
	}

	var templates []models.ReminderTemplate
	for i, row := range rows {
		if field(row, 0) == "" {
			log.Warn("skipping template row without message", zap.Int("row", i+1))
			continue
		}
		templates = append(templates, models.ReminderTemplate{
			Message:         field(row, 0),
			Arabic:          field(row, 1),
			Transliteration: field(row, 2),
			Translation:     field(row, 3),
			Reference:       field(row, 4),
		})
	}

	if len(templates) == 0 {
		return nil, errors.New("no valid reminder templates found")
	}
	return templates, nil
}

// ParseTemplateActs reads the secondary sheet: message, act, reference.
func ParseTemplateActs(in io.Reader, log *zap.Logger) ([]models.ReminderTemplateAct, error) {
	rows, err := readFlexible(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read template acts csv: %w", err)
	}

	var acts []models.ReminderTemplateAct
	for i, row := range rows {
		if field(row, 0) == "" {
			log.Warn("skipping template act row without message", zap.Int("row", i+1))
			continue
		}
		acts = append(acts, models.ReminderTemplateAct{
			Message:   field(row, 0),
			Act:       field(row, 1),
			Reference: field(row, 2),
		})
	}

	if len(acts) == 0 {
		return nil, errors.New("no valid reminder template acts found")
	}
	return acts, nil
}

// readFlexible parses CSV with a header row and variable field counts.
func readFlexible(in io.Reader) ([][]string, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
