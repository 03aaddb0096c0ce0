package models

import "strings"

// ReminderTemplate is a row of the primary reminder sheet. Only Message is
// required; the structured fields are appended when present.
type ReminderTemplate struct {
	Message         string
	Arabic          string
	Transliteration string
	Translation     string
	Reference       string
}

// Render produces the full reminder text from the non-empty fields.
func (t ReminderTemplate) Render() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{t.Message, t.Arabic, t.Transliteration, t.Translation, t.Reference} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n")
}

// ReminderTemplateAct is a row of the secondary sheet: a sunnah act that
// rotates weekly.
type ReminderTemplateAct struct {
	Message   string
	Act       string
	Reference string
}

func (t ReminderTemplateAct) Render() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{t.Message, t.Act, t.Reference} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n")
}

// UserReminderPreferences is one user's reminder opt-in record. LastReminder
// is epoch seconds, nil when no reminder was ever sent.
type UserReminderPreferences struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	OptedIn      bool   `json:"opted_in"`
	LastReminder *int64 `json:"last_reminder"`
}
