package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/catalog"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/config"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/storage/state"
	"go.uber.org/zap"
)

// ErrPersistence marks a flow where the in-memory change succeeded but the
// durable save did not. Callers confirm the action and add a soft warning.
var ErrPersistence = errors.New("preferences may not persist")

// ReminderS owns reminder opt-in state and the background dispatch loop.
type ReminderS struct {
	prefs     *state.Preferences
	repo      PreferenceStoreI
	notifier  Notifier
	templates []models.ReminderTemplate
	acts      []models.ReminderTemplateAct
	cfg       config.ReminderConfig
	log       *zap.Logger
}

func NewReminderService(
	cat *catalog.Catalog,
	prefs *state.Preferences,
	repo PreferenceStoreI,
	notifier Notifier,
	cfg config.ReminderConfig,
	log *zap.Logger,
) *ReminderS {
	return &ReminderS{
		prefs:     prefs,
		repo:      repo,
		notifier:  notifier,
		templates: cat.Templates,
		acts:      cat.TemplateActs,
		cfg:       cfg,
		log:       log,
	}
}

// OptIn enables reminders for the user, creating the preference record when
// needed. A state.ErrLockTimeout means nothing changed; an ErrPersistence
// means the opt-in took effect but may not survive a restart.
func (r *ReminderS) OptIn(ctx context.Context, userID int64, username string) error {
	if _, err := r.prefs.SetOptedIn(userID, username, true); err != nil {
		return err
	}

	if err := r.persistPreferences(); err != nil {
		r.log.Error("failed to save preferences after opt-in", zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}

// OptOut disables reminders for an existing record. The bool reports whether
// the user had a record to flip.
func (r *ReminderS) OptOut(ctx context.Context, userID int64) (bool, error) {
	updated, err := r.prefs.SetOptedIn(userID, "", false)
	if err != nil {
		return false, err
	}
	if !updated {
		return false, nil
	}

	if err := r.persistPreferences(); err != nil {
		r.log.Error("failed to save preferences after opt-out", zap.Int64("user_id", userID), zap.Error(err))
		return true, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return true, nil
}

// Preferences formats the user's reminder settings for display.
func (r *ReminderS) Preferences(ctx context.Context, userID int64) (string, error) {
	prefs, exists, err := r.prefs.Get(userID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "You haven't set any preferences yet. Use /optin to start receiving reminders.", nil
	}

	status := "opted out"
	if prefs.OptedIn {
		status = "opted in"
	}
	lastReminder := "Never"
	if prefs.LastReminder != nil {
		lastReminder = time.Unix(*prefs.LastReminder, 0).UTC().Format("2006-01-02 15:04:05 UTC")
	}

	return fmt.Sprintf("Your reminder preferences:\nStatus: %s\nLast reminder: %s", status, lastReminder), nil
}

// schedule decides, tick by tick, when a dispatch pass is due and when the
// weekly template rotation fires. The first pass waits for the startup delay,
// then passes run one send interval apart; rotation happens at most once per
// rotation-day calendar date.
type schedule struct {
	nextSend     time.Time
	lastRotation string
	weekday      time.Weekday
	interval     time.Duration
}

func (s *schedule) advance(now time.Time) (due, rotate bool) {
	if now.Before(s.nextSend) {
		return false, false
	}
	s.nextSend = now.Add(s.interval)

	if now.Weekday() == s.weekday && dateKey(now) != s.lastRotation {
		s.lastRotation = dateKey(now)
		return true, true
	}
	return true, false
}

// Run drives the dispatch loop until the context is cancelled. The rotating
// template index is local to the loop; the pass sent on a rotation day still
// uses the index from before the rotation.
func (r *ReminderS) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Tick)
	defer ticker.Stop()

	templateIdx := 0
	sched := schedule{
		nextSend: time.Now().UTC().Add(r.cfg.StartupDelay),
		weekday:  r.cfg.RotationWeekday,
		interval: r.cfg.SendInterval,
	}

	r.log.Info("reminder loop started", zap.Duration("tick", r.cfg.Tick))

	for {
		now := time.Now().UTC()

		if due, rotate := sched.advance(now); due {
			r.dispatch(now, templateIdx)
			if rotate {
				templateIdx++
				r.log.Info("rotated reminder template set", zap.Int("template_index", templateIdx))
			}
		}

		select {
		case <-ctx.Done():
			r.log.Info("reminder loop stopped")
			return
		case <-ticker.C:
		}
	}
}

// dispatch performs one reminder pass. The registry lock is never held while
// messages go out: due users are copied out, delivery happens unlocked, then
// a fresh acquisition stamps their last-reminder times.
func (r *ReminderS) dispatch(now time.Time, templateIdx int) {
	due, err := r.prefs.Due(now, r.cfg.MinInterval)
	if err != nil {
		r.log.Error("skipping reminder pass", zap.Error(err))
		return
	}
	if len(due) == 0 {
		return
	}

	text := r.reminderText(templateIdx)

	sent := make([]int64, 0, len(due))
	for _, prefs := range due {
		if err := r.notifier.SendMessage(prefs.UserID, text); err != nil {
			r.log.Error("failed to send reminder", zap.Int64("user_id", prefs.UserID), zap.Error(err))
		}
		sent = append(sent, prefs.UserID)
	}

	if err := r.prefs.MarkSent(sent, now); err != nil {
		r.log.Error("failed to stamp reminder times", zap.Error(err))
		return
	}

	if err := r.persistPreferences(); err != nil {
		r.log.Error("failed to save preferences after reminder pass", zap.Error(err))
	}
}

// reminderText renders the template at the rotating index, wrapping per set,
// with the weekly sunnah act appended.
func (r *ReminderS) reminderText(templateIdx int) string {
	text := r.templates[templateIdx%len(r.templates)].Render()
	if len(r.acts) > 0 {
		text += "\n\n" + r.acts[templateIdx%len(r.acts)].Render()
	}
	return text
}

// persistPreferences snapshots the registry and writes it with a bounded
// wait, so a stuck disk cannot wedge the caller.
func (r *ReminderS) persistPreferences() error {
	snapshot, err := r.prefs.Snapshot()
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- r.repo.SavePreferences(snapshot)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(r.cfg.PersistTimeout):
		return errors.New("timed out saving preferences")
	}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
