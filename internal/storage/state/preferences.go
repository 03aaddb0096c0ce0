package state

import (
	"errors"
	"time"

	"github.com/hakymulla/Islamic-Trivia-Telegram-Bot/internal/models"
)

// ErrLockTimeout is returned when the preference registry lock could not be
// acquired within the configured bound.
var ErrLockTimeout = errors.New("preferences lock acquisition timeout")

// Preferences is the reminder opt-in registry keyed by user id. Unlike the
// other maps its lock is acquired with a timeout, so a stalled holder degrades
// callers into an explicit ErrLockTimeout instead of blocking them forever.
type Preferences struct {
	sem     chan struct{}
	timeout time.Duration
	prefs   map[int64]models.UserReminderPreferences
}

func NewPreferences(initial map[int64]models.UserReminderPreferences, lockTimeout time.Duration) *Preferences {
	if initial == nil {
		initial = make(map[int64]models.UserReminderPreferences)
	}
	return &Preferences{
		sem:     make(chan struct{}, 1),
		timeout: lockTimeout,
		prefs:   initial,
	}
}

func (p *Preferences) acquire() error {
	select {
	case p.sem <- struct{}{}:
		return nil
	case <-time.After(p.timeout):
		return ErrLockTimeout
	}
}

func (p *Preferences) release() {
	<-p.sem
}

// SetOptedIn records the user's opt-in state and reports whether a record
// was written. Opting in creates the record if needed and refreshes the
// username; opting out only flips an existing record.
func (p *Preferences) SetOptedIn(userID int64, username string, optedIn bool) (bool, error) {
	if err := p.acquire(); err != nil {
		return false, err
	}
	defer p.release()

	prefs, exists := p.prefs[userID]
	if !exists {
		if !optedIn {
			return false, nil
		}
		prefs = models.UserReminderPreferences{UserID: userID}
	}
	if optedIn {
		prefs.Username = username
	}
	prefs.OptedIn = optedIn
	p.prefs[userID] = prefs

	return true, nil
}

func (p *Preferences) Get(userID int64) (models.UserReminderPreferences, bool, error) {
	if err := p.acquire(); err != nil {
		return models.UserReminderPreferences{}, false, err
	}
	defer p.release()

	prefs, exists := p.prefs[userID]
	return prefs, exists, nil
}

// Due returns copies of every opted-in record whose last reminder is absent
// or at least minInterval in the past, so delivery can happen unlocked.
func (p *Preferences) Due(now time.Time, minInterval time.Duration) ([]models.UserReminderPreferences, error) {
	if err := p.acquire(); err != nil {
		return nil, err
	}
	defer p.release()

	var due []models.UserReminderPreferences
	for _, prefs := range p.prefs {
		if !prefs.OptedIn {
			continue
		}
		if prefs.LastReminder != nil && now.Sub(time.Unix(*prefs.LastReminder, 0)) < minInterval {
			continue
		}
		due = append(due, prefs)
	}
	return due, nil
}

// MarkSent stamps the given users' last-reminder time. This is a fresh
// acquisition: the caller delivered without the lock held.
func (p *Preferences) MarkSent(userIDs []int64, now time.Time) error {
	if err := p.acquire(); err != nil {
		return err
	}
	defer p.release()

	sent := now.Unix()
	for _, id := range userIDs {
		prefs, exists := p.prefs[id]
		if !exists {
			continue
		}
		ts := sent
		prefs.LastReminder = &ts
		p.prefs[id] = prefs
	}
	return nil
}

// Snapshot returns a copy of the registry for persistence.
func (p *Preferences) Snapshot() (map[int64]models.UserReminderPreferences, error) {
	if err := p.acquire(); err != nil {
		return nil, err
	}
	defer p.release()

	snapshot := make(map[int64]models.UserReminderPreferences, len(p.prefs))
	for id, prefs := range p.prefs {
		snapshot[id] = prefs
	}
	return snapshot, nil
}
