package store

import (
	"strings"
	"time"

	"github.com/jordanwest/daykeep/internal/logger"
	"github.com/jordanwest/daykeep/internal/models"
	"github.com/jordanwest/daykeep/internal/utils"
)

// EventKind classifies a state change for subscribers.
type EventKind string

const (
	// EventMutate is an ordinary mutation producing a new snapshot.
	EventMutate EventKind = "mutate"
	// EventReset is a full reset: subscribers holding durable copies must
	// clear them instead of persisting the new (default) snapshot.
	EventReset EventKind = "reset"
)

// Event describes one published state change. The changed-slice flags let
// subscribers react selectively: the persistence gateway watches Days and
// Settings, the notification watcher only Notifications.
type Event struct {
	Kind  EventKind
	State State

	Days          bool
	Settings      bool
	Notifications bool
}

// Store owns the canonical application state. All mutations are synchronous:
// they compute the next immutable snapshot, install it, and publish an Event
// to subscribers before returning. There is exactly one writer (the UI), so
// the store does no locking; subscribers run on the caller's goroutine.
type Store struct {
	state State
	now   func() time.Time
	subs  []func(Event)
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the wall clock, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store seeded with the given state.
func New(initial State, opts ...Option) *Store {
	s := &Store{
		state: initial,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() State {
	return s.state
}

// Subscribe registers a listener invoked synchronously after every mutation.
func (s *Store) Subscribe(fn func(Event)) {
	s.subs = append(s.subs, fn)
}

func (s *Store) publish(ev Event) {
	ev.State = s.state
	for _, fn := range s.subs {
		fn(ev)
	}
}

// today returns the canonical day key in the user's configured timezone,
// falling back to the system timezone if the configured one fails to load.
func (s *Store) today() string {
	nowLocal := s.now()
	loc, err := utils.LoadLocation(s.state.Settings.Timezone)
	if err != nil {
		logger.Warn("Invalid timezone in settings, using system timezone", "timezone", s.state.Settings.Timezone, "error", err)
		return utils.DayKey(nowLocal)
	}
	return utils.DayKey(nowLocal.In(loc))
}

// ToggleHabit flips completion of a habit on today's record, stamping a fresh
// timestamp and preserving any data payload. Today's record is created on
// first use.
func (s *Store) ToggleHabit(habitID string) State {
	date := s.today()
	rec := s.state.Day(date)
	habits := cloneHabits(rec.Habits)

	prev := habits[habitID]
	habits[habitID] = models.HabitEntry{
		Completed: !prev.Completed,
		Timestamp: s.now(),
		Data:      prev.Data,
	}
	rec.Habits = habits

	s.state = s.state.withDay(rec)
	s.publish(Event{Kind: EventMutate, Days: true})
	return s.state
}

// ToggleCustomHabit records a custom habit completion on today's record. The
// entry lives in the same habits map as built-ins, keyed by the custom id.
func (s *Store) ToggleCustomHabit(id string) State {
	return s.ToggleHabit(id)
}

// UpdateHabitData merges a partial data payload into today's entry for a
// habit, marking it completed and refreshing the timestamp.
func (s *Store) UpdateHabitData(habitID string, partial map[string]any) State {
	date := s.today()
	rec := s.state.Day(date)
	habits := cloneHabits(rec.Habits)

	prev := habits[habitID]
	data := cloneData(prev.Data)
	if data == nil {
		data = make(map[string]any, len(partial))
	}
	for k, v := range partial {
		data[k] = v
	}
	habits[habitID] = models.HabitEntry{
		Completed: true,
		Timestamp: s.now(),
		Data:      data,
	}
	rec.Habits = habits

	s.state = s.state.withDay(rec)
	s.publish(Event{Kind: EventMutate, Days: true})
	return s.state
}

// AddCustomHabit creates a custom habit from trimmed text. Empty text is a
// no-op; the second return reports whether a habit was added.
func (s *Store) AddCustomHabit(text string) (models.CustomHabit, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.CustomHabit{}, false
	}

	habit := models.CustomHabit{ID: models.NewCustomHabitID(), Text: text}
	settings := s.state.Settings
	settings.CustomHabits = append(cloneCustomHabits(settings.CustomHabits), habit)

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true})
	return habit, true
}

// DeleteCustomHabit removes a custom habit and purges any criterion keyed by
// its id so no dangling goal text survives. An unknown id is a no-op.
func (s *Store) DeleteCustomHabit(id string) State {
	settings := s.state.Settings

	found := false
	kept := make([]models.CustomHabit, 0, len(settings.CustomHabits))
	for _, h := range settings.CustomHabits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	_, hasCriterion := settings.HabitCriteria[id]
	if !found && !hasCriterion {
		return s.state
	}
	settings.CustomHabits = kept

	if hasCriterion {
		criteria := cloneCriteria(settings.HabitCriteria)
		delete(criteria, id)
		settings.HabitCriteria = criteria
	}

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true})
	return s.state
}

// ToggleHideHabit toggles a built-in habit's membership in the hidden set.
func (s *Store) ToggleHideHabit(habitID models.HabitID) State {
	settings := s.state.Settings

	hidden := make([]models.HabitID, 0, len(settings.HiddenHabits)+1)
	removed := false
	for _, id := range settings.HiddenHabits {
		if id == habitID {
			removed = true
			continue
		}
		hidden = append(hidden, id)
	}
	if !removed {
		hidden = append(hidden, habitID)
	}
	settings.HiddenHabits = hidden

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true})
	return s.state
}

// SetHabitCriterion sets the per-habit goal override, or clears it when text
// is empty.
func (s *Store) SetHabitCriterion(id, text string) State {
	settings := s.state.Settings
	criteria := cloneCriteria(settings.HabitCriteria)
	if strings.TrimSpace(text) == "" {
		delete(criteria, id)
	} else {
		criteria[id] = text
	}
	settings.HabitCriteria = criteria

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true})
	return s.state
}

// SetLanguage sets the display language; nil means auto-detect.
func (s *Store) SetLanguage(lang *string) State {
	settings := s.state.Settings
	settings.Language = lang

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true, Notifications: true})
	return s.state
}

// SetColorScheme replaces the color scheme.
func (s *Store) SetColorScheme(scheme models.ColorScheme) State {
	settings := s.state.Settings
	settings.ColorScheme = scheme

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true})
	return s.state
}

// SetTimezone replaces the timezone used to resolve "today".
func (s *Store) SetTimezone(tz string) State {
	settings := s.state.Settings
	settings.Timezone = tz

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true})
	return s.state
}

// SetNotifications replaces the whole notification list.
func (s *Store) SetNotifications(notifs []models.UserNotification) State {
	settings := s.state.Settings
	settings.Notifications = cloneNotifications(notifs)

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true, Notifications: true})
	return s.state
}

// AddNotification appends a reminder.
func (s *Store) AddNotification(n models.UserNotification) State {
	settings := s.state.Settings
	settings.Notifications = append(cloneNotifications(settings.Notifications), n)

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true, Notifications: true})
	return s.state
}

// NotificationPatch is a partial update to a reminder; nil fields are left
// unchanged.
type NotificationPatch struct {
	Title    *string
	Body     *string
	Schedule *models.NotificationSchedule
	Enabled  *bool
}

// UpdateNotification applies a patch to the reminder with the given id. Any
// edit clears IsDefault, so the reminder's text stops tracking the active
// language. An unknown id is a no-op.
func (s *Store) UpdateNotification(id string, patch NotificationPatch) State {
	settings := s.state.Settings
	notifs := cloneNotifications(settings.Notifications)

	found := false
	for i, n := range notifs {
		if n.ID != id {
			continue
		}
		if patch.Title != nil {
			n.Title = *patch.Title
		}
		if patch.Body != nil {
			n.Body = *patch.Body
		}
		if patch.Schedule != nil {
			n.Schedule = *patch.Schedule
		}
		if patch.Enabled != nil {
			n.Enabled = *patch.Enabled
		}
		n.IsDefault = false
		notifs[i] = n
		found = true
		break
	}
	if !found {
		return s.state
	}
	settings.Notifications = notifs

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true, Notifications: true})
	return s.state
}

// DeleteNotification removes the reminder with the given id; unknown ids are
// a no-op.
func (s *Store) DeleteNotification(id string) State {
	settings := s.state.Settings

	found := false
	kept := make([]models.UserNotification, 0, len(settings.Notifications))
	for _, n := range settings.Notifications {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return s.state
	}
	settings.Notifications = kept

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true, Notifications: true})
	return s.state
}

// ToggleNotification flips a reminder's enabled flag; unknown ids are a no-op.
// Unlike a patch edit, toggling does not clear IsDefault.
func (s *Store) ToggleNotification(id string) State {
	settings := s.state.Settings
	notifs := cloneNotifications(settings.Notifications)

	found := false
	for i, n := range notifs {
		if n.ID != id {
			continue
		}
		n.Enabled = !n.Enabled
		notifs[i] = n
		found = true
		break
	}
	if !found {
		return s.state
	}
	settings.Notifications = notifs

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true, Notifications: true})
	return s.state
}

// SetQuietHours replaces the quiet hours window.
func (s *Store) SetQuietHours(q models.QuietHours) State {
	settings := s.state.Settings
	settings.QuietHours = q

	s.state = s.state.withSettings(settings)
	s.publish(Event{Kind: EventMutate, Settings: true, Notifications: true})
	return s.state
}

// ResetAll restores the default state. Subscribers receive an EventReset so
// the persistence gateway clears durable storage synchronously instead of
// scheduling a debounced write of the defaults.
func (s *Store) ResetAll() State {
	s.state = NewState()
	s.publish(Event{Kind: EventReset, Days: true, Settings: true, Notifications: true})
	return s.state
}
