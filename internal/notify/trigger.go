package notify

import (
	"fmt"

	"github.com/jordanwest/daykeep/internal/constants"
)

// TriggerKind discriminates the two trigger shapes the scheduling surface
// accepts.
type TriggerKind string

const (
	// TriggerDaily fires once per day at a fixed local time.
	TriggerDaily TriggerKind = "daily"
	// TriggerRepeating fires on a fixed period, expressed in seconds.
	TriggerRepeating TriggerKind = "repeating"
)

// Trigger is one concrete armed firing rule.
type Trigger struct {
	Kind    TriggerKind `json:"kind"`
	Hour    int         `json:"hour,omitempty"`
	Minute  int         `json:"minute,omitempty"`
	Seconds int         `json:"seconds,omitempty"`
}

// DailyAt builds a fixed daily trigger.
func DailyAt(hour, minute int) Trigger {
	return Trigger{Kind: TriggerDaily, Hour: hour, Minute: minute}
}

// Every builds a repeating trigger, clamping to the platform's 60-second
// safety floor.
func Every(seconds int) Trigger {
	if seconds < constants.MinIntervalSeconds {
		seconds = constants.MinIntervalSeconds
	}
	return Trigger{Kind: TriggerRepeating, Seconds: seconds}
}

// String renders the trigger for listings and logs.
func (t Trigger) String() string {
	if t.Kind == TriggerDaily {
		return fmt.Sprintf("daily %02d:%02d", t.Hour, t.Minute)
	}
	return fmt.Sprintf("every %ds", t.Seconds)
}

// Content is the user-visible text of a notification.
type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Request is one schedule call against the notification service: arm this
// content on this trigger. The ID groups the triggers belonging to one
// declared reminder.
type Request struct {
	ID      string  `json:"id"`
	Content Content `json:"content"`
	Trigger Trigger `json:"trigger"`
}
