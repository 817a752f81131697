package notify

import (
	"context"
	"fmt"

	"github.com/jordanwest/daykeep/internal/logger"
	"github.com/jordanwest/daykeep/internal/models"
)

// Syncer reconciles the declared reminder list against whatever the device
// currently has armed. The protocol is destructive-then-rebuild: cancel every
// armed trigger, then re-arm the enabled reminders from scratch. That leaves
// a brief scheduling gap but can never orphan or duplicate a trigger from a
// previous settings state.
type Syncer struct {
	svc Service
}

// NewSyncer wraps a notification service.
func NewSyncer(svc Service) *Syncer {
	return &Syncer{svc: svc}
}

// Permissions reports whether the environment currently allows scheduling.
func (s *Syncer) Permissions() (bool, error) {
	return s.svc.Permissions(context.Background())
}

// Sync arms the full trigger set for the given reminders. It returns the
// number of triggers armed. When the environment denies scheduling
// permission, nothing is armed and ErrPermissionDenied is returned; the
// caller owns the user-facing messaging.
func (s *Syncer) Sync(ctx context.Context, notifs []models.UserNotification, quiet models.QuietHours) (int, error) {
	granted, err := s.svc.Permissions(ctx)
	if err != nil {
		return 0, fmt.Errorf("checking notification permissions: %w", err)
	}
	if !granted {
		granted, err = s.svc.RequestPermissions(ctx)
		if err != nil {
			return 0, fmt.Errorf("requesting notification permissions: %w", err)
		}
		if !granted {
			return 0, ErrPermissionDenied
		}
	}

	if err := s.svc.CancelAll(ctx); err != nil {
		return 0, fmt.Errorf("cancelling armed triggers: %w", err)
	}

	armed := 0
	for _, n := range notifs {
		for _, trigger := range BuildTriggers(n, quiet) {
			req := Request{
				ID:      n.ID,
				Content: Content{Title: n.Title, Body: n.Body},
				Trigger: trigger,
			}
			if err := s.svc.Schedule(ctx, req); err != nil {
				return armed, fmt.Errorf("arming reminder %s: %w", n.ID, err)
			}
			armed++
		}
	}

	logger.Debug("Reminder sync complete", "declared", len(notifs), "armed", armed)
	return armed, nil
}
