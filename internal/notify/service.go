package notify

import (
	"context"
	"errors"
)

// ErrPermissionDenied is returned when the environment refuses notification
// scheduling. Callers report it to the user; there is no retry loop here.
var ErrPermissionDenied = errors.New("notification permission denied")

// Service is the device-level notification surface: arm a trigger, tear all
// triggers down, and query or request permission to schedule at all.
type Service interface {
	Schedule(ctx context.Context, req Request) error
	CancelAll(ctx context.Context) error
	Permissions(ctx context.Context) (bool, error)
	RequestPermissions(ctx context.Context) (bool, error)
}

// NoopService is the Service used in environments without a notification
// capability. Scheduling is accepted but inert, so enabled toggles still work
// without arming anything.
type NoopService struct{}

func (NoopService) Schedule(context.Context, Request) error { return nil }
func (NoopService) CancelAll(context.Context) error         { return nil }
func (NoopService) Permissions(context.Context) (bool, error) {
	return true, nil
}
func (NoopService) RequestPermissions(context.Context) (bool, error) {
	return true, nil
}
