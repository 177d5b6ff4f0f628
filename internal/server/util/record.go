package util

import (
	"context"
	"fmt"

	"github.com/daralshefa/chatbot/backend/pkg/logger"
	"github.com/daralshefa/chatbot/backend/pkg/notify"
)

// Notifier fans one completed user event out to the notification channels.
type Notifier interface {
	Dispatch(ctx context.Context, event notify.Event) notify.DispatchResult
}

// IdentityResolver maps a platform identifier to the internal user id.
type IdentityResolver interface {
	ResolveUser(ctx context.Context, platformID string) (int64, error)
}

// EventPublisher mirrors a persisted event onto the message queue.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event notify.Event) error
}

// RecordEventParams describes one write-endpoint sequence.
type RecordEventParams struct {
	Notifier   Notifier
	Resolver   IdentityResolver
	Publisher  EventPublisher // optional
	Event      notify.Event
	PlatformID string
	Persist    func(ctx context.Context, userID int64) error
}

// RecordEvent runs the fixed write-path sequence: fan out notifications,
// resolve the platform identity, persist the business record under the
// resolved user, then publish the recorded event if a queue is configured.
// Notifications are best-effort and independent of persistence: a channel
// failure is logged and never blocks the write, and a failed write does not
// recall notifications already sent.
func RecordEvent(ctx context.Context, params RecordEventParams) error {
	result := params.Notifier.Dispatch(ctx, params.Event)
	if !result.EmailOK || !result.SheetOK {
		logger.Warn("Notification channel failure",
			"kind", params.Event.Kind,
			"emailOk", result.EmailOK,
			"sheetOk", result.SheetOK,
		)
	}

	userID, err := params.Resolver.ResolveUser(ctx, params.PlatformID)
	if err != nil {
		return fmt.Errorf("resolve user: %w", err)
	}

	if err := params.Persist(ctx, userID); err != nil {
		return fmt.Errorf("persist event: %w", err)
	}

	if params.Publisher != nil {
		if err := params.Publisher.PublishEvent(ctx, params.Event); err != nil {
			logger.Error("Failed to publish recorded event", "kind", params.Event.Kind, "err", err)
		}
	}

	return nil
}
