package events

import (
	"context"
	"log/slog"

	"github.com/kelist/kelist-api/internal/domain"
)

// NewUserEventLogger builds a subscriber that writes an audit line for each
// user lifecycle event. Email addresses stay out of the log; the user id is
// the stable correlation key. Unknown event types are ignored so the
// publisher can fan out any event to this subscriber.
func NewUserEventLogger(log *slog.Logger) Handler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "user_event_logger")

	return HandlerFunc(func(ctx context.Context, event domain.Event) error {
		switch e := event.(type) {
		case domain.UserCreatedEvent:
			log.InfoContext(ctx, "user registered",
				"event_id", e.EventID().String(),
				"user_id", e.UserID.String(),
				"full_name", e.FullName)
		case domain.UserUpdatedEvent:
			log.InfoContext(ctx, "user profile changed",
				"event_id", e.EventID().String(),
				"user_id", e.UserID.String(),
				"full_name", e.FullName)
		case domain.UserDeletedEvent:
			log.InfoContext(ctx, "user removed",
				"event_id", e.EventID().String(),
				"user_id", e.UserID.String())
		}
		return nil
	})
}
