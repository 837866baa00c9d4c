// Package events dispatches domain events to registered handlers.
//
// Services collect events raised by aggregates during a transaction and
// publish them here only after the transaction commits, so handlers never
// observe state that was rolled back. Handlers stay decoupled from the
// services that trigger them.
package events

import (
	"context"

	"github.com/kelist/kelist-api/internal/domain"
)

// Handler processes published domain events.
type Handler interface {
	// HandleEvent processes a single event. Returning an error does not
	// stop delivery to other handlers.
	HandleEvent(ctx context.Context, event domain.Event) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, event domain.Event) error

// HandleEvent implements Handler.
func (f HandlerFunc) HandleEvent(ctx context.Context, event domain.Event) error {
	return f(ctx, event)
}

// Publisher delivers batches of domain events to interested handlers.
type Publisher interface {
	// Publish delivers each event to every registered handler. The first
	// handler error is returned after all deliveries are attempted.
	Publish(ctx context.Context, events []domain.Event) error
}
