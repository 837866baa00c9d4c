package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kelist/kelist-api/internal/domain"
)

// InMemoryPublisher is a Publisher that dispatches events synchronously
// to handlers registered in memory.
type InMemoryPublisher struct {
	handlers []Handler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewInMemoryPublisher creates a new InMemoryPublisher.
func NewInMemoryPublisher(logger *slog.Logger) *InMemoryPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryPublisher{
		handlers: make([]Handler, 0),
		logger:   logger.With("component", "event_publisher"),
	}
}

var _ Publisher = (*InMemoryPublisher)(nil)

// RegisterHandler adds a handler to receive all published events.
func (p *InMemoryPublisher) RegisterHandler(handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = append(p.handlers, handler)
	p.logger.Debug("registered event handler", "handler_count", len(p.handlers))
}

// Publish implements Publisher. Every event goes to every handler even
// when an earlier delivery fails; the first error is returned.
func (p *InMemoryPublisher) Publish(ctx context.Context, batch []domain.Event) error {
	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	p.mu.RUnlock()

	if len(batch) == 0 {
		return nil
	}
	if len(handlers) == 0 {
		p.logger.Warn("no handlers registered for events", "event_count", len(batch))
		return nil
	}

	var firstErr error
	for _, event := range batch {
		for i, handler := range handlers {
			if err := handler.HandleEvent(ctx, event); err != nil {
				p.logger.Error("handler failed to process event",
					"error", err,
					"handler_index", i,
					"event_id", event.EventID().String(),
					"event_name", event.EventName())
				if firstErr == nil {
					firstErr = err
				}
			}
		}
	}
	return firstErr
}
