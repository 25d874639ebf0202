package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cmms-backend/internal/core/domain"

	"github.com/gofiber/fiber/v2/log"
)

// ErrPublisherClosed is returned for events handed over after Close
var ErrPublisherClosed = errors.New("event publisher closed")

// AsyncPublisher queues events for a single background sender so a slow
// broker never holds up the request that produced them. Each send gets its
// own timeout; a full queue drops the event.
type AsyncPublisher struct {
	next    EventPublisher
	timeout time.Duration
	queue   chan domain.Event
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewAsyncPublisher starts the sender goroutine. Call Close on shutdown.
func NewAsyncPublisher(next EventPublisher, queueSize int, timeout time.Duration) *AsyncPublisher {
	if queueSize < 1 {
		queueSize = 1
	}
	p := &AsyncPublisher{
		next:    next,
		timeout: timeout,
		queue:   make(chan domain.Event, queueSize),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish implements EventPublisher. It never waits on the broker.
func (p *AsyncPublisher) Publish(_ context.Context, event domain.Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.queue <- event:
		return nil
	default:
		return fmt.Errorf("event queue full, dropped %s", event.ID)
	}
}

func (p *AsyncPublisher) run() {
	defer close(p.done)
	for event := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		if err := p.next.Publish(ctx, event); err != nil {
			log.Warnf("⚠️ Failed to publish %s: %v", event.Type, err)
		}
		cancel()
	}
}

// Close stops accepting events and waits for the queued ones to be sent
func (p *AsyncPublisher) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	<-p.done
	log.Info("🛑 Event publisher stopped")
}
