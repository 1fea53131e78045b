package app

import (
	"log/slog"
	"sync"

	"github.com/thenoetrevino/orion/internal/events"
)

const (
	activityBuffer  = 256
	activityRetries = 3
)

// activityLog forwards bus events to a sink from its own goroutine, so a
// slow or failing sink never stalls a mutation
type activityLog struct {
	sink   events.Sink
	queue  chan events.Event
	sub    *events.Subscription
	logger *slog.Logger

	mu     sync.Mutex // Guards closed against an Emit racing close
	closed bool
	done   chan struct{}
}

func startActivityLog(bus *events.Bus, sink events.Sink, logger *slog.Logger) *activityLog {
	l := &activityLog{
		sink:   sink,
		queue:  make(chan events.Event, activityBuffer),
		logger: logger,
		done:   make(chan struct{}),
	}
	l.sub = bus.Subscribe(l.enqueue)
	go l.run()
	return l
}

func (l *activityLog) enqueue(e events.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	select {
	case l.queue <- e:
	default:
		l.logger.Warn("activity log backlog full, event dropped",
			"sequence", e.SequenceID,
			"entity", e.Entity,
			"entity_id", e.EntityID)
	}
}

func (l *activityLog) run() {
	defer close(l.done)
	for e := range l.queue {
		// PublishWithRetry already logs the final failure
		_ = events.PublishWithRetry(l.sink, e, activityRetries)
	}
}

// close unsubscribes and waits for queued events to be written
func (l *activityLog) close() {
	l.sub.Close()

	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.queue)
	}
	l.mu.Unlock()

	<-l.done
}
