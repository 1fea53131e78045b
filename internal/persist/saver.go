// Package persist moves store snapshots to durable storage off the mutation path.
package persist

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/orion/internal/models"
)

// DefaultQueueSize is used when the configured queue size is not positive
const DefaultQueueSize = 64

// ErrClosed is returned by Flush once the saver has been closed
var ErrClosed = errors.New("saver closed")

// Sink is where snapshots end up. database.Repository satisfies it.
type Sink interface {
	SaveCanvases(ctx context.Context, snapshot []models.Canvas) error
	SaveBoards(ctx context.Context, snapshot []models.KanbanBoard) error
	SaveNotes(ctx context.Context, snapshot models.NoteSnapshot) error
}

type kind int

const (
	kindCanvases kind = iota
	kindBoards
	kindNotes
	kindFlush
)

// job is one queued snapshot, or a flush marker carrying its reply channel
type job struct {
	kind     kind
	canvases []models.Canvas
	boards   []models.KanbanBoard
	notes    models.NoteSnapshot
	done     chan error
}

// Saver hands snapshots to a single worker goroutine. Queue calls return as
// soon as the snapshot is on the channel; the worker drains whatever has
// accumulated, keeps only the newest snapshot per kind and writes those.
type Saver struct {
	sink         Sink
	queue        chan job
	logger       *slog.Logger
	metrics      *Metrics
	writeTimeout time.Duration

	mu     sync.RWMutex // Guards closed against concurrent sends
	closed bool
	done   chan struct{}
}

// NewSaver starts the worker. queueSize bounds how many snapshots may wait
// before Queue calls block.
func NewSaver(sink Sink, queueSize int, logger *slog.Logger) *Saver {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Saver{
		sink:         sink,
		queue:        make(chan job, queueSize),
		logger:       logger,
		metrics:      NewMetrics(),
		writeTimeout: 10 * time.Second,
		done:         make(chan struct{}),
	}
	go s.run()
	return s
}

// QueueCanvases schedules a canvas snapshot for writing
func (s *Saver) QueueCanvases(snapshot []models.Canvas) {
	s.enqueue(job{kind: kindCanvases, canvases: snapshot})
}

// QueueBoards schedules a board snapshot for writing
func (s *Saver) QueueBoards(snapshot []models.KanbanBoard) {
	s.enqueue(job{kind: kindBoards, boards: snapshot})
}

// QueueNotes schedules a note snapshot for writing
func (s *Saver) QueueNotes(snapshot models.NoteSnapshot) {
	s.enqueue(job{kind: kindNotes, notes: snapshot})
}

func (s *Saver) enqueue(j job) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		s.logger.Warn("snapshot dropped, saver closed", "kind", j.kind.String())
		return
	}
	s.metrics.IncQueued()
	s.queue <- j
}

// Flush blocks until every snapshot queued before the call has been written.
// It returns the first write error seen while draining.
func (s *Saver) Flush(ctx context.Context) error {
	reply := make(chan error, 1)

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return ErrClosed
	}
	select {
	case s.queue <- job{kind: kindFlush, done: reply}:
		s.mu.RUnlock()
	case <-ctx.Done():
		s.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting snapshots, writes what is still queued and waits for
// the worker to exit. It is safe to call more than once.
func (s *Saver) Close() error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()

	<-s.done
	return nil
}

// Metrics exposes the saver counters
func (s *Saver) Metrics() MetricsSnapshot {
	return s.metrics.GetSnapshot()
}

// run is the worker loop
func (s *Saver) run() {
	defer close(s.done)

	for first := range s.queue {
		p := pending{}
		p.add(first, s.metrics)

		// Take everything already waiting so a burst becomes one write per kind
	drain:
		for {
			select {
			case j, ok := <-s.queue:
				if !ok {
					break drain
				}
				p.add(j, s.metrics)
			default:
				break drain
			}
		}

		err := s.write(&p)
		for _, reply := range p.flushes {
			reply <- err
		}
	}
}

// pending collects the newest snapshot of each kind
type pending struct {
	canvases *[]models.Canvas
	boards   *[]models.KanbanBoard
	notes    *models.NoteSnapshot
	flushes  []chan error
}

func (p *pending) add(j job, m *Metrics) {
	switch j.kind {
	case kindCanvases:
		if p.canvases != nil {
			m.IncCoalesced()
		}
		p.canvases = &j.canvases
	case kindBoards:
		if p.boards != nil {
			m.IncCoalesced()
		}
		p.boards = &j.boards
	case kindNotes:
		if p.notes != nil {
			m.IncCoalesced()
		}
		p.notes = &j.notes
	case kindFlush:
		p.flushes = append(p.flushes, j.done)
	}
}

func (s *Saver) write(p *pending) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	var errs []error
	record := func(k kind, err error) {
		if err != nil {
			s.metrics.IncWriteErrors()
			s.logger.Error("failed to save snapshot", "kind", k.String(), "error", err)
			errs = append(errs, err)
			return
		}
		s.metrics.IncWritten()
	}

	if p.canvases != nil {
		record(kindCanvases, s.sink.SaveCanvases(ctx, *p.canvases))
	}
	if p.boards != nil {
		record(kindBoards, s.sink.SaveBoards(ctx, *p.boards))
	}
	if p.notes != nil {
		record(kindNotes, s.sink.SaveNotes(ctx, *p.notes))
	}
	return errors.Join(errs...)
}

func (k kind) String() string {
	switch k {
	case kindCanvases:
		return "canvases"
	case kindBoards:
		return "boards"
	case kindNotes:
		return "notes"
	default:
		return "flush"
	}
}
