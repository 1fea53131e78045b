package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/thenoetrevino/orion/internal/archive"
	canvasstore "github.com/thenoetrevino/orion/internal/canvas"
	"github.com/thenoetrevino/orion/internal/config"
	"github.com/thenoetrevino/orion/internal/database"
	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/kanban"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/notes"
	"github.com/thenoetrevino/orion/internal/persist"
	boardservice "github.com/thenoetrevino/orion/internal/services/board"
	canvasservice "github.com/thenoetrevino/orion/internal/services/canvas"
	noteservice "github.com/thenoetrevino/orion/internal/services/note"
	"github.com/thenoetrevino/orion/internal/vault"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Event system: every store emits here
	bus      *events.Bus
	activity *activityLog

	// Background persistence, nil when autosave is disabled. Without a saver
	// Flush writes sink directly once the bus has moved past savedSeq.
	saver    *persist.Saver
	sink     persist.Sink
	savedSeq int64
	replaced bool

	canvases *canvasstore.Store
	boards   *kanban.Store
	notes    *notes.Store
	logger   *slog.Logger

	// Service layer (business logic)
	CanvasService canvasservice.Service
	BoardService  boardservice.Service
	NoteService   noteservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, repo database.DataStore, opts ...Option) *App {
	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	bus := events.NewBus()
	a := &App{
		repo:     repo,
		bus:      bus,
		canvases: canvasstore.NewStore(bus),
		boards:   kanban.NewStore(bus),
		notes:    notes.NewStore(bus),
		logger:   options.logger,
	}

	saveSink := options.saveSink
	if saveSink == nil && repo != nil {
		saveSink = repo
	}
	a.sink = saveSink
	if cfg.AutosaveEnabled() && saveSink != nil {
		a.saver = persist.NewSaver(saveSink, cfg.Autosave.QueueSize, a.logger)
	}

	activitySink := options.activitySink
	if activitySink == nil && !options.noActivity && repo != nil {
		activitySink = repo
	}
	if activitySink != nil {
		a.activity = startActivityLog(bus, activitySink, a.logger)
	}

	// A nil *persist.Saver must not become a non-nil interface
	var (
		canvasSaver canvasservice.Autosaver
		boardSaver  boardservice.Autosaver
		noteSaver   noteservice.Autosaver
	)
	if a.saver != nil {
		canvasSaver, boardSaver, noteSaver = a.saver, a.saver, a.saver
	}

	a.CanvasService = canvasservice.NewService(a.canvases, canvasSaver, a.logger)
	a.BoardService = boardservice.NewService(a.boards, cfg.Board.DefaultColumns, boardSaver, a.logger)
	a.NoteService = noteservice.NewService(a.notes, noteSaver, a.logger)
	return a
}

// Load restores every store from the repository. Restores emit no events.
func (a *App) Load(ctx context.Context) error {
	if a.repo == nil {
		return nil
	}

	canvases, err := a.repo.LoadCanvases(ctx)
	if err != nil {
		return fmt.Errorf("failed to load canvases: %w", err)
	}
	boards, err := a.repo.LoadBoards(ctx)
	if err != nil {
		return fmt.Errorf("failed to load boards: %w", err)
	}
	noteSnap, err := a.repo.LoadNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}

	a.restore(archive.Workspace{Canvases: canvases, Boards: boards, Notes: noteSnap})
	a.savedSeq = a.bus.LastSequence()

	a.logger.Debug("workspace loaded",
		"canvases", len(canvases),
		"boards", len(boards),
		"notes", len(noteSnap.Notes))
	return nil
}

// Workspace snapshots every store
func (a *App) Workspace() archive.Workspace {
	return archive.Workspace{
		Canvases: a.canvases.Snapshot(),
		Boards:   a.boards.Snapshot(),
		Notes:    a.notes.Snapshot(),
	}
}

// ReplaceWorkspace restores every store from ws and schedules a save
func (a *App) ReplaceWorkspace(ws archive.Workspace) {
	a.restore(ws)
	a.replaced = true

	if a.saver != nil {
		a.saver.QueueCanvases(a.canvases.Snapshot())
		a.saver.QueueBoards(a.boards.Snapshot())
		a.saver.QueueNotes(a.notes.Snapshot())
	}
	a.logger.Info("workspace replaced",
		"canvases", len(ws.Canvases),
		"boards", len(ws.Boards),
		"notes", len(ws.Notes.Notes))
}

// restore loads ws into the stores. Records that would break a structural
// rule are dropped there and logged here.
func (a *App) restore(ws archive.Workspace) {
	if pruned := a.canvases.Restore(ws.Canvases); len(pruned) > 0 {
		a.logger.Warn("dropped connections with missing endpoints",
			"count", len(pruned),
			"element_ids", pruned)
	}
	if dupes := a.boards.Restore(ws.Boards); len(dupes) > 0 {
		a.logger.Warn("dropped repeated cards",
			"count", len(dupes),
			"card_ids", dupes)
	}
	a.notes.Restore(ws.Notes)
}

// ApplyVaultRecord brings the notes store in line with one vault file. The
// note is matched by id, then by title, and created when neither matches.
// It reports whether a new note was created.
func (a *App) ApplyVaultRecord(rec vault.Record) (*models.Note, bool, error) {
	n := a.notes.GetNote(rec.ID)
	if n == nil {
		n = a.notes.FindByTitle(rec.Title)
	}
	if n == nil {
		created, err := a.NoteService.CreateNote(noteservice.CreateNoteRequest{
			Title:   rec.Title,
			Content: rec.Content,
			Tags:    rec.Tags,
		})
		return created, err == nil, err
	}

	if n.Title != rec.Title {
		if err := a.NoteService.RenameNote(n.ID, rec.Title); err != nil {
			return nil, false, err
		}
	}
	if n.Content != rec.Content {
		if err := a.NoteService.UpdateContent(n.ID, rec.Content); err != nil {
			return nil, false, err
		}
	}
	for _, tag := range rec.Tags {
		if tag == "" {
			continue
		}
		if err := a.NoteService.AddTag(n.ID, tag); err != nil && !errors.Is(err, models.ErrNoOp) {
			return nil, false, err
		}
	}
	for _, tag := range slices.Clone(n.Tags) {
		if slices.Contains(rec.Tags, tag) {
			continue
		}
		if err := a.NoteService.RemoveTag(n.ID, tag); err != nil {
			return nil, false, err
		}
	}
	return n, false, nil
}

// Bus exposes the change notification bus
func (a *App) Bus() *events.Bus {
	return a.bus
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// SaverMetrics reports the background saver counters. ok is false when
// autosave is disabled.
func (a *App) SaverMetrics() (m persist.MetricsSnapshot, ok bool) {
	if a.saver == nil {
		return m, false
	}
	return a.saver.Metrics(), true
}

// Flush waits until every queued snapshot has been written. With autosave
// disabled it writes the stores itself when anything changed since the last
// load or flush.
func (a *App) Flush(ctx context.Context) error {
	if a.saver != nil {
		return a.saver.Flush(ctx)
	}
	return a.saveNow(ctx)
}

func (a *App) saveNow(ctx context.Context) error {
	seq := a.bus.LastSequence()
	if a.sink == nil || (seq == a.savedSeq && !a.replaced) {
		return nil
	}

	if err := a.sink.SaveCanvases(ctx, a.canvases.Snapshot()); err != nil {
		return fmt.Errorf("failed to save canvases: %w", err)
	}
	if err := a.sink.SaveBoards(ctx, a.boards.Snapshot()); err != nil {
		return fmt.Errorf("failed to save boards: %w", err)
	}
	if err := a.sink.SaveNotes(ctx, a.notes.Snapshot()); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	a.savedSeq, a.replaced = seq, false
	a.logger.Debug("workspace saved", "sequence", seq)
	return nil
}

// Close stops the activity log and the saver, writing anything still queued.
// Without a saver the stores are written once here. The repository stays
// open; its owner closes it.
func (a *App) Close() error {
	if a.activity != nil {
		a.activity.close()
	}
	if a.saver != nil {
		return a.saver.Close()
	}
	return a.saveNow(context.Background())
}
