package board

import (
	"log/slog"
	"slices"
	"time"

	"github.com/thenoetrevino/orion/internal/kanban"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// MaxTitleLength bounds board, column and card titles
const MaxTitleLength = 200

// DefaultColumns seeds a new board when no columns are configured
var DefaultColumns = []string{"To Do", "In Progress", "Done"}

// Service defines all board-related business operations
type Service interface {
	// Read operations
	GetBoard(id types.BoardID) (*models.KanbanBoard, error)
	ListBoards() []*models.KanbanBoard
	ListByGroup(groupID types.GroupID) []*models.KanbanBoard
	FindCard(boardID types.BoardID, cardID types.CardID) (*models.Card, *models.Column, error)

	// Board operations
	CreateBoard(req CreateBoardRequest) (*models.KanbanBoard, error)
	DeleteBoard(id types.BoardID) error
	AddMember(boardID types.BoardID, userID string) error
	RemoveMember(boardID types.BoardID, userID string) error

	// Column operations
	AddColumn(boardID types.BoardID, title string) (*models.Column, error)
	RemoveColumn(boardID types.BoardID, columnID types.ColumnID) error
	RenameColumn(boardID types.BoardID, columnID types.ColumnID, title string) error

	// Card operations
	AddCard(req AddCardRequest) (*models.Card, error)
	MoveCard(req MoveCardRequest) error
	UpdateCard(req UpdateCardRequest) error
	DeleteCard(boardID types.BoardID, cardID types.CardID) error
	AssignUser(boardID types.BoardID, cardID types.CardID, userID string) error
	UnassignUser(boardID types.BoardID, cardID types.CardID, userID string) error
	AddCardTag(boardID types.BoardID, cardID types.CardID, tag string) error
	RemoveCardTag(boardID types.BoardID, cardID types.CardID, tag string) error
}

// Autosaver receives a fresh snapshot after every successful mutation
type Autosaver interface {
	QueueBoards(snapshot []models.KanbanBoard)
}

// CreateBoardRequest encapsulates data for creating a board
type CreateBoardRequest struct {
	Title   string
	GroupID types.GroupID
	Columns []string // Optional: nil uses the service defaults
}

// AddCardRequest encapsulates data for creating a card
type AddCardRequest struct {
	BoardID     types.BoardID
	ColumnID    types.ColumnID
	Title       string
	Description string
}

// MoveCardRequest encapsulates data for moving a card.
// Index is clamped: anything outside [0, len(target)] appends.
type MoveCardRequest struct {
	BoardID        types.BoardID
	CardID         types.CardID
	SourceColumnID types.ColumnID // Optional: empty means wherever the card is now
	TargetColumnID types.ColumnID
	Index          int
}

// UpdateCardRequest encapsulates data for editing a card
// Fields with pointers are optional - nil means don't update
type UpdateCardRequest struct {
	BoardID     types.BoardID
	CardID      types.CardID
	Title       *string
	Description *string
	DueDate     *time.Time
	ClearDue    bool
}

// service implements Service interface
type service struct {
	store          *kanban.Store
	defaultColumns []string
	saver          Autosaver
	logger         *slog.Logger
}

// NewService creates a new board service. saver may be nil.
func NewService(store *kanban.Store, defaultColumns []string, saver Autosaver, logger *slog.Logger) Service {
	if len(defaultColumns) == 0 {
		defaultColumns = DefaultColumns
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:          store,
		defaultColumns: slices.Clone(defaultColumns),
		saver:          saver,
		logger:         logger,
	}
}

// GetBoard retrieves a board by id
func (s *service) GetBoard(id types.BoardID) (*models.KanbanBoard, error) {
	b := s.store.GetBoard(id)
	if b == nil {
		return nil, ErrBoardNotFound
	}
	return b, nil
}

// ListBoards returns every board in creation order
func (s *service) ListBoards() []*models.KanbanBoard {
	return s.store.ListBoards()
}

// ListByGroup returns the boards owned by a team
func (s *service) ListByGroup(groupID types.GroupID) []*models.KanbanBoard {
	return s.store.ListByGroup(groupID)
}

// FindCard locates a card and the column holding it
func (s *service) FindCard(boardID types.BoardID, cardID types.CardID) (*models.Card, *models.Column, error) {
	if _, err := s.GetBoard(boardID); err != nil {
		return nil, nil, err
	}
	card, col := s.store.FindCard(boardID, cardID)
	if card == nil {
		return nil, nil, ErrCardNotFound
	}
	return card, col, nil
}

// CreateBoard creates a new board seeded with columns
func (s *service) CreateBoard(req CreateBoardRequest) (*models.KanbanBoard, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	columns := req.Columns
	if columns == nil {
		columns = s.defaultColumns
	}
	for _, title := range columns {
		if err := validateTitle(title); err != nil {
			return nil, err
		}
	}

	b := s.store.CreateBoard(req.Title, req.GroupID, columns)
	s.logger.Info("board created", "board_id", b.ID, "title", b.Title, "columns", len(b.Columns))
	s.autosave()
	return b, nil
}

// DeleteBoard deletes a board with all its columns and cards
func (s *service) DeleteBoard(id types.BoardID) error {
	if !s.store.DeleteBoard(id) {
		return ErrBoardNotFound
	}
	s.logger.Info("board deleted", "board_id", id)
	s.autosave()
	return nil
}

// AddMember records a user on the board
func (s *service) AddMember(boardID types.BoardID, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if _, err := s.GetBoard(boardID); err != nil {
		return err
	}
	if !s.store.AddMember(boardID, userID) {
		return ErrAlreadyMember
	}
	s.autosave()
	return nil
}

// RemoveMember drops a user from the board
func (s *service) RemoveMember(boardID types.BoardID, userID string) error {
	if _, err := s.GetBoard(boardID); err != nil {
		return err
	}
	if !s.store.RemoveMember(boardID, userID) {
		return ErrNotMember
	}
	s.autosave()
	return nil
}

// AddColumn appends an empty column
func (s *service) AddColumn(boardID types.BoardID, title string) (*models.Column, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	col := s.store.AddColumn(boardID, title)
	if col == nil {
		return nil, ErrBoardNotFound
	}
	s.autosave()
	return col, nil
}

// RemoveColumn removes a column. Its cards are discarded, not reassigned.
func (s *service) RemoveColumn(boardID types.BoardID, columnID types.ColumnID) error {
	col, err := s.column(boardID, columnID)
	if err != nil {
		return err
	}
	discarded := len(col.Cards)
	if !s.store.RemoveColumn(boardID, columnID) {
		return ErrColumnNotFound
	}

	if discarded > 0 {
		s.logger.Warn("column removed with cards discarded",
			"board_id", boardID,
			"column_id", columnID,
			"column", col.Title,
			"discarded_cards", discarded)
	}
	s.autosave()
	return nil
}

// RenameColumn changes a column title
func (s *service) RenameColumn(boardID types.BoardID, columnID types.ColumnID, title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if _, err := s.column(boardID, columnID); err != nil {
		return err
	}
	s.store.RenameColumn(boardID, columnID, title)
	s.autosave()
	return nil
}

// AddCard appends a card to a column
func (s *service) AddCard(req AddCardRequest) (*models.Card, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if _, err := s.column(req.BoardID, req.ColumnID); err != nil {
		return nil, err
	}
	card := s.store.AddCard(req.BoardID, req.ColumnID, req.Title, req.Description)
	s.autosave()
	return card, nil
}

// MoveCard moves a card between or within columns
func (s *service) MoveCard(req MoveCardRequest) error {
	if _, err := s.GetBoard(req.BoardID); err != nil {
		return err
	}
	source := req.SourceColumnID
	if source == "" {
		_, col := s.store.FindCard(req.BoardID, req.CardID)
		if col == nil {
			return ErrCardNotFound
		}
		source = col.ID
	}
	src, err := s.column(req.BoardID, source)
	if err != nil {
		return err
	}
	if _, err := s.column(req.BoardID, req.TargetColumnID); err != nil {
		return err
	}
	if src.IndexOf(req.CardID) < 0 {
		return ErrCardNotFound
	}

	if !s.store.MoveCard(req.BoardID, req.CardID, source, req.TargetColumnID, req.Index) {
		return ErrCardNotFound
	}
	s.logger.Debug("card moved",
		"board_id", req.BoardID,
		"card_id", req.CardID,
		"from_column", source,
		"to_column", req.TargetColumnID)
	s.autosave()
	return nil
}

// UpdateCard edits a card's fields
func (s *service) UpdateCard(req UpdateCardRequest) error {
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if _, _, err := s.FindCard(req.BoardID, req.CardID); err != nil {
		return err
	}
	s.store.UpdateCard(req.BoardID, req.CardID, kanban.CardUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClearDue:    req.ClearDue,
	})
	s.autosave()
	return nil
}

// DeleteCard removes a card from the board
func (s *service) DeleteCard(boardID types.BoardID, cardID types.CardID) error {
	if _, _, err := s.FindCard(boardID, cardID); err != nil {
		return err
	}
	s.store.DeleteCard(boardID, cardID)
	s.autosave()
	return nil
}

// AssignUser assigns a user to a card
func (s *service) AssignUser(boardID types.BoardID, cardID types.CardID, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	return s.editCard(boardID, cardID, ErrAlreadyAssigned, func() bool {
		return s.store.AssignUser(boardID, cardID, userID)
	})
}

// UnassignUser removes a user from a card
func (s *service) UnassignUser(boardID types.BoardID, cardID types.CardID, userID string) error {
	return s.editCard(boardID, cardID, ErrNotAssigned, func() bool {
		return s.store.UnassignUser(boardID, cardID, userID)
	})
}

// AddCardTag tags a card
func (s *service) AddCardTag(boardID types.BoardID, cardID types.CardID, tag string) error {
	if tag == "" {
		return ErrEmptyTag
	}
	return s.editCard(boardID, cardID, ErrTagExists, func() bool {
		return s.store.AddCardTag(boardID, cardID, tag)
	})
}

// RemoveCardTag untags a card
func (s *service) RemoveCardTag(boardID types.BoardID, cardID types.CardID, tag string) error {
	return s.editCard(boardID, cardID, ErrTagMissing, func() bool {
		return s.store.RemoveCardTag(boardID, cardID, tag)
	})
}

// editCard resolves the card first so a false result from apply can only
// mean the edit had no effect
func (s *service) editCard(boardID types.BoardID, cardID types.CardID, noop error, apply func() bool) error {
	if _, _, err := s.FindCard(boardID, cardID); err != nil {
		return err
	}
	if !apply() {
		return noop
	}
	s.autosave()
	return nil
}

func (s *service) column(boardID types.BoardID, columnID types.ColumnID) (*models.Column, error) {
	if _, err := s.GetBoard(boardID); err != nil {
		return nil, err
	}
	col := s.store.GetColumn(boardID, columnID)
	if col == nil {
		return nil, ErrColumnNotFound
	}
	return col, nil
}

func (s *service) autosave() {
	if s.saver == nil {
		return
	}
	s.saver.QueueBoards(s.store.Snapshot())
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
