package canvas

import (
	"log/slog"

	canvasstore "github.com/thenoetrevino/orion/internal/canvas"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// MaxTitleLength bounds canvas titles
const MaxTitleLength = 200

// Service defines all canvas-related business operations
type Service interface {
	// Read operations
	GetCanvas(id types.CanvasID) (*models.Canvas, error)
	ListCanvases() []*models.Canvas
	ListByGroup(groupID types.GroupID) []*models.Canvas
	GetElement(canvasID types.CanvasID, id types.ElementID) (models.Element, error)
	GetConnections(canvasID types.CanvasID) ([]*models.ConnectionElement, error)

	// Write operations
	CreateCanvas(req CreateCanvasRequest) (*models.Canvas, error)
	RenameCanvas(id types.CanvasID, title string) error
	DeleteCanvas(id types.CanvasID) error

	// Element operations
	AddElement(req AddElementRequest) (models.Element, error)
	Connect(req ConnectRequest) (*models.ConnectionElement, error)
	RemoveElement(canvasID types.CanvasID, id types.ElementID) error
	MoveElement(canvasID types.CanvasID, id types.ElementID, position models.Vector2) error
	ResizeElement(canvasID types.CanvasID, id types.ElementID, size models.Vector2) error
}

// Autosaver receives a fresh snapshot after every successful mutation
type Autosaver interface {
	QueueCanvases(snapshot []models.Canvas)
}

// CreateCanvasRequest encapsulates data for creating a canvas
type CreateCanvasRequest struct {
	Title   string
	GroupID types.GroupID // Optional: owning team, recorded as given
}

// AddElementRequest encapsulates data for placing a non-connection element.
// Fields that do not apply to Kind are ignored.
type AddElementRequest struct {
	CanvasID  types.CanvasID
	Kind      models.ElementKind
	Position  models.Vector2
	Size      *models.Vector2 // Optional: nil keeps the variant's default
	Color     *models.Color   // Optional
	Text      string          // Text body, or sticky note content
	Title     string          // Sticky note title
	FontSize  float64         // Text only, 0 means default
	ImagePath string          // Image only
	Shape     models.ShapeType
}

// ConnectRequest encapsulates data for linking two elements
type ConnectRequest struct {
	CanvasID types.CanvasID
	SourceID types.ElementID
	TargetID types.ElementID
	Style    models.LineStyle
	Arrow    bool
}

// service implements Service interface
type service struct {
	store  *canvasstore.Store
	saver  Autosaver
	logger *slog.Logger
}

// NewService creates a new canvas service. saver may be nil.
func NewService(store *canvasstore.Store, saver Autosaver, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:  store,
		saver:  saver,
		logger: logger,
	}
}

// GetCanvas retrieves a canvas by id
func (s *service) GetCanvas(id types.CanvasID) (*models.Canvas, error) {
	c := s.store.GetCanvas(id)
	if c == nil {
		return nil, ErrCanvasNotFound
	}
	return c, nil
}

// ListCanvases returns every canvas in creation order
func (s *service) ListCanvases() []*models.Canvas {
	return s.store.ListCanvases()
}

// ListByGroup returns the canvases owned by a team
func (s *service) ListByGroup(groupID types.GroupID) []*models.Canvas {
	return s.store.ListByGroup(groupID)
}

// GetElement retrieves an element from a canvas
func (s *service) GetElement(canvasID types.CanvasID, id types.ElementID) (models.Element, error) {
	if _, err := s.GetCanvas(canvasID); err != nil {
		return nil, err
	}
	e := s.store.GetElement(canvasID, id)
	if e == nil {
		return nil, ErrElementNotFound
	}
	return e, nil
}

// GetConnections returns the connections drawn on a canvas
func (s *service) GetConnections(canvasID types.CanvasID) ([]*models.ConnectionElement, error) {
	if _, err := s.GetCanvas(canvasID); err != nil {
		return nil, err
	}
	return s.store.GetConnections(canvasID), nil
}

// CreateCanvas creates a new canvas with validation
func (s *service) CreateCanvas(req CreateCanvasRequest) (*models.Canvas, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	c := s.store.CreateCanvas(req.Title, req.GroupID)
	s.logger.Info("canvas created", "canvas_id", c.ID, "title", c.Title)
	s.autosave()

	return c, nil
}

// RenameCanvas changes a canvas title
func (s *service) RenameCanvas(id types.CanvasID, title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if !s.store.Rename(id, title) {
		return ErrCanvasNotFound
	}
	s.autosave()
	return nil
}

// DeleteCanvas deletes a canvas and every element on it
func (s *service) DeleteCanvas(id types.CanvasID) error {
	if !s.store.DeleteCanvas(id) {
		return ErrCanvasNotFound
	}
	s.logger.Info("canvas deleted", "canvas_id", id)
	s.autosave()
	return nil
}

// AddElement builds the requested variant and places it on the canvas
func (s *service) AddElement(req AddElementRequest) (models.Element, error) {
	e, err := buildElement(req)
	if err != nil {
		return nil, err
	}
	if !s.store.AddElement(req.CanvasID, e) {
		return nil, ErrCanvasNotFound
	}

	s.logger.Debug("element added", "canvas_id", req.CanvasID, "element_id", e.Base().ID, "kind", e.Kind())
	s.autosave()
	return e, nil
}

// Connect draws a connection between two elements already on the canvas
func (s *service) Connect(req ConnectRequest) (*models.ConnectionElement, error) {
	if req.SourceID == req.TargetID {
		return nil, ErrSelfConnection
	}
	if _, err := s.GetElement(req.CanvasID, req.SourceID); err != nil {
		return nil, err
	}
	if _, err := s.GetElement(req.CanvasID, req.TargetID); err != nil {
		return nil, err
	}

	conn := s.store.AddConnection(req.CanvasID, req.SourceID, req.TargetID, req.Style, req.Arrow)
	if conn == nil {
		return nil, ErrElementNotFound
	}

	s.autosave()
	return conn, nil
}

// RemoveElement removes an element along with every connection touching it
func (s *service) RemoveElement(canvasID types.CanvasID, id types.ElementID) error {
	if _, err := s.GetCanvas(canvasID); err != nil {
		return err
	}
	before := len(s.store.GetConnections(canvasID))
	if !s.store.RemoveElement(canvasID, id) {
		return ErrElementNotFound
	}

	if dropped := before - len(s.store.GetConnections(canvasID)); dropped > 0 {
		s.logger.Info("element removed with connections",
			"canvas_id", canvasID,
			"element_id", id,
			"connections", dropped)
	}
	s.autosave()
	return nil
}

// MoveElement sets an element's position
func (s *service) MoveElement(canvasID types.CanvasID, id types.ElementID, position models.Vector2) error {
	if _, err := s.GetCanvas(canvasID); err != nil {
		return err
	}
	if !s.store.UpdateElementPosition(canvasID, id, position) {
		return ErrElementNotFound
	}
	s.autosave()
	return nil
}

// ResizeElement sets an element's size
func (s *service) ResizeElement(canvasID types.CanvasID, id types.ElementID, size models.Vector2) error {
	if size.X <= 0 || size.Y <= 0 {
		return ErrInvalidSize
	}
	if _, err := s.GetCanvas(canvasID); err != nil {
		return err
	}
	if !s.store.UpdateElementSize(canvasID, id, size) {
		return ErrElementNotFound
	}
	s.autosave()
	return nil
}

// autosave hands the saver a snapshot taken now, before any later mutation
func (s *service) autosave() {
	if s.saver == nil {
		return
	}
	s.saver.QueueCanvases(s.store.Snapshot())
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

func buildElement(req AddElementRequest) (models.Element, error) {
	if req.Size != nil && (req.Size.X <= 0 || req.Size.Y <= 0) {
		return nil, ErrInvalidSize
	}

	var e models.Element
	switch req.Kind {
	case models.KindText:
		e = models.NewTextElement(req.Text, req.Position, req.FontSize)
	case models.KindNote:
		e = models.NewNoteElement(req.Title, req.Text, req.Position)
	case models.KindImage:
		if req.ImagePath == "" {
			return nil, ErrEmptyImagePath
		}
		e = models.NewImageElement(req.ImagePath, req.Position, models.Vec(200, 200))
	case models.KindShape:
		color := models.White
		if req.Color != nil {
			color = *req.Color
		}
		e = models.NewShapeElement(req.Shape, req.Position, models.Vec(100, 100), color)
	case models.KindConnection:
		return nil, ErrConnectionKind
	default:
		return nil, ErrInvalidKind
	}

	base := e.Base()
	if req.Size != nil {
		base.Size = *req.Size
	}
	if req.Color != nil {
		base.Color = *req.Color
	}
	return e, nil
}
