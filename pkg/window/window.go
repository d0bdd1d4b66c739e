package window

import (
	"fmt"
	"log/slog"

	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/logging"
)

// BoundsStore is the slice of the data store the tracker needs.
type BoundsStore interface {
	Bounds() data.Bounds
	HasBounds() bool
	SetBounds(b data.Bounds) error
}

// Size is the geometry used before anything was saved, plus the floor below
// which the window is unusable. Units are terminal cells.
type Size struct {
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
}

func DefaultSize() Size {
	return Size{
		Width:     80,
		Height:    24,
		MinWidth:  40,
		MinHeight: 10,
	}
}

// Options describes how the main window should be created.
type Options struct {
	Bounds    data.Bounds
	MinWidth  int
	MinHeight int
}

// Fits reports whether a width x height window is at least the minimum size.
func (o Options) Fits(width, height int) bool {
	return width >= o.MinWidth && height >= o.MinHeight
}

// Tracker records the main window geometry on move and close.
type Tracker struct {
	store  BoundsStore
	size   Size
	logger *slog.Logger
}

func NewTracker(store BoundsStore, size Size, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Tracker{store: store, size: size, logger: logger}
}

// Open returns the creation options for the main window from the last saved
// geometry.
func (t *Tracker) Open() Options {
	b := t.store.Bounds()
	if !t.store.HasBounds() {
		b.Width = t.size.Width
		b.Height = t.size.Height
	}

	b.Width = max(b.Width, t.size.MinWidth)
	b.Height = max(b.Height, t.size.MinHeight)

	return Options{Bounds: b, MinWidth: t.size.MinWidth, MinHeight: t.size.MinHeight}
}

// Move persists the geometry after the window moved or was resized.
func (t *Tracker) Move(b data.Bounds) error {
	return t.persist("move", b)
}

// Close persists the final geometry when the window closes.
func (t *Tracker) Close(b data.Bounds) error {
	return t.persist("close", b)
}

func (t *Tracker) persist(event string, b data.Bounds) error {
	if err := t.store.SetBounds(b); err != nil {
		t.logger.Error("failed to persist window bounds", slog.String("event", event), logging.Error(err))
		return fmt.Errorf("persist bounds on %s: %w", event, err)
	}
	t.logger.Debug("window bounds persisted",
		slog.String("event", event),
		slog.Int("width", b.Width),
		slog.Int("height", b.Height))
	return nil
}
