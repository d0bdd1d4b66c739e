package services

// Event is a notification from the controller to the presentation layer.
type Event interface {
	event()
}

// ContextMenuRequested asks the view to show the Edit/Delete menu for an
// anime at the given screen position.
type ContextMenuRequested struct {
	ID string
	X  int
	Y  int
}

// EditRequested asks the view to enter edit mode for an anime.
type EditRequested struct {
	ID string
}

// RefreshRequested asks the view to reload the collection.
type RefreshRequested struct{}

// WindowOpenRequested asks the view to open the secondary view named by
// Fragment, e.g. "add" or "edit/<id>".
type WindowOpenRequested struct {
	Fragment string
}

func (ContextMenuRequested) event() {}
func (EditRequested) event()        {}
func (RefreshRequested) event()     {}
func (WindowOpenRequested) event()  {}

type ContextAction int

const (
	ActionEdit ContextAction = iota
	ActionDelete
)

func (a ContextAction) String() string {
	switch a {
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}
