package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/services"
	"github.com/kerbaras/animes/pkg/window"
)

type screenType int

const (
	libraryView screenType = iota
	formView
)

// SwitchScreenMsg is returned by sub-screens to change the active view
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

// QuitRequestedMsg asks the root to save the window geometry and exit
type QuitRequestedMsg struct{}

type boundsSavedMsg struct {
	err error
}

type RootScreen struct {
	controller *services.AnimeController
	tracker    *window.Tracker
	window     window.Options

	currentView screenType
	library     *LibraryScreen
	form        *FormScreen

	width  int
	height int
	// set once the terminal reported its real size
	measured bool
}

// NewRootScreen lays the screens out at the restored window size until the
// terminal reports its own.
func NewRootScreen(controller *services.AnimeController, tracker *window.Tracker, opts window.Options) *RootScreen {
	r := &RootScreen{
		controller:  controller,
		tracker:     tracker,
		window:      opts,
		currentView: libraryView,
		library:     NewLibraryScreen(controller),
		width:       opts.Bounds.Width,
		height:      opts.Bounds.Height,
	}
	if r.width > 0 && r.height > 0 {
		r.library.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height})
	}
	return r
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.library.Init(), r.listenForEvents)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.measured = true

		// Both screens keep their layout in sync, the hidden one included
		r.library.Update(msg)
		if r.form != nil {
			r.form.Update(msg)
		}
		return r, r.saveBounds(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, r.quit()
		}

	case QuitRequestedMsg:
		return r, r.quit()

	case boundsSavedMsg:
		if msg.err != nil {
			r.library.err = msg.err
		}
		return r, nil

	case services.ContextMenuRequested:
		r.currentView = libraryView
		r.library.ShowMenu(msg.ID, msg.X, msg.Y)
		return r, r.listenForEvents

	case services.EditRequested:
		return r, tea.Batch(r.showForm(msg.ID), r.listenForEvents)

	case services.RefreshRequested:
		return r, tea.Batch(r.library.Init(), r.listenForEvents)

	case services.WindowOpenRequested:
		return r, tea.Batch(r.openFragment(msg.Fragment), r.listenForEvents)

	case SwitchScreenMsg:
		switch msg.Screen {
		case "library":
			cmd = r.showLibrary()
		case "add":
			cmd = r.showForm("")
		case "edit":
			if id, ok := msg.Data.(string); ok {
				cmd = r.showForm(id)
			}
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case libraryView:
		newModel, newCmd := r.library.Update(msg)
		r.library = newModel.(*LibraryScreen)
		return r, newCmd
	case formView:
		if r.form != nil {
			newModel, newCmd := r.form.Update(msg)
			r.form = newModel.(*FormScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	if !r.window.Fits(r.width, r.height) {
		msg := styles.StatusError.Render(fmt.Sprintf(
			"Terminal too small: %dx%d, need at least %dx%d",
			r.width, r.height, r.window.MinWidth, r.window.MinHeight))
		return lipgloss.Place(r.width, r.height, lipgloss.Center, lipgloss.Center, msg)
	}

	switch r.currentView {
	case formView:
		if r.form != nil {
			return r.form.View()
		}
	}
	return r.library.View()
}

// openFragment maps the views the controller can ask for: "add",
// "edit/<id>" and "library".
func (r *RootScreen) openFragment(fragment string) tea.Cmd {
	name, arg, _ := strings.Cut(strings.Trim(fragment, "#/"), "/")
	switch name {
	case "add":
		return r.showForm("")
	case "edit":
		if arg != "" {
			return r.showForm(arg)
		}
	case "", "library":
		return r.showLibrary()
	}

	r.library.err = fmt.Errorf("unknown view %q", fragment)
	return r.showLibrary()
}

func (r *RootScreen) showLibrary() tea.Cmd {
	r.currentView = libraryView
	r.form = nil
	return r.library.Init()
}

func (r *RootScreen) showForm(id string) tea.Cmd {
	r.form = NewFormScreen(r.controller, id)
	if r.width > 0 {
		r.form.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height})
	}
	r.currentView = formView
	return r.form.Init()
}

func (r *RootScreen) saveBounds(width, height int) tea.Cmd {
	return func() tea.Msg {
		err := r.tracker.Move(data.Bounds{Width: width, Height: height})
		return boundsSavedMsg{err: err}
	}
}

func (r *RootScreen) quit() tea.Cmd {
	if r.measured {
		// The tracker logs failures and there is no screen left to show them on
		_ = r.tracker.Close(data.Bounds{Width: r.width, Height: r.height})
	}
	return tea.Quit
}

func (r *RootScreen) listenForEvents() tea.Msg {
	ev, ok := <-r.controller.Events()
	if !ok {
		return nil
	}
	return ev
}
