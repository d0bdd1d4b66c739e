package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animes/pkg/app/components"
	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/services"
)

// header, menu, status and help lines around the list
const libraryChrome = 9

type LibraryScreen struct {
	controller *services.AnimeController
	animeList  *components.AnimeList
	menu       *components.ContextMenu
	width      int
	height     int
	err        error
}

func NewLibraryScreen(controller *services.AnimeController) *LibraryScreen {
	return &LibraryScreen{
		controller: controller,
		animeList:  components.NewAnimeList(),
		menu:       components.NewContextMenu(),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadAnimes
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.animeList.Width = msg.Width - 4
		s.animeList.Height = max(msg.Height-libraryChrome, 1)

	case tea.MouseMsg:
		return s, s.handleMouse(msg)

	case tea.KeyMsg:
		if s.menu.Visible {
			return s, s.handleMenuKey(msg)
		}

		switch msg.String() {
		case "up", "k":
			s.animeList.Prev()
		case "down", "j":
			s.animeList.Next()
		case "+", "l", "right":
			if selected := s.animeList.Selected(); selected != nil {
				return s, s.setEpisodes(selected.ID, selected.Episodes+1)
			}
		case "-", "h", "left":
			if selected := s.animeList.Selected(); selected != nil && selected.Episodes > 0 {
				return s, s.setEpisodes(selected.ID, selected.Episodes-1)
			}
		case "a":
			s.controller.OpenWindow("add")
		case "e":
			if selected := s.animeList.Selected(); selected != nil {
				s.controller.OpenWindow("edit/" + selected.ID)
			}
		case "d":
			if selected := s.animeList.Selected(); selected != nil {
				return s, s.chooseAction(selected.ID, services.ActionDelete)
			}
		case "m", "enter":
			if selected := s.animeList.Selected(); selected != nil {
				s.controller.ShowContextMenu(selected.ID, 2, s.listTop()+s.animeList.SelectedIndex)
			}
		case "r":
			return s, s.loadAnimes
		case "q":
			return s, func() tea.Msg { return QuitRequestedMsg{} }
		}

	case animesLoadedMsg:
		var current string
		if selected := s.animeList.Selected(); selected != nil {
			current = selected.ID
		}
		s.animeList.SetItems(msg.items)
		if current != "" {
			s.animeList.Select(current)
		}

	case episodesSetMsg:
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.err = nil
		return s, s.loadAnimes

	case contextActionMsg:
		if msg.err != nil {
			s.err = msg.err
		} else {
			s.err = nil
		}
	}

	return s, nil
}

// ShowMenu opens the Edit/Delete menu for id at the given position
func (s *LibraryScreen) ShowMenu(id string, x, y int) {
	s.animeList.Select(id)
	s.menu.Show(id, x, y)
}

func (s *LibraryScreen) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		s.menu.Prev()
	case "down", "j":
		s.menu.Next()
	case "enter":
		id, action := s.menu.ID, s.menu.Action()
		s.menu.Hide()
		return s.chooseAction(id, action)
	case "esc", "q":
		s.menu.Hide()
	}
	return nil
}

func (s *LibraryScreen) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		s.animeList.Prev()
	case msg.Button == tea.MouseButtonWheelDown:
		s.animeList.Next()
	case msg.Action != tea.MouseActionPress:
	case msg.Button == tea.MouseButtonLeft:
		s.menu.Hide()
		if i, ok := s.animeList.IndexAt(msg.Y - s.listTop()); ok {
			s.animeList.SelectedIndex = i
		}
	case msg.Button == tea.MouseButtonRight:
		if i, ok := s.animeList.IndexAt(msg.Y - s.listTop()); ok {
			s.animeList.SelectedIndex = i
			s.controller.ShowContextMenu(s.animeList.Items[i].ID, msg.X, msg.Y)
		}
	}
	return nil
}

func (s *LibraryScreen) header() string {
	return styles.TitleStyle.Render(fmt.Sprintf("Anime Tracker (%d)", len(s.animeList.Items)))
}

// listTop is the screen row of the first list line
func (s *LibraryScreen) listTop() int {
	return lipgloss.Height(s.header())
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	var status string
	if s.err != nil {
		status = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: move • +/-: episodes • a: add • e: edit • d: delete • m: menu • r: refresh • q: quit",
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.header(),
		s.animeList.View(),
		s.menu.View(),
		status,
		help,
	)
}

// Messages
type animesLoadedMsg struct {
	items []data.Anime
}

type episodesSetMsg struct {
	err error
}

type contextActionMsg struct {
	err error
}

// Commands
func (s *LibraryScreen) loadAnimes() tea.Msg {
	return animesLoadedMsg{items: s.controller.ListAnimes()}
}

func (s *LibraryScreen) setEpisodes(id string, episodes int) tea.Cmd {
	return func() tea.Msg {
		return episodesSetMsg{err: s.controller.SetEpisodes(id, episodes)}
	}
}

func (s *LibraryScreen) chooseAction(id string, action services.ContextAction) tea.Cmd {
	return func() tea.Msg {
		return contextActionMsg{err: s.controller.ChooseContextAction(id, action)}
	}
}
