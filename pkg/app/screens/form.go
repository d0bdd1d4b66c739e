package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/services"
)

const (
	dayField = iota
	titleField
)

var errTitleRequired = errors.New("title is required")

// FormScreen adds a new anime, or edits one when id is set
type FormScreen struct {
	controller *services.AnimeController
	id         string
	inputs     []textinput.Model
	focus      int
	saving     bool
	width      int
	err        error
}

func NewFormScreen(controller *services.AnimeController, id string) *FormScreen {
	day := textinput.New()
	day.Placeholder = "Monday"
	day.CharLimit = 32
	day.Width = 30

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 50

	if id != "" {
		if a := controller.GetAnime(id); a != nil {
			day.SetValue(a.Day)
			title.SetValue(a.Title)
		}
	}

	s := &FormScreen{
		controller: controller,
		id:         id,
		inputs:     []textinput.Model{day, title},
	}
	s.setFocus(dayField)
	return s
}

func (s *FormScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *FormScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.inputs[titleField].Width = max(min(msg.Width-10, 60), 10)
		return s, nil

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}

		switch msg.String() {
		case "esc":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "library"}
			}
		case "tab", "down":
			s.setFocus((s.focus + 1) % len(s.inputs))
			return s, textinput.Blink
		case "shift+tab", "up":
			s.setFocus((s.focus - 1 + len(s.inputs)) % len(s.inputs))
			return s, textinput.Blink
		case "enter":
			if s.focus == dayField {
				s.setFocus(titleField)
				return s, textinput.Blink
			}
			return s, s.submit()
		case "ctrl+s":
			return s, s.submit()
		}

	case formSavedMsg:
		s.saving = false
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		return s, func() tea.Msg {
			return SwitchScreenMsg{Screen: "library"}
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *FormScreen) View() string {
	heading := "Add anime"
	if s.id != "" {
		heading = "Edit anime"
	}
	header := styles.TitleStyle.Render(heading)

	labels := []string{"Day", "Title"}
	fields := make([]string, len(s.inputs))
	for i, input := range s.inputs {
		inputStyle := styles.InputStyle
		if i == s.focus {
			inputStyle = styles.FocusedInputStyle
		}
		fields[i] = lipgloss.JoinVertical(lipgloss.Left,
			styles.LabelStyle.Render(labels[i]),
			inputStyle.Render(input.View()),
		)
	}

	var status string
	if s.err != nil {
		status = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
	} else if s.saving {
		status = styles.MutedStyle.Render("Saving...")
	}

	help := styles.HelpStyle.Render("tab: next field • enter/ctrl+s: save • esc: cancel")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		fields[dayField],
		fields[titleField],
		status,
		help,
	)
}

func (s *FormScreen) setFocus(field int) {
	s.focus = field
	for i := range s.inputs {
		if i == field {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

// Messages
type formSavedMsg struct {
	err error
}

// Commands
func (s *FormScreen) submit() tea.Cmd {
	day := strings.TrimSpace(s.inputs[dayField].Value())
	title := strings.TrimSpace(s.inputs[titleField].Value())
	if title == "" {
		s.err = errTitleRequired
		s.setFocus(titleField)
		return nil
	}

	s.saving = true
	s.err = nil
	id := s.id
	return func() tea.Msg {
		if id == "" {
			return formSavedMsg{err: s.controller.AddAnime(day, title)}
		}
		return formSavedMsg{err: s.controller.EditAnime(id, day, title)}
	}
}
