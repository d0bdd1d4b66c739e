package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/services"
)

type menuEntry struct {
	Label  string
	Action services.ContextAction
}

var contextEntries = []menuEntry{
	{Label: "Edit", Action: services.ActionEdit},
	{Label: "Delete", Action: services.ActionDelete},
}

// ContextMenu is the Edit/Delete popup for one anime.
type ContextMenu struct {
	ID            string
	X             int
	Y             int
	SelectedIndex int
	Visible       bool
}

func NewContextMenu() *ContextMenu {
	return &ContextMenu{}
}

func (c *ContextMenu) Show(id string, x, y int) {
	c.ID = id
	c.X = x
	c.Y = y
	c.SelectedIndex = 0
	c.Visible = true
}

func (c *ContextMenu) Hide() {
	c.Visible = false
}

func (c *ContextMenu) Next() {
	c.SelectedIndex = (c.SelectedIndex + 1) % len(contextEntries)
}

func (c *ContextMenu) Prev() {
	c.SelectedIndex = (c.SelectedIndex - 1 + len(contextEntries)) % len(contextEntries)
}

func (c *ContextMenu) Action() services.ContextAction {
	return contextEntries[c.SelectedIndex].Action
}

// View renders the menu shifted right to the column it was opened at.
func (c *ContextMenu) View() string {
	if !c.Visible {
		return ""
	}

	items := make([]string, len(contextEntries))
	for i, e := range contextEntries {
		if i == c.SelectedIndex {
			items[i] = styles.ActiveMenuItem.Render("> " + e.Label)
		} else {
			items[i] = styles.MenuItemStyle.Render("  " + e.Label)
		}
	}

	menu := styles.MenuStyle.Render(strings.Join(items, "\n"))
	return lipgloss.NewStyle().MarginLeft(max(c.X, 0)).Render(menu)
}
