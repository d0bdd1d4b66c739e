package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/data"
)

// AnimeList renders one line per anime so a screen row maps to an item.
type AnimeList struct {
	Items         []data.Anime
	SelectedIndex int
	Width         int
	Height        int
}

func NewAnimeList() *AnimeList {
	return &AnimeList{
		Items:         []data.Anime{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (m *AnimeList) SetItems(items []data.Anime) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *AnimeList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *AnimeList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *AnimeList) Selected() *data.Anime {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// Select moves the cursor to id, returning false if it is not listed.
func (m *AnimeList) Select(id string) bool {
	for i, a := range m.Items {
		if a.ID == id {
			m.SelectedIndex = i
			return true
		}
	}
	return false
}

// offset is the first visible item so the cursor stays on screen.
func (m *AnimeList) offset() int {
	if m.Height <= 0 || m.SelectedIndex < m.Height {
		return 0
	}
	return m.SelectedIndex - m.Height + 1
}

// IndexAt maps a line relative to the top of the list to an item index.
func (m *AnimeList) IndexAt(line int) (int, bool) {
	if line < 0 || (m.Height > 0 && line >= m.Height) {
		return 0, false
	}
	i := m.offset() + line
	if i >= len(m.Items) {
		return 0, false
	}
	return i, true
}

func (m *AnimeList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No anime tracked yet. Press a to add one.")
		return lipgloss.Place(m.Width, max(m.Height, 1), lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	dayWidth := 10
	for _, a := range m.Items {
		dayWidth = max(dayWidth, lipgloss.Width(a.Day))
	}
	dayWidth = min(dayWidth, 16)

	start := m.offset()
	end := len(m.Items)
	if m.Height > 0 {
		end = min(end, start+m.Height)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		a := m.Items[i]

		episodes := fmt.Sprintf("ep %d", a.Episodes)
		titleWidth := max(m.Width-dayWidth-lipgloss.Width(episodes)-6, 8)

		day := styles.DayStyle.Render(padRight(truncateString(a.Day, dayWidth), dayWidth))
		title := padRight(truncateString(a.Title, titleWidth), titleWidth)
		row := fmt.Sprintf("%s  %s  %s", day, title, styles.EpisodeStyle.Render(episodes))

		rowStyle := styles.RowStyle
		if i == m.SelectedIndex {
			rowStyle = styles.ActiveRowStyle
		}
		lines = append(lines, rowStyle.Render(row))
	}

	return strings.Join(lines, "\n")
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
