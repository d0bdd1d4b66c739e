package styles

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/ini.v1"
)

//go:embed theme.ini
var defaultThemeFile []byte

const ThemeFileName = "theme.ini"

// Theme is the user-editable colour palette.
type Theme struct {
	Colors ThemeColors `ini:"colors"`
}

type ThemeColors struct {
	Primary    string `ini:"primary"`
	Secondary  string `ini:"secondary"`
	Success    string `ini:"success"`
	Warning    string `ini:"warning"`
	Error      string `ini:"error"`
	Info       string `ini:"info"`
	Muted      string `ini:"muted"`
	Background string `ini:"background"`
	Foreground string `ini:"foreground"`
	Highlight  string `ini:"highlight"`
}

func DefaultTheme() Theme {
	return Theme{Colors: ThemeColors{
		Primary:    "#FF6B9D",
		Secondary:  "#C792EA",
		Success:    "#C3E88D",
		Warning:    "#FFCB6B",
		Error:      "#F07178",
		Info:       "#82AAFF",
		Muted:      "#546E7A",
		Background: "#263238",
		Foreground: "#EEFFFF",
		Highlight:  "#37474F",
	}}
}

var (
	// Color palette
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Highlight  lipgloss.Color

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles, rebuilt by Apply
var (
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	TextStyle      lipgloss.Style
	MutedStyle     lipgloss.Style
	DayStyle       lipgloss.Style
	RowStyle       lipgloss.Style
	ActiveRowStyle lipgloss.Style
	EpisodeStyle   lipgloss.Style
	MenuStyle      lipgloss.Style
	MenuItemStyle  lipgloss.Style
	ActiveMenuItem lipgloss.Style
	StatusError    lipgloss.Style
	StatusSuccess  lipgloss.Style
	HelpStyle      lipgloss.Style
	LabelStyle     lipgloss.Style

	// Input field
	InputStyle lipgloss.Style

	// Focused input
	FocusedInputStyle lipgloss.Style
)

func init() {
	Apply(DefaultTheme())
}

// Apply rebuilds every style from the theme palette.
func Apply(t Theme) {
	c := t.Colors
	Primary = lipgloss.Color(c.Primary)
	Secondary = lipgloss.Color(c.Secondary)
	Success = lipgloss.Color(c.Success)
	Warning = lipgloss.Color(c.Warning)
	Error = lipgloss.Color(c.Error)
	Info = lipgloss.Color(c.Info)
	Muted = lipgloss.Color(c.Muted)
	Background = lipgloss.Color(c.Background)
	Foreground = lipgloss.Color(c.Foreground)
	Highlight = lipgloss.Color(c.Highlight)

	TitleStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	TextStyle = lipgloss.NewStyle().
		Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	DayStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	RowStyle = lipgloss.NewStyle().
		Foreground(Foreground).
		PaddingLeft(2)

	ActiveRowStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Background(Highlight).
		Bold(true).
		PaddingLeft(2)

	EpisodeStyle = lipgloss.NewStyle().
		Foreground(Info).
		Bold(true)

	MenuStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(0, 1)

	MenuItemStyle = lipgloss.NewStyle().
		Foreground(Foreground)

	ActiveMenuItem = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	StatusError = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	StatusSuccess = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	HelpStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
		Foreground(Warning)

	InputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Primary).
		Padding(0, 1)
}

// LoadTheme reads the theme in dir, writing the bundled default there first
// when the user has none. Colours missing from the file keep their defaults.
func LoadTheme(dir string) (Theme, error) {
	path := filepath.Join(dir, ThemeFileName)
	theme := DefaultTheme()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return theme, fmt.Errorf("create theme directory: %w", err)
		}
		if err := os.WriteFile(path, defaultThemeFile, 0o644); err != nil {
			return theme, fmt.Errorf("write default theme: %w", err)
		}
		return theme, nil
	}

	// Hex colours start with '#', which ini would otherwise read as a comment.
	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return theme, fmt.Errorf("load theme: %w", err)
	}
	if err := f.MapTo(&theme); err != nil {
		return theme, fmt.Errorf("parse theme: %w", err)
	}
	return theme, nil
}
