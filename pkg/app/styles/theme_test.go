package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadThemeSeedsDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	theme, err := LoadTheme(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)

	raw, err := os.ReadFile(filepath.Join(dir, ThemeFileName))
	require.NoError(t, err)
	assert.Equal(t, defaultThemeFile, raw)
}

func TestEmbeddedThemeMatchesDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ThemeFileName), defaultThemeFile, 0o644))

	theme, err := LoadTheme(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)
}

func TestLoadThemeKeepsUserEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ThemeFileName)
	require.NoError(t, os.WriteFile(path, []byte("[colors]\nprimary = #000000\n"), 0o644))

	theme, err := LoadTheme(dir)
	require.NoError(t, err)
	assert.Equal(t, "#000000", theme.Colors.Primary)
	assert.Equal(t, DefaultTheme().Colors.Secondary, theme.Colors.Secondary)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[colors]\nprimary = #000000\n", string(raw))
}

func TestApply(t *testing.T) {
	defer Apply(DefaultTheme())

	theme := DefaultTheme()
	theme.Colors.Primary = "#123456"
	Apply(theme)

	assert.Equal(t, lipgloss.Color("#123456"), Primary)
	assert.Equal(t, lipgloss.Color("#123456"), TitleStyle.GetForeground())
}
