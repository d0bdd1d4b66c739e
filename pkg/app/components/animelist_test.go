package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/animes/pkg/data"
)

func sampleItems(n int) []data.Anime {
	items := make([]data.Anime, n)
	for i := range items {
		items[i] = data.Anime{
			ID:    string(rune('a' + i)),
			Title: "Anime " + string(rune('A'+i)),
			Day:   "monday",
		}
	}
	return items
}

func TestNewAnimeList(t *testing.T) {
	list := NewAnimeList()

	if list == nil {
		t.Fatal("Expected anime list to be created")
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}

	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItemsResetsSelection(t *testing.T) {
	list := NewAnimeList()
	list.SetItems(sampleItems(3))
	list.SelectedIndex = 2

	list.SetItems(sampleItems(1))

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be reset to 0, got %d", list.SelectedIndex)
	}

	list.SetItems(nil)
	if list.Selected() != nil {
		t.Error("Expected no selection for an empty list")
	}
}

func TestNextAndPrevWrap(t *testing.T) {
	list := NewAnimeList()
	list.SetItems(sampleItems(3))

	list.Next()
	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected wrap to 0, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected wrap to 2, got %d", list.SelectedIndex)
	}
}

func TestNextOnEmptyList(t *testing.T) {
	list := NewAnimeList()
	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
}

func TestSelect(t *testing.T) {
	list := NewAnimeList()
	list.SetItems(sampleItems(3))

	if !list.Select("c") {
		t.Fatal("Expected c to be found")
	}
	if list.Selected().ID != "c" {
		t.Errorf("Expected c selected, got %s", list.Selected().ID)
	}
	if list.Select("zzz") {
		t.Error("Expected unknown id not to be found")
	}
}

func TestIndexAtScrolls(t *testing.T) {
	list := NewAnimeList()
	list.Height = 2
	list.SetItems(sampleItems(5))

	if i, ok := list.IndexAt(1); !ok || i != 1 {
		t.Errorf("Expected index 1, got %d (%v)", i, ok)
	}

	list.SelectedIndex = 4
	if i, ok := list.IndexAt(0); !ok || i != 3 {
		t.Errorf("Expected index 3 once scrolled, got %d (%v)", i, ok)
	}
	if _, ok := list.IndexAt(2); ok {
		t.Error("Expected line below the list to miss")
	}
	if _, ok := list.IndexAt(-1); ok {
		t.Error("Expected negative line to miss")
	}
}

func TestViewOneLinePerItem(t *testing.T) {
	list := NewAnimeList()
	list.SetItems([]data.Anime{
		{ID: "1", Title: "Frieren", Day: "friday", Episodes: 12},
		{ID: "2", Title: "Dandadan", Day: "thursday", Episodes: 3},
	})

	view := list.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Frieren") || !strings.Contains(lines[0], "ep 12") {
		t.Errorf("Expected first row to describe Frieren, got %q", lines[0])
	}
}

func TestViewEmpty(t *testing.T) {
	list := NewAnimeList()

	if !strings.Contains(list.View(), "No anime tracked yet") {
		t.Error("Expected empty placeholder")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"a long title here", 10, "a long ..."},
		{"abcdef", 3, "abc"},
		{"フリーレン葬送", 5, "フリ..."},
	}
	for _, tt := range tests {
		if got := truncateString(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
