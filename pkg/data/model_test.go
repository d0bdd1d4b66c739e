package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentCloneIsDeep(t *testing.T) {
	doc := NewDocument()
	doc.Animes["a"] = Anime{Title: "Frieren", Day: "friday", Episodes: 3}
	doc.Bounds = &Bounds{X: IntPtr(10), Y: IntPtr(20), Width: 500, Height: 600}

	c := doc.clone()
	c.Animes["b"] = Anime{Title: "Dandadan"}
	*c.Bounds.X = 99
	c.Bounds.Width = 1

	assert.Len(t, doc.Animes, 1)
	assert.Equal(t, 10, *doc.Bounds.X)
	assert.Equal(t, 500, doc.Bounds.Width)
}

func TestBoundsWithDefaults(t *testing.T) {
	b := Bounds{}.withDefaults()

	assert.Nil(t, b.X)
	assert.Nil(t, b.Y)
	assert.Equal(t, DefaultWidth, b.Width)
	assert.Equal(t, DefaultHeight, b.Height)

	b = Bounds{X: IntPtr(5), Width: 800}.withDefaults()
	assert.Equal(t, 5, *b.X)
	assert.Equal(t, 800, b.Width)
	assert.Equal(t, DefaultHeight, b.Height)
}
