package data

const (
	DefaultWidth  = 450
	DefaultHeight = 450
)

type Anime struct {
	ID       string `json:"-"`
	Title    string `json:"title"`
	Day      string `json:"day"`
	Episodes int    `json:"episodes"`
}

// Bounds is the last known geometry of the main window. A nil X or Y leaves
// placement to the platform.
type Bounds struct {
	X      *int `json:"x"`
	Y      *int `json:"y"`
	Width  int  `json:"width"`
	Height int  `json:"height"`
}

// Document is the root of the persisted state.
type Document struct {
	Animes map[string]Anime `json:"animes"`
	Bounds *Bounds          `json:"bounds,omitempty"`
}

func NewDocument() *Document {
	return &Document{Animes: make(map[string]Anime)}
}

func (d *Document) clone() *Document {
	c := &Document{Animes: make(map[string]Anime, len(d.Animes))}
	for id, a := range d.Animes {
		c.Animes[id] = a
	}
	if d.Bounds != nil {
		b := d.Bounds.clone()
		c.Bounds = &b
	}
	return c
}

func (b Bounds) clone() Bounds {
	c := Bounds{Width: b.Width, Height: b.Height}
	if b.X != nil {
		x := *b.X
		c.X = &x
	}
	if b.Y != nil {
		y := *b.Y
		c.Y = &y
	}
	return c
}

// withDefaults fills zero sizes with the default window size.
func (b Bounds) withDefaults() Bounds {
	c := b.clone()
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	return c
}

// IntPtr is a small helper for building Bounds literals.
func IntPtr(v int) *int {
	return &v
}
