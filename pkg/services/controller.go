package services

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/logging"
)

// Repository interface needed by the controller
type Repository interface {
	Animes() map[string]data.Anime
	Anime(id string) *data.Anime
	CreateAnime(day, title string) (data.Anime, error)
	UpdateAnime(id string, fn func(a *data.Anime)) error
	DeleteAnime(id string) error
}

// AnimeController is the request surface the views talk to. Every request
// runs to completion against the store before returning.
type AnimeController struct {
	repo   Repository
	logger *slog.Logger

	mu     sync.Mutex
	events chan Event
	closed bool
}

func NewAnimeController(repo Repository, logger *slog.Logger) *AnimeController {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &AnimeController{
		repo:   repo,
		logger: logger,
		events: make(chan Event, 100),
	}
}

// Events returns the channel carrying notifications for the view
func (c *AnimeController) Events() <-chan Event {
	return c.events
}

func (c *AnimeController) AddAnime(day, title string) error {
	a, err := c.repo.CreateAnime(day, title)
	if err != nil {
		c.logger.Error("add anime failed", slog.String("title", title), logging.Error(err))
		return fmt.Errorf("add anime: %w", err)
	}
	c.logger.Info("anime added", slog.String("id", a.ID), slog.String("title", title), slog.String("day", day))
	return nil
}

// GetAnimes returns the whole collection keyed by id, empty when there is none
func (c *AnimeController) GetAnimes() map[string]data.Anime {
	return c.repo.Animes()
}

// GetAnime returns nil for unknown ids
func (c *AnimeController) GetAnime(id string) *data.Anime {
	return c.repo.Anime(id)
}

// ListAnimes returns the collection ordered for display
func (c *AnimeController) ListAnimes() []data.Anime {
	return SortAnimes(c.repo.Animes())
}

// EditAnime overwrites day and title. An unknown id gets a new record.
func (c *AnimeController) EditAnime(id, day, title string) error {
	err := c.repo.UpdateAnime(id, func(a *data.Anime) {
		a.Day = day
		a.Title = title
	})
	if err != nil {
		c.logger.Error("edit anime failed", slog.String("id", id), logging.Error(err))
		return fmt.Errorf("edit anime %s: %w", id, err)
	}
	c.logger.Info("anime edited", slog.String("id", id), slog.String("title", title), slog.String("day", day))
	return nil
}

// SetEpisodes overwrites the episode counter as given.
func (c *AnimeController) SetEpisodes(id string, episodes int) error {
	err := c.repo.UpdateAnime(id, func(a *data.Anime) {
		a.Episodes = episodes
	})
	if err != nil {
		c.logger.Error("set episodes failed", slog.String("id", id), logging.Error(err))
		return fmt.Errorf("set episodes for %s: %w", id, err)
	}
	c.logger.Debug("episodes set", slog.String("id", id), slog.Int("episodes", episodes))
	return nil
}

// DeleteAnime removes the record. Unknown ids are not an error.
func (c *AnimeController) DeleteAnime(id string) error {
	if err := c.repo.DeleteAnime(id); err != nil {
		c.logger.Error("delete anime failed", slog.String("id", id), logging.Error(err))
		return fmt.Errorf("delete anime %s: %w", id, err)
	}
	c.logger.Info("anime deleted", slog.String("id", id))
	return nil
}

// OpenWindow asks the view to open a secondary view
func (c *AnimeController) OpenWindow(fragment string) {
	c.send(WindowOpenRequested{Fragment: fragment})
}

// ShowContextMenu asks the view to present the actions for id at (x, y)
func (c *AnimeController) ShowContextMenu(id string, x, y int) {
	c.send(ContextMenuRequested{ID: id, X: x, Y: y})
}

// ChooseContextAction runs the action picked from the context menu
func (c *AnimeController) ChooseContextAction(id string, action ContextAction) error {
	switch action {
	case ActionEdit:
		c.send(EditRequested{ID: id})
		return nil
	case ActionDelete:
		if err := c.DeleteAnime(id); err != nil {
			return err
		}
		c.send(RefreshRequested{})
		return nil
	default:
		return fmt.Errorf("unknown context action %d", action)
	}
}

// Close stops event delivery. Later notifications are dropped.
func (c *AnimeController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.events)
	}
}

func (c *AnimeController) send(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	select {
	case c.events <- ev:
	default:
		// Channel full, skip this notification
		c.logger.Warn("event dropped", slog.String("event", fmt.Sprintf("%T", ev)))
	}
}

var weekdays = map[string]int{
	"monday": 0, "lundi": 0,
	"tuesday": 1, "mardi": 1,
	"wednesday": 2, "mercredi": 2,
	"thursday": 3, "jeudi": 3,
	"friday": 4, "vendredi": 4,
	"saturday": 5, "samedi": 5,
	"sunday": 6, "dimanche": 6,
}

// SortAnimes orders by weekday (Monday first, unrecognized days after in
// alphabetical order), then by title, then by id.
func SortAnimes(animes map[string]data.Anime) []data.Anime {
	out := make([]data.Anime, 0, len(animes))
	for id, a := range animes {
		a.ID = id
		out = append(out, a)
	}

	rank := func(day string) int {
		if r, ok := weekdays[strings.ToLower(strings.TrimSpace(day))]; ok {
			return r
		}
		return len(weekdays)
	}

	sort.Slice(out, func(i, j int) bool {
		ri, rj := rank(out[i].Day), rank(out[j].Day)
		if ri != rj {
			return ri < rj
		}
		di, dj := strings.ToLower(out[i].Day), strings.ToLower(out[j].Day)
		if di != dj {
			return di < dj
		}
		ti, tj := strings.ToLower(out[i].Title), strings.ToLower(out[j].Title)
		if ti != tj {
			return ti < tj
		}
		return out[i].ID < out[j].ID
	})
	return out
}
