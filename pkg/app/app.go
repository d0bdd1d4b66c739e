package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/animes/pkg/app/screens"
	"github.com/kerbaras/animes/pkg/app/styles"
	"github.com/kerbaras/animes/pkg/config"
	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/logging"
	"github.com/kerbaras/animes/pkg/services"
	"github.com/kerbaras/animes/pkg/window"
)

type App struct {
	cfg        *config.Config
	store      *data.Store
	controller *services.AnimeController
	logger     *slog.Logger
}

func NewApp(cfg *config.Config, store *data.Store, controller *services.AnimeController, logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &App{cfg: cfg, store: store, controller: controller, logger: logger}
}

func (a *App) Run() error {
	theme, err := styles.LoadTheme(a.cfg.Storage.DataDir)
	if err != nil {
		a.logger.Warn("falling back to default theme", logging.Error(err))
	}
	styles.Apply(theme)

	tracker := window.NewTracker(a.store, window.Size{
		Width:     a.cfg.Window.Width,
		Height:    a.cfg.Window.Height,
		MinWidth:  a.cfg.Window.MinWidth,
		MinHeight: a.cfg.Window.MinHeight,
	}, a.logger)

	opts := tracker.Open()
	a.logger.Info("window opened",
		slog.Int("width", opts.Bounds.Width),
		slog.Int("height", opts.Bounds.Height),
		slog.Bool("restored", a.store.HasBounds()))

	model := screens.NewRootScreen(a.controller, tracker, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
