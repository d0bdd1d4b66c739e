package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kerbaras/animes/pkg/app"
	"github.com/kerbaras/animes/pkg/config"
	"github.com/kerbaras/animes/pkg/data"
	"github.com/kerbaras/animes/pkg/instance"
	"github.com/kerbaras/animes/pkg/logging"
	"github.com/kerbaras/animes/pkg/services"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dataDir    string
	backend    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:          "animes",
	Short:        "Keep track of the anime you are watching",
	Long:         "Track which episode you are on for every show you follow, from a TUI or the command line",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default
		s, err := openSession(true)
		if err != nil {
			return err
		}
		defer s.Close()

		return app.NewApp(s.cfg, s.store, s.controller, s.logger).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is <user config dir>/animes/config.ini)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the store, theme and logs")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: json or duckdb")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, "", err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}

	// Flags win over the file
	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}
	if backend != "" {
		cfg.Storage.Backend = strings.ToLower(backend)
	}
	if logLevel != "" {
		cfg.Log.Level = strings.ToLower(logLevel)
	}

	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, path, nil
}

// session is everything a command needs to talk to the store
type session struct {
	cfg        *config.Config
	logger     *slog.Logger
	store      *data.Store
	controller *services.AnimeController

	closers []io.Closer
}

// openSession loads config, logging and the store. Writers also take the
// instance lock so only one process mutates the data directory.
func openSession(write bool) (*session, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	if write {
		lock, err := instance.Acquire(cfg.LockPath())
		if errors.Is(err, instance.ErrAlreadyRunning) {
			s.Close()
			return nil, fmt.Errorf("another animes process is using %s: %w", cfg.Storage.DataDir, err)
		}
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, releaser{lock})
	}

	store, err := data.Open(cfg.Storage.DataDir, cfg.Storage.Backend)
	if err != nil {
		logger.Error("failed to open store", slog.String("dir", cfg.Storage.DataDir), logging.Error(err))
		s.Close()
		return nil, err
	}
	s.store = store
	s.closers = append(s.closers, store)
	s.controller = services.NewAnimeController(store, logger)

	logger.Debug("session opened",
		slog.String("backend", cfg.Storage.Backend),
		slog.String("dir", cfg.Storage.DataDir),
		slog.Bool("write", write))
	return s, nil
}

// Close releases in reverse order of acquisition
func (s *session) Close() {
	if s.controller != nil {
		s.controller.Close()
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			s.logger.Warn("failed to close resource", logging.Error(err))
		}
	}
	s.closers = nil
}

type releaser struct {
	lock *instance.Lock
}

func (r releaser) Close() error {
	return r.lock.Release()
}

// resolveAnime finds an anime by id or by title, falling back to using the
// identifier as an id directly
func resolveAnime(controller *services.AnimeController, identifier string) (string, error) {
	if controller.GetAnime(identifier) != nil {
		return identifier, nil
	}

	var matches []string
	for id, a := range controller.GetAnimes() {
		if strings.EqualFold(a.Title, identifier) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return identifier, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%d animes are titled %q, use the id instead", len(matches), identifier)
	}
}

// announceCreated tells the user an identifier matched nothing and a new
// record was stored under it
func announceCreated(cmd *cobra.Command, created bool, id string) {
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "➕ No anime matched, created new record %s\n", id)
	}
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
