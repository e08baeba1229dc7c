package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/enerwatch/ewdash/internal/config"
	"github.com/enerwatch/ewdash/internal/dashboard"
	"github.com/enerwatch/ewdash/internal/database"
	"github.com/enerwatch/ewdash/internal/database/repository"
	"github.com/enerwatch/ewdash/internal/metrics"
	"github.com/enerwatch/ewdash/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// the TUI owns stdout, so logs go to a file
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.Path, "ewdash")
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	db, err := database.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	kv := repository.NewKVRepo(db)
	persister := dashboard.NewKVPersister(kv, cfg.Storage.Key, logger)
	snapshot := persister.Load(ctx)

	presenter := tui.NewPresenter()
	recorder := metrics.Recorder{}
	store := dashboard.New(
		dashboard.WithSnapshot(snapshot),
		dashboard.WithPersister(persister),
		dashboard.WithPresenter(presenter),
		dashboard.WithRecorder(recorder),
		dashboard.WithLogger(logger),
		dashboard.WithContext(ctx),
	)
	store.SetTheme(dashboard.ParseTheme(cfg.UI.Theme))
	drop := dashboard.NewDropTarget(store, recorder, logger)

	if cfg.Metrics.Listen != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Listen, logger); err != nil {
				logger.Error("metrics server", slog.String("error", err.Error()))
			}
		}()
	}

	logger.Info("starting",
		slog.String("db", cfg.Storage.Path),
		slog.Int("active_widgets", len(store.ActiveWidgets())))

	app := tui.New(ctx, cfg, tui.Deps{Store: store, Drop: drop, Presenter: presenter, Logger: logger})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
