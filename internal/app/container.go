package app

import (
	"context"
	"fmt"
	"os"

	"github.com/doeshing/brief-go/internal/application/doctor"
	"github.com/doeshing/brief-go/internal/application/view"
	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/infrastructure/config"
	"github.com/doeshing/brief-go/internal/infrastructure/history"
	"github.com/doeshing/brief-go/internal/infrastructure/storage"
	"github.com/doeshing/brief-go/internal/infrastructure/summarizer"
	"github.com/doeshing/brief-go/internal/infrastructure/system"
	"github.com/doeshing/brief-go/internal/pkg/logger"
	"github.com/doeshing/brief-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         ports.Logger
	Storage        ports.EntryStorage
	HistoryStore   *history.Store
	Summarizer     *summarizer.Client
	Clipboard      *system.Clipboard
	Opener         *system.Opener
	DoctorService  *doctor.Service
	// ConfigErr holds the load failure when the config file is invalid.
	// Config then carries defaults and no storage or summarizer is wired.
	ConfigErr error
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)
	cfgLoader := config.NewFileLoader("")
	clipboard := system.NewClipboard()

	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		log.Warn("config load failed, using defaults", map[string]interface{}{"path": cfgLoader.Path(), "error": err.Error()})
		return &Container{
			Config:         config.DefaultConfig(),
			ConfigProvider: cfgLoader,
			ConfigLoader:   cfgLoader,
			Logger:         log,
			Clipboard:      clipboard,
			Opener:         system.NewOpener(),
			DoctorService:  &doctor.Service{ConfigProvider: cfgLoader, Clipboard: clipboard},
			ConfigErr:      err,
		}, nil
	}

	entries := storage.Open(ctx, cfg.Storage, log)
	historyStore := history.NewStore(entries, cfg.Storage.Key, log)

	apiKey := os.Getenv(cfg.API.AuthEnvVar)
	client := summarizer.New(summarizer.FromSettings(cfg.API, apiKey), nil, log)

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		History:        historyStore,
		Clipboard:      clipboard,
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		Storage:        entries,
		HistoryStore:   historyStore,
		Summarizer:     client,
		Clipboard:      clipboard,
		Opener:         system.NewOpener(),
		DoctorService:  doctorService,
	}, nil
}

// Ready reports whether the config loaded, so summaries and history can run.
func (c *Container) Ready() error {
	if c.ConfigErr != nil {
		return fmt.Errorf("%w (run `brief config reset` or `brief config edit`)", c.ConfigErr)
	}
	return nil
}

// NewController builds a summary view controller over the container's adapters.
func (c *Container) NewController(ctx context.Context) *view.Controller {
	return view.NewController(ctx, view.Dependencies{
		Summarizer: c.Summarizer,
		History:    c.HistoryStore,
		Clipboard:  c.Clipboard,
		Logger:     c.Logger,
	})
}

// Close releases the storage backend.
func (c *Container) Close() error {
	if c.Storage == nil {
		return nil
	}
	return c.Storage.Close()
}
