package cli

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/pumpkin2800/zarqon/internal/filex"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/access"
	"github.com/pumpkin2800/zarqon/internal/vault/blobs"
	"github.com/pumpkin2800/zarqon/internal/vault/config"
	"github.com/pumpkin2800/zarqon/internal/vault/live"
	"github.com/pumpkin2800/zarqon/internal/vault/prefs"
	"github.com/pumpkin2800/zarqon/internal/vault/services"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
)

// App wires the vault together for the interactive shell.
type App struct {
	config   *config.Config
	log      logging.Logger
	store    *storage.Store
	bus      *live.Bus
	prefs    *prefs.Manager
	session  *access.Session
	services *services.Services
	renderer *blobs.Renderer
	reader   *bufio.Reader
}

// NewApp opens the store under the configured data directory and builds
// every service on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	// a relative data dir resolves against the working directory once, so
	// every derived path below agrees on the location
	if filepath.IsAbs(c.DataDir) {
		if _, err := filex.EnsureDir(c.DataDir); err != nil {
			return nil, err
		}
	} else {
		dir, err := filex.EnsureSubdDir(c.DataDir)
		if err != nil {
			return nil, err
		}
		c.DataDir = dir
	}

	bus := live.NewBus()
	store, err := storage.Open(ctx, c.DatabaseFile(), bus, log)
	if err != nil {
		return nil, err
	}

	pm, err := prefs.Open(c.DataDir)
	if err != nil {
		store.Close()
		return nil, err
	}

	renderer, err := blobs.NewRenderer(c.BlobDir())
	if err != nil {
		store.Close()
		return nil, err
	}

	return &App{
		config:   c,
		log:      log,
		store:    store,
		bus:      bus,
		prefs:    pm,
		session:  access.NewSession(c.AccessPassphrase),
		services: services.New(store, pm, c.SecretPassphrase, log),
		renderer: renderer,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the store.
func (a *App) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Error(context.Background(), "closing store", "error", err)
	}
}
