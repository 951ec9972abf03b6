// Package bootstrap wires configuration, storage and services for CLI commands.
package bootstrap

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"voyagee/internal/apperr"
	"voyagee/internal/config"
	"voyagee/internal/repo"
	"voyagee/internal/repo/fskv"
	"voyagee/internal/repo/sqlitekv"
	"voyagee/internal/service"
)

var log = zap.NewNop().Sugar()

// SetLogger replaces the package logger. Called once from main.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		log = l
	}
}

// App bundles the open store and the services built on top of it.
type App struct {
	KV       repo.KV
	Identity *service.Identity
	Data     *service.TripData
}

// Open opens the configured store and returns (app, cleanup, error).
// cleanup must be called when the command is done to close the store.
// If a session was persisted earlier, the trip data of that user is loaded.
func Open(cfg *config.Config) (*App, func() error, error) {
	kv, err := openStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	identity := service.NewIdentity(kv, log)
	data := service.NewTripData(kv, log)
	if u, err := identity.Current(); err == nil {
		if err := data.SetUser(u.ID); err != nil {
			_ = kv.Close()
			return nil, nil, err
		}
	}

	cleanup := func() error { return kv.Close() }
	return &App{KV: kv, Identity: identity, Data: data}, cleanup, nil
}

// RequireUser is Open plus a loaded-session check, for commands that only
// make sense when someone is logged in.
func RequireUser(cfg *config.Config) (*App, func() error, error) {
	app, done, err := Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	if !app.Data.Loaded() {
		_ = done()
		return nil, nil, apperr.SessionRequired()
	}
	return app, done, nil
}

func openStore(cfg *config.Config) (repo.KV, error) {
	switch cfg.Storage {
	case config.StorageFiles:
		return fskv.Open(cfg.DataDir)
	default:
		return sqlitekv.Open(filepath.Join(cfg.DataDir, "voyagee.sqlite"))
	}
}
