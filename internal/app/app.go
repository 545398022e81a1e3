package app

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/Kriegslustig/lamport"
	"github.com/Kriegslustig/lamport/internal/crypto"
	"github.com/Kriegslustig/lamport/internal/log"
	"github.com/Kriegslustig/lamport/internal/store"
)

// App bundles the scheme, key store and logger for the CLI.
type App struct {
	Config Config
	Scheme *lamport.Scheme
	Keys   *store.KeyFileStore
	Logger *slog.Logger
}

// New constructs the dependency graph from cfg. Logs go to logOut.
func New(cfg Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, err := log.New(logOut, lvl, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	provider, err := crypto.NewProvider(cfg.Hash, nil)
	if err != nil {
		return nil, err
	}
	opts := []lamport.Option{
		lamport.WithProvider(provider),
		lamport.WithParallelism(cfg.Parallelism),
		lamport.WithLogger(logger.With("hash", provider.Algorithm())),
	}
	if cfg.ConstantTime {
		opts = append(opts, lamport.WithConstantTimeVerify())
	}

	return &App{
		Config: cfg,
		Scheme: lamport.New(opts...),
		Keys:   store.NewKeyFileStore(filepath.Join(cfg.Home, "keys")),
		Logger: logger,
	}, nil
}
