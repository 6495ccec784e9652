package cmd

import (
	"fmt"
	"os"

	"algoway/pkg/api"
	"algoway/pkg/cache"
	"algoway/pkg/config"
	"algoway/pkg/logging"
	"algoway/pkg/query"

	"github.com/sirupsen/logrus"
)

// app bundles everything one command needs to talk to the route service
type app struct {
	cfg        *config.AppConfig
	logger     *logrus.Logger
	cache      cache.Cache
	client     *api.Client
	controller *query.Controller
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, err := cache.New(cfg.CacheDuration(), cfg.RedisAddr)
	if err != nil {
		// A cache is optional; fall back to talking to the service directly
		logger.WithError(err).Warn("cache unavailable, continuing without it")
		store = cache.NewNoOpCache()
	}

	client := api.NewClient(api.Options{
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout(),
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
		Cache:             store,
		Logger:            logger,
	})

	ctl := query.NewController(client, logger)
	if s := cfg.Sort(); s != "" {
		ctl.SetSortCriterion(s)
	}

	return &app{
		cfg:        cfg,
		logger:     logger,
		cache:      store,
		client:     client,
		controller: ctl,
	}, nil
}

func (a *app) Close() {
	if err := a.cache.Close(); err != nil {
		a.logger.WithError(err).Warn("closing cache")
	}
}
