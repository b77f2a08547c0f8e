package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"artgallery/internal/config"
	"artgallery/internal/fetch"
	"artgallery/internal/images"
	"artgallery/internal/logging"
	"artgallery/internal/store"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = fmt.Errorf("--log-level: %w", err)
					return
				}
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// session bundles what one command invocation needs to reach the catalog.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *store.Store
	resolver images.Resolver
}

func (c *commandContext) openSession(cmd *cobra.Command, dest logging.Destination) (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	logger, logPath, err := logging.NewFromConfig(cfg, dest, logging.String(logging.FieldCommand, cmd.CommandPath()))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	logging.PruneSessionLogs(logger, cfg.Logging.Dir, cfg.Logging.RetentionDays, logPath)

	client, err := fetch.New(
		cfg.Catalog.URL,
		fetch.WithTimeout(cfg.CatalogTimeout()),
		fetch.WithUserAgent(cfg.Catalog.UserAgent),
		fetch.WithMaxBytes(cfg.Catalog.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("catalog client: %w", err)
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		store:    store.New(client, logger),
		resolver: images.NewDirResolver(cfg.Images.Dir, logger),
	}, nil
}

// loadCatalog opens a stderr-mirrored session and performs the single fetch.
func (c *commandContext) loadCatalog(cmd *cobra.Command) (*session, error) {
	sess, err := c.openSession(cmd, logging.StderrAndFile)
	if err != nil {
		return nil, err
	}
	if err := sess.store.LoadSync(cmd.Context()); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return sess, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
