package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	c.normalizeCatalog()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnv() {
	if value, ok := os.LookupEnv(EnvCatalogURL); ok && strings.TrimSpace(value) != "" {
		c.Catalog.URL = value
	}
	if value, ok := os.LookupEnv(EnvImagesDir); ok && strings.TrimSpace(value) != "" {
		c.Images.Dir = value
	}
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
}

func (c *Config) normalizeCatalog() {
	c.Catalog.URL = strings.TrimSpace(c.Catalog.URL)
	if c.Catalog.URL == "" {
		c.Catalog.URL = defaultCatalogURL
	}
	c.Catalog.UserAgent = strings.TrimSpace(c.Catalog.UserAgent)
	if c.Catalog.UserAgent == "" {
		c.Catalog.UserAgent = defaultUserAgent
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Images.Dir) == "" {
		c.Images.Dir = defaultImagesDir
	}
	if c.Images.Dir, err = expandPath(strings.TrimSpace(c.Images.Dir)); err != nil {
		return fmt.Errorf("images.dir: %w", err)
	}
	if strings.TrimSpace(c.Logging.Dir) == "" {
		c.Logging.Dir = defaultLogDir()
	}
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
