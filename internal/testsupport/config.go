package testsupport

import (
	"path/filepath"
	"testing"

	"artgallery/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Catalog.URL = "http://127.0.0.1:1/catalog.json"
	cfgVal.Catalog.TimeoutSeconds = 5
	cfgVal.Images.Dir = filepath.Join(base, "images")
	cfgVal.Logging.Dir = filepath.Join(base, "logs")
	cfgVal.UI.AltScreen = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCatalogURL points the test config at a catalog server.
func WithCatalogURL(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.URL = url
	}
}

// WithLogLevel overrides the logging level on the test config.
func WithLogLevel(level string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
	}
}

// WithImages writes PNG fixtures of the given sizes into the images
// directory, keyed by identifier.
func WithImages(sizes map[string][2]int) ConfigOption {
	return func(b *configBuilder) {
		b.t.Helper()
		for name, size := range sizes {
			WritePNG(b.t, filepath.Join(b.cfg.Images.Dir, name+".png"), size[0], size[1])
		}
	}
}

// WithLogFormat overrides the logging format on the test config.
func WithLogFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Format = format
	}
}
