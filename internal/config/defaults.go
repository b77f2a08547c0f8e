package config

const (
	defaultConfigPath     = "~/.config/artgallery/config.toml"
	projectConfigName     = "artgallery.toml"
	defaultCatalogURL     = "https://cdn.accelonline.io/OUR6G_IgJkCvBg5qurB2Ag/files/YPHn3cnKEk2NutI6fHK04Q.json"
	defaultTimeoutSeconds = 15
	defaultMaxBytes       = 8 << 20
	defaultUserAgent      = "artgallery/dev"
	defaultImagesDir      = "~/.local/share/artgallery/images"
	defaultLogDirFallback = "~/.local/state/artgallery/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultRetentionDays  = 14
)

// Environment variables that override file values when set.
const (
	EnvCatalogURL = "ARTGALLERY_CATALOG_URL"
	EnvImagesDir  = "ARTGALLERY_IMAGES_DIR"
	EnvLogLevel   = "ARTGALLERY_LOG_LEVEL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			URL:            defaultCatalogURL,
			TimeoutSeconds: defaultTimeoutSeconds,
			MaxBytes:       defaultMaxBytes,
			UserAgent:      defaultUserAgent,
		},
		Images: Images{
			Dir: defaultImagesDir,
		},
		UI: UI{
			AltScreen: true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			Dir:           defaultLogDir(),
			RetentionDays: defaultRetentionDays,
		},
	}
}
