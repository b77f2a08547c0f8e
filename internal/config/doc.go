// Package config loads, normalizes, and validates artgallery configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// ARTGALLERY_CATALOG_URL. Commands obtain every setting through the Config
// type so the catalog client, image resolver, UI, and logger see sanitized
// values and clear validation errors.
package config
