// Package config provides type-safe environment variable loading with
// caching. Each configuration type is loaded once and cached for subsequent
// calls. A .env file is loaded automatically on first use.
//
//	type ServeConfig struct {
//		Root       string `env:"STATIC_ROOT" envDefault:"./public"`
//		PreferGzip bool   `env:"STATIC_PREFER_GZIP" envDefault:"true"`
//	}
//
//	var cfg ServeConfig
//	config.MustLoad(&cfg)
package config
