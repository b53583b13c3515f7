package main

import "log/slog"

// appConfig selects the resource source and shapes the static mount.
type appConfig struct {
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	// Source selects the resource backend: "dir" or "s3".
	Source string `env:"STATIC_SOURCE" envDefault:"dir"`

	// Root is the served directory when Source is "dir".
	Root string `env:"STATIC_ROOT" envDefault:"./public"`

	Prefix     string `env:"STATIC_PREFIX"`
	BasePath   string `env:"STATIC_BASE_PATH"`
	PreferGzip bool   `env:"STATIC_PREFER_GZIP" envDefault:"true"`
	PoolSize   int    `env:"STATIC_POOL_SIZE"`
}
