package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache       sync.Map // reflect.Type -> parsed config value
	loadEnvOnce sync.Once
)

// Load parses environment variables into cfg. Each configuration type is
// parsed once per process; subsequent calls for the same type return the
// cached value. A .env file, if present, is loaded before the first parse.
func Load[T any](cfg *T) error {
	loadEnvOnce.Do(func() {
		// Missing .env is fine; real environments set variables directly.
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(*cfg)
	if v, ok := cache.Load(t); ok {
		*cfg = v.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t.String(), err)
	}

	cache.Store(t, *cfg)
	return nil
}

// MustLoad is Load that panics on failure, for use at startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
