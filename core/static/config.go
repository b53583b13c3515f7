package static

import (
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/staticserve/core/loader"
	"github.com/dmitrymomot/staticserve/pkg/async"
)

// Config describes a single mount of the static serving pipeline: the URL
// prefix it answers under, the sub-path of the resource root it serves from,
// the gzip preference, and the resource source.
//
// Config is an immutable value. The WithX methods return modified copies,
// so a constructed Config can be shared across arbitrarily many concurrent
// requests without synchronization.
type Config struct {
	prefix     []string
	base       []string
	preferGzip bool
	source     loader.Loader
	pool       *async.Pool
	logger     *slog.Logger
}

// NewConfig creates a mount configuration serving from the given source.
func NewConfig(source loader.Loader) Config {
	return Config{
		source: source,
		pool:   async.NewPool(0),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithPrefix returns a copy answering only under the given URL prefix.
// The prefix is stripped segment-wise before resolving, so "/assets" matches
// "/assets/app.css" but never "/assetsDir/app.css".
func (c Config) WithPrefix(prefix string) Config {
	c.prefix = splitSegments(prefix)
	return c
}

// WithBasePath returns a copy resolving all requests under the given
// sub-path of the source root.
func (c Config) WithBasePath(base string) Config {
	c.base = splitSegments(base)
	return c
}

// WithPreferGzip returns a copy that probes for pre-compressed ".gz"
// siblings when the client accepts gzip.
func (c Config) WithPreferGzip(prefer bool) Config {
	c.preferGzip = prefer
	return c
}

// WithSource returns a copy with the resource source replaced. Every lookup
// goes through the configured source; there is no fallback to a default.
func (c Config) WithSource(source loader.Loader) Config {
	c.source = source
	return c
}

// WithPool returns a copy issuing blocking I/O through the given pool.
func (c Config) WithPool(pool *async.Pool) Config {
	if pool != nil {
		c.pool = pool
	}
	return c
}

// WithLogger returns a copy logging storage faults to the given logger.
func (c Config) WithLogger(log *slog.Logger) Config {
	if log != nil {
		c.logger = log
	}
	return c
}

// splitSegments breaks a configuration path into its non-empty segments.
func splitSegments(p string) []string {
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}
