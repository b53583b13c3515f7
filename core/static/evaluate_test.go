package static_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/staticserve/core/loader"
	"github.com/dmitrymomot/staticserve/core/static"
)

// countingLoader wraps a Loader and records every lookup, so tests can
// verify that an override receives each access exactly once.
type countingLoader struct {
	inner loader.Loader

	mu    sync.Mutex
	stats map[string]int
	opens map[string]int
}

func newCountingLoader(inner loader.Loader) *countingLoader {
	return &countingLoader{
		inner: inner,
		stats: make(map[string]int),
		opens: make(map[string]int),
	}
}

func (c *countingLoader) Stat(ctx context.Context, name string) (loader.Metadata, error) {
	c.mu.Lock()
	c.stats[name]++
	c.mu.Unlock()
	return c.inner.Stat(ctx, name)
}

func (c *countingLoader) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	c.mu.Lock()
	c.opens[name]++
	c.mu.Unlock()
	return c.inner.Open(ctx, name)
}

func (c *countingLoader) statCount(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats[name]
}

func (c *countingLoader) openCount(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opens[name]
}

func (c *countingLoader) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.stats {
		n += v
	}
	for _, v := range c.opens {
		n += v
	}
	return n
}

// faultLoader simulates broken storage: every operation fails with an I/O
// fault that is not "not found".
type faultLoader struct{}

func (faultLoader) Stat(ctx context.Context, name string) (loader.Metadata, error) {
	return loader.Metadata{}, errors.New("disk on fire")
}

func (faultLoader) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return nil, errors.New("disk on fire")
}

func siteFS(modTime time.Time) fstest.MapFS {
	return fstest.MapFS{
		"testresource.txt":   {Data: []byte("plain content"), Mode: 0644, ModTime: modTime},
		"100%.txt":           {Data: []byte("percent file"), Mode: 0644, ModTime: modTime},
		"testDir/nested.txt": {Data: []byte("nested content"), Mode: 0644, ModTime: modTime},
		"styles.css":         {Data: []byte("body { color: red; }"), Mode: 0644, ModTime: modTime},
		"styles.css.gz":      {Data: []byte("gzipped css bytes"), Mode: 0644, ModTime: modTime},
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	modTime := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	newConfig := func(t *testing.T) static.Config {
		t.Helper()
		src, err := loader.NewFS(siteFS(modTime))
		require.NoError(t, err)
		return static.NewConfig(src)
	}

	t.Run("existing_resource_without_headers", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).Evaluate(context.Background(), static.Request{Path: "/testresource.txt"})

		assert.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, "testresource.txt", out.Variant.Name)
		assert.Empty(t, out.Variant.Encoding)
		assert.Equal(t, "text/plain; charset=utf-8", out.Variant.MediaType)
		assert.Equal(t, int64(len("plain content")), out.Variant.Meta.Size)
	})

	t.Run("missing_resource", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).Evaluate(context.Background(), static.Request{Path: "/missing.txt"})
		assert.Equal(t, http.StatusNotFound, out.Status)
	})

	t.Run("directory_is_not_found", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).Evaluate(context.Background(), static.Request{Path: "/testDir"})
		assert.Equal(t, http.StatusNotFound, out.Status)
	})

	t.Run("traversal_is_bad_request", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).Evaluate(context.Background(), static.Request{Path: "/testDir/../testresource.txt"})
		assert.Equal(t, http.StatusBadRequest, out.Status)
		assert.ErrorIs(t, out.Reason, static.ErrTraversal)
	})

	t.Run("storage_fault_is_server_error_not_404", func(t *testing.T) {
		t.Parallel()

		cfg := static.NewConfig(faultLoader{})
		out := cfg.Evaluate(context.Background(), static.Request{Path: "/testresource.txt"})

		assert.Equal(t, http.StatusInternalServerError, out.Status)
		assert.Error(t, out.Reason)
	})

	t.Run("gzip_sibling_served_when_preferred_and_accepted", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).WithPreferGzip(true).Evaluate(context.Background(), static.Request{
			Path:           "/styles.css",
			AcceptEncoding: "gzip, deflate, br",
		})

		assert.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, "styles.css.gz", out.Variant.Name)
		assert.Equal(t, "gzip", out.Variant.Encoding)
		// Media type derives from the original extension, not from ".gz".
		assert.Equal(t, "text/css; charset=utf-8", out.Variant.MediaType)
	})

	t.Run("identity_when_no_gzip_sibling", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).WithPreferGzip(true).Evaluate(context.Background(), static.Request{
			Path:           "/testresource.txt",
			AcceptEncoding: "gzip",
		})

		assert.Equal(t, http.StatusOK, out.Status)
		assert.Equal(t, "testresource.txt", out.Variant.Name)
		assert.Empty(t, out.Variant.Encoding)
	})

	t.Run("identity_when_gzip_not_preferred", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).Evaluate(context.Background(), static.Request{
			Path:           "/styles.css",
			AcceptEncoding: "gzip",
		})

		assert.Equal(t, "styles.css", out.Variant.Name)
		assert.Empty(t, out.Variant.Encoding)
	})

	t.Run("identity_when_client_refuses_gzip", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).WithPreferGzip(true).Evaluate(context.Background(), static.Request{
			Path:           "/styles.css",
			AcceptEncoding: "gzip;q=0, identity",
		})

		assert.Equal(t, "styles.css", out.Variant.Name)
		assert.Empty(t, out.Variant.Encoding)
	})

	t.Run("wildcard_encoding_admits_gzip", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).WithPreferGzip(true).Evaluate(context.Background(), static.Request{
			Path:           "/styles.css",
			AcceptEncoding: "*",
		})

		assert.Equal(t, "gzip", out.Variant.Encoding)
	})

	t.Run("specific_gzip_refusal_outranks_wildcard", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).WithPreferGzip(true).Evaluate(context.Background(), static.Request{
			Path:           "/styles.css",
			AcceptEncoding: "*, gzip;q=0",
		})

		assert.Equal(t, "styles.css", out.Variant.Name)
		assert.Empty(t, out.Variant.Encoding)
	})

	t.Run("if_modified_since_at_modtime_is_fresh", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).Evaluate(context.Background(), static.Request{
			Path:            "/testresource.txt",
			IfModifiedSince: modTime.Format(http.TimeFormat),
		})

		assert.Equal(t, http.StatusNotModified, out.Status)
	})

	t.Run("if_modified_since_before_modtime_is_stale", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).Evaluate(context.Background(), static.Request{
			Path:            "/testresource.txt",
			IfModifiedSince: modTime.Add(-time.Hour).Format(http.TimeFormat),
		})

		assert.Equal(t, http.StatusOK, out.Status)
	})

	t.Run("far_future_if_modified_since_is_always_fresh", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).Evaluate(context.Background(), static.Request{
			Path:            "/testresource.txt",
			IfModifiedSince: time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC).Format(http.TimeFormat),
		})

		assert.Equal(t, http.StatusNotModified, out.Status)
	})

	t.Run("unparsable_if_modified_since_serves_full_body", func(t *testing.T) {
		t.Parallel()

		out := newConfig(t).Evaluate(context.Background(), static.Request{
			Path:            "/testresource.txt",
			IfModifiedSince: "not a date",
		})

		assert.Equal(t, http.StatusOK, out.Status)
	})
}

func TestSourceOverride(t *testing.T) {
	t.Parallel()

	modTime := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("every_lookup_routes_through_the_override_exactly_once", func(t *testing.T) {
		t.Parallel()

		deflt, err := loader.NewFS(siteFS(modTime))
		require.NoError(t, err)
		trackedDefault := newCountingLoader(deflt)

		inner, err := loader.NewFS(siteFS(modTime))
		require.NoError(t, err)
		override := newCountingLoader(inner)

		cfg := static.NewConfig(trackedDefault).
			WithPreferGzip(true).
			WithSource(override)

		out := cfg.Evaluate(context.Background(), static.Request{
			Path:           "/styles.css",
			AcceptEncoding: "gzip",
		})
		require.Equal(t, http.StatusOK, out.Status)

		rc, err := cfg.Open(context.Background(), out.Variant)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		// One stat for the identity resource, one for the sibling probe,
		// one open for the chosen variant.
		assert.Equal(t, 1, override.statCount("styles.css"))
		assert.Equal(t, 1, override.statCount("styles.css.gz"))
		assert.Equal(t, 1, override.openCount("styles.css.gz"))
		assert.Equal(t, 3, override.total())

		// The replaced default must never be consulted.
		assert.Zero(t, trackedDefault.total())
	})
}
