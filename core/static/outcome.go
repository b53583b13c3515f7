package static

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrymomot/staticserve/core/loader"
	"github.com/dmitrymomot/staticserve/pkg/async"
)

// Request carries the negotiation inputs the pipeline consumes from the
// HTTP layer: the raw URL path and the two cache/encoding headers.
type Request struct {
	Path            string
	AcceptEncoding  string
	IfModifiedSince string
}

// Outcome is the terminal result of evaluating a request against a mount.
// Status is one of 200, 304, 400, 404, or 500. Variant is populated for
// 200 and 304; Reason carries the rejection or fault for 400 and 500.
type Outcome struct {
	Status  int
	Variant Variant
	Reason  error
}

// Evaluate runs the full pipeline for one request: resolve, stat, negotiate,
// conditional check. Every state is terminal; nothing is written and nothing
// is retried. Storage faults surface as 500, never as 404.
func (c Config) Evaluate(ctx context.Context, req Request) Outcome {
	name, err := c.Resolve(req.Path)
	switch {
	case err == nil:
	case errors.Is(err, ErrNoMatch):
		return Outcome{Status: http.StatusNotFound, Reason: err}
	default:
		return Outcome{Status: http.StatusBadRequest, Reason: err}
	}

	meta, err := c.stat(ctx, name)
	if err != nil {
		return Outcome{Status: http.StatusInternalServerError, Reason: err}
	}
	if !meta.Exists || meta.IsDir {
		return Outcome{Status: http.StatusNotFound, Reason: ErrNoMatch}
	}

	variant, err := c.negotiate(ctx, name, req.AcceptEncoding, meta)
	if err != nil {
		return Outcome{Status: http.StatusInternalServerError, Reason: err}
	}

	if !modifiedSince(variant.Meta.ModTime, req.IfModifiedSince) {
		return Outcome{Status: http.StatusNotModified, Variant: variant}
	}

	return Outcome{Status: http.StatusOK, Variant: variant}
}

// Open returns the byte source for a chosen variant. Like all resource
// access it is issued through the bounded I/O pool.
func (c Config) Open(ctx context.Context, v Variant) (io.ReadCloser, error) {
	return async.Call(ctx, c.pool, func(ctx context.Context) (io.ReadCloser, error) {
		return c.source.Open(ctx, v.Name)
	})
}

// stat issues a single lookup through the configured source on the I/O pool.
func (c Config) stat(ctx context.Context, name string) (loader.Metadata, error) {
	return async.Call(ctx, c.pool, func(ctx context.Context) (loader.Metadata, error) {
		return c.source.Stat(ctx, name)
	})
}
