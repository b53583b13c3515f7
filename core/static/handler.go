package static

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/staticserve/core/handler"
	"github.com/dmitrymomot/staticserve/core/loader"
	"github.com/dmitrymomot/staticserve/core/logger"
	"github.com/dmitrymomot/staticserve/core/response"
)

// Serve creates a handler serving resources according to the mount
// configuration. Only GET and HEAD are answered; on 200 the handler emits
// Content-Type, Last-Modified, optionally Content-Encoding, and the body.
//
// Panics at startup if the configuration has no resource source.
func Serve[C handler.Context](cfg Config) handler.HandlerFunc[C] {
	if cfg.source == nil {
		panic("static.Serve: configuration has no resource source")
	}

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			return cfg.serve(w, r)
		}
	}
}

// Dir creates a handler serving files from a directory.
// Panics at startup if the directory doesn't exist.
func Dir[C handler.Context](root string) handler.HandlerFunc[C] {
	src, err := loader.NewDir(root)
	if err != nil {
		panic("static.Dir: " + err.Error())
	}
	return Serve[C](NewConfig(src))
}

// FS creates a handler serving resources bundled in an fs.FS, including
// embed.FS. Panics at startup if the filesystem is not accessible.
func FS[C handler.Context](fsys fs.FS, opts ...loader.FSOption) handler.HandlerFunc[C] {
	src, err := loader.NewFS(fsys, opts...)
	if err != nil {
		panic("static.FS: " + err.Error())
	}
	return Serve[C](NewConfig(src))
}

func (c Config) serve(w http.ResponseWriter, r *http.Request) error {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return response.ErrMethodNotAllowed
	}

	// The resolver decodes percent-escapes per segment itself, so it must
	// see the still-encoded form. r.URL.Path is already decoded; feeding it
	// in would decode twice and mangle names containing a literal "%".
	out := c.Evaluate(r.Context(), Request{
		Path:            r.URL.EscapedPath(),
		AcceptEncoding:  r.Header.Get("Accept-Encoding"),
		IfModifiedSince: r.Header.Get("If-Modified-Since"),
	})

	switch out.Status {
	case http.StatusBadRequest:
		return response.ErrBadRequest
	case http.StatusNotFound:
		return response.ErrNotFound
	case http.StatusInternalServerError:
		c.logger.LogAttrs(r.Context(), slog.LevelError, "storage fault",
			logger.Component("static"),
			logger.Path(r.URL.Path),
			logger.Error(out.Reason),
		)
		return response.ErrInternalServerError
	case http.StatusNotModified:
		w.WriteHeader(http.StatusNotModified)
		return nil
	}

	v := out.Variant

	var body io.ReadCloser
	if r.Method == http.MethodGet {
		rc, err := c.Open(r.Context(), v)
		if err != nil {
			// The resource vanished between stat and open.
			if errors.Is(err, loader.ErrNotExist) {
				return response.ErrNotFound
			}
			c.logger.LogAttrs(r.Context(), slog.LevelError, "storage fault",
				logger.Component("static"),
				logger.Resource(v.Name),
				logger.Error(err),
			)
			return response.ErrInternalServerError
		}
		body = rc
		defer body.Close()
	}

	h := w.Header()
	h.Set("Content-Type", v.MediaType)
	h.Set("Content-Length", strconv.FormatInt(v.Meta.Size, 10))
	if v.Encoding != "" {
		h.Set("Content-Encoding", v.Encoding)
	}
	if !v.Meta.ModTime.IsZero() {
		h.Set("Last-Modified", v.Meta.ModTime.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)

	if body == nil {
		return nil
	}

	// The read itself counts against the I/O pool; an aborted client write
	// is logged rather than surfaced, since the status line is already out.
	err := c.pool.Exec(r.Context(), func(ctx context.Context) error {
		_, err := io.Copy(w, body)
		return err
	})
	if err != nil {
		c.logger.LogAttrs(r.Context(), slog.LevelDebug, "body write aborted",
			logger.Component("static"),
			logger.Resource(v.Name),
			logger.Error(err),
		)
	}
	return nil
}
