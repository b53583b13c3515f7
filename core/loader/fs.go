package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// FS is a Loader over any fs.FS, including embed.FS. It serves bundled
// resources compiled into the binary the same way Dir serves a directory.
type FS struct {
	fsys fs.FS
}

// FSOption configures an FS loader.
type FSOption func(*FS) error

// WithSub serves resources from a subdirectory within the filesystem.
// The path uses forward slashes regardless of OS.
func WithSub(path string) FSOption {
	return func(l *FS) error {
		sub, err := fs.Sub(l.fsys, path)
		if err != nil {
			return fmt.Errorf("loader: invalid sub-path %q: %w", path, err)
		}
		l.fsys = sub
		return nil
	}
}

// NewFS creates a loader over the given filesystem. It fails fast if the
// filesystem root is not accessible.
func NewFS(fsys fs.FS, opts ...FSOption) (*FS, error) {
	l := &FS{fsys: fsys}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	if _, err := fs.Stat(l.fsys, "."); err != nil {
		return nil, fmt.Errorf("loader: filesystem is not accessible: %w", err)
	}

	return l, nil
}

// Stat returns metadata for the named resource. A missing resource yields
// Metadata{Exists: false} with a nil error.
func (l *FS) Stat(ctx context.Context, name string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}

	info, err := fs.Stat(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return Metadata{}, nil
		}
		return Metadata{}, fmt.Errorf("loader: stat %s: %w", name, err)
	}

	return Metadata{
		Exists:  true,
		IsDir:   info.IsDir(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Open returns a reader for the named resource, or ErrNotExist if absent.
func (l *FS) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("loader: open %s: %w", name, err)
	}

	return f, nil
}
