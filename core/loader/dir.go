package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir is a filesystem-rooted Loader. All names are resolved relative to the
// root directory; the caller is responsible for supplying canonical names
// that cannot escape it.
type Dir struct {
	root string
}

// NewDir creates a filesystem-backed loader rooted at the given directory.
// It fails fast if the root does not exist or is not a directory.
func NewDir(root string) (*Dir, error) {
	cleanRoot := filepath.Clean(root)

	info, err := os.Stat(cleanRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("loader: directory does not exist: %s", cleanRoot)
		}
		return nil, fmt.Errorf("loader: error accessing directory %s: %w", cleanRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("loader: path is not a directory: %s", cleanRoot)
	}

	return &Dir{root: cleanRoot}, nil
}

// Root returns the directory all names are resolved against.
func (d *Dir) Root() string {
	return d.root
}

// Stat returns metadata for the named resource. A missing resource yields
// Metadata{Exists: false} with a nil error.
func (d *Dir) Stat(ctx context.Context, name string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}

	info, err := os.Stat(filepath.Join(d.root, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
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
func (d *Dir) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(d.root, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("loader: open %s: %w", name, err)
	}

	return f, nil
}
