package loader

import (
	"context"
	"io"
	"time"
)

// Metadata describes a resource at the moment of a Stat call.
// It is obtained fresh per request and never cached.
type Metadata struct {
	Exists  bool
	IsDir   bool
	Size    int64
	ModTime time.Time
}

// Loader abstracts where resource bytes live. Names are canonical
// slash-separated paths relative to the loader's root; validation of the
// name happens before the loader is called.
//
// Stat reports a missing resource as Metadata{Exists: false} with a nil
// error. Open reports it as ErrNotExist. Any other failure is an I/O fault
// and is returned as a distinct non-nil error, never conflated with absence.
type Loader interface {
	Stat(ctx context.Context, name string) (Metadata, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
