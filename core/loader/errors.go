package loader

import "errors"

// ErrNotExist is returned by Open when the named resource is absent.
// I/O faults are returned as separate errors and never wrap ErrNotExist.
var ErrNotExist = errors.New("loader: resource does not exist")
