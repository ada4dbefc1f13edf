package engine

import "errors"

// ErrNilRegistry indicates New was called with a nil *metrics.Registry.
var ErrNilRegistry = errors.New("engine: registry is nil")

// ErrNilStore indicates New was called with a nil *graphstore.Store.
var ErrNilStore = errors.New("engine: store is nil")
