package relax

import "errors"

// Sentinel errors for the relax package.
var (
	// ErrNilTable indicates a nil *paths.Table was passed to a driver
	// entry point.
	ErrNilTable = errors.New("relax: table is nil")

	// ErrNilStore indicates a nil *graphstore.Store was passed to a driver
	// entry point.
	ErrNilStore = errors.New("relax: store is nil")

	// ErrUnknownSource indicates OptimizeSourceByIndex was called with an index
	// outside the store's declared node range.
	ErrUnknownSource = errors.New("relax: unknown source index")
)
