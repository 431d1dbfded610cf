package chainedhashmap

import "github.com/gostonefire/chainedhashmap/internal/table"

// AlreadyInitialised - Custom error raised by the underlying bucket table when it is initialised twice.
// No HashMap method initialises an existing map, so it only surfaces through errors.Is on wrapped table errors.
type AlreadyInitialised = table.AlreadyInitialised

// InvalidArgument - Custom error returned for out of range sizing arguments, match it using errors.Is
type InvalidArgument = table.InvalidArgument
