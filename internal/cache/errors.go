package cache

import "errors"

var (
	// ErrCacheMiss indicates the requested key was not found in cache
	ErrCacheMiss = errors.New("cache: key not found")

	// ErrFetchPanic wraps a panic raised by a GetWithFetch fetch function
	ErrFetchPanic = errors.New("cache: fetch panicked")
)
