package common

import "time"

// Cache is the read-through store behind the reference-data endpoints. A
// backend failure behaves as a miss, never as an error.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(key string) (interface{}, bool)

	// Set stores a value under key for the given TTL.
	Set(key string, value interface{}, duration time.Duration)
}
