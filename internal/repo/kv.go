package repo

import "errors"

// ErrKeyNotFound is returned by KV.Get when no value exists under the key.
var ErrKeyNotFound = errors.New("key not found")

// KV is the persistence port of the data layer: a flat key-value store of
// JSON documents. Every implementation must make Set atomic at the
// granularity of one key: a reader never observes a half-written value.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Remove deletes the value under key. Removing an absent key is not an
	// error.
	Remove(key string) error
	// Close releases any underlying resources.
	Close() error
}
