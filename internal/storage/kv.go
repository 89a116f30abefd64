// ABOUTME: Interface definition for the durable key-value store.
// ABOUTME: Defines the contract for reading and overwriting whole values under a named key.
package storage

// KV defines a local key-value store holding opaque byte values.
type KV interface {
	// Get returns the value stored under key. ok is false when the key does not exist.
	Get(key string) (value []byte, ok bool, err error)

	// Set overwrites the value under key.
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases any resources held by the store.
	Close() error
}
