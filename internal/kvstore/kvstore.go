// Package kvstore defines a minimal key-value storage contract with
// in-memory and single-file JSON backends. It is the pluggable substrate
// the offline persistence shim runs on.
package kvstore

// Store is a flat key-value store holding raw JSON values.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys returns all stored keys in unspecified order.
	Keys() ([]string, error)
}
