package storage

// KV is the persistence adapter the planner writes its collections
// through: a synchronous local key-value store of JSON blobs, one blob
// per entity collection.
type KV interface {
	// Get returns the blob stored under key. ok is false when the key
	// has never been written.
	Get(key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous blob.
	Set(key string, value []byte) error
}
