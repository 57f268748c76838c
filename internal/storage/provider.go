// Package storage persists the vocabulary store as an opaque serialized
// blob through a small load/save collaborator interface.
package storage

// Provider is the external persistence collaborator: a durable
// key/value surface. Load's second return reports presence, so an
// absent key is not an error.
type Provider interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
}
