package storage

import (
	"fmt"

	"github.com/mrlokans/lexitrack/internal/vocabulary"
)

// storeKey is the single key under which the whole store snapshot lives.
// The store is the unit of durability; there is no per-deck persistence.
const storeKey = "anki_data_store"

// StoreRepository loads and saves the vocabulary store through a
// Provider.
type StoreRepository struct {
	provider Provider
}

func NewStoreRepository(provider Provider) *StoreRepository {
	return &StoreRepository{provider: provider}
}

// LoadStore returns the persisted store, or the empty default when
// nothing has been saved yet.
func (r *StoreRepository) LoadStore() (*vocabulary.Store, error) {
	value, ok, err := r.provider.Load(storeKey)
	if err != nil {
		return nil, fmt.Errorf("load store snapshot: %w", err)
	}
	if !ok {
		return vocabulary.NewStore(), nil
	}

	store, err := vocabulary.Decode([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("load store snapshot: %w", err)
	}
	return store, nil
}

// SaveStore persists the full store snapshot.
func (r *StoreRepository) SaveStore(store *vocabulary.Store) error {
	data, err := store.Encode()
	if err != nil {
		return fmt.Errorf("save store snapshot: %w", err)
	}
	if err := r.provider.Save(storeKey, string(data)); err != nil {
		return fmt.Errorf("save store snapshot: %w", err)
	}
	return nil
}
