package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lexitrack/internal/entities"
	"github.com/mrlokans/lexitrack/internal/vocabulary"
)

type memoryProvider struct {
	values  map[string]string
	loadErr error
	saveErr error
}

func newMemoryProvider() *memoryProvider {
	return &memoryProvider{values: map[string]string{}}
}

func (p *memoryProvider) Load(key string) (string, bool, error) {
	if p.loadErr != nil {
		return "", false, p.loadErr
	}
	value, ok := p.values[key]
	return value, ok, nil
}

func (p *memoryProvider) Save(key, value string) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.values[key] = value
	return nil
}

func TestSQLiteProviderRoundTrip(t *testing.T) {
	provider, err := NewSQLiteProvider(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer provider.Close()

	_, ok, err := provider.Load("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, provider.Save("greeting", "hola"))
	require.NoError(t, provider.Save("greeting", "buenos días"))

	value, ok, err := provider.Load("greeting")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "buenos días", value)

	assert.NoError(t, provider.Ping())
}

func TestStoreRepositoryRoundTrip(t *testing.T) {
	repo := NewStoreRepository(newMemoryProvider())

	store := vocabulary.NewStore()
	store.AddDeck(entities.Deck{
		Name:       "Spanish",
		ImportedAt: time.Now(),
		Vocabulary: []entities.VocabularyItem{
			{Word: "hola", IntervalDays: 120, EaseFactor: entities.DefaultEaseFactor, State: entities.CardStateReview, SourceText: "hola"},
		},
	})
	require.NoError(t, repo.SaveStore(store))

	loaded, err := repo.LoadStore()
	require.NoError(t, err)
	require.Len(t, loaded.Decks, 1)
	assert.Equal(t, "Spanish", loaded.Decks[0].Name)
	assert.Len(t, loaded.MasteryLevels.Mastered, 1)
}

func TestStoreRepositoryEmptyDefault(t *testing.T) {
	repo := NewStoreRepository(newMemoryProvider())

	store, err := repo.LoadStore()
	require.NoError(t, err)
	assert.Empty(t, store.Decks)
	assert.Zero(t, store.TotalCards)
}

func TestStoreRepositorySurfacesProviderErrors(t *testing.T) {
	provider := newMemoryProvider()
	provider.loadErr = errors.New("disk gone")
	repo := NewStoreRepository(provider)

	_, err := repo.LoadStore()
	assert.Error(t, err)

	provider.loadErr = nil
	provider.saveErr = errors.New("disk gone")
	assert.Error(t, repo.SaveStore(vocabulary.NewStore()))
}

func TestStoreRepositoryRejectsCorruptSnapshot(t *testing.T) {
	provider := newMemoryProvider()
	provider.values[storeKey] = "{broken"
	repo := NewStoreRepository(provider)

	_, err := repo.LoadStore()
	assert.Error(t, err)
}
