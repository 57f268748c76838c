package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lexitrack/internal/anki"
	"github.com/mrlokans/lexitrack/internal/entities"
	"github.com/mrlokans/lexitrack/internal/vocabulary"
)

type fakeRepository struct {
	saved    *vocabulary.Store
	saveErr  error
	loadErr  error
	saveCnt  int
	loadBase *vocabulary.Store
}

func (r *fakeRepository) LoadStore() (*vocabulary.Store, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.loadBase != nil {
		return r.loadBase, nil
	}
	return vocabulary.NewStore(), nil
}

func (r *fakeRepository) SaveStore(store *vocabulary.Store) error {
	r.saveCnt++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = store
	return nil
}

func newService(t *testing.T, repo *fakeRepository) *ImportService {
	t.Helper()
	service, err := NewImportService(repo)
	require.NoError(t, err)
	return service
}

func TestImportTabularCommitsDeck(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(t, repo)

	result := service.ImportTabular("Spanish", "Hola,Hello\nAdiós,Goodbye\n", entities.TierFamiliar)

	require.True(t, result.Success)
	assert.Equal(t, "Spanish", result.DeckName)
	assert.Equal(t, 2, result.CardCount)
	assert.Equal(t, 2, result.VocabularyCount)

	require.NotNil(t, repo.saved)
	assert.Len(t, service.Store().Decks, 1)
	assert.Same(t, repo.saved, service.Store(), "the persisted snapshot must be the live one")
}

func TestImportTabularFailureLeavesStoreUntouched(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(t, repo)
	require.True(t, service.ImportTabular("Keep", "uno,one\n", entities.TierNew).Success)

	repo.saveErr = errors.New("disk full")
	before := service.Store()

	result := service.ImportTabular("Doomed", "dos,two\n", entities.TierNew)

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, "disk full")
	assert.Same(t, before, service.Store(), "a failed persist must not swap the snapshot")
	require.Len(t, service.Store().Decks, 1)
	assert.Equal(t, "Keep", service.Store().Decks[0].Name)
}

func TestImportTabularRejectsUnknownTier(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(t, repo)

	result := service.ImportTabular("Spanish", "Hola,Hello\n", entities.MasteryTier("bogus"))

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.ErrorMessage)
	assert.Zero(t, repo.saveCnt, "nothing may be persisted on a parse failure")
}

func TestImportArchiveSurfacesCodecErrors(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(t, repo)

	result := service.ImportArchive("Spanish", []byte("not a zip archive"))

	assert.False(t, result.Success)
	assert.Contains(t, result.ErrorMessage, anki.ErrCorruptArchive.Error())
	assert.Zero(t, repo.saveCnt)
}

func TestRemoveDeck(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(t, repo)
	require.True(t, service.ImportTabular("Spanish", "Hola,Hello\n", entities.TierNew).Success)

	removed, err := service.RemoveDeck("Spanish")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, service.Store().Decks)

	removed, err = service.RemoveDeck("Spanish")
	require.NoError(t, err)
	assert.False(t, removed, "removing an absent deck must report false without persisting")
}

func TestClearAll(t *testing.T) {
	repo := &fakeRepository{}
	service := newService(t, repo)
	require.True(t, service.ImportTabular("Spanish", "Hola,Hello\n", entities.TierNew).Success)

	require.NoError(t, service.ClearAll())
	assert.Empty(t, service.Store().Decks)
	assert.Zero(t, service.Store().TotalCards)
}

func TestNewImportServicePropagatesLoadError(t *testing.T) {
	repo := &fakeRepository{loadErr: errors.New("locked")}

	_, err := NewImportService(repo)
	assert.Error(t, err)
}
