package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NethermindEth/prompt-garden/pkg/agent/debug"
	"github.com/NethermindEth/prompt-garden/pkg/agent/queue"
	"github.com/NethermindEth/prompt-garden/pkg/agent/storage"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, queue.NewState(), state)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := storage.NewFileStore(path)

	state := queue.NewState()
	state[queue.CategoryImages].Themes = []string{"Ocean Depths", "Neon Nights"}
	state[queue.CategoryImages].ThemeCounter = 3
	state[queue.CategoryText].QuestionCounter = 12

	require.NoError(t, store.Save(context.Background(), state))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, state, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_LoadNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"text": {"themes": [], "questions": ["q"], "theme_counter": 1, "question_counter": 2}}`), 0600))

	state, err := storage.NewFileStore(path).Load(context.Background())
	require.NoError(t, err)

	assert.Nil(t, state[queue.CategoryText].Themes)
	assert.Equal(t, []string{"q"}, state[queue.CategoryText].Questions)
	assert.Equal(t, &queue.CategoryState{}, state[queue.CategoryImages])
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0600))

	_, err := storage.NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestSealedStore_PlainDebugRoundTrip(t *testing.T) {
	t.Setenv(debug.DebugPlainStateKey, "true")

	store := storage.NewSealedStore(filepath.Join(t.TempDir(), "state.sealed"), nil)

	state, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, queue.NewState(), state)

	state[queue.CategoryText].Questions = []string{"q1"}
	require.NoError(t, store.Save(context.Background(), state))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"q1"}, loaded[queue.CategoryText].Questions)
}

type mockUploader struct {
	uploadJson func(ctx context.Context, json interface{}) (string, error)
}

func (m *mockUploader) UploadJson(ctx context.Context, json interface{}) (string, error) {
	return m.uploadJson(ctx, json)
}

type mockStore struct {
	load func(ctx context.Context) (queue.State, error)
	save func(ctx context.Context, state queue.State) error
}

func (m *mockStore) Load(ctx context.Context) (queue.State, error) {
	return m.load(ctx)
}

func (m *mockStore) Save(ctx context.Context, state queue.State) error {
	return m.save(ctx, state)
}

func TestArchivingStore_Save(t *testing.T) {
	state := queue.NewState()
	state[queue.CategoryText].Themes = []string{"History"}

	t.Run("archives after save", func(t *testing.T) {
		saved := false
		store := storage.NewArchivingStore(
			&mockStore{save: func(ctx context.Context, s queue.State) error {
				saved = true
				return nil
			}},
			&mockUploader{uploadJson: func(ctx context.Context, json interface{}) (string, error) {
				assert.True(t, saved)
				assert.Equal(t, state, json)
				return "QmHash", nil
			}},
		)

		require.NoError(t, store.Save(context.Background(), state))
		assert.Equal(t, "QmHash", store.LastArchive())
	})

	t.Run("upload failure does not fail save", func(t *testing.T) {
		store := storage.NewArchivingStore(
			&mockStore{save: func(ctx context.Context, s queue.State) error { return nil }},
			&mockUploader{uploadJson: func(ctx context.Context, json interface{}) (string, error) {
				return "", assert.AnError
			}},
		)

		require.NoError(t, store.Save(context.Background(), state))
		assert.Empty(t, store.LastArchive())
	})

	t.Run("save failure skips upload", func(t *testing.T) {
		store := storage.NewArchivingStore(
			&mockStore{save: func(ctx context.Context, s queue.State) error { return assert.AnError }},
			&mockUploader{uploadJson: func(ctx context.Context, json interface{}) (string, error) {
				t.Fatal("upload must not run")
				return "", nil
			}},
		)

		assert.ErrorIs(t, store.Save(context.Background(), state), assert.AnError)
	})

	t.Run("load passes through", func(t *testing.T) {
		store := storage.NewArchivingStore(
			&mockStore{load: func(ctx context.Context) (queue.State, error) { return state, nil }},
			&mockUploader{},
		)

		loaded, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, state, loaded)
	})
}
