package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func TestMemoryStoreLoadAbsent(t *testing.T) {
	store := NewMemoryStore()
	data, err := store.Load(context.Background(), UsersCollection)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, ProjectsCollection, []byte(`[1]`)))
	require.NoError(t, store.Save(ctx, ProjectsCollection, []byte(`[2]`)))

	data, err := store.Load(ctx, ProjectsCollection)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), data)
}

func TestMemoryStoreReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, UsersCollection, []byte(`[]`)))

	data, err := store.Load(ctx, UsersCollection)
	require.NoError(t, err)
	data[0] = 'x'

	again, err := store.Load(ctx, UsersCollection)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), again)
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	data, err := store.Load(ctx, UsersCollection)
	require.NoError(t, err)
	assert.Nil(t, data, "never-written collection loads as absent")

	blob := []byte(`[{"name":"Amy","email":"amy@a.edu"}]`)
	require.NoError(t, store.Save(ctx, UsersCollection, blob))

	loaded, err := store.Load(ctx, UsersCollection)
	require.NoError(t, err)
	assert.Equal(t, blob, loaded)

	// Full overwrite, no merge.
	require.NoError(t, store.Save(ctx, UsersCollection, []byte(`[]`)))
	loaded, err = store.Load(ctx, UsersCollection)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), loaded)
}
