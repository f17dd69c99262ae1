package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

func TestMemoryHolderLifecycle(t *testing.T) {
	ctx := context.Background()
	holder := NewMemoryHolder()

	got, err := holder.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got, "unknown session id resolves to absent")

	amy := domain.User{Name: "Amy", Email: "amy@a.edu", Role: domain.RoleStudent}
	require.NoError(t, holder.Put(ctx, "sid-1", amy))

	got, err = holder.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, amy, *got)

	require.NoError(t, holder.Delete(ctx, "sid-1"))
	got, err = holder.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Delete is idempotent.
	require.NoError(t, holder.Delete(ctx, "sid-1"))
}

func TestMemoryHolderOverwritesSlot(t *testing.T) {
	ctx := context.Background()
	holder := NewMemoryHolder()

	require.NoError(t, holder.Put(ctx, "sid-1", domain.User{Email: "amy@a.edu"}))
	require.NoError(t, holder.Put(ctx, "sid-1", domain.User{Email: "bob@a.edu"}))

	got, err := holder.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "bob@a.edu", got.Email, "at most one record per session id")
}
