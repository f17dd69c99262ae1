package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/persistence"
)

func TestUserCollectionLoadEmpty(t *testing.T) {
	users := NewUserCollection(persistence.NewMemoryStore())
	records, err := users.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestUserCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	users := NewUserCollection(persistence.NewMemoryStore())

	input := []domain.User{
		{Name: "Amy", Email: "amy@a.edu", PasswordHash: "$2a$fake", Role: domain.RoleStudent},
		{Name: "Prof", Email: "prof@a.edu", PasswordHash: "$2a$fake2", Role: domain.RoleAdmin},
	}
	require.NoError(t, users.Save(ctx, input))

	loaded, err := users.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, input, loaded, "save(load()) is lossless and order-preserving")

	// save(load()) is a no-op.
	require.NoError(t, users.Save(ctx, loaded))
	again, err := users.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestUserCollectionFindByEmail(t *testing.T) {
	ctx := context.Background()
	users := NewUserCollection(persistence.NewMemoryStore())
	require.NoError(t, users.Append(ctx, domain.User{Name: "Amy", Email: "amy@a.edu"}))

	found, err := users.FindByEmail(ctx, "amy@a.edu")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Amy", found.Name)

	missing, err := users.FindByEmail(ctx, "nobody@a.edu")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProjectCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	projects := NewProjectCollection(persistence.NewMemoryStore())

	input := []domain.Project{
		{
			ID:          1700000000001,
			Title:       "Smart Attendance System",
			Description: "a ten+ char description",
			TechStack:   "Go, Postgres",
			Github:      "https://github.com/amy/attendance",
			Milestone:   domain.MilestoneDevelopment,
			OwnerEmail:  "amy@a.edu",
			Status:      domain.ProjectStatusPending,
			Feedback:    "",
		},
		{
			ID:          1700000000002,
			Title:       "Second",
			Description: "another long description",
			Milestone:   domain.MilestoneCompleted,
			OwnerEmail:  "bob@a.edu",
			Status:      domain.ProjectStatusApproved,
			Feedback:    "Nice work",
		},
	}
	require.NoError(t, projects.Save(ctx, input))

	loaded, err := projects.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, input, loaded)
}

func TestProjectCollectionFindByID(t *testing.T) {
	ctx := context.Background()
	projects := NewProjectCollection(persistence.NewMemoryStore())
	require.NoError(t, projects.Append(ctx, domain.Project{ID: 42, Title: "X"}))

	found, err := projects.FindByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "X", found.Title)

	missing, err := projects.FindByID(ctx, 43)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCollectionDecodeFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewMemoryStore()
	require.NoError(t, store.Save(ctx, persistence.UsersCollection, []byte(`{not json`)))

	_, err := NewUserCollection(store).Load(ctx)
	assert.Error(t, err)
}
