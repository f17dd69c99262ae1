// Package repository is the typed boundary over the collection store. It
// decodes the stored blobs into domain records on load and serializes them
// back wholesale on save, preserving insertion order. Shape coercion happens
// here; the services below trust the decoded records.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/persistence"
)

// UserCollection reads and writes the Users collection.
type UserCollection struct {
	store persistence.Store
}

// NewUserCollection returns the typed view over the given store.
func NewUserCollection(store persistence.Store) *UserCollection {
	return &UserCollection{store: store}
}

// Load returns all user records in insertion order. A never-written
// collection loads as an empty slice.
func (c *UserCollection) Load(ctx context.Context) ([]domain.User, error) {
	blob, err := c.store.Load(ctx, persistence.UsersCollection)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []domain.User{}, nil
	}
	var users []domain.User
	if err := json.Unmarshal(blob, &users); err != nil {
		return nil, fmt.Errorf("decode users collection: %w", err)
	}
	return users, nil
}

// Save overwrites the Users collection with the given records.
func (c *UserCollection) Save(ctx context.Context, users []domain.User) error {
	blob, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users collection: %w", err)
	}
	return c.store.Save(ctx, persistence.UsersCollection, blob)
}

// FindByEmail returns the user with the given email, or nil when absent.
func (c *UserCollection) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Append adds a user record and persists the whole collection.
func (c *UserCollection) Append(ctx context.Context, user domain.User) error {
	users, err := c.Load(ctx)
	if err != nil {
		return err
	}
	users = append(users, user)
	return c.Save(ctx, users)
}

// ProjectCollection reads and writes the Projects collection.
type ProjectCollection struct {
	store persistence.Store
}

// NewProjectCollection returns the typed view over the given store.
func NewProjectCollection(store persistence.Store) *ProjectCollection {
	return &ProjectCollection{store: store}
}

// Load returns all project records in insertion order.
func (c *ProjectCollection) Load(ctx context.Context) ([]domain.Project, error) {
	blob, err := c.store.Load(ctx, persistence.ProjectsCollection)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return []domain.Project{}, nil
	}
	var projects []domain.Project
	if err := json.Unmarshal(blob, &projects); err != nil {
		return nil, fmt.Errorf("decode projects collection: %w", err)
	}
	return projects, nil
}

// Save overwrites the Projects collection with the given records.
func (c *ProjectCollection) Save(ctx context.Context, projects []domain.Project) error {
	blob, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("encode projects collection: %w", err)
	}
	return c.store.Save(ctx, persistence.ProjectsCollection, blob)
}

// FindByID returns the project with the given id, or nil when absent.
func (c *ProjectCollection) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	projects, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, nil
}

// Append adds a project record and persists the whole collection.
func (c *ProjectCollection) Append(ctx context.Context, project domain.Project) error {
	projects, err := c.Load(ctx)
	if err != nil {
		return err
	}
	projects = append(projects, project)
	return c.Save(ctx, projects)
}
