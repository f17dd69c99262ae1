package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/events"
	"github.com/spec-kit/portfolio-service/internal/repository"
	"github.com/spec-kit/portfolio-service/internal/validation"
	apperrors "github.com/spec-kit/portfolio-service/pkg/util/errorutil"
)

// ProjectInput describes the student-editable fields of a submission. Status
// and feedback are never taken from callers: create forces them, update
// preserves them.
type ProjectInput struct {
	Title       string
	Description string
	TechStack   string
	Github      string
	Demo        string
	Milestone   domain.Milestone
}

// ReviewPatch carries the admin-editable fields. Nil means "leave as is".
type ReviewPatch struct {
	Status   *domain.ProjectStatus
	Feedback *string
}

// ListFilter narrows List results. Zero value returns everything.
type ListFilter struct {
	OwnerEmail string
}

// Stats summarizes the catalog for the dashboard header.
type Stats struct {
	Total     int
	Completed int
}

// ProjectService coordinates the project catalog. Every mutation rewrites
// the whole Projects collection before returning.
type ProjectService struct {
	projects   *repository.ProjectCollection
	dispatcher events.Dispatcher

	// Project ids derive from creation wall-clock milliseconds. Two creates
	// inside the same tick get a monotonic bump instead of colliding.
	idMu   sync.Mutex
	lastID int64
	now    func() time.Time
}

// ProjectDependencies bundles requirements for the project service.
type ProjectDependencies struct {
	Projects   *repository.ProjectCollection
	Dispatcher events.Dispatcher
}

// NewProjectService constructs the service.
func NewProjectService(deps ProjectDependencies) *ProjectService {
	return &ProjectService{
		projects:   deps.Projects,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// Create validates the input and appends a new submission owned by the given
// student. Status is forced to pending and feedback to empty regardless of
// anything the caller sent.
func (s *ProjectService) Create(ctx context.Context, owner domain.User, input ProjectInput) (*domain.Project, error) {
	if errs := validation.Project(validationInput(input)); len(errs) > 0 {
		return nil, apperrors.NewValidationError("validation failed", errs.Details())
	}

	project := domain.Project{
		ID:          s.nextID(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		TechStack:   input.TechStack,
		Github:      input.Github,
		Demo:        input.Demo,
		Milestone:   input.Milestone,
		OwnerEmail:  owner.Email,
		Status:      domain.ProjectStatusPending,
		Feedback:    "",
	}

	if err := s.projects.Append(ctx, project); err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventProjectCreated,
		ProjectID: project.ID,
		Actor:     actorFor(owner),
		Payload: events.ProjectCreatedPayload{
			Title:      project.Title,
			OwnerEmail: project.OwnerEmail,
			Milestone:  project.Milestone,
		},
	})
	return &project, nil
}

// Update replaces the editable fields of the identified submission, keeping
// id, owner, status and feedback exactly as stored. Only the owning student
// may update.
func (s *ProjectService) Update(ctx context.Context, owner domain.User, id int64, input ProjectInput) (*domain.Project, error) {
	if errs := validation.Project(validationInput(input)); len(errs) > 0 {
		return nil, apperrors.NewValidationError("validation failed", errs.Details())
	}

	projects, err := s.projects.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(projects, id)
	if idx < 0 {
		return nil, apperrors.NewNotFound("project", map[string]any{"id": id})
	}
	if projects[idx].OwnerEmail != owner.Email {
		return nil, apperrors.NewForbidden("only the owning student may update a project")
	}

	projects[idx].Title = strings.TrimSpace(input.Title)
	projects[idx].Description = strings.TrimSpace(input.Description)
	projects[idx].TechStack = input.TechStack
	projects[idx].Github = input.Github
	projects[idx].Demo = input.Demo
	projects[idx].Milestone = input.Milestone

	if err := s.projects.Save(ctx, projects); err != nil {
		return nil, err
	}
	updated := projects[idx]
	s.publish(ctx, events.Event{
		Type:      events.EventProjectUpdated,
		ProjectID: updated.ID,
		Actor:     actorFor(owner),
		Payload: events.ProjectUpdatedPayload{
			Title:     updated.Title,
			Milestone: updated.Milestone,
		},
	})
	return &updated, nil
}

// Patch merges only the supplied review fields into the identified
// submission. Omitted fields keep their prior value byte for byte.
func (s *ProjectService) Patch(ctx context.Context, reviewer domain.User, id int64, patch ReviewPatch) (*domain.Project, error) {
	if patch.Status != nil {
		if errs := validation.ReviewStatus(*patch.Status); len(errs) > 0 {
			return nil, apperrors.NewValidationError("validation failed", errs.Details())
		}
	}

	projects, err := s.projects.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(projects, id)
	if idx < 0 {
		return nil, apperrors.NewNotFound("project", map[string]any{"id": id})
	}

	oldStatus := projects[idx].Status
	if patch.Status != nil {
		projects[idx].Status = *patch.Status
	}
	if patch.Feedback != nil {
		projects[idx].Feedback = *patch.Feedback
	}

	if err := s.projects.Save(ctx, projects); err != nil {
		return nil, err
	}
	patched := projects[idx]

	if patch.Status != nil && *patch.Status != oldStatus {
		s.publish(ctx, events.Event{
			Type:      events.EventProjectStatusChanged,
			ProjectID: patched.ID,
			Actor:     actorFor(reviewer),
			Payload: events.ProjectStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: patched.Status,
			},
		})
	}
	if patch.Feedback != nil {
		s.publish(ctx, events.Event{
			Type:      events.EventProjectFeedbackLeft,
			ProjectID: patched.ID,
			Actor:     actorFor(reviewer),
			Payload: events.ProjectFeedbackLeftPayload{
				FeedbackPreview: preview(patched.Feedback, 120),
			},
		})
	}
	return &patched, nil
}

// Remove deletes the identified submission. Removing an unknown id is a
// no-op, so the operation is idempotent. Students may remove only their own
// projects; admins may remove any.
func (s *ProjectService) Remove(ctx context.Context, actor domain.User, id int64) error {
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(projects, id)
	if idx < 0 {
		return nil
	}
	if actor.Role != domain.RoleAdmin && projects[idx].OwnerEmail != actor.Email {
		return apperrors.NewForbidden("only the owner or an admin may delete a project")
	}

	removed := projects[idx]
	projects = append(projects[:idx], projects[idx+1:]...)
	if err := s.projects.Save(ctx, projects); err != nil {
		return err
	}
	s.publish(ctx, events.Event{
		Type:      events.EventProjectDeleted,
		ProjectID: removed.ID,
		Actor:     actorFor(actor),
		Payload:   events.ProjectDeletedPayload{OwnerEmail: removed.OwnerEmail},
	})
	return nil
}

// List returns submissions in insertion order, optionally narrowed to one
// owner. No pagination.
func (s *ProjectService) List(ctx context.Context, filter ListFilter) ([]domain.Project, error) {
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return nil, err
	}
	if filter.OwnerEmail == "" {
		return projects, nil
	}
	matched := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.OwnerEmail == filter.OwnerEmail {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// StatsFor summarizes the catalog, optionally scoped to one owner.
func (s *ProjectService) StatsFor(ctx context.Context, filter ListFilter) (Stats, error) {
	projects, err := s.List(ctx, filter)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Total: len(projects)}
	for _, p := range projects {
		if p.Milestone == domain.MilestoneCompleted {
			stats.Completed++
		}
	}
	return stats, nil
}

func (s *ProjectService) nextID() int64 {
	id := s.now().UnixMilli()
	s.idMu.Lock()
	defer s.idMu.Unlock()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *ProjectService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func indexOf(projects []domain.Project, id int64) int {
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}

func actorFor(user domain.User) events.Actor {
	return events.Actor{Email: user.Email, Role: user.Role}
}

func validationInput(in ProjectInput) validation.ProjectInput {
	return validation.ProjectInput{
		Title:       in.Title,
		Description: in.Description,
		TechStack:   in.TechStack,
		Github:      in.Github,
		Demo:        in.Demo,
		Milestone:   in.Milestone,
	}
}

func preview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
