package events

import (
	"time"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProjectCreated       EventType = "project_created"
	EventProjectUpdated       EventType = "project_updated"
	EventProjectStatusChanged EventType = "project_status_changed"
	EventProjectFeedbackLeft  EventType = "project_feedback_left"
	EventProjectDeleted       EventType = "project_deleted"
)

// Actor encapsulates who performed the action.
type Actor struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// Event represents a domain event emitted by services. Dispatch is
// synchronous and never fails the operation that produced it.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ProjectID int64       `json:"project_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ProjectCreatedPayload payload.
type ProjectCreatedPayload struct {
	Title      string           `json:"title"`
	OwnerEmail string           `json:"owner_email"`
	Milestone  domain.Milestone `json:"milestone"`
}

// ProjectUpdatedPayload payload.
type ProjectUpdatedPayload struct {
	Title     string           `json:"title"`
	Milestone domain.Milestone `json:"milestone"`
}

// ProjectStatusChangedPayload payload.
type ProjectStatusChangedPayload struct {
	OldStatus domain.ProjectStatus `json:"old_status"`
	NewStatus domain.ProjectStatus `json:"new_status"`
}

// ProjectFeedbackLeftPayload payload.
type ProjectFeedbackLeftPayload struct {
	FeedbackPreview string `json:"feedback_preview"`
}

// ProjectDeletedPayload payload.
type ProjectDeletedPayload struct {
	OwnerEmail string `json:"owner_email"`
}
