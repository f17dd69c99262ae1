package dto

import (
	"github.com/spec-kit/portfolio-service/internal/domain"
	"github.com/spec-kit/portfolio-service/internal/service"
)

// ProjectRequest payload for create and update. Status and feedback are
// deliberately absent: students cannot set them.
type ProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TechStack   string `json:"techStack"`
	Github      string `json:"github"`
	Demo        string `json:"demo"`
	Milestone   int    `json:"milestone"`
}

// Input converts the payload to the service input.
func (r ProjectRequest) Input() service.ProjectInput {
	return service.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		TechStack:   r.TechStack,
		Github:      r.Github,
		Demo:        r.Demo,
		Milestone:   domain.Milestone(r.Milestone),
	}
}

// ReviewRequest payload for the admin review patch. Nil fields are left
// untouched.
type ReviewRequest struct {
	Status   *string `json:"status"`
	Feedback *string `json:"feedback"`
}

// Patch converts the payload to the service patch.
func (r ReviewRequest) Patch() service.ReviewPatch {
	patch := service.ReviewPatch{Feedback: r.Feedback}
	if r.Status != nil {
		status := domain.ProjectStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// ProjectResponse is the API view of a submission.
type ProjectResponse struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	TechStack      string `json:"techStack"`
	Github         string `json:"github,omitempty"`
	Demo           string `json:"demo,omitempty"`
	Milestone      int    `json:"milestone"`
	MilestoneLabel string `json:"milestone_label"`
	OwnerEmail     string `json:"ownerEmail"`
	Status         string `json:"status"`
	Feedback       string `json:"feedback"`
}

// NewProjectResponse maps the domain record.
func NewProjectResponse(p domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		TechStack:      p.TechStack,
		Github:         p.Github,
		Demo:           p.Demo,
		Milestone:      int(p.Milestone),
		MilestoneLabel: p.Milestone.Label(),
		OwnerEmail:     p.OwnerEmail,
		Status:         string(p.Status),
		Feedback:       p.Feedback,
	}
}

// NewProjectListResponse maps a slice of records, keeping order.
func NewProjectListResponse(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

// StatsResponse summarizes the catalog.
type StatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}
