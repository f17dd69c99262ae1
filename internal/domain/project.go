package domain

// ProjectStatus enumerates review states assigned by faculty.
type ProjectStatus string

const (
	ProjectStatusPending  ProjectStatus = "pending"
	ProjectStatusApproved ProjectStatus = "approved"
	ProjectStatusChanges  ProjectStatus = "changes"
)

// ValidProjectStatus reports whether the given status is a known value.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPending, ProjectStatusApproved, ProjectStatusChanges:
		return true
	}
	return false
}

// Milestone is a completion stage in {0,25,50,75,100}.
type Milestone int

const (
	MilestoneIdeation    Milestone = 0
	MilestonePlanning    Milestone = 25
	MilestoneDevelopment Milestone = 50
	MilestoneTesting     Milestone = 75
	MilestoneCompleted   Milestone = 100
)

// ValidMilestone reports whether the given milestone is a known stage.
func ValidMilestone(m Milestone) bool {
	switch m {
	case MilestoneIdeation, MilestonePlanning, MilestoneDevelopment, MilestoneTesting, MilestoneCompleted:
		return true
	}
	return false
}

// Label returns the fixed display name for the milestone stage.
func (m Milestone) Label() string {
	switch m {
	case MilestoneIdeation:
		return "Ideation"
	case MilestonePlanning:
		return "Planning & Design"
	case MilestoneDevelopment:
		return "Development"
	case MilestoneTesting:
		return "Testing"
	case MilestoneCompleted:
		return "Completed"
	}
	return "Unknown"
}

// Project is the aggregate for student portfolio submissions. ID is derived
// from creation wall-clock milliseconds; OwnerEmail references User.Email.
type Project struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	TechStack   string        `json:"techStack"`
	Github      string        `json:"github"`
	Demo        string        `json:"demo"`
	Milestone   Milestone     `json:"milestone"`
	OwnerEmail  string        `json:"ownerEmail"`
	Status      ProjectStatus `json:"status"`
	Feedback    string        `json:"feedback"`
}
