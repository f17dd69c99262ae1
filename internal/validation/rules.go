// Package validation holds the pure field predicates shared by account and
// project flows. Every check runs in one pass and reports the complete set of
// violations keyed by field name, so callers can surface all messages at once.
package validation

import (
	"regexp"
	"strings"

	"github.com/spec-kit/portfolio-service/internal/domain"
)

const (
	// MinPasswordLength is the only password rule: no upper bound, no
	// complexity requirement.
	MinPasswordLength = 6
	// MinDescriptionLength applies after trimming surrounding whitespace.
	MinDescriptionLength = 10
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// urlPattern is deliberately permissive: scheme optional, host.tld with
	// an optional trailing path segment.
	urlPattern = regexp.MustCompile(`^(?i)(https?://)?([\w.-]+)\.([a-z.]{2,6})([/\w.-]*)/?$`)
)

// Errors maps field names to human-readable messages. An empty map means the
// input is valid.
type Errors map[string]string

// Error implements the error interface so an Errors value can travel through
// error returns.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "valid"
	}
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Details converts the map to the shape carried by DomainError details.
func (e Errors) Details() map[string]any {
	details := make(map[string]any, len(e))
	for field, msg := range e {
		details[field] = msg
	}
	return details
}

// Registration validates a registration payload. Name is only required here,
// not at login.
func Registration(name, email, password string, role domain.Role) Errors {
	errs := Errors{}
	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name is required."
	}
	checkEmail(errs, email)
	checkPassword(errs, password)
	if !domain.ValidRole(role) {
		errs["role"] = "Role must be student or admin."
	}
	return errs
}

// Credentials validates a login payload. Only presence and basic shape are
// checked; matching against stored accounts happens in the account directory.
func Credentials(email, password string) Errors {
	errs := Errors{}
	checkEmail(errs, email)
	checkPassword(errs, password)
	return errs
}

// ProjectInput describes the student-editable project fields.
type ProjectInput struct {
	Title       string
	Description string
	TechStack   string
	Github      string
	Demo        string
	Milestone   domain.Milestone
}

// Project validates the student-editable fields of a submission.
func Project(in ProjectInput) Errors {
	errs := Errors{}
	if strings.TrimSpace(in.Title) == "" {
		errs["title"] = "Title is required."
	}
	if desc := strings.TrimSpace(in.Description); desc == "" || len(desc) < MinDescriptionLength {
		errs["description"] = "Description must be at least 10 characters."
	}
	checkOptionalURL(errs, "github", in.Github)
	checkOptionalURL(errs, "demo", in.Demo)
	if !domain.ValidMilestone(in.Milestone) {
		errs["milestone"] = "Milestone must be one of 0, 25, 50, 75 or 100."
	}
	return errs
}

// ReviewStatus validates the status value of an admin review patch.
func ReviewStatus(status domain.ProjectStatus) Errors {
	errs := Errors{}
	if !domain.ValidProjectStatus(status) {
		errs["status"] = "Status must be pending, approved or changes."
	}
	return errs
}

func checkEmail(errs Errors, email string) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		errs["email"] = "Email is required."
	} else if !emailPattern.MatchString(trimmed) {
		errs["email"] = "Invalid email format."
	}
}

func checkPassword(errs Errors, password string) {
	if strings.TrimSpace(password) == "" {
		errs["password"] = "Password is required."
	} else if len(password) < MinPasswordLength {
		errs["password"] = "Password must be at least 6 characters."
	}
}

func checkOptionalURL(errs Errors, field, value string) {
	if value == "" {
		return
	}
	if !urlPattern.MatchString(value) {
		errs[field] = "Invalid URL."
	}
}
