package domain

// Role distinguishes students from faculty reviewers.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether the given role is a known value.
func ValidRole(r Role) bool {
	return r == RoleStudent || r == RoleAdmin
}

// User is the account record held in the Users collection. Email is the
// unique key; there is no separate surrogate id. The password field holds a
// bcrypt hash, never the plaintext.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         Role   `json:"role"`
}
