package domain

// Session binds an issued session id to the authenticated user record.
// Absence of the record in the session holder means the caller is
// unauthenticated.
type Session struct {
	ID   string `json:"id"`
	User User   `json:"user"`
}
