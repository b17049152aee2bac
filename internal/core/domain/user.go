package domain

// User is an account that can obtain access tokens.
type User struct {
	UserID       int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
}
