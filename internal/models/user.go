package models

// User is a row of the users table.
type User struct {
	UserID       int64  `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	AuditFields
}
