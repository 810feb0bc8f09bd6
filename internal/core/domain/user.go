package domain

import "time"

// User is an authentication identity. Tenant membership and role live on the
// user's Profile, provisioned as a side effect of signup.
type User struct {
	UserID       string `json:"userID" db:"user_id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Name         string `json:"name" db:"name"`
	AuditFields

	RefreshTokenHash       *string    `json:"-" db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `json:"-" db:"refresh_token_expiry_time"`
}
