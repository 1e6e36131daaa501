package domain

import "time"

// AuthProviderType indicates how a user authenticates.
type AuthProviderType string

const (
	ProviderLocal  AuthProviderType = "LOCAL"
	ProviderGoogle AuthProviderType = "GOOGLE"
)

// User represents an application user.
type User struct {
	UserID                 string           `json:"userID"`
	Name                   string           `json:"name"`
	Email                  string           `json:"email"`
	PasswordHash           string           `json:"-"` // empty for external providers
	AuthProvider           AuthProviderType `json:"authProvider"`
	ProviderUserID         string           `json:"-"`
	RefreshTokenHash       string           `json:"-"`
	RefreshTokenExpiryTime *time.Time       `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // soft delete
}
