package authent

import (
	"time"

	"github.com/google/uuid"
)

// LoginInput contains login credentials
type LoginInput struct {
	Username string
	Password string
	IP       string
}

// UserInfo is the user payload returned with authentication results
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	StructureID uuid.UUID `json:"structure_id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	IsAdmin     bool      `json:"is_admin"`
	Permissions []string  `json:"permissions"`
	RoleIDs     []uuid.UUID `json:"role_ids"`
}

// LoginResult contains the token pair and user info after login
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenInput contains the refresh token
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the new token pair
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LogoutInput identifies the session being terminated
type LogoutInput struct {
	UserID       uuid.UUID
	AccessToken  string
	RefreshToken string
	// AllSessions also invalidates tokens issued on other devices
	AllSessions bool
}

// ChangePasswordInput carries a password change request
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// CreateUserInput carries the fields for creating a user account
type CreateUserInput struct {
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	StructureID uuid.UUID
	IsAdmin     bool
	RoleIDs     []uuid.UUID
}

// UpdateUserInput carries the editable profile fields
type UpdateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	IsActive  *bool
	RoleIDs   []uuid.UUID
	// StructureID moves the user to another structure when set
	StructureID *uuid.UUID
}

// CreateStructureInput carries the fields for creating a structure
type CreateStructureInput struct {
	Name string
}

// CreateRoleInput carries the fields for creating a role
type CreateRoleInput struct {
	Name        string
	Description string
	Permissions []string
}

// UpdateRoleInput carries the editable role fields
type UpdateRoleInput struct {
	Description string
	Permissions []string
}
