package authent

import (
	"strings"
	"time"

	"github.com/geotrail/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is an operator account. Users carry the structure they belong to
// and a set of roles granting resource permissions.
type User struct {
	shared.BaseAggregateRoot
	Username    string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email       string    `gorm:"type:varchar(254)"`
	FirstName   string    `gorm:"type:varchar(150)"`
	LastName    string    `gorm:"type:varchar(150)"`
	Password    string    `gorm:"type:varchar(128);not null"`
	StructureID uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	IsAdmin     bool      `gorm:"not null;default:false"`
	LastLogin   *time.Time
	Roles       []Role `gorm:"many2many:authent_user_roles"`
}

// TableName returns the database table name
func (User) TableName() string {
	return "authent_users"
}

// NewUser creates a new active user with a hashed password
func NewUser(username, password string, structureID uuid.UUID) (*User, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if structureID == uuid.Nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "structure is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewDomainError(shared.ErrInvalidInput.Code, "failed to hash password")
	}
	u := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		Password:          string(hash),
		StructureID:       structureID,
		IsActive:          true,
	}
	u.AddDomainEvent(NewUserCreatedEvent(u))
	return u, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "failed to hash password")
	}
	u.Password = string(hash)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// UpdateProfile updates the user's descriptive fields
func (u *User) UpdateProfile(email, firstName, lastName string) {
	u.Email = strings.TrimSpace(email)
	u.FirstName = strings.TrimSpace(firstName)
	u.LastName = strings.TrimSpace(lastName)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// MoveToStructure reassigns the user to another structure
func (u *User) MoveToStructure(structureID uuid.UUID) error {
	if structureID == uuid.Nil {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "structure is required")
	}
	u.StructureID = structureID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Activate enables the account
func (u *User) Activate() {
	u.IsActive = true
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// Deactivate disables the account without deleting it
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// RecordLogin stores the last successful login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLogin = &at
}

// Permissions flattens the permissions granted by the user's roles.
// Admin accounts implicitly hold every permission.
func (u *User) Permissions() []string {
	seen := make(map[string]struct{})
	var perms []string
	for _, role := range u.Roles {
		for _, p := range role.Permissions {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			perms = append(perms, p)
		}
	}
	return perms
}

// FullName returns the display name, falling back to the username
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "username is required")
	}
	if len(username) > 150 {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "username must be at most 150 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "password must be at least 8 characters")
	}
	return nil
}
