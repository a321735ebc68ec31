package identity

import (
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/greenhub/backend/internal/domain/shared"
)

// Role is the coarse access level attached to a local account
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleVendor   Role = "vendor"
	RoleCustomer Role = "customer"
)

// User is a local account. Vendor logins created through the approval flow
// also exist in the external identity provider; the local row keeps the
// role and profile the middleware needs without a provider round trip.
type User struct {
	shared.BaseEntity
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(200);not null"`
	FullName     string `gorm:"type:varchar(200)"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'customer'"`
	PhoneNumber  string `gorm:"type:varchar(50)"`
	IsActive     bool   `gorm:"not null;default:true"`
}

func (User) TableName() string {
	return "users"
}

// NewUser creates an account with a bcrypt-hashed password
func NewUser(email, password, fullName string, role Role) (*User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email is not a valid address")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	switch role {
	case RoleAdmin, RoleVendor, RoleCustomer:
	default:
		return nil, shared.NewDomainError("INVALID_ROLE", "Invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	}, nil
}

// CheckPassword verifies a candidate password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Deactivate disables the account
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
}

// IsAdmin reports whether the account holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
