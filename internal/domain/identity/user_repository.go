package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for local account persistence
type UserRepository interface {
	WithTx(tx any) UserRepository
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, u *User) error
	Count(ctx context.Context) (int64, error)
}
