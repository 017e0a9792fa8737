package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// A user can register, login, write blogs and react to content.
type User struct {
	ID        int64     // Unique identifier
	Login     string    // Login name (unique)
	Email     string    // Email (unique)
	Password  string    // Bcrypt hashed password
	CreatedAt time.Time // Account creation timestamp
	Ban       GlobalBan // Platform wide ban state
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves the users that exist among ids.
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)

	// GetByLoginOrEmail is used during login to verify credentials.
	GetByLoginOrEmail(ctx context.Context, loginOrEmail string) (User, error)

	// Insert creates the user together with its (not banned) GlobalBan row.
	// Backfills the ID. Returns ErrConflict if login or email is taken.
	Insert(ctx context.Context, u *User) error

	// Delete removes the user and everything owned by it.
	Delete(ctx context.Context, id int64) error

	// Fetch lists users for the super-admin.
	Fetch(ctx context.Context, q Query) (Page[User], error)
}

// UserUsecase holds the super-admin user management.
type UserUsecase interface {
	// Create returns ErrConflict if the login or email already exists.
	Create(ctx context.Context, login, email, password string) (User, error)
	Delete(ctx context.Context, id int64) error
	Fetch(ctx context.Context, q Query) (Page[User], error)
}

// PasswordHasher hides the hashing algorithm from the usecases.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
