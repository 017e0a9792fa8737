package domain

import (
	"context"
	"time"
)

// Blog is representing the Blog data struct
type Blog struct {
	ID           int64
	Name         string
	Description  string
	WebsiteURL   string
	IsMembership bool
	OwnerID      int64
	OwnerLogin   string
	CreatedAt    time.Time
}

// BlogRepository defines the contract for blog data persistence
type BlogRepository interface {
	// GetByID returns ErrNotFound if the blog doesn't exist.
	GetByID(ctx context.Context, id int64) (Blog, error)

	// Fetch lists blogs, only the ones of ownerID when it is not nil.
	Fetch(ctx context.Context, q Query, ownerID *int64) (Page[Blog], error)

	Store(ctx context.Context, b *Blog) error

	// Update returns ErrNotFound if the blog doesn't exist.
	Update(ctx context.Context, b *Blog) error

	// Delete removes the blog with its posts, comments, reactions and bans.
	Delete(ctx context.Context, id int64) error
}

type BlogUsecase interface {
	Fetch(ctx context.Context, q Query) (Page[Blog], error)
	FetchOwned(ctx context.Context, ownerID int64, q Query) (Page[Blog], error)
	GetByID(ctx context.Context, id int64) (Blog, error)
	Store(ctx context.Context, b *Blog) error
	// Update and Delete return ErrForbidden when ownerID does not own the blog.
	Update(ctx context.Context, ownerID int64, b *Blog) error
	Delete(ctx context.Context, ownerID, id int64) error
}
