package domain

import (
	"context"
	"time"
)

// GlobalBan is the super-admin ban of a user. Every user owns exactly one row.
type GlobalBan struct {
	UserID    int64
	IsBanned  bool
	BanDate   *time.Time
	BanReason *string
}

// BlogBan is a blog owner's ban of a user, scoped to one blog.
type BlogBan struct {
	BlogID    int64
	UserID    int64
	UserLogin string
	IsBanned  bool
	BanDate   *time.Time
	BanReason *string
}

// NewGlobalBan returns the ban state for the given toggle. Unbanning clears
// the date and the reason.
func NewGlobalBan(userID int64, isBanned bool, reason string, now time.Time) GlobalBan {
	b := GlobalBan{UserID: userID, IsBanned: isBanned}
	if isBanned {
		b.BanDate = &now
		b.BanReason = &reason
	}
	return b
}

// NewBlogBan is the blog scoped counterpart of NewGlobalBan.
func NewBlogBan(blogID, userID int64, isBanned bool, reason string, now time.Time) BlogBan {
	b := BlogBan{BlogID: blogID, UserID: userID, IsBanned: isBanned}
	if isBanned {
		b.BanDate = &now
		b.BanReason = &reason
	}
	return b
}

// BanRegistry is the read side of moderation used while aggregating.
type BanRegistry interface {
	IsGloballyBanned(ctx context.Context, userID int64) (bool, error)
	IsBlogBanned(ctx context.Context, userID, blogID int64) (bool, error)

	// ExcludedAmong returns the users of userIDs that are globally banned or
	// banned on blogID.
	ExcludedAmong(ctx context.Context, blogID int64, userIDs []int64) (map[int64]bool, error)
}

// BanRepository owns the ban rows.
type BanRepository interface {
	BanRegistry

	SetGlobalBan(ctx context.Context, b GlobalBan) error
	SetBlogBan(ctx context.Context, b BlogBan) error

	// FetchBlogBans lists the users currently banned on a blog.
	FetchBlogBans(ctx context.Context, blogID int64, q Query) (Page[BlogBan], error)
}

// BanUsecase holds the moderation actions.
type BanUsecase interface {
	// BanUser toggles the platform wide ban. Banning revokes every session.
	BanUser(ctx context.Context, userID int64, isBanned bool, reason string) error

	// BanUserForBlog toggles a blog scoped ban on behalf of the blog owner.
	BanUserForBlog(ctx context.Context, ownerID, userID, blogID int64, isBanned bool, reason string) error

	FetchBlogBans(ctx context.Context, ownerID, blogID int64, q Query) (Page[BlogBan], error)
}
