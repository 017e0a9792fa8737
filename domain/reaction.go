package domain

import (
	"context"
	"time"
)

// LikeStatus is the reaction a user holds on a subject.
type LikeStatus string

const (
	LikeStatusNone    LikeStatus = "None"
	LikeStatusLike    LikeStatus = "Like"
	LikeStatusDislike LikeStatus = "Dislike"
)

// NewestLikesLimit is the size of the newest likes preview on posts
const NewestLikesLimit = 3

// IsValid reports whether s is one of the three known statuses.
func (s LikeStatus) IsValid() bool {
	switch s {
	case LikeStatusNone, LikeStatusLike, LikeStatusDislike:
		return true
	default:
		return false
	}
}

// SubjectType tells posts and comments apart in the reaction store.
type SubjectType string

const (
	SubjectPost    SubjectType = "Post"
	SubjectComment SubjectType = "Comment"
)

// Subject identifies something that can be reacted to, together with the
// blog it lives in (needed for blog scoped moderation).
type Subject struct {
	Type   SubjectType
	ID     int64
	BlogID int64
}

// Reaction is one user's state on one subject.
type Reaction struct {
	ID          int64
	SubjectType SubjectType
	SubjectID   int64
	UserID      int64
	Status      LikeStatus
	AddedAt     time.Time
}

// LikeDetails is one entry of the newest likes preview
type LikeDetails struct {
	AddedAt time.Time
	UserID  int64
	Login   string
}

// LikesInfo is the aggregated reaction data attached to a subject.
// NewestLikes is only filled for posts.
type LikesInfo struct {
	LikesCount    int64
	DislikesCount int64
	MyStatus      LikeStatus
	NewestLikes   []LikeDetails
}

// ReactionRepository persists one reaction per (subject, user).
type ReactionRepository interface {
	// Set inserts the reaction or overwrites the status of the existing one.
	// AddedAt only moves when the status changes.
	Set(ctx context.Context, r *Reaction) error

	// Get returns LikeStatusNone when the user never reacted.
	Get(ctx context.Context, subjectType SubjectType, subjectID, userID int64) (LikeStatus, error)

	// ListBySubject returns every reaction of a subject, newest first.
	ListBySubject(ctx context.Context, subjectType SubjectType, subjectID int64) ([]Reaction, error)
}

// ReactionAggregator computes LikesInfo for a subject as seen by a viewer.
// viewerID is nil for anonymous viewers.
type ReactionAggregator interface {
	Aggregate(ctx context.Context, subject Subject, viewerID *int64) (LikesInfo, error)
}

// ReactionUsecase is the write side used by the like-status endpoints.
type ReactionUsecase interface {
	SetPostReaction(ctx context.Context, postID, userID int64, status LikeStatus) error
	SetCommentReaction(ctx context.Context, commentID, userID int64, status LikeStatus) error
}
