package reaction

import (
	"context"
	"time"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/post"
)

type Service struct {
	reactionRepo domain.ReactionRepository
	postRepo     domain.PostRepository
	commentRepo  domain.CommentRepository
	bloomRepo    domain.BloomRepository
	now          func() time.Time
}

var _ domain.ReactionUsecase = (*Service)(nil)

// NewService will create a new reaction service object
func NewService(r domain.ReactionRepository, p domain.PostRepository, c domain.CommentRepository, b domain.BloomRepository) *Service {
	return &Service{
		reactionRepo: r,
		postRepo:     p,
		commentRepo:  c,
		bloomRepo:    b,
		now:          time.Now,
	}
}

func (s *Service) SetPostReaction(ctx context.Context, postID, userID int64, status domain.LikeStatus) error {
	if !status.IsValid() {
		return domain.ErrBadParamInput
	}
	if _, err := post.Lookup(ctx, s.bloomRepo, s.postRepo, postID); err != nil {
		return err
	}
	return s.reactionRepo.Set(ctx, &domain.Reaction{
		SubjectType: domain.SubjectPost,
		SubjectID:   postID,
		UserID:      userID,
		Status:      status,
		AddedAt:     s.now().UTC(),
	})
}

func (s *Service) SetCommentReaction(ctx context.Context, commentID, userID int64, status domain.LikeStatus) error {
	if !status.IsValid() {
		return domain.ErrBadParamInput
	}
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return err
	}
	return s.reactionRepo.Set(ctx, &domain.Reaction{
		SubjectType: domain.SubjectComment,
		SubjectID:   commentID,
		UserID:      userID,
		Status:      status,
		AddedAt:     s.now().UTC(),
	})
}
