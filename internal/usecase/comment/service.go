package comment

import (
	"context"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/listing"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/post"
)

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	userRepo    domain.UserRepository
	banRegistry domain.BanRegistry
	bloomRepo   domain.BloomRepository
	aggregator  domain.ReactionAggregator
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	postRepo domain.PostRepository,
	userRepo domain.UserRepository,
	banRegistry domain.BanRegistry,
	bloomRepo domain.BloomRepository,
	aggregator domain.ReactionAggregator,
) *service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		banRegistry: banRegistry,
		bloomRepo:   bloomRepo,
		aggregator:  aggregator,
	}
}

// canComment rejects authors banned on the platform or on the blog.
func (s *service) canComment(ctx context.Context, userID, blogID int64) error {
	banned, err := s.banRegistry.IsGloballyBanned(ctx, userID)
	if err != nil {
		return err
	}
	if banned {
		return domain.ErrForbidden
	}
	banned, err = s.banRegistry.IsBlogBanned(ctx, userID, blogID)
	if err != nil {
		return err
	}
	if banned {
		return domain.ErrForbidden
	}
	return nil
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	p, err := post.Lookup(ctx, s.bloomRepo, s.postRepo, c.PostID)
	if err != nil {
		return err
	}
	if err := s.canComment(ctx, c.UserID, p.BlogID); err != nil {
		return err
	}
	author, err := s.userRepo.GetByID(ctx, c.UserID)
	if err != nil {
		return err
	}

	c.BlogID = p.BlogID
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}
	c.UserLogin = author.Login
	c.LikesInfo = domain.LikesInfo{MyStatus: domain.LikeStatusNone}
	return nil
}

// authored returns the comment if userID wrote it.
func (s *service) authored(ctx context.Context, userID, id int64) (domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if c.UserID != userID {
		return domain.Comment{}, domain.ErrForbidden
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, userID, id int64, content string) error {
	c, err := s.authored(ctx, userID, id)
	if err != nil {
		return err
	}
	c.Content = content
	return s.commentRepo.Update(ctx, &c)
}

func (s *service) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.authored(ctx, userID, id); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id int64, viewerID *int64) (domain.Comment, error) {
	res, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if err := listing.AssembleOne(ctx, s.aggregator, &res, viewerID); err != nil {
		return domain.Comment{}, err
	}
	return res, nil
}

func (s *service) FetchByPost(ctx context.Context, postID int64, q domain.Query, viewerID *int64) (domain.Page[domain.Comment], error) {
	if _, err := post.Lookup(ctx, s.bloomRepo, s.postRepo, postID); err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	res, err := s.commentRepo.FetchByPost(ctx, postID, q)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	if err := listing.Assemble(ctx, s.aggregator, res.Items, viewerID); err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	return res, nil
}

// FetchForBlogger lists the comments left on every blog of ownerID, seen by the owner.
func (s *service) FetchForBlogger(ctx context.Context, ownerID int64, q domain.Query) (domain.Page[domain.Comment], error) {
	res, err := s.commentRepo.FetchByBlogOwner(ctx, ownerID, q)
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	if err := listing.Assemble(ctx, s.aggregator, res.Items, &ownerID); err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	return res, nil
}
