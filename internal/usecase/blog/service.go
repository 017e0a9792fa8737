package blog

import (
	"context"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type Service struct {
	blogRepo domain.BlogRepository
}

var _ domain.BlogUsecase = (*Service)(nil)

// NewService will create a new blog service object
func NewService(b domain.BlogRepository) *Service {
	return &Service{blogRepo: b}
}

func (s *Service) Fetch(ctx context.Context, q domain.Query) (domain.Page[domain.Blog], error) {
	return s.blogRepo.Fetch(ctx, q, nil)
}

func (s *Service) FetchOwned(ctx context.Context, ownerID int64, q domain.Query) (domain.Page[domain.Blog], error) {
	return s.blogRepo.Fetch(ctx, q, &ownerID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Blog, error) {
	return s.blogRepo.GetByID(ctx, id)
}

func (s *Service) Store(ctx context.Context, b *domain.Blog) error {
	return s.blogRepo.Store(ctx, b)
}

func (s *Service) checkOwner(ctx context.Context, ownerID, id int64) error {
	existed, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existed.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) Update(ctx context.Context, ownerID int64, b *domain.Blog) error {
	if err := s.checkOwner(ctx, ownerID, b.ID); err != nil {
		return err
	}
	return s.blogRepo.Update(ctx, b)
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.checkOwner(ctx, ownerID, id); err != nil {
		return err
	}
	return s.blogRepo.Delete(ctx, id)
}
