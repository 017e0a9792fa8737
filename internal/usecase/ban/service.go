package ban

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type Service struct {
	banRepo    domain.BanRepository
	userRepo   domain.UserRepository
	blogRepo   domain.BlogRepository
	deviceRepo domain.DeviceRepository
	now        func() time.Time
}

var _ domain.BanUsecase = (*Service)(nil)

// NewService will create a new ban service object
func NewService(b domain.BanRepository, u domain.UserRepository, bl domain.BlogRepository, d domain.DeviceRepository) *Service {
	return &Service{
		banRepo:    b,
		userRepo:   u,
		blogRepo:   bl,
		deviceRepo: d,
		now:        time.Now,
	}
}

func (s *Service) BanUser(ctx context.Context, userID int64, isBanned bool, reason string) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.banRepo.SetGlobalBan(ctx, domain.NewGlobalBan(userID, isBanned, reason, s.now().UTC())); err != nil {
		return err
	}
	if !isBanned {
		return nil
	}
	if err := s.deviceRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	logrus.Infof("user %d banned, sessions revoked", userID)
	return nil
}

func (s *Service) ownedBlog(ctx context.Context, ownerID, blogID int64) error {
	b, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}
	if b.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *Service) BanUserForBlog(ctx context.Context, ownerID, userID, blogID int64, isBanned bool, reason string) error {
	if err := s.ownedBlog(ctx, ownerID, blogID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.banRepo.SetBlogBan(ctx, domain.NewBlogBan(blogID, userID, isBanned, reason, s.now().UTC()))
}

func (s *Service) FetchBlogBans(ctx context.Context, ownerID, blogID int64, q domain.Query) (domain.Page[domain.BlogBan], error) {
	if err := s.ownedBlog(ctx, ownerID, blogID); err != nil {
		return domain.Page[domain.BlogBan]{}, err
	}
	return s.banRepo.FetchBlogBans(ctx, blogID, q)
}
