package user

import (
	"context"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type Service struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, h domain.PasswordHasher) *Service {
	return &Service{
		userRepo: u,
		hasher:   h,
	}
}

func (s *Service) Create(ctx context.Context, login, email, password string) (domain.User, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		Login:    login,
		Email:    email,
		Password: hashed,
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

func (s *Service) Fetch(ctx context.Context, q domain.Query) (domain.Page[domain.User], error) {
	return s.userRepo.Fetch(ctx, q)
}
