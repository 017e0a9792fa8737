package device

import (
	"context"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type Service struct {
	deviceRepo domain.DeviceRepository
}

var _ domain.DeviceUsecase = (*Service)(nil)

func NewService(d domain.DeviceRepository) *Service {
	return &Service{deviceRepo: d}
}

func (s *Service) Fetch(ctx context.Context, userID int64) ([]domain.DeviceSession, error) {
	return s.deviceRepo.FetchByUser(ctx, userID)
}

func (s *Service) TerminateOthers(ctx context.Context, userID int64, currentDeviceID string) error {
	return s.deviceRepo.DeleteOthers(ctx, userID, currentDeviceID)
}

func (s *Service) Terminate(ctx context.Context, userID int64, deviceID string) error {
	sess, err := s.deviceRepo.GetByDeviceID(ctx, deviceID)
	if err != nil {
		return err
	}
	if sess.UserID != userID {
		return domain.ErrForbidden
	}
	return s.deviceRepo.Delete(ctx, deviceID)
}
