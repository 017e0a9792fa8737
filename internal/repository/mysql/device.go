package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/repository"
	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql/model"
)

type deviceRepository struct {
	DB *gorm.DB
}

var _ domain.DeviceRepository = (*deviceRepository)(nil)

func NewDeviceRepository(db *gorm.DB) *deviceRepository {
	return &deviceRepository{db}
}

func (m *deviceRepository) Store(ctx context.Context, s *domain.DeviceSession) error {
	return m.DB.WithContext(ctx).Create(model.NewDeviceSessionFromDomain(s)).Error
}

func (m *deviceRepository) GetByDeviceID(ctx context.Context, deviceID string) (domain.DeviceSession, error) {
	var row model.DeviceSession
	if err := m.DB.WithContext(ctx).Where("device_id = ?", deviceID).Take(&row).Error; err != nil {
		return domain.DeviceSession{}, repository.NotFound(err)
	}
	return row.ToDomain(), nil
}

func (m *deviceRepository) Touch(ctx context.Context, deviceID, ip string, lastActive, expiresAt time.Time) error {
	result := m.DB.WithContext(ctx).Model(&model.DeviceSession{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"ip":               ip,
			"last_active_date": lastActive,
			"expires_at":       expiresAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *deviceRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.DeviceSession, error) {
	var rows []model.DeviceSession
	err := m.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_active_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.DeviceSession, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (m *deviceRepository) Delete(ctx context.Context, deviceID string) error {
	result := m.DB.WithContext(ctx).Where("device_id = ?", deviceID).Delete(&model.DeviceSession{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *deviceRepository) DeleteOthers(ctx context.Context, userID int64, keepDeviceID string) error {
	return m.DB.WithContext(ctx).
		Where("user_id = ? AND device_id <> ?", userID, keepDeviceID).
		Delete(&model.DeviceSession{}).Error
}

func (m *deviceRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return m.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.DeviceSession{}).Error
}

func (m *deviceRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := m.DB.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.DeviceSession{})
	return result.RowsAffected, result.Error
}
