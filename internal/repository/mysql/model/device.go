package model

import (
	"time"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type DeviceSession struct {
	DeviceID       string    `gorm:"primaryKey;type:char(36)"`
	UserID         int64     `gorm:"not null;index"`
	IP             string    `gorm:"type:varchar(64)"`
	Title          string    `gorm:"type:varchar(255)"`
	LastActiveDate time.Time `gorm:"type:datetime"`
	ExpiresAt      time.Time `gorm:"type:datetime;index"`
}

func (DeviceSession) TableName() string {
	return "device_sessions"
}

func NewDeviceSessionFromDomain(s *domain.DeviceSession) *DeviceSession {
	return &DeviceSession{
		DeviceID:       s.DeviceID,
		UserID:         s.UserID,
		IP:             s.IP,
		Title:          s.Title,
		LastActiveDate: s.LastActiveDate,
		ExpiresAt:      s.ExpiresAt,
	}
}

func (m *DeviceSession) ToDomain() domain.DeviceSession {
	return domain.DeviceSession{
		DeviceID:       m.DeviceID,
		UserID:         m.UserID,
		IP:             m.IP,
		Title:          m.Title,
		LastActiveDate: m.LastActiveDate,
		ExpiresAt:      m.ExpiresAt,
	}
}
