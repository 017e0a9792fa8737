package model

import (
	"time"

	"github.com/Guyuepp/bloggers-platform/domain"
)

// Reaction holds one row per (subject, user).
type Reaction struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	SubjectType string    `gorm:"type:varchar(16);not null;uniqueIndex:uniq_reaction,priority:1"`
	SubjectID   int64     `gorm:"not null;uniqueIndex:uniq_reaction,priority:2"`
	UserID      int64     `gorm:"not null;uniqueIndex:uniq_reaction,priority:3;index"`
	Status      string    `gorm:"type:varchar(8);not null"`
	AddedAt     time.Time `gorm:"type:datetime(3);not null"`
}

func (Reaction) TableName() string {
	return "reactions"
}

func NewReactionFromDomain(r *domain.Reaction) *Reaction {
	return &Reaction{
		ID:          r.ID,
		SubjectType: string(r.SubjectType),
		SubjectID:   r.SubjectID,
		UserID:      r.UserID,
		Status:      string(r.Status),
		AddedAt:     r.AddedAt,
	}
}

func (m *Reaction) ToDomain() domain.Reaction {
	return domain.Reaction{
		ID:          m.ID,
		SubjectType: domain.SubjectType(m.SubjectType),
		SubjectID:   m.SubjectID,
		UserID:      m.UserID,
		Status:      domain.LikeStatus(m.Status),
		AddedAt:     m.AddedAt,
	}
}
