package model

import (
	"time"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Login     string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (User) TableName() string {
	return "users"
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Login:     u.Login,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
}

// UserRow is a user joined with its global ban.
type UserRow struct {
	ID        int64
	Login     string
	Email     string
	Password  string
	CreatedAt time.Time
	IsBanned  bool
	BanDate   *time.Time
	BanReason *string
}

// UserRowColumns selects a UserRow from users joined with global_bans.
const UserRowColumns = "users.id, users.login, users.email, users.password, users.created_at, " +
	"global_bans.is_banned, global_bans.ban_date, global_bans.ban_reason"

func (m *UserRow) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Login:     m.Login,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		Ban: domain.GlobalBan{
			UserID:    m.ID,
			IsBanned:  m.IsBanned,
			BanDate:   m.BanDate,
			BanReason: m.BanReason,
		},
	}
}
