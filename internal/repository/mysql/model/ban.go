package model

import (
	"time"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type GlobalBan struct {
	UserID    int64      `gorm:"primaryKey;autoIncrement:false"`
	IsBanned  bool       `gorm:"not null;index"`
	BanDate   *time.Time `gorm:"type:datetime(3)"`
	BanReason *string    `gorm:"type:varchar(1000)"`
}

func (GlobalBan) TableName() string {
	return "global_bans"
}

func NewGlobalBanFromDomain(b domain.GlobalBan) GlobalBan {
	return GlobalBan{
		UserID:    b.UserID,
		IsBanned:  b.IsBanned,
		BanDate:   b.BanDate,
		BanReason: b.BanReason,
	}
}

// BlogBan stores blog scoped bans, one row per (blog, user).
type BlogBan struct {
	BlogID    int64      `gorm:"primaryKey;autoIncrement:false"`
	UserID    int64      `gorm:"primaryKey;autoIncrement:false;index"`
	IsBanned  bool       `gorm:"not null"`
	BanDate   *time.Time `gorm:"type:datetime(3)"`
	BanReason *string    `gorm:"type:varchar(1000)"`
}

func (BlogBan) TableName() string {
	return "blog_bans"
}

func NewBlogBanFromDomain(b domain.BlogBan) BlogBan {
	return BlogBan{
		BlogID:    b.BlogID,
		UserID:    b.UserID,
		IsBanned:  b.IsBanned,
		BanDate:   b.BanDate,
		BanReason: b.BanReason,
	}
}

// BlogBanRow is a blog ban joined with the banned user's login.
type BlogBanRow struct {
	BlogID    int64
	UserID    int64
	Login     string
	IsBanned  bool
	BanDate   *time.Time
	BanReason *string
}

func (m *BlogBanRow) ToDomain() domain.BlogBan {
	return domain.BlogBan{
		BlogID:    m.BlogID,
		UserID:    m.UserID,
		UserLogin: m.Login,
		IsBanned:  m.IsBanned,
		BanDate:   m.BanDate,
		BanReason: m.BanReason,
	}
}
