package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql/model"
)

// AutoMigrate creates or updates every table the platform uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.GlobalBan{},
		&model.Blog{},
		&model.BlogBan{},
		&model.Post{},
		&model.Comment{},
		&model.Reaction{},
		&model.DeviceSession{},
	)
}
