package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/repository"
	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql/model"
)

var userSortColumns = repository.SortColumns{
	"createdAt": "users.created_at",
	"login":     "users.login",
	"email":     "users.email",
}

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) withBan(ctx context.Context) *gorm.DB {
	return m.DB.WithContext(ctx).Table("users").
		Select(model.UserRowColumns).
		Joins("LEFT JOIN global_bans ON global_bans.user_id = users.id")
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var row model.UserRow
	if err := m.withBan(ctx).Where("users.id = ?", id).Take(&row).Error; err != nil {
		return domain.User{}, repository.NotFound(err)
	}
	return row.ToDomain(), nil
}

func (m *userRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []model.UserRow
	if err := m.withBan(ctx).Where("users.id IN ?", ids).Scan(&rows).Error; err != nil {
		return nil, err
	}
	res := make([]domain.User, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (m *userRepository) GetByLoginOrEmail(ctx context.Context, loginOrEmail string) (domain.User, error) {
	var row model.UserRow
	err := m.withBan(ctx).
		Where("users.login = ? OR users.email = ?", loginOrEmail, loginOrEmail).
		Take(&row).Error
	if err != nil {
		return domain.User{}, repository.NotFound(err)
	}
	return row.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userModel).Error; err != nil {
			return err
		}
		ban := model.GlobalBan{UserID: userModel.ID}
		return tx.Create(&ban).Error
	})
	if repository.IsDuplicate(err) {
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}

	u.ID = userModel.ID
	u.CreatedAt = userModel.CreatedAt
	u.Ban = domain.GlobalBan{UserID: userModel.ID}
	return nil
}

// Delete removes the user's blogs (with everything posted in them), reactions,
// comments (with their reactions), sessions and bans before the user itself.
func (m *userRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var blogIDs []int64
		if err := tx.Model(&model.Blog{}).Where("owner_id = ?", id).Pluck("id", &blogIDs).Error; err != nil {
			return err
		}
		if len(blogIDs) > 0 {
			if err := deleteBlogContent(tx, blogIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", blogIDs).Delete(&model.Blog{}).Error; err != nil {
				return err
			}
		}

		var commentIDs []int64
		if err := tx.Model(&model.Comment{}).Where("user_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if err := deleteReactionsOf(tx, domain.SubjectComment, commentIDs); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.DeviceSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.BlogBan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.GlobalBan{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (m *userRepository) Fetch(ctx context.Context, q domain.Query) (domain.Page[domain.User], error) {
	order, err := userSortColumns.OrderBy(q, "users.id")
	if err != nil {
		return domain.Page[domain.User]{}, err
	}

	tx := m.DB.WithContext(ctx).Table("users").
		Joins("LEFT JOIN global_bans ON global_bans.user_id = users.id")
	if term := q.Term("login"); term != "" {
		tx = tx.Where("users.login LIKE ?", repository.Contains(term))
	}
	if term := q.Term("email"); term != "" {
		tx = tx.Where("users.email LIKE ?", repository.Contains(term))
	}
	switch q.BanStatus {
	case domain.BanStatusBanned:
		tx = tx.Where("global_bans.is_banned = ?", true)
	case domain.BanStatusNotBanned:
		tx = tx.Where("global_bans.is_banned IS NULL OR global_bans.is_banned = ?", false)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return domain.Page[domain.User]{}, err
	}

	var rows []model.UserRow
	err = tx.Select(model.UserRowColumns).
		Order(order).
		Scopes(repository.Paginate(q)).
		Scan(&rows).Error
	if err != nil {
		return domain.Page[domain.User]{}, err
	}

	items := make([]domain.User, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return domain.NewPage(q, total, items), nil
}
