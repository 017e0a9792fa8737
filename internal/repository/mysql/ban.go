package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/repository"
	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql/model"
)

var blogBanSortColumns = repository.SortColumns{
	"login":     "users.login",
	"banDate":   "blog_bans.ban_date",
	"createdAt": "blog_bans.ban_date",
}

type banRepository struct {
	DB *gorm.DB
}

var _ domain.BanRepository = (*banRepository)(nil)

func NewBanRepository(db *gorm.DB) *banRepository {
	return &banRepository{db}
}

func (m *banRepository) IsGloballyBanned(ctx context.Context, userID int64) (bool, error) {
	var row model.GlobalBan
	err := m.DB.WithContext(ctx).Where("user_id = ?", userID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return row.IsBanned, nil
}

func (m *banRepository) IsBlogBanned(ctx context.Context, userID, blogID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).Model(&model.BlogBan{}).
		Where("blog_id = ? AND user_id = ? AND is_banned = ?", blogID, userID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *banRepository) ExcludedAmong(ctx context.Context, blogID int64, userIDs []int64) (map[int64]bool, error) {
	res := make(map[int64]bool)
	if len(userIDs) == 0 {
		return res, nil
	}

	var globally []int64
	if err := m.DB.WithContext(ctx).Model(&model.GlobalBan{}).
		Where("user_id IN ? AND is_banned = ?", userIDs, true).
		Pluck("user_id", &globally).Error; err != nil {
		return nil, err
	}

	var onBlog []int64
	if err := m.DB.WithContext(ctx).Model(&model.BlogBan{}).
		Where("blog_id = ? AND user_id IN ? AND is_banned = ?", blogID, userIDs, true).
		Pluck("user_id", &onBlog).Error; err != nil {
		return nil, err
	}

	for _, id := range globally {
		res[id] = true
	}
	for _, id := range onBlog {
		res[id] = true
	}
	return res, nil
}

// SetGlobalBan overwrites the user's ban row, creating it if it is missing.
func (m *banRepository) SetGlobalBan(ctx context.Context, b domain.GlobalBan) error {
	row := model.NewGlobalBanFromDomain(b)
	return m.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

func (m *banRepository) SetBlogBan(ctx context.Context, b domain.BlogBan) error {
	row := model.NewBlogBanFromDomain(b)
	return m.DB.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

func (m *banRepository) FetchBlogBans(ctx context.Context, blogID int64, q domain.Query) (domain.Page[domain.BlogBan], error) {
	order, err := blogBanSortColumns.OrderBy(q, "blog_bans.user_id")
	if err != nil {
		return domain.Page[domain.BlogBan]{}, err
	}

	tx := m.DB.WithContext(ctx).Table("blog_bans").
		Joins("JOIN users ON users.id = blog_bans.user_id").
		Where("blog_bans.blog_id = ? AND blog_bans.is_banned = ?", blogID, true)
	if term := q.Term("login"); term != "" {
		tx = tx.Where("users.login LIKE ?", repository.Contains(term))
	}

	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return domain.Page[domain.BlogBan]{}, err
	}

	var rows []model.BlogBanRow
	err = tx.Select("blog_bans.blog_id, blog_bans.user_id, users.login, blog_bans.is_banned, blog_bans.ban_date, blog_bans.ban_reason").
		Order(order).
		Scopes(repository.Paginate(q)).
		Scan(&rows).Error
	if err != nil {
		return domain.Page[domain.BlogBan]{}, err
	}

	items := make([]domain.BlogBan, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return domain.NewPage(q, total, items), nil
}
