package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/repository"
	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql/model"
)

var blogSortColumns = repository.SortColumns{
	"createdAt":    "blogs.created_at",
	"name":         "blogs.name",
	"description":  "blogs.description",
	"websiteUrl":   "blogs.website_url",
	"isMembership": "blogs.is_membership",
}

const blogRowColumns = "blogs.*, users.login AS owner_login"

type blogRepository struct {
	DB *gorm.DB
}

var _ domain.BlogRepository = (*blogRepository)(nil)

func NewBlogRepository(db *gorm.DB) *blogRepository {
	return &blogRepository{db}
}

func (m *blogRepository) GetByID(ctx context.Context, id int64) (domain.Blog, error) {
	var row model.BlogRow
	err := m.DB.WithContext(ctx).Table("blogs").
		Select(blogRowColumns).
		Joins("LEFT JOIN users ON users.id = blogs.owner_id").
		Where("blogs.id = ?", id).
		Take(&row).Error
	if err != nil {
		return domain.Blog{}, repository.NotFound(err)
	}
	return row.ToDomain(), nil
}

func (m *blogRepository) Fetch(ctx context.Context, q domain.Query, ownerID *int64) (domain.Page[domain.Blog], error) {
	order, err := blogSortColumns.OrderBy(q, "blogs.id")
	if err != nil {
		return domain.Page[domain.Blog]{}, err
	}

	tx := m.DB.WithContext(ctx).Table("blogs").
		Joins("LEFT JOIN users ON users.id = blogs.owner_id")
	if ownerID != nil {
		tx = tx.Where("blogs.owner_id = ?", *ownerID)
	}
	if term := q.Term("name"); term != "" {
		tx = tx.Where("blogs.name LIKE ?", repository.Contains(term))
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return domain.Page[domain.Blog]{}, err
	}

	var rows []model.BlogRow
	err = tx.Select(blogRowColumns).
		Order(order).
		Scopes(repository.Paginate(q)).
		Scan(&rows).Error
	if err != nil {
		return domain.Page[domain.Blog]{}, err
	}

	items := make([]domain.Blog, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return domain.NewPage(q, total, items), nil
}

func (m *blogRepository) Store(ctx context.Context, b *domain.Blog) error {
	blogModel := model.NewBlogFromDomain(b)
	if err := m.DB.WithContext(ctx).Create(blogModel).Error; err != nil {
		return err
	}
	b.ID = blogModel.ID
	b.CreatedAt = blogModel.CreatedAt
	return nil
}

func (m *blogRepository) Update(ctx context.Context, b *domain.Blog) error {
	result := m.DB.WithContext(ctx).Model(&model.Blog{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"name":        b.Name,
			"description": b.Description,
			"website_url": b.WebsiteURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the blog and everything hanging off it in one transaction.
func (m *blogRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteBlogContent(tx, []int64{id}); err != nil {
			return err
		}

		result := tx.Delete(&model.Blog{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// deleteBlogContent removes the posts, comments, reactions and bans of blogIDs,
// leaving the blog rows themselves.
func deleteBlogContent(tx *gorm.DB, blogIDs []int64) error {
	if len(blogIDs) == 0 {
		return nil
	}
	var postIDs []int64
	if err := tx.Model(&model.Post{}).Where("blog_id IN ?", blogIDs).Pluck("id", &postIDs).Error; err != nil {
		return err
	}
	var commentIDs []int64
	if err := tx.Model(&model.Comment{}).Where("blog_id IN ?", blogIDs).Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	if err := deleteReactionsOf(tx, domain.SubjectComment, commentIDs); err != nil {
		return err
	}
	if err := deleteReactionsOf(tx, domain.SubjectPost, postIDs); err != nil {
		return err
	}
	if err := tx.Where("blog_id IN ?", blogIDs).Delete(&model.Comment{}).Error; err != nil {
		return err
	}
	if err := tx.Where("blog_id IN ?", blogIDs).Delete(&model.Post{}).Error; err != nil {
		return err
	}
	return tx.Where("blog_id IN ?", blogIDs).Delete(&model.BlogBan{}).Error
}
