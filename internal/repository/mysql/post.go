package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/repository"
	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql/model"
)

var postSortColumns = repository.SortColumns{
	"createdAt":        "posts.created_at",
	"title":            "posts.title",
	"shortDescription": "posts.short_description",
	"content":          "posts.content",
	"blogId":           "posts.blog_id",
	"blogName":         "blogs.name",
}

const postRowColumns = "posts.*, blogs.name AS blog_name"

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	var row model.PostRow
	err := m.DB.WithContext(ctx).Table("posts").
		Select(postRowColumns).
		Joins("JOIN blogs ON blogs.id = posts.blog_id").
		Where("posts.id = ?", id).
		Take(&row).Error
	if err != nil {
		return domain.Post{}, repository.NotFound(err)
	}
	return row.ToDomain(), nil
}

func (m *postRepository) Fetch(ctx context.Context, q domain.Query, blogID *int64) (domain.Page[domain.Post], error) {
	order, err := postSortColumns.OrderBy(q, "posts.id")
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}

	tx := m.DB.WithContext(ctx).Table("posts").
		Joins("JOIN blogs ON blogs.id = posts.blog_id")
	if blogID != nil {
		tx = tx.Where("posts.blog_id = ?", *blogID)
	}
	if term := q.Term("title"); term != "" {
		tx = tx.Where("posts.title LIKE ?", repository.Contains(term))
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return domain.Page[domain.Post]{}, err
	}

	var rows []model.PostRow
	err = tx.Select(postRowColumns).
		Order(order).
		Scopes(repository.Paginate(q)).
		Scan(&rows).Error
	if err != nil {
		return domain.Page[domain.Post]{}, err
	}

	items := make([]domain.Post, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return domain.NewPage(q, total, items), nil
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) error {
	postModel := model.NewPostFromDomain(p)
	if err := m.DB.WithContext(ctx).Create(postModel).Error; err != nil {
		return err
	}
	p.ID = postModel.ID
	p.CreatedAt = postModel.CreatedAt
	return nil
}

func (m *postRepository) Update(ctx context.Context, p *domain.Post) error {
	result := m.DB.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"title":             p.Title,
			"short_description": p.ShortDescription,
			"content":           p.Content,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *postRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commentIDs []int64
		if err := tx.Model(&model.Comment{}).Where("post_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if err := deleteReactionsOf(tx, domain.SubjectComment, commentIDs); err != nil {
			return err
		}
		if err := deleteReactionsOf(tx, domain.SubjectPost, []int64{id}); err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	return
}
