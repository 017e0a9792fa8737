package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/repository"
	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql/model"
)

var commentSortColumns = repository.SortColumns{
	"createdAt": "comments.created_at",
	"content":   "comments.content",
	"userLogin": "users.login",
}

const commentRowColumns = "comments.*, users.login AS user_login"

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

// visible joins the author and hides comments of globally banned authors.
func (c *commentRepository) visible(ctx context.Context) *gorm.DB {
	return c.DB.WithContext(ctx).Table("comments").
		Joins("JOIN users ON users.id = comments.user_id").
		Joins("LEFT JOIN global_bans ON global_bans.user_id = comments.user_id").
		Where("global_bans.is_banned IS NULL OR global_bans.is_banned = ?", false)
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	var row model.CommentRow
	err := c.visible(ctx).
		Select(commentRowColumns).
		Where("comments.id = ?", id).
		Take(&row).Error
	if err != nil {
		return domain.Comment{}, repository.NotFound(err)
	}
	return row.ToDomain(), nil
}

func (c *commentRepository) FetchByPost(ctx context.Context, postID int64, q domain.Query) (domain.Page[domain.Comment], error) {
	tx := c.visible(ctx).Where("comments.post_id = ?", postID)
	return c.fetch(tx, q, commentRowColumns)
}

func (c *commentRepository) FetchByBlogOwner(ctx context.Context, ownerID int64, q domain.Query) (domain.Page[domain.Comment], error) {
	tx := c.visible(ctx).
		Joins("JOIN posts ON posts.id = comments.post_id").
		Joins("JOIN blogs ON blogs.id = comments.blog_id").
		Where("blogs.owner_id = ?", ownerID)
	return c.fetch(tx, q, commentRowColumns+", posts.title AS post_title, blogs.name AS blog_name")
}

func (c *commentRepository) fetch(tx *gorm.DB, q domain.Query, columns string) (domain.Page[domain.Comment], error) {
	order, err := commentSortColumns.OrderBy(q, "comments.id")
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	var rows []model.CommentRow
	err = tx.Select(columns).
		Order(order).
		Scopes(repository.Paginate(q)).
		Scan(&rows).Error
	if err != nil {
		return domain.Page[domain.Comment]{}, err
	}

	items := make([]domain.Comment, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return domain.NewPage(q, total, items), nil
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(commentModel).Error; err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	result := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Update("content", comment.Content)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteReactionsOf(tx, domain.SubjectComment, []int64{id}); err != nil {
			return err
		}
		result := tx.Delete(&model.Comment{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
