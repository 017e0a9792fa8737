package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql/model"
)

type reactionRepository struct {
	DB *gorm.DB
}

var _ domain.ReactionRepository = (*reactionRepository)(nil)

func NewReactionRepository(db *gorm.DB) *reactionRepository {
	return &reactionRepository{db}
}

// Set upserts the reaction in one statement, so concurrent writes of the same
// user end as last-write-wins. added_at is assigned before status because
// MySQL evaluates the assignments in order and the comparison must see the
// old status.
func (m *reactionRepository) Set(ctx context.Context, r *domain.Reaction) error {
	row := model.NewReactionFromDomain(r)
	return m.DB.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.Set{
			{Column: clause.Column{Name: "added_at"}, Value: gorm.Expr("IF(status <> VALUES(status), VALUES(added_at), added_at)")},
			{Column: clause.Column{Name: "status"}, Value: gorm.Expr("VALUES(status)")},
		},
	}).Create(row).Error
}

func (m *reactionRepository) Get(ctx context.Context, subjectType domain.SubjectType, subjectID, userID int64) (domain.LikeStatus, error) {
	var row model.Reaction
	err := m.DB.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ? AND user_id = ?", subjectType, subjectID, userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.LikeStatusNone, nil
	}
	if err != nil {
		return domain.LikeStatusNone, err
	}
	return domain.LikeStatus(row.Status), nil
}

func (m *reactionRepository) ListBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID int64) ([]domain.Reaction, error) {
	var rows []model.Reaction
	err := m.DB.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("added_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Reaction, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

// deleteReactionsOf removes the reactions of the given subjects, used inside
// cascading deletes.
func deleteReactionsOf(tx *gorm.DB, subjectType domain.SubjectType, subjectIDs []int64) error {
	if len(subjectIDs) == 0 {
		return nil
	}
	return tx.Where("subject_type = ? AND subject_id IN ?", subjectType, subjectIDs).
		Delete(&model.Reaction{}).Error
}
