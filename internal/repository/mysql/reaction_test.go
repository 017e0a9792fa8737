package mysql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql"
)

func TestReactionSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysql.NewReactionRepository(db)

	mock.ExpectExec("INSERT INTO `reactions`.*ON DUPLICATE KEY UPDATE.*`added_at`=IF\\(status <> VALUES\\(status\\).*`status`=VALUES\\(status\\)").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.TODO(), &domain.Reaction{
		SubjectType: domain.SubjectPost,
		SubjectID:   3,
		UserID:      4,
		Status:      domain.LikeStatusLike,
		AddedAt:     time.Now().UTC(),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReactionGet(t *testing.T) {
	t.Run("never reacted", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `reactions` WHERE subject_type = \\? AND subject_id = \\? AND user_id = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"id", "subject_type", "subject_id", "user_id", "status", "added_at"}))

		status, err := mysql.NewReactionRepository(db).Get(context.TODO(), domain.SubjectComment, 1, 2)

		require.NoError(t, err)
		assert.Equal(t, domain.LikeStatusNone, status)
	})

	t.Run("stored status", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"id", "subject_type", "subject_id", "user_id", "status", "added_at"}).
			AddRow(1, "Comment", 1, 2, "Dislike", time.Now())
		mock.ExpectQuery("SELECT \\* FROM `reactions`").WillReturnRows(rows)

		status, err := mysql.NewReactionRepository(db).Get(context.TODO(), domain.SubjectComment, 1, 2)

		require.NoError(t, err)
		assert.Equal(t, domain.LikeStatusDislike, status)
	})
}

func TestReactionListBySubject(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "subject_type", "subject_id", "user_id", "status", "added_at"}).
		AddRow(2, "Post", 9, 5, "Like", now.Add(time.Minute)).
		AddRow(1, "Post", 9, 4, "Dislike", now)
	mock.ExpectQuery("SELECT \\* FROM `reactions` WHERE subject_type = \\? AND subject_id = \\? ORDER BY added_at DESC, id DESC").
		WillReturnRows(rows)

	res, err := mysql.NewReactionRepository(db).ListBySubject(context.TODO(), domain.SubjectPost, 9)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(5), res[0].UserID)
	assert.Equal(t, domain.LikeStatusLike, res[0].Status)
	assert.Equal(t, domain.SubjectPost, res[1].SubjectType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
