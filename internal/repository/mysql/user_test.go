package mysql_test

import (
	"context"
	"testing"
	"time"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/repository/mysql"
)

var userRowColumns = []string{"id", "login", "email", "password", "created_at", "is_banned", "ban_date", "ban_reason"}

func TestUserInsert(t *testing.T) {
	t.Run("creates the ban row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(12, 1))
		mock.ExpectExec("INSERT INTO `global_bans`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		u := domain.User{Login: "alice", Email: "alice@example.com", Password: "hash"}
		err := mysql.NewUserRepository(db).Insert(context.TODO(), &u)

		require.NoError(t, err)
		assert.Equal(t, int64(12), u.ID)
		assert.Equal(t, int64(12), u.Ban.UserID)
		assert.False(t, u.Ban.IsBanned)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate login", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `users`").
			WillReturnError(&mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'login'"})
		mock.ExpectRollback()

		u := domain.User{Login: "alice", Email: "alice@example.com", Password: "hash"}
		err := mysql.NewUserRepository(db).Insert(context.TODO(), &u)

		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		banned := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT users.id, users.login.* FROM `users` LEFT JOIN global_bans ON global_bans.user_id = users.id WHERE users.id = \\?").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "alice", "alice@example.com", "hash", time.Now(), true, banned, "spam spam spam spam spam"))

		u, err := mysql.NewUserRepository(db).GetByID(context.TODO(), 1)

		require.NoError(t, err)
		assert.Equal(t, "alice", u.Login)
		assert.True(t, u.Ban.IsBanned)
		require.NotNil(t, u.Ban.BanDate)
		assert.True(t, banned.Equal(*u.Ban.BanDate))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(sqlmock.NewRows(userRowColumns))

		_, err := mysql.NewUserRepository(db).GetByID(context.TODO(), 1)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `blogs` WHERE owner_id = \\?").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT `id` FROM `comments` WHERE user_id = \\?").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM `comments`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `reactions`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `device_sessions`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `blog_bans`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `global_bans`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `users`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := mysql.NewUserRepository(db).Delete(context.TODO(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDeleteCascadesOwnedBlogs(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `blogs` WHERE owner_id = \\?").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))
	mock.ExpectQuery("SELECT `id` FROM `posts` WHERE blog_id IN \\(\\?,\\?\\)").
		WithArgs(10, 11).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery("SELECT `id` FROM `comments` WHERE blog_id IN \\(\\?,\\?\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM `reactions` WHERE subject_type = \\? AND subject_id IN \\(\\?\\)").
		WithArgs(domain.SubjectPost, 100).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `comments` WHERE blog_id IN").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `posts` WHERE blog_id IN").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `blog_bans` WHERE blog_id IN").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `blogs` WHERE id IN \\(\\?,\\?\\)").
		WithArgs(10, 11).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("SELECT `id` FROM `comments` WHERE user_id = \\?").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM `comments`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `reactions`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `device_sessions`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `blog_bans`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `global_bans`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `users`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := mysql.NewUserRepository(db).Delete(context.TODO(), 1)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
