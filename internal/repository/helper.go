package repository

import (
	"errors"
	"math"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/bloggers-platform/domain"
)

const mysqlDuplicateEntry = 1062

// SortColumns maps the sort fields a listing accepts to qualified columns.
type SortColumns map[string]string

// OrderBy builds the ORDER BY clause for q. Unknown fields are rejected
// instead of silently falling back to the default order.
func (s SortColumns) OrderBy(q domain.Query, idColumn string) (string, error) {
	col, ok := s[q.SortBy]
	if !ok {
		return "", domain.ErrBadParamInput
	}
	dir := "DESC"
	if q.SortDirection == domain.SortAsc {
		dir = "ASC"
	}
	return col + " " + dir + ", " + idColumn + " " + dir, nil
}

// Paginate is a gorm scope selecting the page described by q.
func Paginate(q domain.Query) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		skip := q.Skip()
		if skip > math.MaxInt {
			skip = math.MaxInt
		}
		return db.Offset(int(skip)).Limit(int(q.PageSize))
	}
}

// Contains returns a LIKE pattern matching term anywhere, with the LIKE
// wildcards of term escaped.
func Contains(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// IsDuplicate reports whether err is a unique key violation.
func IsDuplicate(err error) bool {
	var myErr *mysqlDriver.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// NotFound maps gorm's missing record error to domain.ErrNotFound and keeps
// every other error as is.
func NotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
