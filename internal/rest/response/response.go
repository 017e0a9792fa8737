package response // 建议包名就叫 response

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Guyuepp/bloggers-platform/domain"
)

// DateTimeFormat is ISO 8601 with milliseconds, always in UTC.
const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(DateTimeFormat)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Paginator is the envelope of every listing.
type Paginator[T any] struct {
	PagesCount int64 `json:"pagesCount"`
	Page       int64 `json:"page"`
	PageSize   int64 `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	Items      []T   `json:"items"`
}

// NewPaginator converts a domain page with fn.
func NewPaginator[T, R any](p domain.Page[T], fn func(*T) R) Paginator[R] {
	mapped := domain.MapPage(p, fn)
	return Paginator[R]{
		PagesCount: mapped.PagesCount,
		Page:       mapped.Page,
		PageSize:   mapped.PageSize,
		TotalCount: mapped.TotalCount,
		Items:      mapped.Items,
	}
}

type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

// APIErrorResult is the body of every 400 caused by bad input.
type APIErrorResult struct {
	ErrorsMessages []FieldError `json:"errorsMessages"`
}

// NewAPIErrorResult turns binding and domain field errors into the 400 body.
// Only the first failure of each field is reported.
func NewAPIErrorResult(err error) APIErrorResult {
	res := APIErrorResult{ErrorsMessages: []FieldError{}}

	var verrs validator.ValidationErrors
	var ferr *domain.FieldError
	switch {
	case errors.As(err, &verrs):
		seen := map[string]bool{}
		for _, fe := range verrs {
			if seen[fe.Field()] {
				continue
			}
			seen[fe.Field()] = true
			res.ErrorsMessages = append(res.ErrorsMessages, FieldError{
				Message: validationMessage(fe),
				Field:   fe.Field(),
			})
		}
	case errors.As(err, &ferr):
		res.ErrorsMessages = append(res.ErrorsMessages, FieldError{Message: ferr.Message, Field: ferr.Field})
	default:
		res.ErrorsMessages = append(res.ErrorsMessages, FieldError{Message: err.Error()})
	}
	return res
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "likestatus":
		return "likeStatus must be one of None, Like, Dislike"
	default:
		return fe.Field() + " is invalid"
	}
}
