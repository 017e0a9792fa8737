package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type Service struct {
	userRepo   domain.UserRepository
	deviceRepo domain.DeviceRepository
	hasher     domain.PasswordHasher
	tokens     domain.TokenProvider
	now        func() time.Time
	newID      func() string
}

var _ domain.AuthUsecase = (*Service)(nil)

// NewService will create a new auth service object
func NewService(u domain.UserRepository, d domain.DeviceRepository, h domain.PasswordHasher, t domain.TokenProvider) *Service {
	return &Service{
		userRepo:   u,
		deviceRepo: d,
		hasher:     h,
		tokens:     t,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Register creates a confirmed account. Taken logins and emails are reported
// against their field.
func (s *Service) Register(ctx context.Context, login, email, password string) error {
	for _, f := range []struct{ field, value string }{{"login", login}, {"email", email}} {
		_, err := s.userRepo.GetByLoginOrEmail(ctx, f.value)
		if err == nil {
			return &domain.FieldError{Field: f.field, Message: f.field + " is already taken"}
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	u := domain.User{Login: login, Email: email, Password: hashed}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return &domain.FieldError{Field: "login", Message: "login or email is already taken"}
		}
		return err
	}
	return nil
}

func (s *Service) Login(ctx context.Context, loginOrEmail, password, ip, title string) (domain.TokenPair, error) {
	u, err := s.userRepo.GetByLoginOrEmail(ctx, loginOrEmail)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.TokenPair{}, domain.ErrUnauthorized
	}
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.hasher.Compare(u.Password, password); err != nil {
		return domain.TokenPair{}, domain.ErrUnauthorized
	}
	if u.Ban.IsBanned {
		logrus.Infof("banned user %d tried to log in", u.ID)
		return domain.TokenPair{}, domain.ErrUnauthorized
	}

	sess := domain.DeviceSession{
		DeviceID: s.newID(),
		UserID:   u.ID,
		IP:       ip,
		Title:    title,
	}
	pair, err := s.issue(u, &sess, s.now().UTC())
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.deviceRepo.Store(ctx, &sess); err != nil {
		return domain.TokenPair{}, err
	}
	return pair, nil
}

// issue signs a token pair and moves the session to the refresh token's
// issue time.
func (s *Service) issue(u domain.User, sess *domain.DeviceSession, now time.Time) (domain.TokenPair, error) {
	access, err := s.tokens.IssueAccess(u)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, expiresAt, err := s.tokens.IssueRefresh(u.ID, sess.DeviceID, now)
	if err != nil {
		return domain.TokenPair{}, err
	}
	sess.LastActiveDate = now.Truncate(time.Second)
	sess.ExpiresAt = expiresAt
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) Session(ctx context.Context, refreshToken string) (domain.DeviceSession, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return domain.DeviceSession{}, domain.ErrUnauthorized
	}
	sess, err := s.deviceRepo.GetByDeviceID(ctx, claims.DeviceID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DeviceSession{}, domain.ErrUnauthorized
	}
	if err != nil {
		return domain.DeviceSession{}, err
	}
	// a rotated token carries an older iat than the session
	if sess.UserID != claims.UserID || !sess.LastActiveDate.Equal(claims.IssuedAt) {
		return domain.DeviceSession{}, domain.ErrUnauthorized
	}
	return sess, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken, ip string) (domain.TokenPair, error) {
	sess, err := s.Session(ctx, refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}
	u, err := s.userRepo.GetByID(ctx, sess.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.TokenPair{}, domain.ErrUnauthorized
	}
	if err != nil {
		return domain.TokenPair{}, err
	}
	if u.Ban.IsBanned {
		return domain.TokenPair{}, domain.ErrUnauthorized
	}

	// iat has second precision; two refreshes within one second must still
	// produce distinct tokens
	now := s.now().UTC().Truncate(time.Second)
	if !now.After(sess.LastActiveDate) {
		now = sess.LastActiveDate.Add(time.Second)
	}
	pair, err := s.issue(u, &sess, now)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.deviceRepo.Touch(ctx, sess.DeviceID, ip, sess.LastActiveDate, sess.ExpiresAt); err != nil {
		return domain.TokenPair{}, err
	}
	return pair, nil
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	sess, err := s.Session(ctx, refreshToken)
	if err != nil {
		return err
	}
	return s.deviceRepo.Delete(ctx, sess.DeviceID)
}

func (s *Service) Me(ctx context.Context, userID int64) (domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
