package domain

import (
	"context"
	"time"
)

// DeviceSession is one logged in device of a user. A refresh token is valid
// only while its issue time equals LastActiveDate.
type DeviceSession struct {
	DeviceID       string
	UserID         int64
	IP             string
	Title          string
	LastActiveDate time.Time
	ExpiresAt      time.Time
}

type DeviceRepository interface {
	Store(ctx context.Context, s *DeviceSession) error
	// GetByDeviceID returns ErrNotFound for unknown devices.
	GetByDeviceID(ctx context.Context, deviceID string) (DeviceSession, error)
	// Touch rotates the session to a new issue time.
	Touch(ctx context.Context, deviceID, ip string, lastActive, expiresAt time.Time) error
	FetchByUser(ctx context.Context, userID int64) ([]DeviceSession, error)
	Delete(ctx context.Context, deviceID string) error
	DeleteOthers(ctx context.Context, userID int64, keepDeviceID string) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// TokenClaims is what the auth layer reads back from a token.
type TokenClaims struct {
	UserID   int64
	Login    string
	DeviceID string
	IssuedAt time.Time
}

// TokenPair is returned on login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type TokenProvider interface {
	IssueAccess(u User) (string, error)
	IssueRefresh(userID int64, deviceID string, issuedAt time.Time) (token string, expiresAt time.Time, err error)
	ParseAccess(token string) (TokenClaims, error)
	ParseRefresh(token string) (TokenClaims, error)
}

// AuthUsecase handles registration and the token lifecycle.
type AuthUsecase interface {
	Register(ctx context.Context, login, email, password string) error
	// Login returns ErrUnauthorized for wrong credentials and banned users.
	Login(ctx context.Context, loginOrEmail, password, ip, title string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken, ip string) (TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID int64) (User, error)
	// Session validates a refresh token and returns its live session.
	Session(ctx context.Context, refreshToken string) (DeviceSession, error)
}

// DeviceUsecase manages the sessions of the current user.
type DeviceUsecase interface {
	Fetch(ctx context.Context, userID int64) ([]DeviceSession, error)
	TerminateOthers(ctx context.Context, userID int64, currentDeviceID string) error
	// Terminate returns ErrForbidden for another user's device.
	Terminate(ctx context.Context, userID int64, deviceID string) error
}

// RateLimiter counts hits per key in a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error)
}
