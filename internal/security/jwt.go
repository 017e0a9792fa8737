package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Guyuepp/bloggers-platform/domain"
)

const (
	issuer = "bloggers-platform"

	audienceAccess  = "access"
	audienceRefresh = "refresh"
)

// UserClaims extends the registered claims with what the platform needs.
type UserClaims struct {
	Login    string `json:"login,omitempty"`
	DeviceID string `json:"device_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider signs access and refresh tokens with one HMAC secret.
type JWTProvider struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

var _ domain.TokenProvider = (*JWTProvider)(nil)

func NewJWTProvider(secret []byte, accessExpiry, refreshExpiry time.Duration) *JWTProvider {
	return &JWTProvider{
		secret:        secret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		now:           time.Now,
	}
}

func (j *JWTProvider) IssueAccess(u domain.User) (string, error) {
	now := j.now()
	claims := UserClaims{
		Login: u.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(u.ID, 10),
			Audience:  jwt.ClaimStrings{audienceAccess},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessExpiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// IssueRefresh signs a refresh token for a device. issuedAt is stored in the
// session, so it is truncated to the second precision of the iat claim.
func (j *JWTProvider) IssueRefresh(userID int64, deviceID string, issuedAt time.Time) (string, time.Time, error) {
	issuedAt = issuedAt.Truncate(time.Second)
	expiresAt := issuedAt.Add(j.refreshExpiry)
	claims := UserClaims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			Audience:  jwt.ClaimStrings{audienceRefresh},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	return token, expiresAt, err
}

func (j *JWTProvider) ParseAccess(token string) (domain.TokenClaims, error) {
	return j.parse(token, audienceAccess)
}

func (j *JWTProvider) ParseRefresh(token string) (domain.TokenClaims, error) {
	claims, err := j.parse(token, audienceRefresh)
	if err != nil {
		return domain.TokenClaims{}, err
	}
	if claims.DeviceID == "" {
		return domain.TokenClaims{}, domain.ErrUnauthorized
	}
	return claims, nil
}

func (j *JWTProvider) parse(tokenString, audience string) (domain.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return domain.TokenClaims{}, errors.Join(domain.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return domain.TokenClaims{}, domain.ErrUnauthorized
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.TokenClaims{}, domain.ErrUnauthorized
	}

	res := domain.TokenClaims{
		UserID:   userID,
		Login:    claims.Login,
		DeviceID: claims.DeviceID,
	}
	if claims.IssuedAt != nil {
		res.IssuedAt = claims.IssuedAt.Time
	}
	return res, nil
}
