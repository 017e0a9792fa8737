package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/domain/mocks"
	"github.com/Guyuepp/bloggers-platform/internal/security"
)

// memDevices keeps sessions in a map.
type memDevices struct {
	mu       sync.Mutex
	sessions map[string]domain.DeviceSession
}

func newMemDevices() *memDevices {
	return &memDevices{sessions: map[string]domain.DeviceSession{}}
}

func (m *memDevices) Store(_ context.Context, s *domain.DeviceSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.DeviceID] = *s
	return nil
}

func (m *memDevices) GetByDeviceID(_ context.Context, deviceID string) (domain.DeviceSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[deviceID]
	if !ok {
		return domain.DeviceSession{}, domain.ErrNotFound
	}
	return s, nil
}

func (m *memDevices) Touch(_ context.Context, deviceID, ip string, lastActive, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[deviceID]
	if !ok {
		return domain.ErrNotFound
	}
	s.IP, s.LastActiveDate, s.ExpiresAt = ip, lastActive, expiresAt
	m.sessions[deviceID] = s
	return nil
}

func (m *memDevices) FetchByUser(_ context.Context, userID int64) ([]domain.DeviceSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.DeviceSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			res = append(res, s)
		}
	}
	return res, nil
}

func (m *memDevices) Delete(_ context.Context, deviceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, deviceID)
	return nil
}

func (m *memDevices) DeleteOthers(_ context.Context, userID int64, keep string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if s.UserID == userID && id != keep {
			delete(m.sessions, id)
		}
	}
	return nil
}

func (m *memDevices) DeleteByUser(ctx context.Context, userID int64) error {
	return m.DeleteOthers(ctx, userID, "")
}

func (m *memDevices) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, s := range m.sessions {
		if !s.ExpiresAt.After(now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

type fixture struct {
	svc     *Service
	users   *mocks.UserRepository
	devices *memDevices
	hasher  domain.PasswordHasher
	clock   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:   new(mocks.UserRepository),
		devices: newMemDevices(),
		hasher:  security.NewBcryptHasher(bcrypt.MinCost),
		clock:   time.Now().UTC().Truncate(time.Second),
	}
	tokens := security.NewJWTProvider([]byte("test-secret"), 10*time.Second, 20*time.Second)
	f.svc = NewService(f.users, f.devices, f.hasher, tokens)
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) user(t *testing.T, id int64, password string, banned bool) domain.User {
	t.Helper()
	hash, err := f.hasher.Hash(password)
	require.NoError(t, err)
	u := domain.User{ID: id, Login: faker.Username(), Email: faker.Email(), Password: hash}
	u.Ban.IsBanned = banned
	f.users.On("GetByLoginOrEmail", mock.Anything, u.Login).Return(u, nil).Maybe()
	f.users.On("GetByID", mock.Anything, id).Return(u, nil).Maybe()
	return u
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByLoginOrEmail", mock.Anything, mock.Anything).Return(domain.User{}, domain.ErrNotFound).Twice()
		f.users.On("Insert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Login == "newbie" && u.Email == "newbie@example.com" &&
				f.hasher.Compare(u.Password, "qwerty123") == nil
		})).Return(nil).Once()

		err := f.svc.Register(context.TODO(), "newbie", "newbie@example.com", "qwerty123")

		assert.NoError(t, err)
		f.users.AssertExpectations(t)
	})

	t.Run("login taken", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByLoginOrEmail", mock.Anything, "newbie").Return(domain.User{ID: 1}, nil).Once()

		err := f.svc.Register(context.TODO(), "newbie", "newbie@example.com", "qwerty123")

		var fe *domain.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "login", fe.Field)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByLoginOrEmail", mock.Anything, "newbie").Return(domain.User{}, domain.ErrNotFound).Once()
		f.users.On("GetByLoginOrEmail", mock.Anything, "newbie@example.com").Return(domain.User{ID: 1}, nil).Once()

		err := f.svc.Register(context.TODO(), "newbie", "newbie@example.com", "qwerty123")

		var fe *domain.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "email", fe.Field)
		f.users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("lost the insert race", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByLoginOrEmail", mock.Anything, mock.Anything).Return(domain.User{}, domain.ErrNotFound).Twice()
		f.users.On("Insert", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

		err := f.svc.Register(context.TODO(), "newbie", "newbie@example.com", "qwerty123")

		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})
}

func TestLogin(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)
		u := f.user(t, 1, "secret1", false)

		_, err := f.svc.Login(context.TODO(), u.Login, "secret2", "1.1.1.1", "curl")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Empty(t, f.devices.sessions)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByLoginOrEmail", mock.Anything, "ghost").Return(domain.User{}, domain.ErrNotFound).Once()

		_, err := f.svc.Login(context.TODO(), "ghost", "secret1", "1.1.1.1", "curl")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("banned user", func(t *testing.T) {
		f := newFixture(t)
		u := f.user(t, 1, "secret1", true)

		_, err := f.svc.Login(context.TODO(), u.Login, "secret1", "1.1.1.1", "curl")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Empty(t, f.devices.sessions)
	})

	t.Run("success opens a session", func(t *testing.T) {
		f := newFixture(t)
		f.svc.newID = func() string { return "device-1" }
		u := f.user(t, 1, "secret1", false)

		pair, err := f.svc.Login(context.TODO(), u.Login, "secret1", "1.1.1.1", "curl")

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		sess, err := f.devices.GetByDeviceID(context.TODO(), "device-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), sess.UserID)
		assert.Equal(t, "curl", sess.Title)
		assert.True(t, sess.LastActiveDate.Equal(f.clock))
		assert.True(t, sess.ExpiresAt.Equal(f.clock.Add(20*time.Second)))
	})
}

func TestRefreshRotatesTheToken(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, 1, "secret1", false)
	ctx := context.TODO()

	first, err := f.svc.Login(ctx, u.Login, "secret1", "1.1.1.1", "curl")
	require.NoError(t, err)

	// same second as the login, the new iat still moves forward
	second, err := f.svc.Refresh(ctx, first.RefreshToken, "2.2.2.2")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = f.svc.Refresh(ctx, first.RefreshToken, "2.2.2.2")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	sess, err := f.svc.Session(ctx, second.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "2.2.2.2", sess.IP)
	assert.True(t, sess.LastActiveDate.Equal(f.clock.Add(time.Second)))

	require.NoError(t, f.svc.Logout(ctx, second.RefreshToken))
	_, err = f.svc.Session(ctx, second.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefreshRefusesBannedUser(t *testing.T) {
	f := newFixture(t)
	f.svc.newID = func() string { return "device-1" }
	hash, err := f.hasher.Hash("secret1")
	require.NoError(t, err)
	u := domain.User{ID: 1, Login: "alice", Password: hash}
	f.users.On("GetByLoginOrEmail", mock.Anything, "alice").Return(u, nil).Once()

	pair, err := f.svc.Login(context.TODO(), "alice", "secret1", "1.1.1.1", "curl")
	require.NoError(t, err)

	u.Ban.IsBanned = true
	f.users.On("GetByID", mock.Anything, int64(1)).Return(u, nil).Once()

	_, err = f.svc.Refresh(context.TODO(), pair.RefreshToken, "1.1.1.1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSessionRejectsGarbage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Session(context.TODO(), "not-a-token")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
