package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filevault/internal/domain"
	"filevault/internal/pkg/hashutil"
	"filevault/internal/repository"
)

type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// memStore is an in-memory session.Store honoring absolute expiry.
type memStore struct {
	values  map[string]string
	expires map[string]time.Time
	failing bool
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}, expires: map[string]time.Time{}}
}

var errStoreDown = errors.New("store down")

func (s *memStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if s.failing {
		return errStoreDown
	}
	s.values[key] = value
	s.expires[key] = time.Now().Add(ttl)
	return nil
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.failing {
		return "", false, errStoreDown
	}
	value, ok := s.values[key]
	if !ok || time.Now().After(s.expires[key]) {
		return "", false, nil
	}
	return value, true, nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	if s.failing {
		return errStoreDown
	}
	delete(s.values, key)
	delete(s.expires, key)
	return nil
}

func (s *memStore) Ping(_ context.Context) error {
	if s.failing {
		return errStoreDown
	}
	return nil
}

func basicCredentials(email, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
}

func TestLoginThenResolveReturnsSameUser(t *testing.T) {
	users := new(mockUserReader)
	users.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID:           "user-1",
		Email:        "a@b.com",
		PasswordHash: hashutil.SHA1Hex("pw"),
	}, nil)

	store := newMemStore()
	service := NewService(users, store, 24*time.Hour)

	token, err := service.Login(context.Background(), basicCredentials("a@b.com", "pw"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := service.ResolveUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	users.AssertExpectations(t)
}

func TestLoginIssuesDistinctTokens(t *testing.T) {
	users := new(mockUserReader)
	users.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID:           "user-1",
		PasswordHash: hashutil.SHA1Hex("pw"),
	}, nil)

	service := NewService(users, newMemStore(), time.Hour)

	first, err := service.Login(context.Background(), basicCredentials("a@b.com", "pw"))
	require.NoError(t, err)
	second, err := service.Login(context.Background(), basicCredentials("a@b.com", "pw"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// both sessions stay valid concurrently
	id1, err := service.ResolveUser(context.Background(), first)
	require.NoError(t, err)
	id2, err := service.ResolveUser(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestLoginRejectsBadInput(t *testing.T) {
	users := new(mockUserReader)
	service := NewService(users, newMemStore(), time.Hour)

	cases := map[string]string{
		"not base64":     "%%%not-base64%%%",
		"no separator":   base64.StdEncoding.EncodeToString([]byte("justanemail")),
		"empty email":    basicCredentials("", "pw"),
		"empty password": basicCredentials("a@b.com", ""),
	}
	for name, creds := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := service.Login(context.Background(), creds)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	users := new(mockUserReader)
	users.On("GetByEmail", mock.Anything, "ghost@b.com").Return(nil, repository.ErrNotFound)

	service := NewService(users, newMemStore(), time.Hour)

	_, err := service.Login(context.Background(), basicCredentials("ghost@b.com", "pw"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	users := new(mockUserReader)
	users.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID:           "user-1",
		PasswordHash: hashutil.SHA1Hex("correct"),
	}, nil)

	service := NewService(users, newMemStore(), time.Hour)

	_, err := service.Login(context.Background(), basicCredentials("a@b.com", "wrong"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveRejectsUnknownToken(t *testing.T) {
	service := NewService(new(mockUserReader), newMemStore(), time.Hour)

	_, err := service.ResolveUser(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = service.ResolveUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveAfterExpiry(t *testing.T) {
	users := new(mockUserReader)
	users.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID:           "user-1",
		PasswordHash: hashutil.SHA1Hex("pw"),
	}, nil)

	service := NewService(users, newMemStore(), -time.Second)

	token, err := service.Login(context.Background(), basicCredentials("a@b.com", "pw"))
	require.NoError(t, err)

	_, err = service.ResolveUser(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	users := new(mockUserReader)
	users.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.User{
		ID:           "user-1",
		PasswordHash: hashutil.SHA1Hex("pw"),
	}, nil)

	service := NewService(users, newMemStore(), time.Hour)

	token, err := service.Login(context.Background(), basicCredentials("a@b.com", "pw"))
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), token))

	_, err = service.ResolveUser(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// a second logout on the same token fails, it is not a no-op
	assert.ErrorIs(t, service.Logout(context.Background(), token), ErrUnauthorized)
}

func TestStoreFailureIsNotUnauthorized(t *testing.T) {
	store := newMemStore()
	store.failing = true
	service := NewService(new(mockUserReader), store, time.Hour)

	_, err := service.ResolveUser(context.Background(), "some-token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}
