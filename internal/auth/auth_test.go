package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarlounavas/gcashtrack/internal/auth"
)

type fakeRepo struct {
	users map[string]*auth.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*auth.User)}
}

func (r *fakeRepo) CreateUser(_ context.Context, u *auth.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	r.users[u.Email] = u

	return nil
}

func (r *fakeRepo) GetUserByEmail(_ context.Context, email string) (*auth.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, auth.ErrNotFound
	}

	return u, nil
}

func TestService_RegisterAndLogin(t *testing.T) {
	svc := auth.NewService(newFakeRepo(), "test-secret", time.Hour)

	u, err := svc.Register(context.Background(), " Juan@Example.COM ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "juan@example.com", u.Email)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)

	token, err := svc.Login(context.Background(), "juan@example.com", "s3cret-pass")
	require.NoError(t, err)

	userID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc := auth.NewService(newFakeRepo(), "test-secret", time.Hour)

	_, err := svc.Register(context.Background(), "juan@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "juan@example.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	svc := auth.NewService(newFakeRepo(), "test-secret", time.Hour)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	repo := newFakeRepo()
	issuer := auth.NewService(repo, "secret-a", time.Hour)
	verifier := auth.NewService(repo, "secret-b", time.Hour)

	_, err := issuer.Register(context.Background(), "juan@example.com", "s3cret-pass")
	require.NoError(t, err)

	token, err := issuer.Login(context.Background(), "juan@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	svc := auth.NewService(newFakeRepo(), "test-secret", -time.Minute)

	_, err := svc.Register(context.Background(), "juan@example.com", "s3cret-pass")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "juan@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	svc := auth.NewService(newFakeRepo(), "test-secret", time.Hour)

	u, err := svc.Register(context.Background(), "juan@example.com", "s3cret-pass")
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "juan@example.com", "s3cret-pass")
	require.NoError(t, err)

	var gotUserID uuid.UUID

	handler := svc.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := auth.UserFromContext(r.Context())
		require.True(t, ok)
		gotUserID = id
	}))

	scenarios := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "ValidToken",
			authHeader: "Bearer " + token,
			wantStatus: http.StatusOK,
		},
		{
			name:       "MissingHeader",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "MalformedHeader",
			authHeader: token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "GarbageToken",
			authHeader: "Bearer not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/statements", nil)
			if scenario.authHeader != "" {
				req.Header.Set("Authorization", scenario.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, scenario.wantStatus, rec.Code)

			if scenario.wantStatus == http.StatusOK {
				assert.Equal(t, u.ID, gotUserID)
			}
		})
	}
}
