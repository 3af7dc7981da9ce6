package console

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func signedTestToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.Nil(t, err)
	return token
}

func TestLoginStoresTokenAndProfile(t *testing.T) {
	repository := NewMemorySessionRepository()
	clientMock := &hospitalClientMock{
		loginFunc: func(email, password string) (LoginResult, error) {
			return LoginResult{
				Token: "token-1",
				RawUser: map[string]interface{}{
					"id":    "u1",
					"email": email,
					"name":  "Jane Roe",
					"role":  "doctor",
				},
			}, nil
		},
	}
	sessionService := NewSessionService(repository, clientMock)
	ctx := context.Background()

	assert.False(t, sessionService.IsAuthenticated(ctx))

	session, err := sessionService.Login(ctx, "jane@hospital.test", "secret")
	assert.Nil(t, err)
	assert.Equal(t, "token-1", session.Token)
	assert.NotNil(t, session.User)
	assert.Equal(t, RoleDoctor, session.User.Role)

	assert.True(t, sessionService.IsAuthenticated(ctx))

	profile, ok := sessionService.GetUserInfo(ctx)
	assert.True(t, ok)
	assert.Equal(t, "Jane Roe", profile.DisplayName)
}

func TestLoginRejectsPatientRole(t *testing.T) {
	repository := NewMemorySessionRepository()
	clientMock := &hospitalClientMock{
		loginFunc: func(email, password string) (LoginResult, error) {
			return LoginResult{
				Token:   "token-1",
				RawUser: map[string]interface{}{"id": "u1", "role": "patient"},
			}, nil
		},
	}
	sessionService := NewSessionService(repository, clientMock)
	ctx := context.Background()

	_, err := sessionService.Login(ctx, "patient@hospital.test", "secret")
	assert.True(t, errors.Is(err, ErrRoleNotPermitted))

	// a rejected login must not leave a half-open session behind
	assert.False(t, sessionService.IsAuthenticated(ctx))
}

func TestLoginRejectsMissingToken(t *testing.T) {
	sessionService := NewSessionService(NewMemorySessionRepository(), &hospitalClientMock{
		loginFunc: func(email, password string) (LoginResult, error) {
			return LoginResult{RawUser: map[string]interface{}{"id": "u1", "role": "admin"}}, nil
		},
	})

	_, err := sessionService.Login(context.Background(), "jane@hospital.test", "secret")
	assert.True(t, errors.Is(err, ErrTokenMissingInResponse))
}

func TestLoginPropagatesClientError(t *testing.T) {
	sessionService := NewSessionService(NewMemorySessionRepository(), &hospitalClientMock{
		loginFunc: func(email, password string) (LoginResult, error) {
			return LoginResult{}, errors.Wrap(ErrLoginFailed, "invalid credentials")
		},
	})

	_, err := sessionService.Login(context.Background(), "jane@hospital.test", "wrong")
	assert.True(t, errors.Is(err, ErrLoginFailed))
}

func TestLoginAllowsRolelessUser(t *testing.T) {
	// a response without any role field must not be treated as a patient account
	sessionService := NewSessionService(NewMemorySessionRepository(), &hospitalClientMock{
		loginFunc: func(email, password string) (LoginResult, error) {
			return LoginResult{
				Token:   "token-1",
				RawUser: map[string]interface{}{"id": "u1", "email": email},
			}, nil
		},
	})

	session, err := sessionService.Login(context.Background(), "jane@hospital.test", "secret")
	assert.Nil(t, err)
	assert.Equal(t, "token-1", session.Token)
}

func TestLoginDerivesIdentityFromToken(t *testing.T) {
	token := signedTestToken(t, jwt.MapClaims{
		"sub":   "u1",
		"email": "jane@hospital.test",
		"name":  "Jane Roe",
		"role":  "nurses",
	})
	repository := NewMemorySessionRepository()
	sessionService := NewSessionService(repository, &hospitalClientMock{
		loginFunc: func(email, password string) (LoginResult, error) {
			// no user object, the token claims are the only identity source
			return LoginResult{Token: token}, nil
		},
	})

	session, err := sessionService.Login(context.Background(), "jane@hospital.test", "secret")
	assert.Nil(t, err)
	assert.NotNil(t, session.User)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, RoleNurse, session.User.Role)
}

func TestLogoutClearsSession(t *testing.T) {
	repository := NewMemorySessionRepository()
	sessionService := NewSessionService(repository, &hospitalClientMock{
		loginFunc: func(email, password string) (LoginResult, error) {
			return LoginResult{
				Token:   "token-1",
				RawUser: map[string]interface{}{"id": "u1", "role": "admin"},
			}, nil
		},
	})
	ctx := context.Background()

	_, err := sessionService.Login(ctx, "jane@hospital.test", "secret")
	assert.Nil(t, err)
	assert.True(t, sessionService.IsAuthenticated(ctx))

	err = sessionService.Logout(ctx)
	assert.Nil(t, err)

	assert.False(t, sessionService.IsAuthenticated(ctx))
	_, ok := sessionService.GetUserInfo(ctx)
	assert.False(t, ok)
}

func TestGetUserInfoFallsBackToTokenDecode(t *testing.T) {
	token := signedTestToken(t, jwt.MapClaims{
		"sub":  "u1",
		"name": "Jane Roe",
		"role": "admin",
	})
	repository := NewMemorySessionRepository()
	_ = repository.SaveToken(context.Background(), token)

	sessionService := NewSessionService(repository, &hospitalClientMock{})

	profile, ok := sessionService.GetUserInfo(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, RoleAdmin, profile.Role)
}

func TestGetUserInfoWithoutSession(t *testing.T) {
	sessionService := NewSessionService(NewMemorySessionRepository(), &hospitalClientMock{})

	_, ok := sessionService.GetUserInfo(context.Background())
	assert.False(t, ok)
}

func TestGetUserInfoMalformedToken(t *testing.T) {
	repository := NewMemorySessionRepository()
	_ = repository.SaveToken(context.Background(), "not-a-jwt")

	sessionService := NewSessionService(repository, &hospitalClientMock{})

	_, ok := sessionService.GetUserInfo(context.Background())
	assert.False(t, ok)
}

func TestRegisterDelegatesToClient(t *testing.T) {
	var captured Registration
	sessionService := NewSessionService(NewMemorySessionRepository(), &hospitalClientMock{
		registerFunc: func(registration Registration) error {
			captured = registration
			return nil
		},
	})

	err := sessionService.Register(context.Background(), Registration{
		Email:    "new@hospital.test",
		FullName: "New User",
		Role:     "staff",
	})
	assert.Nil(t, err)
	assert.Equal(t, "new@hospital.test", captured.Email)
}
