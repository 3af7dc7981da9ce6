package console

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// SessionService owns the process-wide session: the bearer token, the cached
// user profile and the login/logout lifecycle. Token presence is the sole
// authentication predicate.
type SessionService interface {
	IsAuthenticated(ctx context.Context) bool
	Login(ctx context.Context, email, password string) (Session, error)
	Logout(ctx context.Context) error
	GetUserInfo(ctx context.Context) (UserProfile, bool)
	Register(ctx context.Context, registration Registration) error
}

type sessionService struct {
	repository SessionRepository
	client     HospitalClient
}

func NewSessionService(repository SessionRepository, client HospitalClient) SessionService {
	return &sessionService{
		repository: repository,
		client:     client,
	}
}

func (s *sessionService) IsAuthenticated(ctx context.Context) bool {
	token, err := s.repository.LoadToken(ctx)
	return err == nil && token != ""
}

func (s *sessionService) Login(ctx context.Context, email, password string) (Session, error) {
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return Session{}, err
	}
	if result.Token == "" {
		// the backend occasionally reports success without issuing a token
		return Session{}, ErrTokenMissingInResponse
	}

	rawUser := result.RawUser
	if rawUser == nil {
		if claims, ok := decodeTokenClaims(result.Token); ok {
			rawUser = claims
		}
	}

	var profile *UserProfile
	if rawUser != nil {
		// patient accounts must not gain console access, a valid token is not
		// enough on its own
		if rawRole, ok := ResolveRawRole(rawUser); ok && NormalizeRole(rawRole) == "" {
			return Session{}, errors.Wrap(ErrRoleNotPermitted, rawRole)
		}
		if normalizedProfile, ok := NormalizeProfile(rawUser); ok {
			profile = &normalizedProfile
		}
	}

	if err := s.repository.SaveToken(ctx, result.Token); err != nil {
		return Session{}, err
	}
	if profile != nil {
		if err := s.repository.SaveProfile(ctx, *profile); err != nil {
			log.Warn().Err(err).Msg("persist user profile failed, identity will be derived from the token")
		}
	}

	return Session{Token: result.Token, User: profile}, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	return s.repository.Clear(ctx)
}

func (s *sessionService) GetUserInfo(ctx context.Context) (UserProfile, bool) {
	if profile, ok := s.repository.LoadProfile(ctx); ok {
		return profile, true
	}

	token, err := s.repository.LoadToken(ctx)
	if err != nil || token == "" {
		return UserProfile{}, false
	}

	claims, ok := decodeTokenClaims(token)
	if !ok {
		return UserProfile{}, false
	}
	return NormalizeProfile(claims)
}

func (s *sessionService) Register(ctx context.Context, registration Registration) error {
	return s.client.Register(ctx, registration)
}

// decodeTokenClaims decodes the claim set of a JWT without verifying the
// signature. Malformed tokens resolve to "no claims", never to an error.
func decodeTokenClaims(token string) (map[string]interface{}, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return map[string]interface{}(claims), true
}
