package console

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/medassist/hospital-console/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// SessionRepository is the persistent key-value storage behind the session
// store: one token key and one serialized profile key, cleared together on
// logout.
type SessionRepository interface {
	SaveToken(ctx context.Context, token string) error
	// LoadToken returns the empty string when no token is stored.
	LoadToken(ctx context.Context) (string, error)
	SaveProfile(ctx context.Context, profile UserProfile) error
	LoadProfile(ctx context.Context) (UserProfile, bool)
	Clear(ctx context.Context) error
}

type redisSessionRepository struct {
	client     *redis.Client
	tokenKey   string
	profileKey string
}

func NewRedisSessionRepository(client *redis.Client, configuration *config.Configuration) SessionRepository {
	return &redisSessionRepository{
		client:     client,
		tokenKey:   configuration.SessionTokenKey,
		profileKey: configuration.SessionProfileKey,
	}
}

func (r *redisSessionRepository) SaveToken(ctx context.Context, token string) error {
	return r.client.Set(ctx, r.tokenKey, token, 0).Err()
}

func (r *redisSessionRepository) LoadToken(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.tokenKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (r *redisSessionRepository) SaveProfile(ctx context.Context, profile UserProfile) error {
	serializedProfile, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.profileKey, serializedProfile, 0).Err()
}

func (r *redisSessionRepository) LoadProfile(ctx context.Context) (UserProfile, bool) {
	serializedProfile, err := r.client.Get(ctx, r.profileKey).Result()
	if err == redis.Nil {
		return UserProfile{}, false
	}
	if err != nil {
		log.Warn().Err(err).Msg("load cached profile failed")
		return UserProfile{}, false
	}

	var profile UserProfile
	// a malformed stored profile resolves to "no profile", never to an error
	if err := json.Unmarshal([]byte(serializedProfile), &profile); err != nil {
		log.Warn().Err(err).Msg("stored profile is malformed, ignoring it")
		return UserProfile{}, false
	}
	return profile, true
}

func (r *redisSessionRepository) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.tokenKey, r.profileKey).Err()
}

type memorySessionRepository struct {
	mutex   sync.Mutex
	token   string
	profile *UserProfile
}

// NewMemorySessionRepository keeps the session in process memory. Used when no
// REDIS_URL is configured and by tests.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{}
}

func (m *memorySessionRepository) SaveToken(ctx context.Context, token string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.token = token
	return nil
}

func (m *memorySessionRepository) LoadToken(ctx context.Context) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.token, nil
}

func (m *memorySessionRepository) SaveProfile(ctx context.Context, profile UserProfile) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.profile = &profile
	return nil
}

func (m *memorySessionRepository) LoadProfile(ctx context.Context) (UserProfile, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.profile == nil {
		return UserProfile{}, false
	}
	return *m.profile, true
}

func (m *memorySessionRepository) Clear(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.token = ""
	m.profile = nil
	return nil
}
