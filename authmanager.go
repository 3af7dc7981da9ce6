package console

import (
	"errors"
	"strings"
	"sync"

	"github.com/medassist/hospital-console/config"

	"github.com/MicahParks/keyfunc"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const oidcURLPart = "/.well-known/openid-configuration"

// AuthManager loads the JWKS of the identity provider that issues the hospital
// tokens. It is only active when OIDC_BASE_URL is configured; without it the
// console falls back to tolerant, unverified token decoding.
type AuthManager interface {
	GetJWKS() (*keyfunc.JWKS, error)
	Enabled() bool
}

type OpenIDConfiguration struct {
	Issuer        string `json:"issuer"`
	TokenEndpoint string `json:"token_endpoint"`
	JwksURI       string `json:"jwks_uri"`
}

type authManager struct {
	configuration *config.Configuration
	restClient    *resty.Client
	jwks          *keyfunc.JWKS
	oidc          *OpenIDConfiguration
	oidcMutex     sync.Mutex
}

func NewAuthManager(configuration *config.Configuration, restClient *resty.Client) AuthManager {
	manager := &authManager{
		configuration: configuration,
		restClient:    restClient,
	}

	if manager.Enabled() {
		if err := manager.loadJWKS(); err != nil {
			log.Error().Err(err).Msg("Failed to load JWKS from identity provider, will retry on demand")
		}
	}

	return manager
}

func (m *authManager) Enabled() bool {
	return m.configuration.OIDCBaseURL != ""
}

func (m *authManager) GetJWKS() (*keyfunc.JWKS, error) {
	if !m.Enabled() {
		return nil, errors.New("no OIDC base URL configured")
	}
	if m.jwks == nil {
		if err := m.loadJWKS(); err != nil {
			return nil, err
		}
	}
	return m.jwks, nil
}

func (m *authManager) loadJWKS() error {
	err := m.ensureOIDC()
	if err != nil {
		return err
	}

	m.jwks, err = keyfunc.Get(m.oidc.JwksURI, keyfunc.Options{
		Client:              m.restClient.GetClient(),
		RefreshErrorHandler: m.refreshErrorHandler,
		RefreshUnknownKID:   true,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to get JWKS from identity provider")
		return err
	}

	return nil
}

func (m *authManager) refreshErrorHandler(err error) {
	log.Error().Err(err).Msg("Failed to refresh JWKS from identity provider")
}

func (m *authManager) callOIDCEndpoint() (*OpenIDConfiguration, error) {
	response, err := m.restClient.R().
		SetHeader("Content-Type", "application/json").
		SetResult(&OpenIDConfiguration{}).
		Get(strings.TrimRight(m.configuration.OIDCBaseURL, "/") + oidcURLPart)

	if err != nil {
		log.Error().Err(err).Msg("Failed to get OIDC configuration from identity provider")
		return nil, err
	}

	if !response.IsSuccess() {
		log.Error().Msgf("Failed to get OIDC configuration from identity provider: %v", response.Status())
		return nil, errors.New("OIDC configuration endpoint returned " + response.Status())
	}

	oidc := response.Result().(*OpenIDConfiguration)

	return oidc, nil
}

func (m *authManager) ensureOIDC() error {
	if m.oidc == nil {
		oidc, err := m.callOIDCEndpoint()
		if err != nil {
			log.Error().Err(err).Msg("Failed to load OIDC")
			return err
		}

		m.updateOIDC(oidc)
	}

	return nil
}

func (m *authManager) updateOIDC(oidc *OpenIDConfiguration) {
	m.oidcMutex.Lock()
	m.oidc = oidc
	m.oidcMutex.Unlock()
}
