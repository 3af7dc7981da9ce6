package console

import (
	"context"
	"crypto/tls"

	"github.com/medassist/hospital-console/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-resty/resty/v2"
)

// NewRestyClient creates the shared client for hospital backend calls. When a
// session repository is given, the stored bearer token is attached to every
// request; when no token is stored the Authorization header is omitted
// entirely, never sent malformed.
func NewRestyClient(ctx context.Context, configuration *config.Configuration, sessions SessionRepository, useProxy bool) *resty.Client {
	client := resty.New().
		OnBeforeRequest(configureRequest(ctx, configuration)).
		OnBeforeRequest(attachSessionToken(sessions))

	if configuration.Development {
		client = client.SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true,
		})
	}
	if useProxy && configuration.Proxy != "" {
		client.SetProxy(configuration.Proxy)
	}

	return client
}

func configureRequest(ctx context.Context, configuration *config.Configuration) resty.RequestMiddleware {
	return func(client *resty.Client, request *resty.Request) error {
		request.SetContext(ctx)
		if configuration.LogLevel <= zerolog.DebugLevel {
			request.EnableTrace()
		}
		return nil
	}
}

func attachSessionToken(sessions SessionRepository) resty.RequestMiddleware {
	return func(client *resty.Client, request *resty.Request) error {
		if sessions == nil {
			return nil
		}
		token, err := sessions.LoadToken(request.Context())
		if err != nil {
			log.Warn().Err(err).Msg("load session token failed, sending request unauthenticated")
			return nil
		}
		if token != "" {
			request.SetAuthToken(token)
		}
		return nil
	}
}
