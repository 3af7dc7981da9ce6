package console

import (
	"context"

	"github.com/medassist/hospital-console/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Console wires the session store, the hospital backend gateway and the
// aggregation services together and serves them over the HTTP api.
type Console interface {
	Start() error
	SessionService() SessionService
	RecordService() RecordService
	DashboardService() DashboardService
	HospitalClient() HospitalClient
}

type console struct {
	ctx              context.Context
	configuration    *config.Configuration
	api              Api
	sessionService   SessionService
	recordService    RecordService
	dashboardService DashboardService
	hospitalClient   HospitalClient
	bookingCache     BookingCache
	longPollClient   LongPollClient
}

func New(ctx context.Context, configuration *config.Configuration) (Console, error) {
	zerolog.SetGlobalLevel(configuration.LogLevel)

	var sessionRepository SessionRepository
	if configuration.RedisURL != "" {
		redisOptions, err := redis.ParseURL(configuration.RedisURL)
		if err != nil {
			log.Error().Err(err).Msg("Invalid redis URL in configuration")
			return nil, err
		}
		sessionRepository = NewRedisSessionRepository(redis.NewClient(redisOptions), configuration)
	} else {
		sessionRepository = NewMemorySessionRepository()
	}

	restyClient := NewRestyClient(ctx, configuration, sessionRepository, true)

	bookingCache := NewBookingCache()
	hospitalClient, err := NewHospitalClient(configuration, restyClient, bookingCache)
	if err != nil {
		return nil, err
	}

	sessionService := NewSessionService(sessionRepository, hospitalClient)
	recordService := NewRecordService(hospitalClient)
	dashboardService := NewDashboardService(hospitalClient, recordService)

	// the auth manager talks to the identity provider, never to the hospital
	// backend, so it gets its own client without session token attachment
	authManager := NewAuthManager(configuration, NewRestyClient(ctx, configuration, nil, false))

	longPollClient := NewLongPollClient(restyClient, configuration.HospitalBackendURL,
		configuration.BookingEventsPath, configuration.LongPollingAPIClientTimeoutSeconds)

	activityLog := NewActivityLogService(configuration.ActivityLogCapacity)

	api := NewAPI(configuration, authManager, sessionService, recordService, dashboardService, hospitalClient, activityLog)

	return &console{
		ctx:              ctx,
		configuration:    configuration,
		api:              api,
		sessionService:   sessionService,
		recordService:    recordService,
		dashboardService: dashboardService,
		hospitalClient:   hospitalClient,
		bookingCache:     bookingCache,
		longPollClient:   longPollClient,
	}, nil
}

func (c *console) Start() error {
	if c.configuration.BookingEventsEnabled {
		go c.longPollClient.StartBookingEventsLongPolling(c.ctx)
		go c.consumeBookingEvents()
	}

	log.Info().Msg(ApiStartMsg)
	return c.api.Run()
}

func (c *console) consumeBookingEvents() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case event := <-c.longPollClient.GetBookingEventsChan():
			log.Debug().Str("bookingId", event.BookingID).Msg("Invalidating booking cache after change event")
			c.bookingCache.Invalidate()
		}
	}
}

func (c *console) SessionService() SessionService {
	return c.sessionService
}

func (c *console) RecordService() RecordService {
	return c.recordService
}

func (c *console) DashboardService() DashboardService {
	return c.dashboardService
}

func (c *console) HospitalClient() HospitalClient {
	return c.hospitalClient
}
