package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	longpollclient "github.com/jcuga/golongpoll/client"
	"github.com/rs/zerolog/log"
)

type BookingEventType string

const (
	BookingEventCreated BookingEventType = "CREATED"
	BookingEventUpdated BookingEventType = "UPDATED"
	BookingEventDeleted BookingEventType = "DELETED"
)

const bookingEventsCategory = "bookings"

type BookingEventTO struct {
	EventType BookingEventType       `json:"eventType" binding:"required"`
	BookingID string                 `json:"bookingId" binding:"required"`
	Booking   map[string]interface{} `json:"booking,omitempty"`
}

// LongPollClient subscribes to booking change events published by the hospital
// backend so the console notices changes made by other clients without
// re-polling the list endpoint.
type LongPollClient interface {
	GetBookingEventsChan() chan BookingEventTO
	StartBookingEventsLongPolling(ctx context.Context)
}

type longPollClient struct {
	restyClient       *resty.Client
	backendURL        string
	eventsPath        string
	timeoutSeconds    uint
	bookingEventsChan chan BookingEventTO
}

func NewLongPollClient(restyClient *resty.Client, backendURL, eventsPath string, timeoutSeconds uint) LongPollClient {
	return &longPollClient{
		restyClient:       restyClient,
		backendURL:        backendURL,
		eventsPath:        eventsPath,
		timeoutSeconds:    timeoutSeconds,
		bookingEventsChan: make(chan BookingEventTO, 100),
	}
}

func (l *longPollClient) GetBookingEventsChan() chan BookingEventTO {
	return l.bookingEventsChan
}

func (l *longPollClient) StartBookingEventsLongPolling(ctx context.Context) {
	u, err := url.Parse(l.backendURL + l.eventsPath)
	if err != nil {
		log.Error().Err(err).Msg("Failed to parse URL for booking events long-poll")
		return
	}

	httpClient := &http.Client{
		Transport: &RestyRoundTripper{restyClient: l.restyClient},
	}

	c, err := longpollclient.NewClient(longpollclient.ClientOptions{
		SubscribeUrl:       *u,
		Category:           bookingEventsCategory,
		PollTimeoutSeconds: l.timeoutSeconds,
		HttpClient:         httpClient,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create long-poll client")
		return
	}

	for event := range c.Start(time.Now().UTC().AddDate(0, 0, -1)) {
		select {
		case <-ctx.Done():
			log.Info().Msg("Booking events long poll gracefully stopped")
			return
		default:
			data, ok := event.Data.(map[string]interface{})
			if !ok {
				log.Error().Msg("Unexpected event data type")
				continue
			}

			jsonData, err := json.Marshal(data)
			if err != nil {
				log.Error().Err(err).Msg("Failed to marshal event data")
				continue
			}

			var bookingEventTO BookingEventTO
			if err := json.Unmarshal(jsonData, &bookingEventTO); err != nil {
				log.Error().Err(err).Msg("Failed to unmarshal event data to BookingEventTO")
				continue
			}

			log.Debug().
				Str("eventType", string(bookingEventTO.EventType)).
				Str("bookingId", bookingEventTO.BookingID).
				Msg("Received booking change event")

			l.bookingEventsChan <- bookingEventTO
		}
	}
}
