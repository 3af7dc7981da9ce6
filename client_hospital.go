package console

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/medassist/hospital-console/config"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// HospitalClient is the gateway to the hospital backend. Read operations never
// return an error: transport and HTTP failures degrade to empty collections
// with a warning, so a broken backend never takes a screen down. Write
// operations surface failures, with the server message when the body carries
// one.
type HospitalClient interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, registration Registration) error
	GetBookings(ctx context.Context) []Booking
	GetMedicalRecords(ctx context.Context) []MedicalFileEntry
	GetDepartmentsAndDoctors(ctx context.Context) Directory
	UpdateBookingStatus(ctx context.Context, bookingID string, status BookingStatus) error
	GetMedicalFile(ctx context.Context, fileID string) ([]byte, string, error)
}

// LoginResult carries the raw user object so the caller can inspect the
// unnormalized role before accepting the session.
type LoginResult struct {
	Token   string
	RawUser map[string]interface{}
}

type clientError struct {
	Message string `json:"message"`
}

// BookingStatusRoute is one row of the status dispatch table.
type BookingStatusRoute struct {
	Method       string
	PathTemplate func(configuration *config.Configuration) string
}

// BookingStatusRoutes routes each status transition to its backend endpoint.
// Cancellations go to a distinct endpoint and verb; this mirrors a backend
// asymmetry, not a client policy.
var BookingStatusRoutes = map[BookingStatus]BookingStatusRoute{
	BookingStatusPending:   {http.MethodPut, statusUpdatePath},
	BookingStatusConfirmed: {http.MethodPut, statusUpdatePath},
	BookingStatusCompleted: {http.MethodPut, statusUpdatePath},
	BookingStatusCancelled: {http.MethodPost, cancelPath},
}

func statusUpdatePath(configuration *config.Configuration) string {
	return configuration.BookingStatusPath
}

func cancelPath(configuration *config.Configuration) string {
	return configuration.BookingCancelPath
}

type hospitalClient struct {
	client        *resty.Client
	configuration *config.Configuration
	baseURL       string
	bookingCache  BookingCache
}

func NewHospitalClient(configuration *config.Configuration, restyClient *resty.Client, bookingCache BookingCache) (HospitalClient, error) {
	if configuration.HospitalBackendURL == "" {
		return nil, fmt.Errorf("basepath for the hospital backend must be set. check your configuration or HospitalBackendURL")
	}

	return &hospitalClient{
		client:        restyClient,
		configuration: configuration,
		baseURL:       strings.TrimRight(configuration.HospitalBackendURL, "/"),
		bookingCache:  bookingCache,
	}, nil
}

func (h *hospitalClient) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var errResponse clientError
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetError(&errResponse).
		Post(h.baseURL + h.configuration.LoginPath)
	if err != nil {
		log.Error().Err(err).Msg("Can not call hospital backend login endpoint")
		return LoginResult{}, ErrLoginFailed
	}
	if resp == nil {
		return LoginResult{}, ErrLoginFailed
	}
	if resp.IsError() {
		if errResponse.Message != "" {
			return LoginResult{}, errors.Wrap(ErrLoginFailed, errResponse.Message)
		}
		return LoginResult{}, ErrLoginFailed
	}

	raw, err := decodeObject(resp.Body())
	if err != nil {
		log.Error().Err(err).Msg("Malformed login response from hospital backend")
		return LoginResult{}, ErrLoginFailed
	}

	// some backend revisions flag failure inside a 200 body
	if success, ok := raw["success"].(bool); ok && !success {
		if message, ok := ResolveField(raw, []string{"message"}); ok {
			return LoginResult{}, errors.Wrap(ErrLoginFailed, message)
		}
		return LoginResult{}, ErrLoginFailed
	}

	result := LoginResult{Token: ResolveLoginToken(raw)}
	if rawUser, ok := raw["user"].(map[string]interface{}); ok {
		result.RawUser = rawUser
	}
	return result, nil
}

func (h *hospitalClient) Register(ctx context.Context, registration Registration) error {
	var errResponse clientError
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(registration).
		SetError(&errResponse).
		Post(h.baseURL + h.configuration.RegisterPath)
	if err != nil {
		log.Error().Err(err).Msg("Can not call hospital backend register endpoint")
		return ErrRegistrationFailed
	}
	if resp == nil {
		return ErrRegistrationFailed
	}
	if resp.IsError() {
		if errResponse.Message != "" {
			return errors.Wrap(ErrRegistrationFailed, errResponse.Message)
		}
		return ErrRegistrationFailed
	}

	return nil
}

func (h *hospitalClient) GetBookings(ctx context.Context) []Booking {
	if h.bookingCache != nil {
		if bookings, ok := h.bookingCache.GetAll(); ok {
			return bookings
		}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.baseURL + h.configuration.BookingListPath)
	if err != nil {
		log.Warn().Err(err).Msg(MsgGetBookingsFailed)
		return []Booking{}
	}
	if resp == nil || resp.IsError() {
		log.Warn().Int("status", statusCodeOf(resp)).Msg(MsgGetBookingsFailed)
		return []Booking{}
	}

	raws, err := decodeObjectList(resp.Body())
	if err != nil {
		log.Warn().Err(err).Msg(MsgDecodeListResponse)
		return []Booking{}
	}

	bookings := make([]Booking, 0, len(raws))
	for _, raw := range raws {
		bookings = append(bookings, NormalizeBooking(raw))
	}

	if h.bookingCache != nil {
		h.bookingCache.Set(bookings)
	}
	return bookings
}

func (h *hospitalClient) GetMedicalRecords(ctx context.Context) []MedicalFileEntry {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.baseURL + h.configuration.MedicalFilesPath)
	if err != nil {
		log.Warn().Err(err).Msg(MsgGetMedicalRecordsFailed)
		return []MedicalFileEntry{}
	}
	if resp == nil || resp.IsError() {
		log.Warn().Int("status", statusCodeOf(resp)).Msg(MsgGetMedicalRecordsFailed)
		return []MedicalFileEntry{}
	}

	raws, err := decodeObjectList(resp.Body())
	if err != nil {
		log.Warn().Err(err).Msg(MsgDecodeListResponse)
		return []MedicalFileEntry{}
	}

	entries := make([]MedicalFileEntry, 0, len(raws))
	for _, raw := range raws {
		entries = append(entries, MedicalFileEntry(raw))
	}
	return entries
}

func (h *hospitalClient) GetDepartmentsAndDoctors(ctx context.Context) Directory {
	emptyDirectory := Directory{Departments: []Department{}, Doctors: []Doctor{}}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.baseURL + h.configuration.DirectoryPath)
	if err != nil {
		log.Warn().Err(err).Msg(MsgGetDirectoryFailed)
		return emptyDirectory
	}
	if resp == nil || resp.IsError() {
		log.Warn().Int("status", statusCodeOf(resp)).Msg(MsgGetDirectoryFailed)
		return emptyDirectory
	}

	raw, err := decodeObject(resp.Body())
	if err != nil {
		log.Warn().Err(err).Msg(MsgGetDirectoryFailed)
		return emptyDirectory
	}

	return NormalizeDirectory(raw)
}

func (h *hospitalClient) UpdateBookingStatus(ctx context.Context, bookingID string, status BookingStatus) error {
	route, ok := BookingStatusRoutes[status]
	if !ok {
		return ErrInvalidBookingStatus
	}

	var errResponse clientError
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"status": string(status)}).
		SetError(&errResponse).
		Execute(route.Method, h.baseURL+expandBookingPath(route.PathTemplate(h.configuration), bookingID))
	if err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg(MsgStatusUpdateFailed)
		return ErrStatusUpdateFailed
	}
	if resp == nil {
		return ErrStatusUpdateFailed
	}
	if resp.IsError() {
		if errResponse.Message != "" {
			return errors.Wrap(ErrStatusUpdateFailed, errResponse.Message)
		}
		return ErrStatusUpdateFailed
	}

	if h.bookingCache != nil {
		h.bookingCache.Invalidate()
	}
	return nil
}

func (h *hospitalClient) GetMedicalFile(ctx context.Context, fileID string) ([]byte, string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(h.baseURL + expandFilePath(h.configuration.MedicalFilePath, fileID))
	if err != nil {
		log.Error().Err(err).Str("fileId", fileID).Msg(MsgMedicalFileNotFound)
		return nil, "", ErrMedicalFileNotFound
	}
	if resp == nil || resp.IsError() {
		return nil, "", ErrMedicalFileNotFound
	}

	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

func expandBookingPath(pathTemplate, bookingID string) string {
	return strings.Replace(pathTemplate, "{bookingId}", bookingID, 1)
}

func expandFilePath(pathTemplate, fileID string) string {
	return strings.Replace(pathTemplate, "{fileId}", fileID, 1)
}

func statusCodeOf(resp *resty.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode()
}
