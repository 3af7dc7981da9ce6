package config

import (
	"github.com/rs/zerolog"

	"github.com/pkg/errors"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const MsgFailedToReadConfiguration = "failed to read configuration"

var ErrFailedToReadConfiguration = errors.New(MsgFailedToReadConfiguration)

// Configuration for the hospital console. The endpoint paths of the hospital
// backend are configuration on purpose: the observed backend revisions disagree
// on them, so no path is treated as a fixed contract.
type Configuration struct {
	APIPort               uint16        `envconfig:"API_PORT" default:"8080"`
	Authorization         bool          `envconfig:"AUTHORIZATION" default:"true"`
	EnableTLS             bool          `envconfig:"ENABLE_TLS" default:"false"`
	ConsoleCertPath       string        `envconfig:"CONSOLE_CERT_PATH" default:"../console_cert.pem"`
	ConsoleKeyPath        string        `envconfig:"CONSOLE_KEY_PATH" default:"../console_key.pem"`
	Development           bool          `envconfig:"DEVELOPMENT" default:"false"`
	PermittedOrigin       string        `envconfig:"PERMITTED_ORIGIN_URL" default:"*"`
	LogLevel              zerolog.Level `envconfig:"LOG_LEVEL" default:"1"`
	ApplicationName       string        `envconfig:"APPLICATION_NAME" default:"hospital-console"`
	Proxy                 string        `envconfig:"PROXY" default:""`
	RequestTimeoutSeconds int           `envconfig:"REQUEST_TIMEOUT_SECONDS" default:"30"`

	HospitalBackendURL string `envconfig:"HOSPITAL_BACKEND_URL" required:"true" default:"http://localhost:3000"`
	OIDCBaseURL        string `envconfig:"OIDC_BASE_URL" default:""`

	LoginPath         string `envconfig:"LOGIN_PATH" default:"/account/signin"`
	RegisterPath      string `envconfig:"REGISTER_PATH" default:"/account/signup"`
	BookingListPath   string `envconfig:"BOOKING_LIST_PATH" default:"/booking"`
	BookingStatusPath string `envconfig:"BOOKING_STATUS_PATH" default:"/booking/{bookingId}/status"`
	BookingCancelPath string `envconfig:"BOOKING_CANCEL_PATH" default:"/booking/cancel/{bookingId}"`
	DirectoryPath     string `envconfig:"DIRECTORY_PATH" default:"/booking/departments-doctors"`
	MedicalFilesPath  string `envconfig:"MEDICAL_FILES_PATH" default:"/medical/upload-files"`
	MedicalFilePath   string `envconfig:"MEDICAL_FILE_PATH" default:"/medical/files/{fileId}"`
	BookingEventsPath string `envconfig:"BOOKING_EVENTS_PATH" default:"/booking/events"`

	RedisURL          string `envconfig:"REDIS_URL" default:""`
	SessionTokenKey   string `envconfig:"SESSION_TOKEN_KEY" default:"hospital-console:admin-token"`
	SessionProfileKey string `envconfig:"SESSION_PROFILE_KEY" default:"hospital-console:admin-user"`

	ActivityLogCapacity int `envconfig:"ACTIVITY_LOG_CAPACITY" default:"256"`

	BookingEventsEnabled               bool `envconfig:"BOOKING_EVENTS_ENABLED" default:"false"`
	StandardAPIClientTimeoutSeconds    uint `envconfig:"STANDARD_API_CLIENT_TIMEOUT_SECONDS" default:"10"`
	LongPollingAPIClientTimeoutSeconds uint `envconfig:"LONG_POLLING_API_CLIENT_TIMEOUT_SECONDS" default:"80"`
}

var Settings Configuration

func ReadConfiguration() (Configuration, error) {
	var config Configuration
	err := envconfig.Process("", &config)
	if err != nil {
		err = errors.Wrap(err, MsgFailedToReadConfiguration)
		log.Error().Err(err).Msgf("%s\n", ErrFailedToReadConfiguration)
		return config, err
	}
	return config, nil
}
