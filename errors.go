package console

import (
	"github.com/pkg/errors"
)

var (
	ErrLoginFailed            = errors.New(MsgLoginFailed)
	ErrRoleNotPermitted       = errors.New(MsgRoleNotPermitted)
	ErrTokenMissingInResponse = errors.New(MsgTokenMissingInResponse)
	ErrRegistrationFailed     = errors.New(MsgRegistrationFailed)
	ErrStatusUpdateFailed     = errors.New(MsgStatusUpdateFailed)
	ErrInvalidBookingStatus   = errors.New(MsgInvalidBookingStatus)
	ErrMedicalFileNotFound    = errors.New(MsgMedicalFileNotFound)
)

const (
	ApiStartMsg           = "API server hospital-console has been started"
	ApiEndedGracefullyMsg = "API server hospital-console ended gracefully"
	ApiFailedToStartMsg   = "Failed to start API server hospital-console"

	MsgLoginFailed            = "invalid email or password"
	MsgRoleNotPermitted       = "account role is not permitted to use the hospital console"
	MsgTokenMissingInResponse = "login response did not contain a token"
	MsgRegistrationFailed     = "registration failed"
	MsgStatusUpdateFailed     = "booking status update failed"
	MsgInvalidBookingStatus   = "invalid booking status"
	MsgMedicalFileNotFound    = "medical file not found"

	MsgGetBookingsFailed       = "fetch bookings from hospital backend failed"
	MsgGetMedicalRecordsFailed = "fetch medical files from hospital backend failed"
	MsgGetDirectoryFailed      = "fetch departments and doctors from hospital backend failed"
	MsgDecodeListResponse      = "decode list response from hospital backend failed"

	InvalidBodyInRequest  = "can not bind request body"
	MissingIdParameterMsg = "missing id parameter"
)
