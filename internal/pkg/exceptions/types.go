package exceptions

import (
	"donaciones-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Request parsing / validation
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadBody)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}

	// Outbound HTTP plumbing
	ErrBuildRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildRequest)
	}
	ErrSendRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientProviderUnavailable, constvars.ErrDevSendRequest)
	}
	ErrDecodeResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientProviderUnavailable, constvars.ErrDevDecodeResponse)
	}

	// Reconciliation taxonomy. MalformedEvent is acknowledged at the HTTP
	// layer and never surfaces as a 5xx; the rest abort the pipeline so the
	// provider retries the delivery.
	ErrMalformedEvent = func(eventType string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s (type=%s)", constvars.ErrDevMalformedNotification, eventType))
	}
	ErrUpstreamUnavailable = func(statusText string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientProviderUnavailable, fmt.Sprintf(constvars.ErrDevUpstreamUnavailable, statusText))
	}
	ErrNoChargeFound = func(subscriptionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientProviderUnavailable, fmt.Sprintf(constvars.ErrDevNoChargeFound, subscriptionID))
	}
	ErrLedgerAppend = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevLedgerAppend)
	}

	// Creation collaborators
	ErrCreatePreference = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientProviderUnavailable, constvars.ErrDevCreatePreference)
	}
	ErrCreatePreapproval = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientProviderUnavailable, constvars.ErrDevCreatePreapproval)
	}
)

// IsMalformedEvent reports whether err is the acknowledged-but-ignored class.
func IsMalformedEvent(err error) bool {
	customErr, ok := err.(*CustomError)
	return ok && customErr.StatusCode == constvars.StatusBadRequest
}
