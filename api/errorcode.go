package api

import (
	"github.com/bitmark-inc/vitals-api/store"
	"github.com/bitmark-inc/vitals-api/trend"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "too many requests",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "account not found",
		1102: store.ErrInvalidRole.Error(),
		1103: store.ErrMissingInstitution.Error(),
		1104: "permission denied",

		1200: store.ErrProfileNotFound.Error(),
		1201: trend.ErrInvalidLookback.Error(),
		1202: trend.ErrEmptyBiomarker.Error(),

		1300: "record store unavailable",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorTooManyRequests            = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken         = errorJSON(1100)
	errorAccountNotFound      = errorJSON(1101)
	errorInvalidRole          = errorJSON(1102)
	errorMissingInstitution   = errorJSON(1103)
	errorPermissionDenied     = errorJSON(1104)
	errorProfileNotFound      = errorJSON(1200)
	errorInvalidLookback      = errorJSON(1201)
	errorEmptyBiomarker       = errorJSON(1202)
	errorRecordStoreUnhealthy = errorJSON(1300)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
