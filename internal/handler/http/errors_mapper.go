package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chat-client/internal/service"
)

// API error codes reported in the "code" field of error bodies.
const (
	codeInternal          = -1
	codeAPIKeyInvalid     = 2
	codeInputError        = 4
	codeAuthentication    = 5
	codeConnectionID      = 9
	codeDoesNotExist      = 16
	codeNotAllowed        = 17
	codeTokenExpired      = 40
	codeTokenNotValid     = 43
	codeTokenUserMismatch = 44
)

type errorInfo struct {
	status int
	code   int
}

var errorStatusMap = map[error]errorInfo{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, codeInputError},
	service.ErrEmptyMessage:            {http.StatusBadRequest, codeInputError},
	service.ErrUnsupportedFilter:       {http.StatusBadRequest, codeInputError},
	service.ErrUnsupportedSortField:    {http.StatusBadRequest, codeInputError},
	service.ErrConnectionIDRequired:    {http.StatusBadRequest, codeConnectionID},
	service.ErrConnectionNotFound:      {http.StatusBadRequest, codeConnectionID},
	service.ErrInvalidAPIKey:           {http.StatusUnauthorized, codeAPIKeyInvalid},
	service.ErrTokenIsExpired:          {http.StatusUnauthorized, codeTokenExpired},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, codeTokenNotValid},
	service.ErrTokenUserMismatch:       {http.StatusUnauthorized, codeTokenUserMismatch},
	service.ErrForeignConnection:       {http.StatusForbidden, codeNotAllowed},
	service.ErrNotChannelMember:        {http.StatusForbidden, codeNotAllowed},
	service.ErrChannelNotFound:         {http.StatusNotFound, codeDoesNotExist},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, codeAuthentication},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, codeAuthentication},
	ErrEmptyToken:                 {http.StatusUnauthorized, codeAuthentication},
	ErrUnsupportedAuthType:        {http.StatusUnauthorized, codeAuthentication},
	ErrInvalidConnectPayload:      {http.StatusBadRequest, codeInputError},
}

func errorInfoFromError(err error) errorInfo {
	for target, info := range errorStatusMap {
		if errors.Is(err, target) {
			return info
		}
	}
	return errorInfo{http.StatusInternalServerError, codeInternal}
}

func statusFromError(err error) int {
	return errorInfoFromError(err).status
}
