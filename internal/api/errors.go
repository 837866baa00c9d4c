package api

import (
	"errors"
	"net/http"

	"github.com/kelist/kelist-api/internal/api/shared"
	"github.com/kelist/kelist-api/internal/domain"
	"github.com/kelist/kelist-api/internal/service/auth"
)

// statusForKind maps a domain error kind to an HTTP status code.
func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError translates an error from the service layer into an HTTP
// response. Typed domain errors carry their own code and message; token
// errors map to 401; anything else becomes a sanitized 500 and the raw
// error stays in the logs only.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		shared.RespondWithError(w, r, statusForKind(domainErr.Kind), domainErr.Code, domainErr.Message)
		return
	}

	if errors.Is(err, auth.ErrInvalidToken) ||
		errors.Is(err, auth.ErrExpiredToken) ||
		errors.Is(err, auth.ErrTokenNotYetValid) ||
		errors.Is(err, auth.ErrMissingToken) {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Auth.InvalidToken", "invalid or expired token")
		return
	}

	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
		"Server.Error", "an unexpected error occurred", err)
}
