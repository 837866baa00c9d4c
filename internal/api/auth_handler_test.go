package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kelist/kelist-api/internal/api/shared"
	"github.com/kelist/kelist-api/internal/domain"
	"github.com/kelist/kelist-api/internal/service/auth"
)

func postJSON(t *testing.T, handler http.HandlerFunc, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRegister(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	success := &auth.AuthResult{
		UserID:       userID,
		FullName:     "John Doe",
		Email:        "john.doe@example.com",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}

	tests := []struct {
		name         string
		payload      map[string]interface{}
		serviceCall  bool
		serviceValue *auth.AuthResult
		serviceErr   error
		wantStatus   int
		wantCode     string
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"name":      "John",
				"last_name": "Doe",
				"email":     "john.doe@example.com",
				"password":  "password123",
			},
			serviceCall:  true,
			serviceValue: success,
			wantStatus:   http.StatusCreated,
		},
		{
			name: "duplicated email",
			payload: map[string]interface{}{
				"name":      "John",
				"last_name": "Doe",
				"email":     "john.doe@example.com",
				"password":  "password123",
			},
			serviceCall: true,
			serviceErr:  domain.ErrDuplicatedEmail,
			wantStatus:  http.StatusConflict,
			wantCode:    "User.DuplicatedEmail",
		},
		{
			name: "invalid email",
			payload: map[string]interface{}{
				"name":      "John",
				"last_name": "Doe",
				"email":     "not-an-email",
				"password":  "password123",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "Request.Validation",
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"name":      "John",
				"last_name": "Doe",
				"email":     "john.doe@example.com",
				"password":  "short",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "Request.Validation",
		},
		{
			name: "missing name",
			payload: map[string]interface{}{
				"last_name": "Doe",
				"email":     "john.doe@example.com",
				"password":  "password123",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "Request.Validation",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authService := new(MockAuthService)
			if tt.serviceCall {
				authService.
					On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(tt.serviceValue, tt.serviceErr)
			}
			handler := NewAuthHandler(authService)

			rec := postJSON(t, handler.Register, tt.payload)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp AuthResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, userID, resp.UserID)
				assert.Equal(t, "John Doe", resp.FullName)
				assert.NotEmpty(t, resp.AccessToken)
				assert.NotEmpty(t, resp.RefreshToken)
			} else {
				assert.Equal(t, tt.wantCode, decodeErrorResponse(t, rec).Code)
			}

			if !tt.serviceCall {
				authService.AssertNotCalled(t, "Register",
					mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return token pair", func(t *testing.T) {
		t.Parallel()

		authService := new(MockAuthService)
		authService.
			On("Login", mock.Anything, "john.doe@example.com", "password123").
			Return(&auth.AuthResult{
				UserID:       uuid.New(),
				FullName:     "John Doe",
				Email:        "john.doe@example.com",
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
			}, nil)
		handler := NewAuthHandler(authService)

		rec := postJSON(t, handler.Login, map[string]interface{}{
			"email":    "john.doe@example.com",
			"password": "password123",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
	})

	t.Run("invalid credentials map to 401", func(t *testing.T) {
		t.Parallel()

		authService := new(MockAuthService)
		authService.
			On("Login", mock.Anything, "john.doe@example.com", "wrong").
			Return(nil, domain.ErrInvalidCredentials)
		handler := NewAuthHandler(authService)

		rec := postJSON(t, handler.Login, map[string]interface{}{
			"email":    "john.doe@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "User.InvalidCredentials", decodeErrorResponse(t, rec).Code)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(new(MockAuthService))

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Request.InvalidBody", decodeErrorResponse(t, rec).Code)
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("valid refresh rotates tokens", func(t *testing.T) {
		t.Parallel()

		authService := new(MockAuthService)
		authService.
			On("RefreshTokens", mock.Anything, userID, "old-refresh-token").
			Return(&auth.AuthResult{
				UserID:       userID,
				FullName:     "John Doe",
				Email:        "john.doe@example.com",
				AccessToken:  "new-access-token",
				RefreshToken: "new-refresh-token",
			}, nil)
		handler := NewAuthHandler(authService)

		rec := postJSON(t, handler.Refresh, map[string]interface{}{
			"user_id":       userID.String(),
			"refresh_token": "old-refresh-token",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "new-access-token", resp.AccessToken)
		assert.Equal(t, "new-refresh-token", resp.RefreshToken)
	})

	t.Run("invalid refresh token maps to 401", func(t *testing.T) {
		t.Parallel()

		authService := new(MockAuthService)
		authService.
			On("RefreshTokens", mock.Anything, userID, "stale-token").
			Return(nil, domain.ErrInvalidRefreshToken)
		handler := NewAuthHandler(authService)

		rec := postJSON(t, handler.Refresh, map[string]interface{}{
			"user_id":       userID.String(),
			"refresh_token": "stale-token",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "User.InvalidRefreshToken", decodeErrorResponse(t, rec).Code)
	})

	t.Run("missing refresh token maps to 400", func(t *testing.T) {
		t.Parallel()

		authService := new(MockAuthService)
		handler := NewAuthHandler(authService)

		rec := postJSON(t, handler.Refresh, map[string]interface{}{
			"user_id": userID.String(),
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		authService.AssertNotCalled(t, "RefreshTokens", mock.Anything, mock.Anything, mock.Anything)
	})
}
