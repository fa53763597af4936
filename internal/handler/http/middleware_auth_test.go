// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-client/internal/logger"
	"github.com/MKhiriev/go-chat-client/internal/service"
	"github.com/MKhiriev/go-chat-client/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "raw token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "extra spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "blank", header: "   ", wantErr: ErrEmptyToken},
		{name: "too many parts", header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────
// withAPIKey / auth
// ─────────────────────────────────────────────

func newAuthHandler() *Handler {
	return NewHandler(&service.Services{
		AuthService: service.NewAuthService(testAPIKey, testSecret, time.Hour, logger.Nop()),
	}, logger.Nop())
}

func TestWithAPIKey(t *testing.T) {
	h := newAuthHandler()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantNext   bool
	}{
		{name: "valid key", target: "/x?api_key=" + testAPIKey, wantStatus: http.StatusOK, wantNext: true},
		{name: "wrong key", target: "/x?api_key=nope", wantStatus: http.StatusUnauthorized},
		{name: "missing key", target: "/x", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			h.withAPIKey(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.Equal(t, codeAPIKeyInvalid, decodeAPIError(t, rr).Code)
			}
		})
	}
}

func TestAuth(t *testing.T) {
	h := newAuthHandler()
	token, err := h.services.AuthService.CreateToken(context.Background(), testUserID)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		authType   string
		wantStatus int
		wantCode   int
	}{
		{name: "raw token", authHeader: token, authType: authTypeJWT, wantStatus: http.StatusOK},
		{name: "bearer token without auth type", authHeader: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantCode: codeAuthentication},
		{name: "anonymous auth type", authHeader: token, authType: "anonymous", wantStatus: http.StatusUnauthorized, wantCode: codeAuthentication},
		{name: "garbage token", authHeader: "garbage", wantStatus: http.StatusUnauthorized, wantCode: codeTokenNotValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/channels", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.authType != "" {
				req.Header.Set(authTypeHeader, tt.authType)
			}

			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, testUserID, gotUserID)
				return
			}
			assert.Empty(t, gotUserID)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rr).Code)
		})
	}
}
