package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	valid, _ := jwtService.GenerateJWT("user-42", time.Now().Add(time.Hour))

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(UserIDKey).(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(jwtService)(next)

	tests := []struct {
		name   string
		header string
		status int
		userID string
	}{
		{name: "No header", header: "", status: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "Invalid token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + valid, status: http.StatusOK, userID: "user-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			r := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.userID, seen)
		})
	}
}

func TestSharedSecretMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		secret string
		header string
		status int
	}{
		{name: "Disabled", secret: "", header: "", status: http.StatusOK},
		{name: "Missing header", secret: "cron", header: "", status: http.StatusUnauthorized},
		{name: "Wrong secret", secret: "cron", header: "Bearer other", status: http.StatusUnauthorized},
		{name: "Right secret", secret: "cron", header: "Bearer cron", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/cron/scan", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			SharedSecretMiddleware(tt.secret)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
