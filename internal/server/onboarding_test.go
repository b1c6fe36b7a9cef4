package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tandem/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onboardingRequest(t *testing.T, s *Server, userID uint, payload map[string]string) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/onboarding", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		token, err := s.generateToken(userID)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	return req
}

func TestCompleteOnboardingEndpoint(t *testing.T) {
	s, app := setupIntegrationServer(t)

	user := &models.User{FullName: "Ana", Email: "ana@example.com", Password: "x"}
	require.NoError(t, s.db.Create(user).Error)

	t.Run("requires session", func(t *testing.T) {
		resp, err := app.Test(onboardingRequest(t, s, 0, map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing fields are enumerated", func(t *testing.T) {
		resp, err := app.Test(onboardingRequest(t, s, user.ID, map[string]string{
			"fullName":         "Ana Martinez",
			"nativeLanguage":   "Spanish",
			"learningLanguage": "English",
			"location":         "Madrid, Spain",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeJSON(t, resp, &body)
		assert.Equal(t, []string{"bio"}, body.MissingFields)

		// Nothing was persisted.
		var stored models.User
		require.NoError(t, s.db.First(&stored, user.ID).Error)
		assert.False(t, stored.IsOnboarded)
		assert.Empty(t, stored.NativeLanguage)
	})

	t.Run("success flips the onboarded flag", func(t *testing.T) {
		resp, err := app.Test(onboardingRequest(t, s, user.ID, map[string]string{
			"fullName":         "Ana Martinez",
			"bio":              "Learning English for work",
			"nativeLanguage":   "Spanish",
			"learningLanguage": "English",
			"location":         "Madrid, Spain",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var stored models.User
		require.NoError(t, s.db.First(&stored, user.ID).Error)
		assert.True(t, stored.IsOnboarded)
		assert.Equal(t, "Spanish", stored.NativeLanguage)
	})

	t.Run("me reflects the profile", func(t *testing.T) {
		resp, err := app.Test(authedRequestAs(t, s, http.MethodGet, "/api/auth/me", user.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Success bool        `json:"success"`
			User    models.User `json:"user"`
		}
		decodeJSON(t, resp, &body)
		assert.True(t, body.Success)
		assert.Equal(t, "Ana Martinez", body.User.FullName)
		assert.True(t, body.User.IsOnboarded)
		// The hashed credential never serializes.
		raw, _ := json.Marshal(body.User)
		assert.NotContains(t, string(raw), "hashed")
	})
}
