package chatprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturnsNoopWhenUnconfigured(t *testing.T) {
	for _, cfg := range []Config{
		{},
		{APIKey: "key"},
		{APIKey: "key", APISecret: "secret"},
	} {
		client := New(cfg)
		assert.IsType(t, noopClient{}, client)
		assert.NoError(t, client.UpsertUser(context.Background(), UserRecord{ID: "1"}))
	}
}

func TestUpsertUser(t *testing.T) {
	var gotPath, gotAPIKey, gotAuthType string
	var gotAuth string
	var gotBody map[string]map[string]UserRecord

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.URL.Query().Get("api_key")
		gotAuth = r.Header.Get("Authorization")
		gotAuthType = r.Header.Get("Stream-Auth-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := New(Config{APIKey: "key", APISecret: "secret", BaseURL: srv.URL})

	err := client.UpsertUser(context.Background(), UserRecord{
		ID:    "42",
		Name:  "Ana Martinez",
		Image: "https://example.com/ana.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "/users", gotPath)
	assert.Equal(t, "key", gotAPIKey)
	assert.NotEmpty(t, gotAuth)
	assert.Equal(t, "jwt", gotAuthType)

	record, ok := gotBody["users"]["42"]
	require.True(t, ok, "payload must key the record by user ID")
	assert.Equal(t, "Ana Martinez", record.Name)
	assert.Equal(t, "https://example.com/ana.png", record.Image)
}

func TestUpsertUserServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(Config{APIKey: "key", APISecret: "secret", BaseURL: srv.URL})
	err := client.UpsertUser(context.Background(), UserRecord{ID: "1", Name: "Ana"})
	assert.Error(t, err)
}

func TestUpsertUserUnreachable(t *testing.T) {
	client := New(Config{APIKey: "key", APISecret: "secret", BaseURL: "http://127.0.0.1:1"})
	err := client.UpsertUser(context.Background(), UserRecord{ID: "1", Name: "Ana"})
	assert.Error(t, err)
}
