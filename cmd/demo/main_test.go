package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"paynow-go/paynow"

	"github.com/stretchr/testify/assert"
)

func TestSetupRouter(t *testing.T) {
	client, err := paynow.NewClient(paynow.Config{
		IntegrationID:  "1201",
		IntegrationKey: "secret-key",
	})
	assert.NoError(t, err)

	mockCallbacks := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("callback received"))
	})

	router := setupRouter(client, mockCallbacks)

	t.Run("HealthCheck", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "OK")
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("WebhookWiring", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/webhook/paynow", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "callback received")
	})
}
