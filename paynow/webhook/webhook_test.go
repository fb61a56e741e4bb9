package webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"paynow-go/form"
	"paynow-go/hash"
	"paynow-go/paynow"
)

const testIntegrationKey = "3e9fed89-60e1-4ce5-ab6e-6b1eb2d4f977"

func newTestClient(t *testing.T) *paynow.Client {
	t.Helper()

	c, err := paynow.NewClient(paynow.Config{
		IntegrationID:  "1201",
		IntegrationKey: testIntegrationKey,
	})
	assert.NoError(t, err)
	return c
}

func paidCallbackBody() string {
	v := form.New()
	v.Set("reference", "INV-1")
	v.Set("paynowreference", "100045")
	v.Set("amount", "20.00")
	v.Set("status", "Paid")
	v.Set(hash.Field, hash.Make(v, testIntegrationKey))
	return v.Encode()
}

func TestHandler_ServeHTTP(t *testing.T) {
	t.Run("Paid", func(t *testing.T) {
		var received *paynow.StatusResponse
		h := NewHandler(newTestClient(t), func(ctx context.Context, status *paynow.StatusResponse) error {
			received = status
			return nil
		})

		req := httptest.NewRequest("POST", "/webhook/paynow", strings.NewReader(paidCallbackBody()))
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "ok", rr.Body.String())
		assert.NotNil(t, received)
		assert.True(t, received.Paid())
		assert.Equal(t, "INV-1", received.Reference())
	})

	t.Run("TamperedHash", func(t *testing.T) {
		called := false
		h := NewHandler(newTestClient(t), func(ctx context.Context, status *paynow.StatusResponse) error {
			called = true
			return nil
		})

		req := httptest.NewRequest("POST", "/webhook/paynow", strings.NewReader(paidCallbackBody()+"0"))
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.False(t, called)
	})

	t.Run("MissingHash", func(t *testing.T) {
		h := NewHandler(newTestClient(t), nil)

		req := httptest.NewRequest("POST", "/webhook/paynow", strings.NewReader("status=Paid&amount=20.00"))
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("ProcessorFailure", func(t *testing.T) {
		h := NewHandler(newTestClient(t), func(ctx context.Context, status *paynow.StatusResponse) error {
			return errors.New("order not found")
		})

		req := httptest.NewRequest("POST", "/webhook/paynow", strings.NewReader(paidCallbackBody()))
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("NilProcessor", func(t *testing.T) {
		h := NewHandler(newTestClient(t), nil)

		req := httptest.NewRequest("POST", "/webhook/paynow", strings.NewReader(paidCallbackBody()))
		rr := httptest.NewRecorder()

		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
