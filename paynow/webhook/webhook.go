package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"paynow-go/internal/logger"
	"paynow-go/paynow"

	"go.uber.org/zap"
)

// Handler serves the merchant's result URL: gateway status callbacks are
// verified against the integration key before OnStatus sees them.
type Handler struct {
	Client   *paynow.Client
	OnStatus func(ctx context.Context, status *paynow.StatusResponse) error
}

func NewHandler(client *paynow.Client, onStatus func(ctx context.Context, status *paynow.StatusResponse) error) *Handler {
	return &Handler{
		Client:   client,
		OnStatus: onStatus,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	status, err := h.Client.ParseCallback(string(body))
	if err != nil {
		if errors.Is(err, paynow.ErrHashMismatch) {
			log.Warn("rejected callback with invalid hash", zap.Error(err))
			http.Error(w, "invalid hash", http.StatusForbidden)
			return
		}
		http.Error(w, "invalid callback payload", http.StatusBadRequest)
		return
	}

	log.Info("status callback received",
		zap.String("reference", status.Reference()),
		zap.String("status", status.Status()),
		zap.Bool("paid", status.Paid()),
	)

	if h.OnStatus != nil {
		if err := h.OnStatus(r.Context(), status); err != nil {
			log.Error("failed to process status callback", zap.Error(err))
			http.Error(w, "failed to process callback", http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok")
}
