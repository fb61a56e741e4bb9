package main

import (
	"context"
	"net/http"

	"paynow-go/internal/config"
	"paynow-go/internal/logger"
	"paynow-go/paynow"
	"paynow-go/paynow/webhook"

	"go.uber.org/zap"
)

// Example merchant server: initiates a web payment per request and
// receives the gateway's status callbacks on the result URL.
func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	client, err := paynow.NewClient(paynow.Config{
		IntegrationID:  cfg.IntegrationID,
		IntegrationKey: cfg.IntegrationKey,
		ResultURL:      cfg.ResultURL,
		ReturnURL:      cfg.ReturnURL,
	})
	if err != nil {
		logger.L().Fatal("failed to build gateway client", zap.Error(err))
	}

	callbacks := webhook.NewHandler(client, func(ctx context.Context, status *paynow.StatusResponse) error {
		logger.FromCtx(ctx).Info("transaction update",
			zap.String("reference", status.Reference()),
			zap.Bool("paid", status.Paid()),
		)
		return nil
	})

	router := setupRouter(client, callbacks)

	logger.L().Info("merchant demo listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func setupRouter(client *paynow.Client, callbacks http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/pay", func(w http.ResponseWriter, r *http.Request) {
		payment := paynow.NewPayment(paynow.GenerateReference())
		if err := payment.AddItem("Demo widget", 10.00, 2); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		resp, err := client.SubmitWeb(r.Context(), payment)
		if err != nil {
			http.Error(w, "failed to initiate payment", http.StatusBadGateway)
			return
		}

		http.Redirect(w, r, resp.RedirectURL(), http.StatusSeeOther)
	})

	mux.Handle("/webhook/paynow", callbacks)

	return logger.RequestIDMiddleware(logger.LoggingMiddleware(mux))
}
