package paynow

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"paynow-go/form"
	"paynow-go/hash"
	"paynow-go/internal/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	initiateTransactionURL       = "https://www.paynow.co.zw/interface/initiatetransaction"
	initiateMobileTransactionURL = "https://www.paynow.co.zw/interface/remotetransaction"
)

// Config carries the merchant credentials and callback URLs for one
// gateway integration. IntegrationKey is the shared hash secret; it is
// never transmitted.
type Config struct {
	IntegrationID  string
	IntegrationKey string
	ResultURL      string
	ReturnURL      string
}

// Client talks to the gateway for one integration. A single Client can
// carry any number of transactions; instances are independent of each
// other. The URL setters must not be called concurrently with an
// in-flight submission.
type Client struct {
	integrationID  string
	integrationKey string
	resultURL      string
	returnURL      string
	httpClient     *http.Client
	validate       *validator.Validate
}

// NewClient builds a gateway client from merchant configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.IntegrationID == "" {
		return nil, ErrEmptyIntegrationID
	}
	if cfg.IntegrationKey == "" {
		return nil, ErrEmptyIntegrationKey
	}

	c := &Client{
		integrationID:  cfg.IntegrationID,
		integrationKey: cfg.IntegrationKey,
		resultURL:      "http://localhost",
		returnURL:      "http://localhost",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		validate: validator.New(),
	}

	if cfg.ResultURL != "" {
		c.resultURL = cfg.ResultURL
	}
	if cfg.ReturnURL != "" {
		c.returnURL = cfg.ReturnURL
	}

	return c, nil
}

// SetHTTPClient replaces the underlying HTTP client. Timeout policy
// belongs to the transport, not this library.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

func (c *Client) IntegrationID() string { return c.integrationID }
func (c *Client) ResultURL() string     { return c.resultURL }
func (c *Client) ReturnURL() string     { return c.returnURL }

func (c *Client) SetResultURL(url string) { c.resultURL = url }
func (c *Client) SetReturnURL(url string) { c.returnURL = url }

// SubmitWeb initiates a web transaction. On success the customer should
// be redirected to the response's RedirectURL to complete payment.
func (c *Client) SubmitWeb(ctx context.Context, payment *Payment) (*WebInitResponse, error) {
	if err := c.checkSubmittable(payment); err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("reference", payment.Reference()),
		zap.Float64("total", payment.Total()),
	)

	fields := c.signedRequest(payment, nil)

	log.Info("initiating web transaction")

	values, err := c.post(ctx, initiateTransactionURL, fields)
	if err != nil {
		log.Error("web initiation failed", zap.Error(err))
		return nil, err
	}

	if strings.EqualFold(values.Get("status"), StatusError) || !hash.Verify(values, c.integrationKey) {
		log.Warn("web initiation rejected", zap.String("status", values.Get("status")))
		return nil, hashMismatchError(values)
	}

	return newWebInitResponse(values), nil
}

// SubmitMobile initiates a mobile money transaction against the payer's
// phone. The payment must carry a valid auth email.
func (c *Client) SubmitMobile(ctx context.Context, payment *Payment, phone string, method MobileMethod) (*MobileInitResponse, error) {
	if err := c.checkSubmittable(payment); err != nil {
		return nil, err
	}
	if c.validate.Var(payment.AuthEmail(), "required,email") != nil {
		return nil, ErrAuthEmailInvalid
	}

	log := logger.FromCtx(ctx).With(
		zap.String("reference", payment.Reference()),
		zap.String("method", string(method)),
	)

	extra := form.New()
	extra.Set("phone", phone)
	extra.Set("method", string(method))
	fields := c.signedRequest(payment, extra)

	log.Info("initiating mobile transaction")

	values, err := c.post(ctx, initiateMobileTransactionURL, fields)
	if err != nil {
		log.Error("mobile initiation failed", zap.Error(err))
		return nil, err
	}

	// Error replies from the mobile endpoint are not required to carry a
	// valid hash, so the integrity check is skipped for them.
	if strings.EqualFold(values.Get("status"), StatusError) {
		log.Warn("mobile initiation rejected", zap.String("error", errorText(values)))
		return nil, hashMismatchError(values)
	}
	if !hash.Verify(values, c.integrationKey) {
		log.Warn("mobile initiation response failed hash check")
		return nil, hashMismatchError(values)
	}

	return newMobileInitResponse(values), nil
}

// PollStatus queries a poll URL issued by a prior initiation for the
// transaction's current status.
func (c *Client) PollStatus(ctx context.Context, pollURL string) (*StatusResponse, error) {
	values, err := c.post(ctx, pollURL, nil)
	if err != nil {
		logger.FromCtx(ctx).Error("status poll failed", zap.String("pollurl", pollURL), zap.Error(err))
		return nil, err
	}

	return c.statusFrom(values)
}

// ParseCallback validates a status update the gateway POSTed to the
// merchant's result URL. It performs no network I/O.
func (c *Client) ParseCallback(raw string) (*StatusResponse, error) {
	values, err := form.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return c.statusFrom(values)
}

// ParseCallbackValues is ParseCallback for a body already decoded into
// ordered values.
func (c *Client) ParseCallbackValues(values *form.Values) (*StatusResponse, error) {
	return c.statusFrom(values)
}

func (c *Client) statusFrom(values *form.Values) (*StatusResponse, error) {
	if !hash.Verify(values, c.integrationKey) {
		return nil, hashMismatchError(values)
	}
	return newStatusResponse(values), nil
}

func (c *Client) checkSubmittable(payment *Payment) error {
	if payment.Reference() == "" {
		return ErrInvalidReference
	}
	if payment.Total() <= 0 {
		return ErrEmptyCart
	}
	return nil
}

// signedRequest merges the payment fields with the merchant
// configuration and appends the integrity hash. Insertion order here is
// part of the wire contract.
func (c *Client) signedRequest(payment *Payment, extra *form.Values) *form.Values {
	fields := payment.requestFields()

	fields.Set("returnurl", strings.TrimSpace(c.returnURL))
	fields.Set("resulturl", strings.TrimSpace(c.resultURL))
	fields.Set("id", c.integrationID)

	if extra != nil {
		for _, key := range extra.Keys() {
			fields.Set(key, extra.Get(key))
		}
	}

	fields.Set(hash.Field, hash.Make(fields, c.integrationKey))

	return fields
}

// post sends a form-encoded POST and decodes the reply body. Gateway
// success or failure is carried entirely in the decoded body; HTTP
// status codes are not inspected.
func (c *Client) post(ctx context.Context, url string, fields *form.Values) (*form.Values, error) {
	var body io.Reader
	if fields != nil {
		body = strings.NewReader(fields.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	values, err := form.Decode(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return values, nil
}

func hashMismatchError(values *form.Values) error {
	if msg := errorText(values); msg != "" {
		return fmt.Errorf("%w: %s", ErrHashMismatch, msg)
	}
	return ErrHashMismatch
}
