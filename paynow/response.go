package paynow

import (
	"strconv"
	"strings"

	"paynow-go/form"
)

// WebInitResponse is the gateway's reply to a web transaction
// initiation. RedirectURL is where the customer completes the payment;
// PollURL is where the merchant later queries the outcome.
type WebInitResponse struct {
	success     bool
	redirectURL string
	pollURL     string
}

func newWebInitResponse(values *form.Values) *WebInitResponse {
	return &WebInitResponse{
		success:     strings.EqualFold(values.Get("status"), StatusOk),
		redirectURL: values.Get("browserurl"),
		pollURL:     values.Get("pollurl"),
	}
}

func (r *WebInitResponse) Success() bool       { return r.success }
func (r *WebInitResponse) RedirectURL() string { return r.redirectURL }
func (r *WebInitResponse) PollURL() string     { return r.pollURL }

// MobileInitResponse is the gateway's reply to a mobile money
// initiation. Instructions describe the steps the payer must take on
// their handset; Error carries the gateway's message on failure.
type MobileInitResponse struct {
	success      bool
	pollURL      string
	instructions string
	errorMessage string
}

func newMobileInitResponse(values *form.Values) *MobileInitResponse {
	return &MobileInitResponse{
		success:      strings.EqualFold(values.Get("status"), StatusOk),
		pollURL:      values.Get("pollurl"),
		instructions: values.Get("instructions"),
		errorMessage: errorText(values),
	}
}

func (r *MobileInitResponse) Success() bool        { return r.success }
func (r *MobileInitResponse) PollURL() string      { return r.pollURL }
func (r *MobileInitResponse) Instructions() string { return r.instructions }
func (r *MobileInitResponse) Error() string        { return r.errorMessage }

// StatusResponse is a transaction status update, either polled from the
// gateway or received on the merchant's result URL.
type StatusResponse struct {
	reference       string
	paynowReference string
	status          string
	amount          float64
	pollURL         string
}

func newStatusResponse(values *form.Values) *StatusResponse {
	amount, _ := strconv.ParseFloat(values.Get("amount"), 64)

	return &StatusResponse{
		reference:       values.Get("reference"),
		paynowReference: values.Get("paynowreference"),
		status:          values.Get("status"),
		amount:          amount,
		pollURL:         values.Get("pollurl"),
	}
}

// Paid reports whether the transaction has been paid in full.
func (r *StatusResponse) Paid() bool {
	return strings.EqualFold(r.status, StatusPaid)
}

func (r *StatusResponse) Reference() string       { return r.reference }
func (r *StatusResponse) PaynowReference() string { return r.paynowReference }
func (r *StatusResponse) Status() string          { return r.status }
func (r *StatusResponse) Amount() float64         { return r.amount }
func (r *StatusResponse) PollURL() string         { return r.pollURL }

// errorText pulls the gateway's error message out of a response. The
// gateway is inconsistent about the field's casing.
func errorText(values *form.Values) string {
	if values.Has("error") {
		return values.Get("error")
	}
	return values.Get("Error")
}
