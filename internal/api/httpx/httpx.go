// Package httpx writes the JSON envelopes shared by the HTTP layer.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Error codes returned by the point endpoints.
const (
	CodeBadRequest           = "bad_request"
	CodeInvalidAmount        = "invalid_amount"
	CodeInsufficientBalance  = "insufficient_balance"
	CodeBalanceLimitExceeded = "balance_limit_exceeded"
	CodeRateLimited          = "rate_limited"
	CodeInternalError        = "internal_error"
)

// APIError is the error body for every non-2xx response.
type APIError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details any) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Code:    code,
		Details: details,
	})
}
