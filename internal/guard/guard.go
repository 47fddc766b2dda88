// Package guard implements the session guard: a response filter applied to
// every backend call.
package guard

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"roster/internal/nav"
	"roster/internal/service"
	"roster/internal/token"
)

// maxPeekBytes bounds how much of an error body the guard will buffer.
const maxPeekBytes = 1 << 16

// Transport inspects every response before it reaches caller code. On an
// authentication failure it clears the token and forces a navigation reset;
// the response itself is always passed through unchanged so callers still see
// the failure. It never retries and never touches successful responses.
type Transport struct {
	Base   http.RoundTripper
	Tokens token.Store
	Logger *slog.Logger
}

// New creates a guard transport over base. A nil base uses
// http.DefaultTransport.
func New(base http.RoundTripper, tokens token.Store, logger *slog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transport{Base: base, Tokens: tokens, Logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Auth endpoints reject with the same status codes for wrong credentials.
	// Those rejections are the command's to report, not a session failure.
	if isAuthEndpoint(req.URL.Path) {
		return resp, nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		t.Logger.Warn("token expired, redirecting to sign in", slog.String("path", req.URL.Path))
		t.Tokens.Remove()
		nav.Reset(nav.RouteSignIn)

	case http.StatusForbidden:
		// Only the account-deleted reason triggers a redirect; a plain 403
		// passes through untouched.
		if t.peekReason(resp) == service.ReasonAccountDeleted {
			t.Logger.Warn("account deleted, redirecting to sign up", slog.String("path", req.URL.Path))
			t.Tokens.Remove()
			nav.Reset(nav.RouteSignUp)
		}
	}

	return resp, nil
}

// isAuthEndpoint reports whether path belongs to the credential endpoints
// (login, register, password reset), which sit outside any session.
func isAuthEndpoint(path string) bool {
	return strings.Contains(path, "/auth/")
}

// peekReason reads the error reason out of a response body and restores the
// body so the caller can decode it again.
func (t *Transport) peekReason(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPeekBytes))
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		t.Logger.Warn("failed to read error body", slog.String("error", err.Error()))
		return ""
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
