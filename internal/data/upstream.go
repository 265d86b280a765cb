package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Error codes carried by UpstreamError.
const (
	CodeNotConfigured      = "WEBHOOK_NOT_CONFIGURED"
	CodeUnreachable        = "UPSTREAM_UNREACHABLE"
	CodeUpstreamStatus     = "UPSTREAM_STATUS"
	CodeUnexpectedResponse = "UNEXPECTED_RESPONSE"
	CodeUnknownState       = "UNKNOWN_STATE"
)

// maxBodyBytes bounds how much of an upstream response is read.
const maxBodyBytes = 1 << 20

// RequestIDHeader is forwarded on outbound calls so upstream logs can be correlated.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// WithRequestID returns a context carrying the inbound request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored by WithRequestID, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// UpstreamError represents a failed call to the webhook or prediction service.
// Raw holds the response body, when there was one, for diagnostics.
type UpstreamError struct {
	Service    string
	StatusCode int
	Code       string
	Message    string
	Raw        string
	Err        error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// postJSON sends payload to url and returns the status code and body.
// Transport failures come back as *UpstreamError with CodeUnreachable.
func postJSON(ctx context.Context, client *http.Client, service, url string, payload any) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := RequestID(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	log.Printf("[%s] Request: POST %s (%d bytes)", service, req.URL.Redacted(), len(body))

	start := time.Now()
	resp, err := client.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Printf("[%s] Request failed: %v (duration: %v)", service, err, duration)
		return 0, nil, &UpstreamError{
			Service: service,
			Code:    CodeUnreachable,
			Message: fmt.Sprintf("%s could not be reached: %v", service, err),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Printf("[%s] Error reading response: %v (duration: %v)", service, err, duration)
		return resp.StatusCode, nil, &UpstreamError{
			Service:    service,
			StatusCode: resp.StatusCode,
			Code:       CodeUnreachable,
			Message:    fmt.Sprintf("failed to read %s response: %v", service, err),
			Err:        err,
		}
	}

	log.Printf("[%s] Response: %s (duration: %v, %d bytes)", service, resp.Status, duration, len(raw))
	return resp.StatusCode, raw, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
