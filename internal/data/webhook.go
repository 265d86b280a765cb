package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"solar-advisor/internal/model"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

const webhookService = "Webhook"

// WebhookClient posts form submissions to the advisory workflow and decodes
// its {analysis, recommendation} reply.
type WebhookClient struct {
	URL        string
	Client     *http.Client
	RepairJSON bool
}

// NewWebhookClient creates a webhook client. A zero timeout defaults to 30s.
func NewWebhookClient(url string, timeout time.Duration, repairJSON bool) *WebhookClient {
	return &WebhookClient{
		URL:        url,
		Client:     newHTTPClient(timeout),
		RepairJSON: repairJSON,
	}
}

// Advise sends one submission for feature. payload must encode to a JSON
// object; its fields are sent alongside a "feature" discriminator.
func (c *WebhookClient) Advise(ctx context.Context, feature model.Feature, payload any) (*model.Advice, error) {
	if c.URL == "" {
		return nil, &UpstreamError{
			Service: webhookService,
			Code:    CodeNotConfigured,
			Message: "webhook URL is not configured",
		}
	}

	body, err := withFeature(feature, payload)
	if err != nil {
		return nil, err
	}

	status, raw, err := postJSON(ctx, c.Client, webhookService, c.URL, body)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		log.Printf("[Webhook] Error: status %d (feature=%s)", status, feature)
		return nil, &UpstreamError{
			Service:    webhookService,
			StatusCode: status,
			Code:       CodeUpstreamStatus,
			Message:    fmt.Sprintf("Server responded with status %d", status),
			Raw:        string(raw),
		}
	}

	advice, err := c.decodeAdvice(raw)
	if err != nil {
		log.Printf("[Webhook] Unexpected response: %v (feature=%s)", err, feature)
		return nil, &UpstreamError{
			Service:    webhookService,
			StatusCode: status,
			Code:       CodeUnexpectedResponse,
			Message:    fmt.Sprintf("unexpected webhook response: %v", err),
			Raw:        string(raw),
			Err:        err,
		}
	}
	log.Printf("[Webhook] Success: analysis=%d chars, recommendation=%d chars (feature=%s)",
		len(advice.Analysis), len(advice.Recommendation), feature)
	return advice, nil
}

// decodeAdvice enforces the response contract: a JSON object with string
// fields analysis and recommendation, at least one of them non-empty.
func (c *WebhookClient) decodeAdvice(raw []byte) (*model.Advice, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, fmt.Errorf("empty body")
	}

	advice, err := strictAdvice([]byte(text))
	if err != nil && c.RepairJSON {
		repaired, rerr := jsonrepair.RepairJSON(text)
		if rerr == nil {
			if fixed, ferr := strictAdvice([]byte(repaired)); ferr == nil {
				log.Printf("[Webhook] Response body repaired before decoding")
				return fixed, nil
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return advice, nil
}

func strictAdvice(raw []byte) (*model.Advice, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var advice model.Advice
	if err := dec.Decode(&advice); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON object")
	}
	if advice.Empty() {
		return nil, fmt.Errorf("response has no analysis or recommendation")
	}
	return &advice, nil
}

// withFeature flattens payload into a JSON object and tags it with feature.
func withFeature(feature model.Feature, payload any) (map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("payload must be a JSON object: %w", err)
	}
	fields["feature"] = string(feature)
	return fields, nil
}
