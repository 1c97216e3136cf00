package emails

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
)

// Connector fetches email proofs from the upstream proofing service.
type Connector interface {
	ListProofs(ctx context.Context) ([]EmailTemplate, error)
	GetProof(ctx context.Context, proofID string) (EmailTemplate, error)
}

// HTTPConnector talks to the proofing service REST API with basic auth.
type HTTPConnector struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

// NewHTTPConnector constructs a connector. Credentials may be empty in dev;
// calls then return ErrConnectorUnavailable instead of failing startup.
func NewHTTPConnector(baseURL, apiKey, apiSecret string) *HTTPConnector {
	return &HTTPConnector{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		apiSecret: apiSecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type proofEnvelope struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	HTMLContent string   `json:"html_content"`
	Metadata    Metadata `json:"metadata"`
}

// ListProofs fetches the proof list from the proofing service.
func (c *HTTPConnector) ListProofs(ctx context.Context) ([]EmailTemplate, error) {
	var envelopes []proofEnvelope
	if err := c.getJSON(ctx, "/proofs", &envelopes); err != nil {
		return nil, err
	}
	out := make([]EmailTemplate, 0, len(envelopes))
	for _, env := range envelopes {
		out = append(out, env.toTemplate())
	}
	return out, nil
}

// GetProof fetches one proof with full HTML and metadata.
func (c *HTTPConnector) GetProof(ctx context.Context, proofID string) (EmailTemplate, error) {
	var env proofEnvelope
	if err := c.getJSON(ctx, "/proofs/"+proofID, &env); err != nil {
		return EmailTemplate{}, err
	}
	if env.ID == "" {
		return EmailTemplate{}, ErrNotFound
	}
	return env.toTemplate(), nil
}

func (env proofEnvelope) toTemplate() EmailTemplate {
	name := env.Name
	if name == "" {
		name = env.Metadata.TemplateName
	}
	return EmailTemplate{
		ID:          env.ID,
		Name:        name,
		Status:      env.Status,
		HTMLContent: env.HTMLContent,
		Metadata:    env.Metadata,
	}
}

func (c *HTTPConnector) getJSON(ctx context.Context, path string, out any) error {
	if c.apiKey == "" || c.apiSecret == "" {
		return ErrConnectorUnavailable
	}

	backoff := retry.WithMaxRetries(2, retry.NewExponential(500*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return err
		}
		req.SetBasicAuth(c.apiKey, c.apiSecret)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
		if err != nil {
			return retry.RetryableError(err)
		}
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return ErrNotFound
		case resp.StatusCode >= 500:
			return retry.RetryableError(fmt.Errorf("proofing service status %d", resp.StatusCode))
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("proofing service status %d", resp.StatusCode)
		}
		return json.Unmarshal(body, out)
	})
}
