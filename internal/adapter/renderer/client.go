package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
	"github.com/Erickrodrigues05/angohire/internal/domain/model"
)

// Renderer produces document bytes from resume data and a template id.
type Renderer interface {
	Render(ctx context.Context, data model.ResumeData, templateID string) ([]byte, error)
}

// HTTPClient implements Renderer against the rendering service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// request mirrors the rendering service JSON payload.
type request struct {
	Data     model.ResumeData `json:"data"`
	Template string           `json:"template"`
}

// NewHTTPClient creates HTTP renderer client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse renderer url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("renderer url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

// Render asks the rendering service to produce the document.
func (c *HTTPClient) Render(ctx context.Context, data model.ResumeData, templateID string) ([]byte, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/resume/generate")

	payload, err := json.Marshal(request{Data: data, Template: templateID})
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %w", domainErrors.ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("renderer request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("%w: renderer returned %s", domainErrors.ErrGenerationFailed, resp.Status)
	}

	document, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read document: %w", domainErrors.ErrGenerationFailed, err)
	}
	if len(document) == 0 {
		return nil, fmt.Errorf("%w: renderer returned empty document", domainErrors.ErrGenerationFailed)
	}
	return document, nil
}
