package artifact

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/Erickrodrigues05/angohire/internal/domain/errors"
)

const bucket = "resumes"

// Store persists document bytes and returns a public artifact URL.
type Store interface {
	Put(ctx context.Context, name string, document []byte) (string, error)
}

// HTTPStore implements Store against the object storage HTTP API.
type HTTPStore struct {
	baseURL    *url.URL
	publicBase *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPStore creates HTTP object store client. publicBase is the root
// under which stored objects are publicly addressable.
func NewHTTPStore(baseURL, publicBase string, logger *slog.Logger) (*HTTPStore, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse artifact store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("artifact store url must be absolute")
	}
	public, err := url.Parse(publicBase)
	if err != nil {
		return nil, fmt.Errorf("parse artifact public url: %w", err)
	}
	if !public.IsAbs() {
		return nil, fmt.Errorf("artifact public url must be absolute")
	}
	return &HTTPStore{
		baseURL:    parsed,
		publicBase: public,
		logger:     logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Put uploads the document and returns its public URL.
func (s *HTTPStore) Put(ctx context.Context, name string, document []byte) (string, error) {
	endpoint := *s.baseURL
	endpoint.Path = path.Join(endpoint.Path, bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint.String(), bytes.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domainErrors.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", "application/pdf")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domainErrors.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		s.logger.Error("artifact upload failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("%w: store returned %s", domainErrors.ErrUploadFailed, resp.Status)
	}

	public := *s.publicBase
	public.Path = path.Join(public.Path, bucket, name)
	return public.String(), nil
}
