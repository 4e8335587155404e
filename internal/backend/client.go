package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/pawnshop-gateway/internal/config"
	apperrors "github.com/spec-kit/pawnshop-gateway/pkg/util/errorutil"
)

// Client talks to the upstream pawnshop REST service. It attaches bearer
// tokens when supplied and normalizes upstream failures into DomainErrors
// with best-effort message extraction from the response body.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New builds a client from configuration.
func New(cfg config.BackendConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
}

// do issues a request against the upstream service. A non-empty token is
// sent as a bearer header. The out parameter, when non-nil, receives the
// decoded JSON body of a successful response.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Warn("upstream request failed", zap.String("path", path), zap.Error(err))
		return apperrors.NewUpstreamUnavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.normalizeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewUpstream(http.StatusBadGateway, "malformed upstream response")
	}
	return nil
}

// normalizeError extracts a human-readable message from a failure body,
// trying the shapes the upstream is known to emit.
func (c *Client) normalizeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apperrors.NewUpstream(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &nested) == nil {
		if nested.Error.Message != "" {
			return apperrors.NewUpstream(resp.StatusCode, nested.Error.Message)
		}
		if nested.Message != "" {
			return apperrors.NewUpstream(resp.StatusCode, nested.Message)
		}
	}

	var flat struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &flat) == nil && flat.Error != "" {
		return apperrors.NewUpstream(resp.StatusCode, flat.Error)
	}

	return apperrors.NewUpstream(resp.StatusCode, http.StatusText(resp.StatusCode))
}

func idPath(format, id string) string {
	return fmt.Sprintf(format, id)
}
