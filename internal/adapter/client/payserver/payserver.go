package payserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/usdtgate/usdtgate/internal/adapter/config"
	"github.com/usdtgate/usdtgate/internal/core/domain"
	"go.uber.org/zap"
)

const resolveTimeout = 10 * time.Second
const payPagePath = "/gin/pay"

// The receiving address is embedded in the pay page markup as
// data-address="T...".
var addressPattern = regexp.MustCompile(`data-address="([^"]*)"`)

// Client resolves the current receiving address from the pay server's
// checkout page. Every failure mode collapses into domain.ErrAddressUnavailable
// so callers see a single retryable condition.
type Client struct {
	logger  *zap.Logger
	baseURL string
	client  *http.Client
}

func NewClient(cfg *config.PayServer, log *zap.Logger) (*Client, error) {
	return &Client{
		logger:  log,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: resolveTimeout},
	}, nil
}

func (c *Client) ResolveAddress(ctx context.Context) (string, error) {
	if c.baseURL == "" {
		return "", domain.ErrPayServerURLMissing
	}

	requestStr := c.baseURL + payPagePath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("error on %s : %w", requestStr, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("pay server request failed", zap.String("url", requestStr), zap.Error(err))
		return "", domain.ErrAddressUnavailable
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status from pay server",
			zap.String("url", requestStr), zap.Int("status", resp.StatusCode))
		return "", domain.ErrAddressUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("error reading pay server response", zap.Error(err))
		return "", domain.ErrAddressUnavailable
	}

	matches := addressPattern.FindSubmatch(body)
	if matches == nil || len(matches[1]) == 0 {
		c.logger.Error("no address attribute in pay server response", zap.String("url", requestStr))
		return "", domain.ErrAddressUnavailable
	}

	return string(matches[1]), nil
}
