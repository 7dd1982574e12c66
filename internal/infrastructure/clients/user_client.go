package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xpnews/xpnews-backend/internal/domain/entity"
	"github.com/xpnews/xpnews-backend/pkg/pagination"
)

// UserClient fetches the paginated user listing from the remote user service
// with a single GET to <base>/find-all. There are no retries and no fallback;
// the configured timeout bounds the call.
type UserClient struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

func NewUserClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *UserClient {
	return &UserClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *UserClient) FindAll(ctx context.Context) (*pagination.Page[entity.UserProjection], error) {
	url := c.baseURL + "/find-all"
	c.logger.WithField("url", url).Info("requesting remote user listing")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user listing service returned status %d", res.StatusCode)
	}

	var page pagination.Page[entity.UserProjection]
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding user listing response: %w", err)
	}

	c.logger.WithField("total", page.TotalElements).Info("remote user listing received")
	return &page, nil
}
