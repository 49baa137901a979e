// Package feedback talks to the remote feedback service over its HTTP JSON API.
package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/feedback/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
)

// API is what the catalog needs from the feedback service.
type API interface {
	GetFeedbacks(ctx context.Context, productID int64) ([]model.Feedback, error)
	GetProductRating(ctx context.Context, productID int64) (float64, error)
	AddFeedback(ctx context.Context, input *dto.AddFeedbackInput) error
	DeleteFeedback(ctx context.Context, feedbackID int64) error
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.ZapLogger
}

func NewClient(cfg *Config, log logger.ZapLogger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		logger: log,
	}
}

func (c *Client) GetFeedbacks(ctx context.Context, productID int64) ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	if err := c.do(ctx, http.MethodGet, "/api/feedbacks?"+productQuery(productID), nil, &feedbacks); err != nil {
		return nil, err
	}
	if feedbacks == nil {
		feedbacks = []model.Feedback{}
	}
	return feedbacks, nil
}

func (c *Client) GetProductRating(ctx context.Context, productID int64) (float64, error) {
	var rating float64
	if err := c.do(ctx, http.MethodGet, "/api/feedbacks/rating?"+productQuery(productID), nil, &rating); err != nil {
		return 0, err
	}
	return rating, nil
}

func (c *Client) AddFeedback(ctx context.Context, input *dto.AddFeedbackInput) error {
	return c.do(ctx, http.MethodPost, "/api/feedbacks", input, nil)
}

func (c *Client) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	return c.do(ctx, http.MethodDelete, "/api/feedbacks/"+strconv.FormatInt(feedbackID, 10), nil, nil)
}

func productQuery(productID int64) string {
	return url.Values{"productId": {strconv.FormatInt(productID, 10)}}.Encode()
}

// do sends body as JSON when non-nil and decodes a 2xx response into out when
// non-nil. Every failure wraps model.ErrRemoteService.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrRemoteService, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("feedback service unreachable", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", model.ErrRemoteService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("feedback service error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: %s %s: %d %s", model.ErrRemoteService, method, path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", model.ErrRemoteService, path, err)
	}
	return nil
}
