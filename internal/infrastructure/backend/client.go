// Package backend is the HTTP client for the upstream VitalSync API. Every
// reply is decoded and validated before it is handed to callers.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"vitalsync/config"
	"vitalsync/pkg/validator"
)

type Client struct {
	http     *resty.Client
	validate *validator.CustomValidator
	log      *logrus.Logger
	enabled  bool
}

func NewClient(cfg config.BackendConfig, validate *validator.CustomValidator, log *logrus.Logger) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second)

	client.AddRetryCondition(retryCondition)

	return &Client{
		http:     client,
		validate: validate,
		log:      log,
		enabled:  cfg.URL != "",
	}
}

// Enabled reports whether a backend URL is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.enabled
}

// retryCondition retries idempotent reads on network errors and 5xx replies.
func retryCondition(r *resty.Response, err error) bool {
	if r != nil && r.Request != nil && r.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	return r.StatusCode() >= http.StatusInternalServerError
}

// call performs one request and returns the raw body of a 2xx reply.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrBackendDisabled
	}

	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	c.log.Debugf("backend %s %s returned %d in %s", method, path, resp.StatusCode(), resp.Time())
	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return resp.Body(), nil
}

// decode unmarshals and validates a reply body into T.
func decode[T any](c *Client, path string, raw []byte) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &ValidationError{Path: path, Err: err}
	}
	if err := c.validate.Validate(&out); err != nil {
		return out, &ValidationError{Path: path, Err: err}
	}
	return out, nil
}

func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	raw, err := c.call(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](c, path, raw)
}

func sendJSON[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	raw, err := c.call(ctx, method, path, nil, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](c, path, raw)
}
