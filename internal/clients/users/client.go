// Package users is the client for the user directory service.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/pocketpay/instruments/internal/entity"
)

const (
	defaultTimeout      = 5 * time.Second
	defaultRetryMax     = 3
	defaultRetryWaitMax = 5 * time.Second
)

type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(baseURL string) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = defaultRetryMax
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = defaultTimeout

	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: baseURL,
	}
}

func (c *Client) User(ctx context.Context, id uuid.UUID) (entity.User, error) {
	reqURL := fmt.Sprintf("%s/api/internal/users/%s", c.baseURL, id)
	return c.getUser(ctx, reqURL)
}

func (c *Client) UserByUsername(ctx context.Context, username string) (entity.User, error) {
	reqURL := fmt.Sprintf("%s/api/internal/users?username=%s", c.baseURL, url.QueryEscape(username))
	return c.getUser(ctx, reqURL)
}

func (c *Client) getUser(ctx context.Context, reqURL string) (entity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.User{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	var user entity.User

	err = json.Unmarshal(body, &user)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	return user, nil
}
