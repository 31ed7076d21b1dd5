// Package client provides a typed Go client for the bucky REST API.
//
// A Client wraps a resty HTTP client preconfigured with the API base URL.
// Login stores the issued bearer token on the client, and every resource
// call after that authenticates with it automatically.
package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/buckylist/bucky/models"
)

const apiPrefix = "/api/v1.0"

// Config carries the settings needed to construct a Client.
type Config struct {
	// BaseURL is the server root, without the /api/v1.0 prefix.
	BaseURL string

	// Timeout bounds every request. Zero selects 15 seconds.
	Timeout time.Duration
}

// Client is a bucky API client. It is safe for concurrent use.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + apiPrefix).
		SetTimeout(cfg.Timeout)

	return &Client{http: cli}
}

// SetToken stores a bearer token for subsequent authenticated requests.
// Login calls it automatically.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) authRequest(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.Token())
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) (models.RegisterResponse, error) {
	var result models.RegisterResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{Username: username, Email: email, Password: password}).
		SetResult(&result).
		Post("/register")
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return result, nil
}

// Login verifies the credentials and stores the issued bearer token on the
// client for all subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	c.SetToken(result.Token)
	return result, nil
}

// CreateBucketList creates a bucketlist owned by the authenticated user.
func (c *Client) CreateBucketList(ctx context.Context, title, description string) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := c.authRequest(ctx).
		SetBody(models.BucketListCreateRequest{Title: title, Description: &description}).
		SetResult(&result).
		Post("/bucketlists")
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("create bucketlist request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

// BucketLists lists the caller's bucketlists. titleQuery filters by title
// substring when non-empty; limit caps the page size when positive.
func (c *Client) BucketLists(ctx context.Context, titleQuery string, limit int) ([]models.BucketList, error) {
	var result []models.BucketList

	req := c.authRequest(ctx).SetResult(&result)
	if titleQuery != "" {
		req.SetQueryParam("q", titleQuery)
	}
	if limit > 0 {
		req.SetQueryParam("limit", fmt.Sprintf("%d", limit))
	}

	resp, err := req.Get("/bucketlists")
	if err != nil {
		return nil, fmt.Errorf("list bucketlists request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// BucketList fetches one bucketlist with its items.
func (c *Client) BucketList(ctx context.Context, bucketlistID int64) (models.BucketList, error) {
	var result models.BucketList

	resp, err := c.authRequest(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/bucketlists/%d", bucketlistID))
	if err != nil {
		return models.BucketList{}, fmt.Errorf("get bucketlist request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.BucketList{}, err
	}

	return result, nil
}

// UpdateBucketList applies a partial update to an owned bucketlist.
func (c *Client) UpdateBucketList(ctx context.Context, bucketlistID int64, patch models.BucketListPatch) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := c.authRequest(ctx).
		SetBody(patch).
		SetResult(&result).
		Put(fmt.Sprintf("/bucketlists/%d", bucketlistID))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("update bucketlist request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

// DeleteBucketList removes an owned bucketlist together with its items.
func (c *Client) DeleteBucketList(ctx context.Context, bucketlistID int64) error {
	resp, err := c.authRequest(ctx).
		Delete(fmt.Sprintf("/bucketlists/%d", bucketlistID))
	if err != nil {
		return fmt.Errorf("delete bucketlist request: %w", err)
	}
	return mapAPIError(resp)
}

// CreateItem adds an item to a bucketlist owned by the authenticated user.
func (c *Client) CreateItem(ctx context.Context, bucketlistID int64, title, description string, status bool) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := c.authRequest(ctx).
		SetBody(models.ItemCreateRequest{Title: title, Description: &description, Status: status}).
		SetResult(&result).
		Post(fmt.Sprintf("/bucketlists/%d/items", bucketlistID))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

// Items lists the items of a bucketlist.
func (c *Client) Items(ctx context.Context, bucketlistID int64) ([]models.Item, error) {
	var result []models.Item

	resp, err := c.authRequest(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/bucketlists/%d/items", bucketlistID))
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// Item fetches one item of a bucketlist.
func (c *Client) Item(ctx context.Context, bucketlistID, itemID int64) (models.Item, error) {
	var result models.Item

	resp, err := c.authRequest(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/bucketlists/%d/items/%d", bucketlistID, itemID))
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.Item{}, err
	}

	return result, nil
}

// UpdateItem applies a partial update to an item in an owned bucketlist.
func (c *Client) UpdateItem(ctx context.Context, bucketlistID, itemID int64, patch models.ItemPatch) (models.MessageResponse, error) {
	var result models.MessageResponse

	resp, err := c.authRequest(ctx).
		SetBody(patch).
		SetResult(&result).
		Put(fmt.Sprintf("/bucketlists/%d/items/%d", bucketlistID, itemID))
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.MessageResponse{}, err
	}

	return result, nil
}

// DeleteItem removes an item from an owned bucketlist.
func (c *Client) DeleteItem(ctx context.Context, bucketlistID, itemID int64) error {
	resp, err := c.authRequest(ctx).
		Delete(fmt.Sprintf("/bucketlists/%d/items/%d", bucketlistID, itemID))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}
	return mapAPIError(resp)
}
