// Package backend is the REST client for the listing backend. The composer
// treats that service as an external collaborator: it uploads images there,
// creates listings there, and reads the acting user's profile from it.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client wraps a shared resty client. Auth is per-call: every request forwards
// the bearer token of the user driving the composer session.
type Client struct {
	http *resty.Client
}

// Profile is the slice of GET /auth/me the composer cares about.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type uploadImageResponse struct {
	ImageURL string `json:"image_url"`
}

// NewClient builds the shared outbound client. Timeout covers the whole
// request including the multipart body; the backend sets no keep-alive
// expectations beyond transport defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "rentify-composer/1.0")

	return &Client{http: httpClient}
}

// Me fetches the acting user's profile for contact pre-fill.
func (c *Client) Me(ctx context.Context, token string) (*Profile, error) {
	var profile Profile

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&profile).
		Get("/auth/me")
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	if resp.IsError() {
		return nil, newAPIError(resp)
	}

	return &profile, nil
}

// UploadImage sends one file as multipart form content under field "file" and
// returns the URL the backend stored it at. Any non-success response is an
// upload failure for that file alone.
func (c *Client) UploadImage(ctx context.Context, token, filename, contentType string, r io.Reader) (string, error) {
	var result uploadImageResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetMultipartField("file", filename, contentType, r).
		SetResult(&result).
		Post("/upload-image")
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if resp.IsError() {
		return "", newAPIError(resp)
	}
	if result.ImageURL == "" {
		return "", fmt.Errorf("upload %s: backend returned no image_url", filename)
	}

	return result.ImageURL, nil
}

// CreateListing posts the serialized draft. On success the raw created-listing
// body is returned for the caller to pass through; the composer itself does
// not interpret it. On rejection the backend's detail string rides on the
// returned *APIError.
func (c *Client) CreateListing(ctx context.Context, token string, payload any) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/properties")
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	if resp.IsError() {
		return nil, newAPIError(resp)
	}

	return json.RawMessage(resp.Body()), nil
}
