package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-success response from the listing backend. Detail carries
// the backend's own message ({"detail": "..."}) when one was decodable and is
// surfaced to the user verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend responded with status %d", e.StatusCode)
}

// Temporary reports whether the failure looks like a backend outage rather
// than a rejection of the request itself.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

func newAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		apiErr.Detail = body.Detail
	}

	return apiErr
}

// Detail extracts the user-facing message from an error chain: the backend's
// detail when present, else the fallback.
func Detail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
