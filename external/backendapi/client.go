// Package backendapi wraps the education platform's REST backend. Every call is
// a plain request/response round trip; the backend stays the single source of
// truth for prices, availability and computed fields.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	client  *http.Client
}

// New builds a client for the given base URL (no trailing slash needed).
func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = os.Getenv("BACKEND_API_URL")
	}
	if baseURL == "" {
		return nil, errors.New("BACKEND_API_URL not set")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type apiError struct {
	Message string `json:"message"`
	Error_  string `json:"error"`
}

// doJSON issues one request and decodes the JSON reply into out (may be nil).
// bearer, query and body are all optional.
func (c *Client) doJSON(ctx context.Context, method, path string, q url.Values, body interface{}, bearer string, out interface{}) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var rd *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewBuffer(b)
	} else {
		rd = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var ae apiError
		if derr := json.NewDecoder(resp.Body).Decode(&ae); derr == nil {
			if ae.Error_ != "" {
				return fmt.Errorf("backend %s %s: %s", method, path, ae.Error_)
			}
			if ae.Message != "" {
				return fmt.Errorf("backend %s %s: %s", method, path, ae.Message)
			}
		}
		return fmt.Errorf("backend %s %s: %s", method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
