package dao

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const statusSuccess = "success"

var (
	ErrUnreachable = errors.New("school api is unreachable")
	ErrNoData      = errors.New("school api returned no data")
	ErrMalformed   = errors.New("school api returned malformed data")
)

// APIError is a response from the school API that is not a success
// envelope. Message is the server-provided message, possibly empty.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("school api responded %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}

	return fmt.Sprintf("school api responded %d (%s)", e.StatusCode, e.Status)
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks JSON to the school API.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
}

func NewClient(baseURL string, headers map[string]string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do sends the request and decodes the envelope. Any non-success envelope
// or non-2xx status is returned as *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return envelope{}, fmt.Errorf("json.Marshal -> %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return envelope{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, fmt.Errorf("%w: reading body: %w", ErrUnreachable, err)
	}

	var env envelope
	if len(raw) > 0 {
		// A body that is not an envelope still yields an APIError below.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.Status != statusSuccess {
		return envelope{}, &APIError{
			StatusCode: resp.StatusCode,
			Status:     env.Status,
			Message:    env.Message,
		}
	}

	return env, nil
}

// Text accepts a JSON string, number or null. The school API is not
// consistent about ids and postal codes.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("dao.Text: %s is neither string nor number", b)
	}
	*t = Text(n.String())

	return nil
}
