package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/schoolhub/core"
)

// ErrRequestFailed is the cause of every failed request, whatever went wrong.
var ErrRequestFailed = errors.New("request failed")

// RequestIDHeader is set on every request for log correlation.
const RequestIDHeader = "X-Request-ID"

// Resource describes a collection endpoint.
type Resource struct {
	// Path relative to the backend base URL, eg. "fee-settings".
	Path string
	// ListKey is the field holding the array in list responses, eg. "feeSettings".
	// Empty means the response body is the array itself.
	ListKey string
}

// RequestError describes a failed request. Its cause is always ErrRequestFailed.
type RequestError struct {
	Method     string
	URL        string
	RequestID  string
	StatusCode int // 0 on transport errors
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Cause() error { return ErrRequestFailed }

// Fields returns the request details for logging.
func (e *RequestError) Fields() core.Fields {
	return core.Fields{
		"method":     e.Method,
		"url":        e.URL,
		"request_id": e.RequestID,
		"status":     e.StatusCode,
	}
}

// Client talks to one collection endpoint. T is the persisted record, D the draft sent on writes.
type Client[T, D any] struct {
	resource Resource
	baseURL  string
	rest     *rest.Client
}

type ClientOption func(*http.Client)

// WithTransport replaces the HTTP transport, eg. for tests.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *http.Client) { c.Transport = rt }
}

func NewClient[T, D any](conf *core.Config, res Resource, opts ...ClientOption) *Client[T, D] {
	httpClient := &http.Client{Timeout: conf.Backend.Timeout}
	for _, opt := range opts {
		opt(httpClient)
	}
	return &Client[T, D]{
		resource: res,
		baseURL:  conf.Backend.BaseURL,
		rest:     &rest.Client{HTTPClient: httpClient},
	}
}

func (c *Client[T, D]) Resource() Resource { return c.resource }

func (c *Client[T, D]) url(key Key) string {
	u := c.baseURL + "/" + c.resource.Path
	if len(key) > 0 {
		u += "/" + key.Path()
	}
	return u
}

// send performs one request. When decode is set it receives the response body, and its
// error is reported like any other failure of the request.
func (c *Client[T, D]) send(ctx context.Context, method rest.Method, key Key, query map[string]string, body interface{}, decode func([]byte) error) error {
	reqID := uuid.New().String()
	req := rest.Request{
		Method:      method,
		BaseURL:     c.url(key),
		Headers:     map[string]string{"Accept": "application/json", RequestIDHeader: reqID},
		QueryParams: query,
	}
	reqErr := func(status int, err error) error {
		return &RequestError{Method: string(method), URL: req.BaseURL, RequestID: reqID, StatusCode: status, Err: err}
	}

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return reqErr(0, errors.Wrap(err, "encoding body"))
		}
		req.Body = b
		req.Headers["Content-Type"] = "application/json"
	}

	httpReq, err := rest.BuildRequestObject(req)
	if err != nil {
		return reqErr(0, err)
	}
	httpRes, err := c.rest.MakeRequest(httpReq.WithContext(ctx))
	if err != nil {
		return reqErr(0, err)
	}
	res, err := rest.BuildResponse(httpRes)
	if err != nil {
		return reqErr(0, errors.Wrap(err, "reading body"))
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return reqErr(res.StatusCode, nil)
	}
	if decode != nil {
		if err := decode([]byte(res.Body)); err != nil {
			return reqErr(0, err)
		}
	}
	return nil
}

// List fetches the whole collection.
func (c *Client[T, D]) List(ctx context.Context) ([]T, error) {
	return c.ListWith(ctx, nil)
}

// ListWith fetches the collection with extra query parameters.
func (c *Client[T, D]) ListWith(ctx context.Context, query map[string]string) ([]T, error) {
	var items []T
	err := c.send(ctx, rest.Get, nil, query, nil, func(body []byte) (err error) {
		items, err = decodeList[T](body, c.resource.ListKey)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single object living at the resource path (eg. a dashboard summary).
func (c *Client[T, D]) Get(ctx context.Context, query map[string]string) (T, error) {
	var obj T
	err := c.send(ctx, rest.Get, nil, query, nil, func(body []byte) error {
		return errors.Wrap(json.Unmarshal(body, &obj), "decoding body")
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return obj, nil
}

func (c *Client[T, D]) Create(ctx context.Context, draft D) error {
	return c.send(ctx, rest.Post, nil, nil, draft, nil)
}

func (c *Client[T, D]) Update(ctx context.Context, key Key, draft D) error {
	if key.IsZero() {
		return errors.Wrap(ErrRequestFailed, "update: empty key")
	}
	return c.send(ctx, rest.Put, key, nil, draft, nil)
}

func (c *Client[T, D]) Delete(ctx context.Context, key Key) error {
	if key.IsZero() {
		return errors.Wrap(ErrRequestFailed, "delete: empty key")
	}
	return c.send(ctx, rest.Delete, key, nil, nil, nil)
}

// decodeList extracts the array stored under listKey. A missing or null field yields an empty list.
func decodeList[T any](body []byte, listKey string) ([]T, error) {
	raw := json.RawMessage(body)
	if listKey != "" {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil {
			return nil, errors.Wrap(err, "decoding body")
		}
		raw = obj[listKey]
	}

	items := make([]T, 0)
	if len(raw) == 0 || string(raw) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrapf(err, "decoding %q", listKey)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}
