package api

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"

	apperrors "github.com/alpha-154/chatsync/pkg/errors"
)

// Client wraps the platform's REST API. REST is the system of record for
// every entity; the realtime channel only mirrors what these endpoints would
// eventually reflect.
//
// Auth is an opaque access-token cookie set by the login endpoint; the cookie
// jar carries it on every subsequent call.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	jar, _ := cookiejar.New(nil)
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json")
	return &Client{http: httpClient}
}

// errorBody is the shape every API failure response carries.
type errorBody struct {
	Message string `json:"message"`
}

// wrap normalizes a resty outcome into the client error taxonomy.
// Transport failures are Network, 404 is NotFound (safe to treat as already
// resolved), any other non-2xx is Server with the API's message.
func wrap(resp *resty.Response, err error) error {
	if err != nil {
		return apperrors.Network(err.Error())
	}
	if resp.IsSuccess() {
		return nil
	}
	msg := "Something went wrong. Please try again later."
	if body, ok := resp.Error().(*errorBody); ok && body != nil && body.Message != "" {
		msg = body.Message
	}
	if resp.StatusCode() == http.StatusNotFound {
		return apperrors.NotFound(msg)
	}
	return apperrors.Server(msg)
}

func (c *Client) newRequest(result any) *resty.Request {
	req := c.http.R().SetError(&errorBody{})
	if result != nil {
		req.SetResult(result)
	}
	return req
}
