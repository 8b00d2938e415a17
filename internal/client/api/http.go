package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

// HTTPClient talks to the user authority over JSON/HTTP.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	creds   *Credentials
	log     logging.Logger
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout bounds every request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithTransport replaces the round tripper (httptest servers, proxies).
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) { c.http.Transport = rt }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a client for the authority at baseURL. creds must not
// be nil; it receives the session cookie on login.
func NewHTTPClient(baseURL string, creds *Credentials, opts ...Option) (*HTTPClient, error) {
	if creds == nil {
		return nil, errors.New("api: nil credentials")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api: unsupported base url scheme %q", u.Scheme)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		creds:   creds,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Session queries GET /test with the session cookie.
func (c *HTTPClient) Session(ctx context.Context) (models.Session, error) {
	var s models.Session
	err := c.do(ctx, call{op: "session", method: http.MethodGet, path: "/test", credentialed: true}, &s)
	return s, err
}

// ListUsers fetches GET /getAllUsers. A null body yields an empty slice.
func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return c.directory(ctx, call{op: "list users", method: http.MethodGet, path: "/getAllUsers", credentialed: true})
}

// CreateUser posts the draft to /add-user and returns the server message.
func (c *HTTPClient) CreateUser(ctx context.Context, draft models.NewUser) (string, error) {
	var resp messageBody
	err := c.do(ctx, call{op: "create user", method: http.MethodPost, path: "/add-user", body: draft, credentialed: true}, &resp)
	return resp.Message, err
}

// UpdateUser sends PUT /user/{id} and returns the replacement Directory.
func (c *HTTPClient) UpdateUser(ctx context.Context, id string, patch models.UserPatch) ([]models.User, error) {
	return c.directory(ctx, call{op: "update user", method: http.MethodPut, path: "/user/" + url.PathEscape(id), body: patch, credentialed: true})
}

// DeleteUser sends DELETE /users/{id} and returns the replacement Directory.
func (c *HTTPClient) DeleteUser(ctx context.Context, id string) ([]models.User, error) {
	return c.directory(ctx, call{op: "delete user", method: http.MethodDelete, path: "/users/" + url.PathEscape(id), credentialed: true})
}

// Login posts form-encoded credentials to /login. The session cookie from
// the response is kept in Credentials.
func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	return c.do(ctx, call{op: "login", method: http.MethodPost, path: "/login", form: form}, nil)
}

// Signup posts to /signin and returns the server message.
func (c *HTTPClient) Signup(ctx context.Context, req models.Signup) (string, error) {
	var resp messageBody
	err := c.do(ctx, call{op: "signup", method: http.MethodPost, path: "/signin", body: req}, &resp)
	return resp.Message, err
}

// Logout asks the server to end the session and always forgets the local cookie.
func (c *HTTPClient) Logout(ctx context.Context) error {
	err := c.do(ctx, call{op: "logout", method: http.MethodPost, path: "/logout", credentialed: true}, nil)
	if clearErr := c.creds.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

type messageBody struct {
	Message string `json:"message"`
}

type call struct {
	op           string
	method       string
	path         string
	body         any
	form         url.Values
	credentialed bool
}

func (c *HTTPClient) directory(ctx context.Context, cl call) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, cl, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (c *HTTPClient) endpoint(path string) (*url.URL, error) {
	return url.Parse(c.baseURL.String() + path)
}

// do performs one request and decodes a 2xx body into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, cl call, out any) error {
	u, err := c.endpoint(cl.path)
	if err != nil {
		return fmt.Errorf("%s: build url: %w", cl.op, err)
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case cl.form != nil:
		body = strings.NewReader(cl.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case cl.body != nil:
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", cl.op, err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", cl.op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if cl.credentialed {
		for _, ck := range c.creds.Cookies(u) {
			req.AddCookie(ck)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "op", cl.op, logging.Err(err))
		return networkError(cl.op, err)
	}
	defer resp.Body.Close()

	c.creds.Store(u, resp.Cookies())

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return networkError(cl.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := statusError(cl.op, resp.StatusCode, data)
		c.log.Debug(ctx, "request rejected", "op", cl.op, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		if out != nil && requiresBody(out) {
			return decodeError(cl.op, resp.StatusCode, io.ErrUnexpectedEOF)
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return decodeError(cl.op, resp.StatusCode, err)
	}
	return nil
}

// requiresBody reports whether an empty 2xx body is a protocol violation
// for the given destination. Directory responses must carry a list.
func requiresBody(out any) bool {
	_, ok := out.(*[]models.User)
	return ok
}
