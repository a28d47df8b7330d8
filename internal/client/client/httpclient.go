package client

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

	"github.com/dmitrijs2005/gophtasks/internal/client/models"
	"github.com/dmitrijs2005/gophtasks/internal/common"
)

// ErrNotLoggedIn is returned by task calls made before Login.
var ErrNotLoggedIn = errors.New("not logged in")

type HTTPClient struct {
	baseURL     string
	http        *http.Client
	accessToken string
	userName    string
}

// NewHTTPClient builds a client for the API at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type credentials struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserName string `json:"username"`
}

type statusResponse struct {
	Message        string `json:"message"`
	DatabaseStatus string `json:"databaseStatus"`
}

type taskRequest struct {
	Text string `json:"text"`
}

type taskUpdatedResponse struct {
	Message string       `json:"message"`
	Task    *models.Task `json:"task"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// do sends body as JSON and decodes a 2xx answer into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, auth bool, body, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if auth {
		if c.accessToken == "" {
			return ErrNotLoggedIn
		}
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e errorResponse
		if data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); readErr == nil {
			if json.Unmarshal(data, &e) == nil && e.Error != "" {
				apiErr.Message = e.Error
			} else {
				apiErr.Message = strings.TrimSpace(string(data))
			}
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Ping reports the server's storage status.
func (c *HTTPClient) Ping(ctx context.Context) (string, error) {
	var res statusResponse
	if err := c.do(ctx, http.MethodGet, "/", false, nil, &res); err != nil {
		return "", err
	}
	return res.DatabaseStatus, nil
}

func (c *HTTPClient) Register(ctx context.Context, userName, password string) error {
	return c.do(ctx, http.MethodPost, "/register", false, credentials{UserName: userName, Password: password}, nil)
}

// Login authenticates and keeps the token for later calls.
func (c *HTTPClient) Login(ctx context.Context, userName, password string) error {
	var res loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", false, credentials{UserName: userName, Password: password}, &res); err != nil {
		return err
	}
	if res.Token == "" {
		return errors.New("server returned an empty token")
	}
	c.accessToken = res.Token
	c.userName = res.UserName
	if c.userName == "" {
		c.userName = userName
	}
	return nil
}

// Logout forgets the token. Tokens are stateless, so the server is not told.
func (c *HTTPClient) Logout() {
	c.accessToken = ""
	c.userName = ""
}

func (c *HTTPClient) IsLoggedIn() bool {
	return c.accessToken != ""
}

// UserName is the name of the logged-in user, or "".
func (c *HTTPClient) UserName() string {
	return c.userName
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]models.Task, error) {
	items := make([]models.Task, 0)
	if err := c.do(ctx, http.MethodGet, "/tasks", true, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, text string) (*models.Task, error) {
	var task models.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", true, taskRequest{Text: text}, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id, text string) (*models.Task, error) {
	var res taskUpdatedResponse
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), true, taskRequest{Text: text}, &res); err != nil {
		return nil, err
	}
	return res.Task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), true, nil, nil)
}
