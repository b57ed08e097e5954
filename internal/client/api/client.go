// Package api implements the HTTP client for the Taskify REST API.
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

	"github.com/dmitrijs2005/taskify/internal/common"
	"github.com/dmitrijs2005/taskify/internal/server/models"
	"github.com/dmitrijs2005/taskify/internal/server/rest"
)

// ErrNoSession is returned by task calls made before a successful login.
var ErrNoSession = errors.New("not logged in")

// Client talks to a Taskify server. It keeps the bearer token obtained by
// Register or Login and attaches it to every subsequent task request.
// Client is not safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// LoggedIn reports whether the client holds a session token.
func (c *Client) LoggedIn() bool {
	return c.token != ""
}

// Logout drops the session token.
func (c *Client) Logout() {
	c.token = ""
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	in := rest.RegisterIn{Name: name, Email: email, Password: password}
	var out rest.AuthOut
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	in := rest.LoginIn{Email: email, Password: password}
	var out rest.AuthOut
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", in, &out); err != nil {
		return nil, err
	}
	c.token = out.Token
	return &out.User, nil
}

// ListTasks returns the user's tasks, newest first. An empty category
// returns all tasks.
func (c *Client) ListTasks(ctx context.Context, category string) ([]*models.Task, error) {
	if !c.LoggedIn() {
		return nil, ErrNoSession
	}
	path := "/api/v1/tasks"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out []*models.Task
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, title, description, category string) (*models.Task, error) {
	if !c.LoggedIn() {
		return nil, ErrNoSession
	}
	in := rest.CreateTaskIn{Title: title, Description: description, Category: category}
	var out models.Task
	if err := c.do(ctx, http.MethodPost, "/api/v1/tasks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch rest.PatchTaskIn) (*models.Task, error) {
	if !c.LoggedIn() {
		return nil, ErrNoSession
	}
	var out models.Task
	if err := c.do(ctx, http.MethodPatch, "/api/v1/tasks/"+url.PathEscape(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if !c.LoggedIn() {
		return ErrNoSession
	}
	return c.do(ctx, http.MethodDelete, "/api/v1/tasks/"+url.PathEscape(id), nil, nil)
}

// errorBody matches the server's error envelope.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError converts an error response into a sentinel where the status code
// has a clear meaning, so callers can branch with errors.Is.
func (c *Client) apiError(resp *http.Response) error {
	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)
	if eb.Message == "" {
		eb.Message = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", common.ErrorUnauthorized, eb.Message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrorNotFound, eb.Message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", common.ErrDuplicateEmail, eb.Message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", common.ErrValidation, eb.Message)
	default:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, eb.Message)
	}
}
