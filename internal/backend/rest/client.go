// Package rest implements the service.Service interface over the backend's
// REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"roster/internal/config"
	"roster/internal/guard"
	"roster/internal/service"
	"roster/internal/token"
)

const (
	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	// maxGetAttempts bounds retries for idempotent reads.
	maxGetAttempts = 3

	// retryDelay is the pause between retry attempts.
	retryDelay = 250 * time.Millisecond
)

// Client implements service.Service against the REST backend. One instance is
// constructed per process; every call, authenticated or not, passes through
// the same session guard.
type Client struct {
	baseURL string
	authed  *http.Client // bearer token attached per request
	plain   *http.Client // auth endpoints, no token
	tokens  token.Store
	logger  *slog.Logger
}

// New creates the shared backend client. The guard transport is registered
// once here and shared by both the authenticated and unauthenticated paths.
func New(cfg *config.Config, tokens token.Store, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	g := guard.New(nil, tokens, logger)
	return &Client{
		baseURL: cfg.BaseURL,
		authed: &http.Client{
			Transport: &oauth2.Transport{
				Source: &storeSource{tokens: tokens},
				Base:   g,
			},
		},
		plain:  &http.Client{Transport: g},
		tokens: tokens,
		logger: logger,
	}
}

// storeSource adapts the token store to oauth2.TokenSource. The store is read
// on every request so a token saved or removed mid-session takes effect
// immediately.
type storeSource struct {
	tokens token.Store
}

func (s *storeSource) Token() (*oauth2.Token, error) {
	tok := s.tokens.Read()
	if tok == "" {
		return nil, service.ErrNoToken
	}
	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}

// Login implements service.Service.
func (c *Client) Login(ctx context.Context, email, password string) (service.AuthResponse, error) {
	var resp service.AuthResponse
	body := map[string]string{"email": email, "password": password}
	err := c.do(ctx, c.plain, http.MethodPost, "auth/login", body, &resp)
	return resp, err
}

// Register implements service.Service.
func (c *Client) Register(ctx context.Context, in service.RegisterInput) (service.MessageResponse, error) {
	var resp service.MessageResponse
	err := c.do(ctx, c.plain, http.MethodPost, "auth/register", in, &resp)
	return resp, err
}

// ForgotPassword implements service.Service.
func (c *Client) ForgotPassword(ctx context.Context, email string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	body := map[string]string{"email": email}
	err := c.do(ctx, c.plain, http.MethodPost, "auth/forgot_password", body, &resp)
	return resp, err
}

// ResetPassword implements service.Service.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	body := map[string]string{"password": password}
	err := c.do(ctx, c.plain, http.MethodPost, "auth/reset_password/"+resetToken, body, &resp)
	return resp, err
}

// MyUser implements service.Service.
func (c *Client) MyUser(ctx context.Context) (service.UserResponse, error) {
	var resp service.UserResponse
	err := c.get(ctx, "user/my_user", &resp)
	return resp, err
}

// AllTasks implements service.Service.
func (c *Client) AllTasks(ctx context.Context) (service.TasksResponse, error) {
	var resp service.TasksResponse
	err := c.get(ctx, "tasks/all_tasks", &resp)
	return resp, err
}

// AllAssignments implements service.Service.
func (c *Client) AllAssignments(ctx context.Context) (service.TasksResponse, error) {
	var resp service.TasksResponse
	err := c.get(ctx, "tasks/coordinator/all_assignments", &resp)
	return resp, err
}

// AllUsers implements service.Service.
func (c *Client) AllUsers(ctx context.Context) (service.UsersResponse, error) {
	var resp service.UsersResponse
	err := c.get(ctx, "tasks/coordinator/all_users", &resp)
	return resp, err
}

// MyTasks implements service.Service.
func (c *Client) MyTasks(ctx context.Context) (service.UserTasksResponse, error) {
	var resp service.UserTasksResponse
	err := c.get(ctx, "tasks/user/my_tasks", &resp)
	return resp, err
}

// MyPendingTasks implements service.Service.
func (c *Client) MyPendingTasks(ctx context.Context) (service.PendingTasksResponse, error) {
	var resp service.PendingTasksResponse
	err := c.get(ctx, "tasks/my_pending_tasks", &resp)
	return resp, err
}

// CreateTask implements service.Service.
func (c *Client) CreateTask(ctx context.Context, in service.TaskInput) (service.MessageResponse, error) {
	var resp service.MessageResponse
	err := c.do(ctx, c.authed, http.MethodPost, "tasks/coordinator/create", in, &resp)
	return resp, err
}

// UpdateTask implements service.Service.
func (c *Client) UpdateTask(ctx context.Context, taskID string, in service.TaskInput) (service.MessageResponse, error) {
	var resp service.MessageResponse
	err := c.do(ctx, c.authed, http.MethodPatch, "tasks/coordinator/update_task/"+taskID, in, &resp)
	return resp, err
}

// DeleteTask implements service.Service.
func (c *Client) DeleteTask(ctx context.Context, taskID string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	err := c.do(ctx, c.authed, http.MethodDelete, "tasks/coordinator/delete_task/"+taskID, nil, &resp)
	return resp, err
}

// AssignTask implements service.Service.
func (c *Client) AssignTask(ctx context.Context, assigneeID, taskID string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	body := map[string]string{"assignee_id": assigneeID, "task_id": taskID}
	err := c.do(ctx, c.authed, http.MethodPost, "tasks/coordinator/assign", body, &resp)
	return resp, err
}

// UpdateAssignment implements service.Service.
func (c *Client) UpdateAssignment(ctx context.Context, assignmentID, assigneeID string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	body := map[string]string{"assignee_id": assigneeID}
	err := c.do(ctx, c.authed, http.MethodPatch, "tasks/coordinator/update_assignment/"+assignmentID, body, &resp)
	return resp, err
}

// DeleteAssignment implements service.Service.
func (c *Client) DeleteAssignment(ctx context.Context, assignmentID string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	err := c.do(ctx, c.authed, http.MethodDelete, "tasks/coordinator/delete_assignment/"+assignmentID, nil, &resp)
	return resp, err
}

// SignupTask implements service.Service.
func (c *Client) SignupTask(ctx context.Context, taskID string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	body := map[string]string{"task_id": taskID}
	err := c.do(ctx, c.authed, http.MethodPost, "tasks/user/signup", body, &resp)
	return resp, err
}

// DropTask implements service.Service.
func (c *Client) DropTask(ctx context.Context, assignmentID string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	err := c.do(ctx, c.authed, http.MethodDelete, "tasks/user/drop_task/"+assignmentID, nil, &resp)
	return resp, err
}

// UpdateStatus implements service.Service.
func (c *Client) UpdateStatus(ctx context.Context, assignmentID string, status service.AssignmentStatus) (service.MessageResponse, error) {
	var resp service.MessageResponse
	body := map[string]string{"status": string(status)}
	err := c.do(ctx, c.authed, http.MethodPatch, "tasks/update_status/"+assignmentID, body, &resp)
	return resp, err
}

// UpdateFirstName implements service.Service.
func (c *Client) UpdateFirstName(ctx context.Context, firstName string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	body := map[string]string{"first_name": firstName}
	err := c.do(ctx, c.authed, http.MethodPatch, "user/update_first_name", body, &resp)
	return resp, err
}

// UpdateLastName implements service.Service.
func (c *Client) UpdateLastName(ctx context.Context, lastName string) (service.MessageResponse, error) {
	var resp service.MessageResponse
	body := map[string]string{"last_name": lastName}
	err := c.do(ctx, c.authed, http.MethodPatch, "user/update_last_name", body, &resp)
	return resp, err
}

// DeleteAccount implements service.Service.
func (c *Client) DeleteAccount(ctx context.Context) (service.MessageResponse, error) {
	var resp service.MessageResponse
	err := c.do(ctx, c.authed, http.MethodDelete, "user/delete_user", nil, &resp)
	return resp, err
}

// get performs an authenticated idempotent read with bounded retries for
// transient failures.
func (c *Client) get(ctx context.Context, path string, out any) error {
	var err error
	for attempt := 1; attempt <= maxGetAttempts; attempt++ {
		err = c.do(ctx, c.authed, http.MethodGet, path, nil, out)
		if !isRetryable(err) {
			return err
		}
		c.logger.Debug("retrying read",
			slog.String("path", path),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return err
		}
	}
	return err
}

// isRetryable reports whether err is a transient transport or gateway
// failure worth retrying on an idempotent read.
func isRetryable(err error) bool {
	if err == nil || errors.Is(err, service.ErrNoToken) || errors.Is(err, context.Canceled) {
		return false
	}
	if apiErr := service.AsError(err); apiErr != nil {
		switch apiErr.Status {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	// Transport-level failure.
	return true
}

// do performs one round trip: JSON in, JSON out. Non-2xx responses are
// returned as *service.Error carrying the backend's reason string; transport
// failures are wrapped generically.
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := hc.Do(req)
	if err != nil {
		if errors.Is(err, service.ErrNoToken) {
			return service.ErrNoToken
		}
		c.logger.Debug("request failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("unknown error occurred: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("unknown error occurred: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		// A non-JSON error body still yields a usable status-only error.
		_ = json.Unmarshal(data, &payload)
		return &service.Error{Status: resp.StatusCode, Reason: payload.Error}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
