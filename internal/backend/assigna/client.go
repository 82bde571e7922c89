// Package assigna implements the service.Service interface on top of the task-assignment API.
package assigna

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"assigna/internal/apiclient"
	"assigna/internal/config"
	"assigna/internal/credentials"
	"assigna/internal/metrics"
	"assigna/internal/service"
)

// Controllers the list operations are routed to.
const (
	LeadController   = "leadtasks"
	MemberController = "membertasks"
)

// Endpoint paths, relative to the base URL.
const (
	PathMembers    = "user/members"
	PathCategories = "category/categories"
	PathPriorities = "priority/priorities"

	PathAddTask    = LeadController + "/add-task"
	PathEditTask   = LeadController + "/edit-task"
	PathDeleteTask = LeadController + "/delete-task"
	PathSendRemind = LeadController + "/send-remind"

	PathWriteNote = MemberController + "/write-note"
	PathMarkDone  = MemberController + "/mark-done"
)

// Client implements service.Service using the task-assignment API.
type Client struct {
	auth   *apiclient.AuthClient
	exec   *apiclient.Executor
	store  *credentials.Store
	logger *slog.Logger
}

// New creates a client for the configured base URL. Tokens are read from and
// written to store.
func New(cfg *config.Config, store *credentials.Store, logger *slog.Logger, m *metrics.Metrics) (*Client, error) {
	return NewWithHTTPClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, store, logger, m)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client, store *credentials.Store, logger *slog.Logger, m *metrics.Metrics) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c, err := apiclient.NewWithHTTPClient(baseURL, httpClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}
	auth := apiclient.NewAuthClient(c, store)
	return &Client{
		auth:   auth,
		exec:   apiclient.NewExecutor(c, auth, store, m),
		store:  store,
		logger: logger.With("component", "tasks"),
	}, nil
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, r service.Registration) service.AuthResult {
	return c.auth.Register(ctx, r)
}

// Login authenticates and stores the token pair and role.
func (c *Client) Login(ctx context.Context, userName, password string) service.AuthResult {
	return c.auth.Login(ctx, userName, password)
}

// ForgotPassword requests a reset token.
func (c *Client) ForgotPassword(ctx context.Context, email string) service.AuthResult {
	return c.auth.ForgotPassword(ctx, email)
}

// ResetPassword sets a new password.
func (c *Client) ResetPassword(ctx context.Context, newPassword, confirmPassword, resetToken string) service.AuthResult {
	return c.auth.ResetPassword(ctx, newPassword, confirmPassword, resetToken)
}

func (c *Client) Role() string {
	return c.store.Role()
}

func (c *Client) ResetToken() string {
	return c.store.ResetToken()
}

func (c *Client) TokenExpiry() time.Time {
	return c.store.Token().Expiry
}

// controller picks the route prefix for list operations. Anything other than
// the lead role goes to the member controller.
func (c *Client) controller() string {
	if c.store.Role() == service.RoleLead {
		return LeadController
	}
	return MemberController
}

func (c *Client) AllTasks(ctx context.Context) service.Result[[]service.Task] {
	return c.tasks(ctx, "tasks")
}

func (c *Client) Pendings(ctx context.Context) service.Result[[]service.Task] {
	return c.tasks(ctx, "pendings")
}

func (c *Client) Completed(ctx context.Context) service.Result[[]service.Task] {
	return c.tasks(ctx, "completes")
}

func (c *Client) HighPriority(ctx context.Context) service.Result[[]service.Task] {
	return c.tasks(ctx, "high-priority")
}

func (c *Client) MediumPriority(ctx context.Context) service.Result[[]service.Task] {
	return c.tasks(ctx, "medium-priority")
}

func (c *Client) LowPriority(ctx context.Context) service.Result[[]service.Task] {
	return c.tasks(ctx, "low-priority")
}

func (c *Client) tasks(ctx context.Context, endpoint string) service.Result[[]service.Task] {
	return list[service.Task](ctx, c, c.controller()+"/"+endpoint)
}

// LeadTaskInfo returns the details of one task as seen by a lead.
func (c *Client) LeadTaskInfo(ctx context.Context, taskID int) service.Result[[]service.Task] {
	return list[service.Task](ctx, c, taskInfoPath(LeadController, taskID))
}

// MemberTaskInfo returns the details of one task as seen by its assignee.
func (c *Client) MemberTaskInfo(ctx context.Context, taskID int) service.Result[[]service.Task] {
	return list[service.Task](ctx, c, taskInfoPath(MemberController, taskID))
}

func taskInfoPath(controller string, taskID int) string {
	return fmt.Sprintf("%s/task-info?taskid=%d", controller, taskID)
}

func (c *Client) TeamMembers(ctx context.Context) service.Result[[]service.Member] {
	return list[service.Member](ctx, c, PathMembers)
}

func (c *Client) AllCategories(ctx context.Context) service.Result[[]service.Category] {
	return list[service.Category](ctx, c, PathCategories)
}

func (c *Client) Priorities(ctx context.Context) service.Result[[]service.Priority] {
	return list[service.Priority](ctx, c, PathPriorities)
}

// SaveTask creates a task.
func (c *Client) SaveTask(ctx context.Context, t service.NewTask) service.Status {
	return c.post(ctx, PathAddTask, t)
}

// EditTask replaces a task's fields.
func (c *Client) EditTask(ctx context.Context, t service.TaskEdit) service.Status {
	return c.post(ctx, PathEditTask, t)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID int) service.Status {
	return c.post(ctx, PathDeleteTask, service.TaskRef{TaskID: taskID})
}

// SendRemind sends a reminder to the task's assignee.
func (c *Client) SendRemind(ctx context.Context, r service.Reminder) service.Status {
	return c.post(ctx, PathSendRemind, r)
}

// AddTaskNote attaches the assignee's note to a task.
func (c *Client) AddTaskNote(ctx context.Context, n service.Note) service.Status {
	return c.post(ctx, PathWriteNote, n)
}

// MarkAsDone completes a task.
func (c *Client) MarkAsDone(ctx context.Context, taskID int) service.Status {
	return c.post(ctx, PathMarkDone, service.TaskRef{TaskID: taskID})
}

func list[T any](ctx context.Context, c *Client, path string) (res service.Result[[]T]) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("request panicked", "path", path, "panic", r)
			res = service.InternalError[[]T]()
		}
	}()
	return apiclient.GetList[T](ctx, c.exec, path)
}

func (c *Client) post(ctx context.Context, path string, body any) (st service.Status) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("request panicked", "path", path, "panic", r)
			st = service.Status{Message: service.MsgInternalError}
		}
	}()
	return c.exec.Post(ctx, path, body)
}

var _ service.Service = (*Client)(nil)
