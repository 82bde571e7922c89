// Package service defines the backend-agnostic interface for auth and task operations.
package service

import (
	"context"
	"time"
)

// Service is everything the commands and the interactive session need.
// Commands never import the HTTP client directly.
type Service interface {
	Auth
	Tasks
}

// Auth covers the unauthenticated account calls. None of them return an
// error: failures are reported in the AuthResult.
type Auth interface {
	// Register creates an account.
	Register(ctx context.Context, r Registration) AuthResult

	// Login authenticates and stores the token pair and role on success.
	Login(ctx context.Context, userName, password string) AuthResult

	// ForgotPassword requests a reset token and stores it on success.
	ForgotPassword(ctx context.Context, email string) AuthResult

	// ResetPassword sets a new password using a reset token.
	ResetPassword(ctx context.Context, newPassword, confirmPassword, resetToken string) AuthResult

	// Role returns the role of the logged-in user ("" before login).
	Role() string

	// ResetToken returns the last reset token issued by ForgotPassword.
	ResetToken() string

	// TokenExpiry returns the access token expiry, zero if unknown.
	TokenExpiry() time.Time
}

// Tasks is the task operations facade. Every call carries the bearer token
// and recovers from a single 401/403 by refreshing.
type Tasks interface {
	// List operations are routed to the lead or member controller by role.
	AllTasks(ctx context.Context) Result[[]Task]
	Pendings(ctx context.Context) Result[[]Task]
	Completed(ctx context.Context) Result[[]Task]
	HighPriority(ctx context.Context) Result[[]Task]
	MediumPriority(ctx context.Context) Result[[]Task]
	LowPriority(ctx context.Context) Result[[]Task]

	LeadTaskInfo(ctx context.Context, taskID int) Result[[]Task]
	MemberTaskInfo(ctx context.Context, taskID int) Result[[]Task]

	TeamMembers(ctx context.Context) Result[[]Member]
	AllCategories(ctx context.Context) Result[[]Category]
	Priorities(ctx context.Context) Result[[]Priority]

	// Lead mutations.
	SaveTask(ctx context.Context, t NewTask) Status
	EditTask(ctx context.Context, t TaskEdit) Status
	DeleteTask(ctx context.Context, taskID int) Status
	SendRemind(ctx context.Context, r Reminder) Status

	// Member mutations.
	AddTaskNote(ctx context.Context, n Note) Status
	MarkAsDone(ctx context.Context, taskID int) Status
}
