// Package service defines the backend-agnostic interface for roster operations.
package service

import "context"

// Service defines the interface for backend operations.
// All REST calls go through this interface.
// Commands never import the HTTP layer directly.
type Service interface {
	// Login authenticates with email and password.
	// The returned token is the caller's to persist.
	Login(ctx context.Context, email, password string) (AuthResponse, error)

	// Register creates a new account.
	Register(ctx context.Context, in RegisterInput) (MessageResponse, error)

	// ForgotPassword requests a password reset email.
	ForgotPassword(ctx context.Context, email string) (MessageResponse, error)

	// ResetPassword sets a new password using a reset token from email.
	ResetPassword(ctx context.Context, resetToken, password string) (MessageResponse, error)

	// MyUser returns the signed-in user's account data.
	MyUser(ctx context.Context) (UserResponse, error)

	// AllTasks returns every task (member view).
	AllTasks(ctx context.Context) (TasksResponse, error)

	// AllAssignments returns every task with its assigned users (coordinator view).
	AllAssignments(ctx context.Context) (TasksResponse, error)

	// AllUsers returns every registered user (coordinator view).
	AllUsers(ctx context.Context) (UsersResponse, error)

	// MyTasks returns the signed-in member's assignments.
	MyTasks(ctx context.Context) (UserTasksResponse, error)

	// MyPendingTasks returns the member's finished assignments still awaiting
	// a status confirmation.
	MyPendingTasks(ctx context.Context) (PendingTasksResponse, error)

	// CreateTask creates a task (coordinator).
	CreateTask(ctx context.Context, in TaskInput) (MessageResponse, error)

	// UpdateTask patches a task's fields (coordinator).
	UpdateTask(ctx context.Context, taskID string, in TaskInput) (MessageResponse, error)

	// DeleteTask removes a task and its assignments (coordinator).
	DeleteTask(ctx context.Context, taskID string) (MessageResponse, error)

	// AssignTask assigns a task to a user (coordinator).
	AssignTask(ctx context.Context, assigneeID, taskID string) (MessageResponse, error)

	// UpdateAssignment moves an assignment to a different user (coordinator).
	UpdateAssignment(ctx context.Context, assignmentID, assigneeID string) (MessageResponse, error)

	// DeleteAssignment removes an assignment (coordinator).
	DeleteAssignment(ctx context.Context, assignmentID string) (MessageResponse, error)

	// SignupTask signs the member up for a task.
	SignupTask(ctx context.Context, taskID string) (MessageResponse, error)

	// DropTask drops one of the member's assignments.
	DropTask(ctx context.Context, assignmentID string) (MessageResponse, error)

	// UpdateStatus updates an assignment's completion status.
	UpdateStatus(ctx context.Context, assignmentID string, status AssignmentStatus) (MessageResponse, error)

	// UpdateFirstName changes the signed-in user's first name.
	UpdateFirstName(ctx context.Context, firstName string) (MessageResponse, error)

	// UpdateLastName changes the signed-in user's last name.
	UpdateLastName(ctx context.Context, lastName string) (MessageResponse, error)

	// DeleteAccount deletes the signed-in user's account.
	DeleteAccount(ctx context.Context) (MessageResponse, error)
}
