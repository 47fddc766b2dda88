package service

// UserRole is the role assigned to an account.
type UserRole string

const (
	RoleUser        UserRole = "User"
	RoleCoordinator UserRole = "Coordinator"
)

// AssignmentStatus is the lifecycle state of an assignment.
type AssignmentStatus string

const (
	StatusPending     AssignmentStatus = "Pending"
	StatusCompleted   AssignmentStatus = "Completed"
	StatusIncompleted AssignmentStatus = "Incompleted"
)

// User represents an account as returned by the backend.
type User struct {
	UserID    string   `json:"user_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
}

// AssignedUser is a user entry inside a task record, carrying the
// assignment that links the user to the task.
type AssignedUser struct {
	UserID       string `json:"user_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	AssignmentID string `json:"assignment_id"`
}

// Task represents a single task record.
type Task struct {
	TaskName        string         `json:"task_name"`
	TaskType        string         `json:"task_type"`
	Description     string         `json:"description"`
	StartTime       string         `json:"start_time"`
	EndTime         string         `json:"end_time"`
	MaxParticipants *int           `json:"max_participants"`
	Users           []AssignedUser `json:"users"`
}

// TaskSnapshot is the full server-side task set: records keyed by task id
// plus the chronological display order. It is always replaced wholesale,
// never merged field by field.
type TaskSnapshot struct {
	Tasks       map[string]Task `json:"tasks"`
	SortedTasks []string        `json:"sorted_tasks"`
}

// UserTask is an assignment-centric row for the signed-in member.
type UserTask struct {
	AssignmentID    string `json:"assignment_id"`
	TaskID          string `json:"task_id"`
	TaskName        string `json:"task_name"`
	TaskType        string `json:"task_type"`
	Description     string `json:"description"`
	MaxParticipants *int   `json:"max_participants"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

// TaskInput carries the fields for creating or updating a task.
// Zero-valued fields are omitted on update.
type TaskInput struct {
	TaskName        string `json:"task_name,omitempty"`
	TaskType        string `json:"task_type,omitempty"`
	Description     string `json:"description,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	MaxParticipants *int   `json:"max_participants,omitempty"`
}

// RegisterInput carries the fields for account registration.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthResponse is the login response.
type AuthResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// MessageResponse is the response for mutations that only return a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TasksResponse is the all-tasks / all-assignments response. The same
// payload shape is pushed over the live update channel.
type TasksResponse struct {
	Message string `json:"message"`
	TaskSnapshot
}

// UsersResponse is the all-users response.
type UsersResponse struct {
	Message string `json:"message"`
	Users   []User `json:"users"`
}

// UserResponse is the own-user response.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UserTasksResponse is the member's own-assignments response.
type UserTasksResponse struct {
	Message   string     `json:"message"`
	UserTasks []UserTask `json:"user_tasks"`
}

// PendingTasksResponse lists the member's assignments whose tasks have ended
// but whose status has not been confirmed yet.
type PendingTasksResponse struct {
	Message      string     `json:"message"`
	PendingTasks []UserTask `json:"pending_tasks"`
}
