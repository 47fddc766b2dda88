// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"roster/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu        sync.RWMutex
	tasks        map[string]service.Task
	sorted       []string
	users        []service.User
	userTasks    []service.UserTask
	pendingTasks []service.UserTask
	me           service.User
	nextID       int

	// AccessToken is returned by Login.
	AccessToken string

	// Error injection for testing
	LoginErr            error
	RegisterErr         error
	ForgotPasswordErr   error
	ResetPasswordErr    error
	MyUserErr           error
	AllTasksErr         error
	AllAssignmentsErr   error
	AllUsersErr         error
	MyTasksErr          error
	MyPendingTasksErr   error
	CreateTaskErr       error
	UpdateTaskErr       error
	DeleteTaskErr       error
	AssignTaskErr       error
	UpdateAssignmentErr error
	DeleteAssignmentErr error
	SignupTaskErr       error
	DropTaskErr         error
	UpdateStatusErr     error
	UpdateFirstNameErr  error
	UpdateLastNameErr   error
	DeleteAccountErr    error

	// Message overrides for testing the literal success-message contract.
	// Empty means the real backend message.
	AllTasksMsg       string
	AllAssignmentsMsg string
	AllUsersMsg       string
	MyTasksMsg        string
	MyPendingTasksMsg string
	MyUserMsg         string

	// Call counters
	AllTasksCalls       int
	AllAssignmentsCalls int
	AllUsersCalls       int
	MyTasksCalls        int
	MyPendingTasksCalls int
	MyUserCalls         int
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		tasks:       make(map[string]service.Task),
		AccessToken: "fake-token",
		me: service.User{
			UserID:    "u1",
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Role:      service.RoleUser,
		},
	}
}

// AddTask adds a task to the fake service in display order.
func (f *FakeService) AddTask(id string, task service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[id] = task
	f.sorted = append(f.sorted, id)
}

// AddUser adds a user to the fake service.
func (f *FakeService) AddUser(u service.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, u)
}

// AddUserTask adds an assignment row for the signed-in member.
func (f *FakeService) AddUserTask(ut service.UserTask) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userTasks = append(f.userTasks, ut)
}

// AddPendingTask adds an assignment awaiting the member's status confirmation.
func (f *FakeService) AddPendingTask(ut service.UserTask) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingTasks = append(f.pendingTasks, ut)
}

// SetMe sets the signed-in user's record.
func (f *FakeService) SetMe(u service.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.me = u
}

// Snapshot returns the current task snapshot.
func (f *FakeService) Snapshot() service.TaskSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	tasks := make(map[string]service.Task, len(f.tasks))
	for id, t := range f.tasks {
		tasks[id] = t
	}
	sorted := make([]string, len(f.sorted))
	copy(sorted, f.sorted)
	return service.TaskSnapshot{Tasks: tasks, SortedTasks: sorted}
}

func msgOr(override, real string) string {
	if override != "" {
		return override
	}
	return real
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, email, password string) (service.AuthResponse, error) {
	if f.LoginErr != nil {
		return service.AuthResponse{}, f.LoginErr
	}
	return service.AuthResponse{Message: service.MsgLogin, AccessToken: f.AccessToken}, nil
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, in service.RegisterInput) (service.MessageResponse, error) {
	if f.RegisterErr != nil {
		return service.MessageResponse{}, f.RegisterErr
	}
	return service.MessageResponse{Message: service.MsgRegister}, nil
}

// ForgotPassword implements service.Service.
func (f *FakeService) ForgotPassword(ctx context.Context, email string) (service.MessageResponse, error) {
	if f.ForgotPasswordErr != nil {
		return service.MessageResponse{}, f.ForgotPasswordErr
	}
	return service.MessageResponse{Message: service.MsgForgotPassword}, nil
}

// ResetPassword implements service.Service.
func (f *FakeService) ResetPassword(ctx context.Context, resetToken, password string) (service.MessageResponse, error) {
	if f.ResetPasswordErr != nil {
		return service.MessageResponse{}, f.ResetPasswordErr
	}
	return service.MessageResponse{Message: service.MsgResetPassword}, nil
}

// MyUser implements service.Service.
func (f *FakeService) MyUser(ctx context.Context) (service.UserResponse, error) {
	f.mu.Lock()
	f.MyUserCalls++
	f.mu.Unlock()
	if f.MyUserErr != nil {
		return service.UserResponse{}, f.MyUserErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return service.UserResponse{Message: msgOr(f.MyUserMsg, service.MsgUserRetrieved), User: f.me}, nil
}

// AllTasks implements service.Service.
func (f *FakeService) AllTasks(ctx context.Context) (service.TasksResponse, error) {
	f.mu.Lock()
	f.AllTasksCalls++
	f.mu.Unlock()
	if f.AllTasksErr != nil {
		return service.TasksResponse{}, f.AllTasksErr
	}
	return service.TasksResponse{
		Message:      msgOr(f.AllTasksMsg, service.MsgTasksRetrieved),
		TaskSnapshot: f.Snapshot(),
	}, nil
}

// AllAssignments implements service.Service.
func (f *FakeService) AllAssignments(ctx context.Context) (service.TasksResponse, error) {
	f.mu.Lock()
	f.AllAssignmentsCalls++
	f.mu.Unlock()
	if f.AllAssignmentsErr != nil {
		return service.TasksResponse{}, f.AllAssignmentsErr
	}
	return service.TasksResponse{
		Message:      msgOr(f.AllAssignmentsMsg, service.MsgAssignmentsRetrieved),
		TaskSnapshot: f.Snapshot(),
	}, nil
}

// AllUsers implements service.Service.
func (f *FakeService) AllUsers(ctx context.Context) (service.UsersResponse, error) {
	f.mu.Lock()
	f.AllUsersCalls++
	f.mu.Unlock()
	if f.AllUsersErr != nil {
		return service.UsersResponse{}, f.AllUsersErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	users := make([]service.User, len(f.users))
	copy(users, f.users)
	return service.UsersResponse{Message: msgOr(f.AllUsersMsg, service.MsgUsersRetrieved), Users: users}, nil
}

// MyTasks implements service.Service.
func (f *FakeService) MyTasks(ctx context.Context) (service.UserTasksResponse, error) {
	f.mu.Lock()
	f.MyTasksCalls++
	f.mu.Unlock()
	if f.MyTasksErr != nil {
		return service.UserTasksResponse{}, f.MyTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	rows := make([]service.UserTask, len(f.userTasks))
	copy(rows, f.userTasks)
	return service.UserTasksResponse{Message: msgOr(f.MyTasksMsg, service.MsgUserTasksRetrieved), UserTasks: rows}, nil
}

// MyPendingTasks implements service.Service.
func (f *FakeService) MyPendingTasks(ctx context.Context) (service.PendingTasksResponse, error) {
	f.mu.Lock()
	f.MyPendingTasksCalls++
	f.mu.Unlock()
	if f.MyPendingTasksErr != nil {
		return service.PendingTasksResponse{}, f.MyPendingTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	rows := make([]service.UserTask, len(f.pendingTasks))
	copy(rows, f.pendingTasks)
	return service.PendingTasksResponse{Message: msgOr(f.MyPendingTasksMsg, service.MsgPendingTasksRetrieved), PendingTasks: rows}, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, in service.TaskInput) (service.MessageResponse, error) {
	if f.CreateTaskErr != nil {
		return service.MessageResponse{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("%d", f.nextID)
	f.tasks[id] = service.Task{
		TaskName:        in.TaskName,
		TaskType:        in.TaskType,
		Description:     in.Description,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		MaxParticipants: in.MaxParticipants,
	}
	f.sorted = append(f.sorted, id)
	return service.MessageResponse{Message: service.MsgTaskCreated}, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, taskID string, in service.TaskInput) (service.MessageResponse, error) {
	if f.UpdateTaskErr != nil {
		return service.MessageResponse{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[taskID]
	if !ok {
		return service.MessageResponse{}, &service.Error{Status: 404, Reason: "not found"}
	}
	if in.TaskName != "" {
		task.TaskName = in.TaskName
	}
	if in.TaskType != "" {
		task.TaskType = in.TaskType
	}
	if in.Description != "" {
		task.Description = in.Description
	}
	if in.StartTime != "" {
		task.StartTime = in.StartTime
	}
	if in.EndTime != "" {
		task.EndTime = in.EndTime
	}
	if in.MaxParticipants != nil {
		task.MaxParticipants = in.MaxParticipants
	}
	f.tasks[taskID] = task
	return service.MessageResponse{Message: service.MsgTaskUpdated}, nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, taskID string) (service.MessageResponse, error) {
	if f.DeleteTaskErr != nil {
		return service.MessageResponse{}, f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tasks[taskID]; !ok {
		return service.MessageResponse{}, &service.Error{Status: 404, Reason: "not found"}
	}
	delete(f.tasks, taskID)
	for i, id := range f.sorted {
		if id == taskID {
			f.sorted = append(f.sorted[:i], f.sorted[i+1:]...)
			break
		}
	}
	return service.MessageResponse{Message: service.MsgTaskDeleted}, nil
}

// AssignTask implements service.Service.
func (f *FakeService) AssignTask(ctx context.Context, assigneeID, taskID string) (service.MessageResponse, error) {
	if f.AssignTaskErr != nil {
		return service.MessageResponse{}, f.AssignTaskErr
	}
	return service.MessageResponse{Message: service.MsgAssignmentCreated}, nil
}

// UpdateAssignment implements service.Service.
func (f *FakeService) UpdateAssignment(ctx context.Context, assignmentID, assigneeID string) (service.MessageResponse, error) {
	if f.UpdateAssignmentErr != nil {
		return service.MessageResponse{}, f.UpdateAssignmentErr
	}
	return service.MessageResponse{Message: service.MsgAssignmentUpdated}, nil
}

// DeleteAssignment implements service.Service.
func (f *FakeService) DeleteAssignment(ctx context.Context, assignmentID string) (service.MessageResponse, error) {
	if f.DeleteAssignmentErr != nil {
		return service.MessageResponse{}, f.DeleteAssignmentErr
	}
	return service.MessageResponse{Message: service.MsgAssignmentDeleted}, nil
}

// SignupTask implements service.Service.
func (f *FakeService) SignupTask(ctx context.Context, taskID string) (service.MessageResponse, error) {
	if f.SignupTaskErr != nil {
		return service.MessageResponse{}, f.SignupTaskErr
	}
	return service.MessageResponse{Message: service.MsgAssignmentCreated}, nil
}

// DropTask implements service.Service.
func (f *FakeService) DropTask(ctx context.Context, assignmentID string) (service.MessageResponse, error) {
	if f.DropTaskErr != nil {
		return service.MessageResponse{}, f.DropTaskErr
	}
	return service.MessageResponse{Message: service.MsgTaskDropped}, nil
}

// UpdateStatus implements service.Service.
func (f *FakeService) UpdateStatus(ctx context.Context, assignmentID string, status service.AssignmentStatus) (service.MessageResponse, error) {
	if f.UpdateStatusErr != nil {
		return service.MessageResponse{}, f.UpdateStatusErr
	}
	return service.MessageResponse{Message: service.MsgStatusUpdated}, nil
}

// UpdateFirstName implements service.Service.
func (f *FakeService) UpdateFirstName(ctx context.Context, firstName string) (service.MessageResponse, error) {
	if f.UpdateFirstNameErr != nil {
		return service.MessageResponse{}, f.UpdateFirstNameErr
	}
	f.mu.Lock()
	f.me.FirstName = firstName
	f.mu.Unlock()
	return service.MessageResponse{Message: service.MsgFirstNameUpdated}, nil
}

// UpdateLastName implements service.Service.
func (f *FakeService) UpdateLastName(ctx context.Context, lastName string) (service.MessageResponse, error) {
	if f.UpdateLastNameErr != nil {
		return service.MessageResponse{}, f.UpdateLastNameErr
	}
	f.mu.Lock()
	f.me.LastName = lastName
	f.mu.Unlock()
	return service.MessageResponse{Message: service.MsgLastNameUpdated}, nil
}

// DeleteAccount implements service.Service.
func (f *FakeService) DeleteAccount(ctx context.Context) (service.MessageResponse, error) {
	if f.DeleteAccountErr != nil {
		return service.MessageResponse{}, f.DeleteAccountErr
	}
	return service.MessageResponse{Message: service.MsgAccountDeleted}, nil
}
