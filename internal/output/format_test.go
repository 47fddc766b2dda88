package output_test

import (
	"bytes"
	"testing"

	"roster/internal/output"
	"roster/internal/service"
	"roster/internal/testutil"
)

func intPtr(n int) *int { return &n }

func TestFormatTaskSnapshot(t *testing.T) {
	snap := service.TaskSnapshot{
		Tasks: map[string]service.Task{
			"5": {
				TaskName:        "Clean kitchen",
				StartTime:       "2025-03-01T09:00:00",
				EndTime:         "2025-03-01T10:00:00",
				MaxParticipants: intPtr(2),
				Users: []service.AssignedUser{
					{UserID: "u2", FirstName: "Grace", LastName: "Hopper", AssignmentID: "41"},
					{UserID: "u3", FirstName: "Alan", LastName: "Turing", AssignmentID: "42"},
				},
			},
			"12": {
				StartTime: "2025-03-02T09:00:00",
				EndTime:   "2025-03-02T11:00:00",
			},
		},
		// "99" has no record and must be skipped.
		SortedTasks: []string{"5", "99", "12"},
	}

	var buf bytes.Buffer
	output.FormatTaskSnapshot(&buf, snap)

	testutil.GoldenString(t, "task_snapshot", buf.String())
}

func TestFormatTask_NewlinesInName(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, "7", service.Task{
		TaskName:  "Fix\r\nthe sink",
		StartTime: "a",
		EndTime:   "b",
	})

	want := "     7  Fix  the sink  a - b  (-)\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatUserTask(t *testing.T) {
	var buf bytes.Buffer
	output.FormatUserTask(&buf, service.UserTask{
		AssignmentID: "41",
		TaskID:       "5",
		TaskName:     "Clean kitchen",
		StartTime:    "2025-03-01T09:00:00",
		EndTime:      "2025-03-01T10:00:00",
	})

	want := "    41  Clean kitchen  2025-03-01T09:00:00 - 2025-03-01T10:00:00\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatUser(t *testing.T) {
	var buf bytes.Buffer
	output.FormatUser(&buf, service.User{
		UserID:    "u2",
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Role:      service.RoleCoordinator,
	})

	want := "    u2  Grace Hopper  <grace@example.com>  Coordinator\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFormatHeader(t *testing.T) {
	var buf bytes.Buffer
	output.FormatHeader(&buf, "All tasks")

	testutil.GoldenString(t, "header", buf.String())
}
