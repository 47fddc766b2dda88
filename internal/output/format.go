// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"roster/internal/service"
)

const (
	// SectionSeparator is the separator line for section headers.
	SectionSeparator = "------------"
)

// FormatTaskSnapshot prints a task snapshot in its chronological display
// order. Task ids missing from the record map are skipped.
func FormatTaskSnapshot(w io.Writer, snap service.TaskSnapshot) {
	for _, id := range snap.SortedTasks {
		task, ok := snap.Tasks[id]
		if !ok {
			continue
		}
		FormatTask(w, id, task)
	}
}

// FormatTask formats one task line with its assigned users.
// Format: "{ID:>6}  {NAME}  {START} - {END}  ({n}/{max})\n"
func FormatTask(w io.Writer, id string, task service.Task) {
	name := normalizeName(task.TaskName)
	capacity := "-"
	if task.MaxParticipants != nil {
		capacity = fmt.Sprintf("%d/%d", len(task.Users), *task.MaxParticipants)
	}
	fmt.Fprintf(w, "%6s  %s  %s - %s  (%s)\n", id, name, task.StartTime, task.EndTime, capacity)
	for _, u := range task.Users {
		fmt.Fprintf(w, "        - %s %s [assignment %s]\n", u.FirstName, u.LastName, u.AssignmentID)
	}
}

// FormatUserTask formats one of the member's own assignments.
// Format: "{ASSIGNMENT_ID:>6}  {NAME}  {START} - {END}\n"
func FormatUserTask(w io.Writer, ut service.UserTask) {
	name := normalizeName(ut.TaskName)
	fmt.Fprintf(w, "%6s  %s  %s - %s\n", ut.AssignmentID, name, ut.StartTime, ut.EndTime)
}

// FormatUser formats one user line for the users command.
func FormatUser(w io.Writer, u service.User) {
	fmt.Fprintf(w, "%6s  %s %s  <%s>  %s\n", u.UserID, u.FirstName, u.LastName, u.Email, u.Role)
}

// FormatHeader formats a section header.
func FormatHeader(w io.Writer, title string) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, SectionSeparator)
}

// normalizeName normalizes a task name for display.
// - Empty or whitespace-only names become "(untitled)"
// - Newlines are replaced with spaces
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\n", " ")

	if strings.TrimSpace(name) == "" {
		return "(untitled)"
	}
	return name
}
