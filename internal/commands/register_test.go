package commands_test

import (
	"testing"

	"roster/internal/commands"
	"roster/internal/exitcode"
	"roster/internal/service"
	"roster/internal/testutil"
)

func TestRegisterCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.RegisterCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"ada@example.com", "hunter2", "Ada", "Lovelace"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if stdout != "registered, verify your email before logging in\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestRegisterCommand_MissingArgs(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.RegisterCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"ada@example.com"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: email, password, first name and last name required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestForgotPasswordCommand(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ForgotPasswordCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{"ada@example.com"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "reset email sent\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestResetPasswordCommand_Rejections(t *testing.T) {
	cases := []struct {
		reason  string
		message string
	}{
		{service.ReasonResetLinkInvalid, "error: reset link is invalid or has expired\n"},
		{service.ReasonPasswordReused, "error: new password must differ from the previous one\n"},
	}

	for _, tc := range cases {
		svc := testutil.NewFakeService()
		svc.ResetPasswordErr = &service.Error{Status: 400, Reason: tc.reason}

		cmd := &commands.ResetPasswordCmd{}
		_, stderr, code := runCommand(t, cmd, svc, []string{"reset-token", "newpass"}, false)

		if code != exitcode.UserError {
			t.Errorf("%s: expected exit code %d, got %d", tc.reason, exitcode.UserError, code)
		}
		if stderr != tc.message {
			t.Errorf("%s: expected %q, got %q", tc.reason, tc.message, stderr)
		}
	}
}

func TestResetPasswordCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.ResetPasswordCmd{}
	stdout, _, code := runCommand(t, cmd, svc, []string{"reset-token", "newpass"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
}
