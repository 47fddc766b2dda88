package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"roster/internal/commands"
	"roster/internal/config"
	"roster/internal/exitcode"
	"roster/internal/service"
	"roster/internal/testutil"
)

func TestLoginCommand_StoresToken(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AccessToken = "session-token"

	cmd := &commands.LoginCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"ada@example.com", "hunter2"}, false)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr: %q)", exitcode.Success, code, stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
}

func TestLoginCommand_TokenWrittenToDisk(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AccessToken = "session-token"

	dir := t.TempDir()
	cfg := &config.Config{Dir: dir}

	cmd := &commands.LoginCmd{}
	_, _, code := runWith(t, cmd, cfg, svc, []string{"ada@example.com", "hunter2"})

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d", exitcode.Success, code)
	}

	data, err := os.ReadFile(filepath.Join(dir, config.TokenFile))
	if err != nil {
		t.Fatalf("token file not written: %v", err)
	}
	if string(data) != "session-token" {
		t.Errorf("expected token %q, got %q", "session-token", string(data))
	}
}

func TestLoginCommand_MissingArgs(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.LoginCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"ada@example.com"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: email and password required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestLoginCommand_Rejections(t *testing.T) {
	cases := []struct {
		reason  string
		message string
	}{
		{service.ReasonNoSuchAccount, "error: no account exists for that email\n"},
		{service.ReasonIncorrectPassword, "error: incorrect password\n"},
		{service.ReasonAccountNotVerified, "error: account not verified, check your email\n"},
	}

	for _, tc := range cases {
		svc := testutil.NewFakeService()
		svc.LoginErr = &service.Error{Status: 401, Reason: tc.reason}

		cmd := &commands.LoginCmd{}
		_, stderr, code := runCommand(t, cmd, svc, []string{"ada@example.com", "hunter2"}, false)

		if code != exitcode.AuthError {
			t.Errorf("%s: expected exit code %d, got %d", tc.reason, exitcode.AuthError, code)
		}
		if stderr != tc.message {
			t.Errorf("%s: expected %q, got %q", tc.reason, tc.message, stderr)
		}
	}
}

func TestLogoutCommand_RemovesToken(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, config.TokenFile)
	if err := os.WriteFile(tokenPath, []byte("session-token"), 0600); err != nil {
		t.Fatalf("failed to write token: %v", err)
	}

	cfg := &config.Config{Dir: dir}

	cmd := &commands.LogoutCmd{}
	stdout, _, code := runWith(t, cmd, cfg, nil, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout)
	}
	if _, err := os.Stat(tokenPath); !os.IsNotExist(err) {
		t.Error("token file should have been removed")
	}
}

func TestLogoutCommand_NotLoggedIn(t *testing.T) {
	cmd := &commands.LogoutCmd{}
	stdout, _, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "not logged in\n" {
		t.Errorf("expected %q, got %q", "not logged in\n", stdout)
	}
}

func TestDeleteAccountCommand_RemovesToken(t *testing.T) {
	svc := testutil.NewFakeService()

	dir := t.TempDir()
	tokenPath := filepath.Join(dir, config.TokenFile)
	if err := os.WriteFile(tokenPath, []byte("session-token"), 0600); err != nil {
		t.Fatalf("failed to write token: %v", err)
	}

	cfg := &config.Config{Dir: dir}

	cmd := &commands.DeleteAccountCmd{}
	setForce(t, cmd)
	_, _, code := runWith(t, cmd, cfg, svc, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if _, err := os.Stat(tokenPath); !os.IsNotExist(err) {
		t.Error("token file should have been removed with the account")
	}
}
