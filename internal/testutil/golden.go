package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// goldenDir holds the recorded formatter output, one file per test case.
const goldenDir = "testdata"

// Golden compares got against the recorded output for name. Run the tests
// with GOLDEN_UPDATE set to re-record after an intentional format change.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := filepath.Join(goldenDir, name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		record(t, path, got)
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("no recorded output at %s (%v); got:\n%s", path, err, got)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("%s output changed\nrecorded:\n%s\ngot:\n%s", name, want, got)
	}
}

// GoldenString is Golden for string output.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()
	Golden(t, name, []byte(got))
}

func record(t *testing.T, path string, got []byte) {
	t.Helper()
	if err := os.MkdirAll(goldenDir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", goldenDir, err)
	}
	if err := os.WriteFile(path, got, 0644); err != nil {
		t.Fatalf("failed to record %s: %v", path, err)
	}
}
