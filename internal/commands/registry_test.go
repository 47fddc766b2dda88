package commands_test

import (
	"testing"

	"roster/internal/commands"
)

func TestRegistry_FindByNameAndAlias(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.ListCmd{}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, ok := r.Find("list"); !ok {
		t.Error("expected to resolve primary name")
	}
	if _, ok := r.Find("ls"); !ok {
		t.Error("expected to resolve alias")
	}
	if _, ok := r.Find("nope"); ok {
		t.Error("resolved an unregistered verb")
	}
}

func TestRegistry_DuplicateVerbRejected(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.ListCmd{}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := r.Register(&commands.ListCmd{}); err == nil {
		t.Error("expected an error registering the same verb twice")
	}
}

func TestRegistry_AllSortedAndUnique(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.VersionCmd{}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := r.Register(&commands.ListCmd{}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(all))
	}
	// Aliases must not produce duplicates, and order is by primary name.
	if all[0].Name() != "list" || all[1].Name() != "version" {
		t.Errorf("unexpected order: %s, %s", all[0].Name(), all[1].Name())
	}
}
