package state

import (
	"context"
	"log/slog"

	"roster/internal/service"
	"roster/internal/token"
)

// TasksProvider owns the full task snapshot (coordinator assignments view).
// It is the target of the live update channel: pushed snapshots land here
// through Replace.
type TasksProvider struct {
	svc     service.Service
	tokens  token.Store
	log     *slog.Logger
	g       gate
	snap    service.TaskSnapshot
	updates chan struct{}
}

// NewTasksProvider creates an empty provider.
func NewTasksProvider(svc service.Service, tokens token.Store, log *slog.Logger) *TasksProvider {
	return &TasksProvider{
		svc:     svc,
		tokens:  tokens,
		log:     logger(log),
		updates: make(chan struct{}, 1),
	}
}

// Updates signals after each pushed snapshot lands. The channel is a
// coalescing wakeup, not a queue: consumers re-read Snapshot on receive.
func (p *TasksProvider) Updates() <-chan struct{} {
	return p.updates
}

// Snapshot returns the last fetched or pushed snapshot. The returned value is
// shared; callers must treat it as read-only.
func (p *TasksProvider) Snapshot() service.TaskSnapshot {
	p.g.mu.RLock()
	defer p.g.mu.RUnlock()
	return p.snap
}

// Fetch refreshes the snapshot from the backend. With no stored token it does
// nothing: redirecting is the session guard's job, not the provider's.
func (p *TasksProvider) Fetch(ctx context.Context) {
	if p.tokens.Read() == "" {
		return
	}
	gen := p.g.begin()

	resp, err := p.svc.AllAssignments(ctx)
	if err != nil {
		p.log.Error("failed to fetch tasks", slog.String("error", err.Error()))
		return
	}
	if resp.Message != service.MsgAssignmentsRetrieved {
		p.log.Warn("unexpected tasks response message", slog.String("message", resp.Message))
		return
	}

	if !p.g.commit(gen, func() { p.snap = resp.TaskSnapshot }) {
		p.log.Debug("discarding stale task snapshot")
	}
}

// Replace installs a server-pushed snapshot wholesale.
func (p *TasksProvider) Replace(snap service.TaskSnapshot) {
	p.g.force(func() { p.snap = snap })
	select {
	case p.updates <- struct{}{}:
	default:
	}
}
