package state

import (
	"context"
	"log/slog"

	"roster/internal/service"
	"roster/internal/token"
)

// UserTasksProvider owns the signed-in member's assignment list. It also
// tracks a loading flag so consumers can gate rendering on the first fetch.
type UserTasksProvider struct {
	svc       service.Service
	tokens    token.Store
	log       *slog.Logger
	g         gate
	userTasks []service.UserTask
	loading   bool
}

// NewUserTasksProvider creates an empty provider in the loading state.
func NewUserTasksProvider(svc service.Service, tokens token.Store, log *slog.Logger) *UserTasksProvider {
	return &UserTasksProvider{svc: svc, tokens: tokens, log: logger(log), loading: true}
}

// Snapshot returns the last fetched assignment list.
func (p *UserTasksProvider) Snapshot() []service.UserTask {
	p.g.mu.RLock()
	defer p.g.mu.RUnlock()
	out := make([]service.UserTask, len(p.userTasks))
	copy(out, p.userTasks)
	return out
}

// Loading reports whether the first fetch has completed. It starts true and
// goes false after any fetch attempt, successful or not.
func (p *UserTasksProvider) Loading() bool {
	p.g.mu.RLock()
	defer p.g.mu.RUnlock()
	return p.loading
}

// Fetch refreshes the member's assignments. With no stored token the fetch is
// skipped, but the loading flag still clears.
func (p *UserTasksProvider) Fetch(ctx context.Context) {
	defer func() {
		p.g.mu.Lock()
		p.loading = false
		p.g.mu.Unlock()
	}()

	if p.tokens.Read() == "" {
		return
	}
	gen := p.g.begin()

	resp, err := p.svc.MyTasks(ctx)
	if err != nil {
		p.log.Error("failed to fetch user tasks", slog.String("error", err.Error()))
		return
	}
	if resp.Message != service.MsgUserTasksRetrieved {
		p.log.Warn("unexpected user tasks response message", slog.String("message", resp.Message))
		return
	}

	if !p.g.commit(gen, func() { p.userTasks = resp.UserTasks }) {
		p.log.Debug("discarding stale user task list")
	}
}
