package state

import (
	"context"
	"log/slog"

	"roster/internal/service"
	"roster/internal/token"
)

// UsersProvider owns the registered-user list (coordinator view).
type UsersProvider struct {
	svc    service.Service
	tokens token.Store
	log    *slog.Logger
	g      gate
	users  []service.User
}

// NewUsersProvider creates an empty provider.
func NewUsersProvider(svc service.Service, tokens token.Store, log *slog.Logger) *UsersProvider {
	return &UsersProvider{svc: svc, tokens: tokens, log: logger(log)}
}

// Snapshot returns the last fetched user list.
func (p *UsersProvider) Snapshot() []service.User {
	p.g.mu.RLock()
	defer p.g.mu.RUnlock()
	out := make([]service.User, len(p.users))
	copy(out, p.users)
	return out
}

// Fetch refreshes the user list. With no stored token it does nothing.
func (p *UsersProvider) Fetch(ctx context.Context) {
	if p.tokens.Read() == "" {
		return
	}
	gen := p.g.begin()

	resp, err := p.svc.AllUsers(ctx)
	if err != nil {
		p.log.Error("failed to fetch users", slog.String("error", err.Error()))
		return
	}
	if resp.Message != service.MsgUsersRetrieved {
		p.log.Warn("unexpected users response message", slog.String("message", resp.Message))
		return
	}

	if !p.g.commit(gen, func() { p.users = resp.Users }) {
		p.log.Debug("discarding stale user list")
	}
}
