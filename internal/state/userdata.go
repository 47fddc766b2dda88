package state

import (
	"context"
	"log/slog"

	"roster/internal/service"
	"roster/internal/token"
)

// UserDataProvider owns the signed-in user's own account record.
type UserDataProvider struct {
	svc    service.Service
	tokens token.Store
	log    *slog.Logger
	g      gate
	user   service.User
}

// NewUserDataProvider creates an empty provider.
func NewUserDataProvider(svc service.Service, tokens token.Store, log *slog.Logger) *UserDataProvider {
	return &UserDataProvider{svc: svc, tokens: tokens, log: logger(log)}
}

// Snapshot returns the last fetched account record.
func (p *UserDataProvider) Snapshot() service.User {
	p.g.mu.RLock()
	defer p.g.mu.RUnlock()
	return p.user
}

// Fetch refreshes the account record. With no stored token it does nothing.
func (p *UserDataProvider) Fetch(ctx context.Context) {
	if p.tokens.Read() == "" {
		return
	}
	gen := p.g.begin()

	resp, err := p.svc.MyUser(ctx)
	if err != nil {
		p.log.Error("failed to fetch user data", slog.String("error", err.Error()))
		return
	}
	if resp.Message != service.MsgUserRetrieved {
		p.log.Warn("unexpected user data response message", slog.String("message", resp.Message))
		return
	}

	if !p.g.commit(gen, func() { p.user = resp.User }) {
		p.log.Debug("discarding stale user data")
	}
}
