package auth

import (
	"context"
	"errors"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
)

// LocalAuthProvider resolves tokens against a static map from config.
// Development only.
type LocalAuthProvider struct {
	tokens map[string]int64
	logger internal.Logger
}

func NewLocalAuthProvider(tokens map[string]int64, logger internal.Logger) *LocalAuthProvider {
	return &LocalAuthProvider{tokens: tokens, logger: logger}
}

func (a *LocalAuthProvider) ResolveTokenLocal(token string) (int64, error) {
	if id, ok := a.tokens[token]; ok {
		return id, nil
	}
	a.logger.Warnf("auth: invalid token")
	return 0, errors.New("invalid token")
}

func (a *LocalAuthProvider) ResolveTokenRemote(ctx context.Context, token string) (int64, error) {
	a.logger.Warnf("auth: ResolveTokenRemote not implemented in LocalAuthProvider")
	return 0, errors.New("not implemented in LocalAuthProvider")
}
