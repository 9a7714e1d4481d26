package auth

import "context"

// Provider resolves an opaque bearer token to an opaque user id. The rest of
// the system never interprets the id beyond equality partitioning.
type Provider interface {
	ResolveTokenLocal(token string) (int64, error)
	ResolveTokenRemote(ctx context.Context, token string) (int64, error)
}
