package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fleur-roar/sleep-tracker-bot/internal"
)

// RemoteAuthProvider asks an external identity service to resolve tokens.
type RemoteAuthProvider struct {
	AuthServiceURL string
	HTTPClient     *http.Client
	logger         internal.Logger
}

func NewRemoteAuthProvider(url string, logger internal.Logger) *RemoteAuthProvider {
	return &RemoteAuthProvider{
		AuthServiceURL: url,
		HTTPClient:     &http.Client{Timeout: 5 * time.Second},
		logger:         logger,
	}
}

func (a *RemoteAuthProvider) ResolveTokenLocal(token string) (int64, error) {
	return 0, errors.New("not implemented in RemoteAuthProvider")
}

func (a *RemoteAuthProvider) ResolveTokenRemote(ctx context.Context, token string) (int64, error) {
	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", a.AuthServiceURL, bytes.NewReader(body))
	if err != nil {
		a.logger.Errorf("auth: failed to create request: %v", err)
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		a.logger.Errorf("auth: failed to call auth service: %v", err)
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		a.logger.Errorf("auth: auth service returned %d", resp.StatusCode)
		return 0, errors.New("auth service returned non-200")
	}
	var payload struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		a.logger.Errorf("auth: failed to decode auth response: %v", err)
		return 0, err
	}
	return payload.UserID, nil
}
