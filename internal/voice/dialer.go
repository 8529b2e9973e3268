package voice

import (
	"context"
	"fmt"
	"sync"

	"github.com/finhub-dev/finhub/internal/api"
)

// APIDialer performs the handshake through the backend, which brokers the
// avatar streaming session on the client's behalf.
type APIDialer struct {
	client *api.Client

	mu        sync.Mutex
	sessionID string
}

// NewAPIDialer creates an APIDialer.
func NewAPIDialer(client *api.Client) *APIDialer {
	return &APIDialer{client: client}
}

// Dial asks the backend for a session grant.
func (d *APIDialer) Dial(ctx context.Context) error {
	grant, err := d.client.StartVoiceSession(ctx)
	if err != nil {
		return fmt.Errorf("starting voice session: %w", err)
	}

	d.mu.Lock()
	d.sessionID = grant.SessionID
	d.mu.Unlock()
	return nil
}

// Hangup stops the brokered session.
func (d *APIDialer) Hangup() error {
	d.mu.Lock()
	sessionID := d.sessionID
	d.sessionID = ""
	d.mu.Unlock()

	if sessionID == "" {
		return nil
	}
	return d.client.StopVoiceSession(context.Background(), sessionID)
}
