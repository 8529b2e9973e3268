package api

import "context"

// VoiceGrant is what the backend hands out after brokering an avatar
// streaming session.
type VoiceGrant struct {
	SessionID string `json:"sessionId"`
	StreamURL string `json:"streamUrl"`
	Token     string `json:"token"`
}

// StartVoiceSession asks the backend to broker an avatar session.
func (c *Client) StartVoiceSession(ctx context.Context) (VoiceGrant, error) {
	var grant VoiceGrant
	err := c.post(ctx, "/api/voice/session", nil, &grant)
	return grant, err
}

// StopVoiceSession tears a brokered session down.
func (c *Client) StopVoiceSession(ctx context.Context, sessionID string) error {
	return c.post(ctx, "/api/voice/session/"+sessionID+"/stop", nil, nil)
}
