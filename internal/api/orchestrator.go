package api

import (
	"context"

	"github.com/finhub-dev/finhub/internal/model"
)

// IntentRequest is a natural-language intent sent to the orchestrator.
type IntentRequest struct {
	Intent  string            `json:"intent"`
	RunID   string            `json:"runId"`
	Context map[string]string `json:"context,omitempty"`
}

// PlannedStep is one activity-feed step the orchestrator reports for a run.
type PlannedStep struct {
	Kind    string `json:"kind"` // thinking, step, tool_call
	Message string `json:"message"`
	Tool    string `json:"tool,omitempty"`
}

// IntentResponse is the orchestrator's reply plus governance metadata.
type IntentResponse struct {
	Reply      string            `json:"reply"`
	Steps      []PlannedStep     `json:"steps"`
	Governance *model.Governance `json:"governance,omitempty"`
}

// SendIntent submits an intent and waits for the orchestrator's response.
func (c *Client) SendIntent(ctx context.Context, req IntentRequest) (IntentResponse, error) {
	var resp IntentResponse
	err := c.post(ctx, "/api/orchestrator/intent", req, &resp)
	return resp, err
}
