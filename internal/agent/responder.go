package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/finhub-dev/finhub/internal/api"
	"github.com/finhub-dev/finhub/internal/config"
	"github.com/finhub-dev/finhub/internal/model"
)

// Reply is what a responder produces for one intent.
type Reply struct {
	Text       string
	Steps      []model.ActivityEvent // activity feed steps, played in order
	Governance *model.Governance
}

// Responder answers desk intents. Implementations must honor ctx
// cancellation.
type Responder interface {
	Respond(ctx context.Context, runID, intent string) (Reply, error)
}

// OrchestratorResponder routes intents through the backend orchestrator,
// which plans steps and attaches governance metadata.
type OrchestratorResponder struct {
	client *api.Client
}

// NewOrchestratorResponder creates an OrchestratorResponder.
func NewOrchestratorResponder(client *api.Client) *OrchestratorResponder {
	return &OrchestratorResponder{client: client}
}

// Respond submits the intent and maps the orchestrator's planned steps onto
// activity events.
func (r *OrchestratorResponder) Respond(ctx context.Context, runID, intent string) (Reply, error) {
	resp, err := r.client.SendIntent(ctx, api.IntentRequest{Intent: intent, RunID: runID})
	if err != nil {
		return Reply{}, fmt.Errorf("orchestrator intent: %w", err)
	}

	steps := make([]model.ActivityEvent, 0, len(resp.Steps))
	for _, step := range resp.Steps {
		eventType := activityType(step.Kind)
		message := step.Message
		if step.Tool != "" {
			message = fmt.Sprintf("%s (%s)", step.Message, step.Tool)
		}
		steps = append(steps, model.ActivityEvent{
			Type:    eventType,
			Message: message,
			Icon:    iconFor(eventType),
			At:      time.Now(),
		})
	}

	return Reply{Text: resp.Reply, Steps: steps, Governance: resp.Governance}, nil
}

// ModelResponder talks straight to an OpenAI-compatible endpoint. It carries
// no governance; queued approvals only exist on the orchestrator path.
type ModelResponder struct {
	client *openai.Client
	model  string
}

const modelSystemPrompt = "You are the finance desk assistant for a small business. " +
	"Answer briefly and concretely. You cannot execute actions; describe what you would do."

// NewModelResponder creates a ModelResponder from agent config.
func NewModelResponder(cfg config.AgentConfig) *ModelResponder {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &ModelResponder{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

// Respond sends the intent as a single-turn chat completion.
func (r *ModelResponder) Respond(ctx context.Context, runID, intent string) (Reply, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: modelSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: intent},
		},
	})
	if err != nil {
		return Reply{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Reply{}, fmt.Errorf("chat completion: empty response")
	}

	step := model.ActivityEvent{
		Type:    model.ActivityThinking,
		Message: "Consulting " + r.model,
		Icon:    iconFor(model.ActivityThinking),
		At:      time.Now(),
	}
	return Reply{Text: resp.Choices[0].Message.Content, Steps: []model.ActivityEvent{step}}, nil
}

func activityType(kind string) model.ActivityEventType {
	switch kind {
	case "thinking":
		return model.ActivityThinking
	case "tool_call":
		return model.ActivityToolCall
	default:
		return model.ActivityStep
	}
}

func iconFor(t model.ActivityEventType) string {
	switch t {
	case model.ActivityThinking:
		return "✻"
	case model.ActivityToolCall:
		return "⚙"
	case model.ActivityDone:
		return "✓"
	default:
		return "→"
	}
}
