package model

import "time"

// ActivityEventType classifies a step in an agent run's activity feed.
type ActivityEventType string

const (
	ActivityThinking ActivityEventType = "thinking"
	ActivityStep     ActivityEventType = "step"
	ActivityToolCall ActivityEventType = "tool_call"
	ActivityDone     ActivityEventType = "done"
)

// ActivityEvent is one entry in a run's activity feed.
type ActivityEvent struct {
	Type    ActivityEventType
	Message string
	Icon    string
	At      time.Time
}

// RunStatus is the lifecycle state of an agent run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// Run records a single intent/response cycle: the ordered activity events
// shown while the agent works, the final reply, and any governance verdict
// attached by the orchestrator.
type Run struct {
	ID         string
	Intent     string
	Events     []ActivityEvent
	Status     RunStatus
	FinalText  string
	Governance *Governance
	StartedAt  time.Time
}

// Governance is the orchestrator's approval metadata for a run. A non-empty
// QueueID means the action is parked in the authority queue pending human
// sign-off.
type Governance struct {
	Decision string `json:"decision"` // "allowed", "queued", "denied"
	Reason   string `json:"reason,omitempty"`
	QueueID  string `json:"queueId,omitempty"`
}
