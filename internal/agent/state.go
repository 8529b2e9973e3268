package agent

import (
	"sync"
	"time"

	"github.com/finhub-dev/finhub/internal/id"
	"github.com/finhub-dev/finhub/internal/model"
)

// State holds the desk transcript and the current run. All access is
// mutex-guarded; the service and the sequencer goroutine both write to it.
type State struct {
	mu           sync.RWMutex
	messages     []model.Message
	run          *model.Run
	processing   bool
	lastErr      error
	pendingVoice *model.Message // partial utterance, replaced until final
}

// NewState creates an empty State.
func NewState() *State {
	return &State{}
}

// Messages returns a copy of the transcript. A pending voice utterance
// appears as the trailing message so the panel shows speech as it lands.
func (s *State) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Message, len(s.messages), len(s.messages)+1)
	copy(out, s.messages)
	if s.pendingVoice != nil {
		out = append(out, *s.pendingVoice)
	}
	return out
}

// Processing reports whether a run is in flight.
func (s *State) Processing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.processing
}

// Run returns a copy of the current run, or nil.
func (s *State) Run() *model.Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRun(s.run)
}

// LastError returns the most recent run failure, cleared on the next run.
func (s *State) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// StartRun appends the user message and opens a new running run for it.
func (s *State) StartRun(intent string) model.Run {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	runID := id.Random()
	s.messages = append(s.messages, model.Message{
		ID:        id.Random(),
		From:      model.SenderUser,
		Text:      intent,
		RunID:     runID,
		CreatedAt: now,
	})
	s.run = &model.Run{
		ID:        runID,
		Intent:    intent,
		Status:    model.RunRunning,
		StartedAt: now,
	}
	s.processing = true
	s.lastErr = nil
	return *s.run
}

// AppendEvent adds an activity event to the run, ignoring events for stale
// runs (a stopped sequence may still deliver one late tick).
func (s *State) AppendEvent(runID string, event model.ActivityEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil || s.run.ID != runID || s.run.Status != model.RunRunning {
		return
	}
	s.run.Events = append(s.run.Events, event)
}

// CompleteRun finishes the run and appends the agent's reply to the
// transcript.
func (s *State) CompleteRun(runID, finalText string, governance *model.Governance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil || s.run.ID != runID {
		return
	}

	s.run.Status = model.RunCompleted
	s.run.FinalText = finalText
	s.run.Governance = governance
	s.processing = false

	s.messages = append(s.messages, model.Message{
		ID:        id.Random(),
		From:      model.SenderAgent,
		Text:      finalText,
		RunID:     runID,
		CreatedAt: time.Now(),
	})
}

// FailRun marks the run failed and records the error. The transcript gets a
// system line so the failure is visible in place.
func (s *State) FailRun(runID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.run == nil || s.run.ID != runID {
		return
	}

	s.run.Status = model.RunFailed
	s.processing = false
	s.lastErr = err

	s.messages = append(s.messages, model.Message{
		ID:        id.Random(),
		From:      model.SenderSystem,
		Text:      "Something went wrong: " + err.Error(),
		RunID:     runID,
		CreatedAt: time.Now(),
	})
}

// VoicePartial replaces the pending voice utterance.
func (s *State) VoicePartial(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingVoice = &model.Message{
		ID:        "voice-pending",
		From:      model.SenderUser,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// VoiceFinal clears the pending utterance and returns the finished text,
// which the service treats as a spoken intent (starting a run appends it to
// the transcript as the user message). Returns "" when nothing was pending
// and the final text is empty.
func (s *State) VoiceFinal(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if text == "" && s.pendingVoice != nil {
		text = s.pendingVoice.Text
	}
	s.pendingVoice = nil
	return text
}

func copyRun(run *model.Run) *model.Run {
	if run == nil {
		return nil
	}
	out := *run
	out.Events = make([]model.ActivityEvent, len(run.Events))
	copy(out.Events, run.Events)
	return &out
}
