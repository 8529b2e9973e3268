// Package agent runs the desk panel's brain: it turns submitted intents
// into runs, plays each run's activity events through a sequencer, and
// pushes transcript state to the UI over the event bus.
package agent

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/finhub-dev/finhub/internal/eventbus"
	"github.com/finhub-dev/finhub/internal/model"
	"github.com/finhub-dev/finhub/internal/runlog"
)

// eventInterval spaces activity events so the feed reads as progress rather
// than a dump.
const eventInterval = 450 * time.Millisecond

// Service owns the desk session state and the event loop.
type Service struct {
	responder Responder
	state     *State
	bus       *eventbus.Bus
	seq       *Sequencer
	dataDir   string // run log location; empty disables logging

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	runCancel   context.CancelFunc // cancels the in-flight run, nil when idle
	voiceToggle func()
}

// NewService creates a Service. dataDir may be empty to skip run logging.
func NewService(responder Responder, bus *eventbus.Bus, clock Clock, dataDir string) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		responder: responder,
		state:     NewState(),
		bus:       bus,
		seq:       NewSequencer(clock, eventInterval),
		dataDir:   dataDir,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// State exposes the session state for direct (non-bus) consumers.
func (s *Service) State() *State {
	return s.state
}

// SetVoiceToggle registers the handler for voice toggle events. Call before
// Start.
func (s *Service) SetVoiceToggle(fn func()) {
	s.voiceToggle = fn
}

// Start pushes the initial state and begins consuming UI events.
func (s *Service) Start() {
	s.pushState()
	go s.eventLoop()
}

// Stop cancels any in-flight run and shuts the loop down.
func (s *Service) Stop() {
	s.stopRun()
	s.cancel()
	s.seq.Stop()
}

// SubmitVoice feeds a voice utterance into the session. Partial utterances
// update the pending transcript line; a final utterance becomes an intent.
func (s *Service) SubmitVoice(text string, final bool) {
	if !final {
		s.state.VoicePartial(text)
		s.pushState()
		return
	}
	if intent := s.state.VoiceFinal(text); intent != "" {
		s.processIntent(intent)
	}
}

func (s *Service) eventLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.bus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		}
	}
}

func (s *Service) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SendIntentEvent:
		s.processIntent(e.Intent)
	case eventbus.StopRunEvent:
		s.stopRun()
	case eventbus.ToggleVoiceEvent:
		if s.voiceToggle != nil {
			s.voiceToggle()
		}
	}
}

func (s *Service) processIntent(intent string) {
	// One outstanding run at a time, like one outstanding request per user
	// action.
	if s.state.Processing() {
		return
	}

	run := s.state.StartRun(intent)
	s.state.AppendEvent(run.ID, model.ActivityEvent{
		Type:    model.ActivityThinking,
		Message: "Working on it",
		Icon:    iconFor(model.ActivityThinking),
		At:      time.Now(),
	})
	s.pushState()

	runCtx, cancel := context.WithCancel(s.ctx)
	s.mu.Lock()
	s.runCancel = cancel
	s.mu.Unlock()

	go s.execute(runCtx, run.ID, intent)
}

func (s *Service) execute(ctx context.Context, runID, intent string) {
	defer s.clearRunCancel()

	reply, err := s.responder.Respond(ctx, runID, intent)
	if err != nil {
		s.state.FailRun(runID, err)
		s.pushState()
		s.logRun(runID, intent, "failed", "", err.Error())
		return
	}

	// Replay the responder's steps through the sequencer so the feed
	// animates, then close the run out.
	done := s.seq.Play(reply.Steps, func(event model.ActivityEvent) {
		s.state.AppendEvent(runID, event)
		s.pushState()
	})

	select {
	case <-done:
	case <-ctx.Done():
		s.seq.Stop()
		s.state.FailRun(runID, ctx.Err())
		s.pushState()
		s.logRun(runID, intent, "failed", "", ctx.Err().Error())
		return
	}

	s.state.AppendEvent(runID, model.ActivityEvent{
		Type:    model.ActivityDone,
		Message: "Done",
		Icon:    iconFor(model.ActivityDone),
		At:      time.Now(),
	})
	s.state.CompleteRun(runID, reply.Text, reply.Governance)
	s.pushState()

	decision := ""
	if reply.Governance != nil {
		decision = reply.Governance.Decision
	}
	s.logRun(runID, intent, "completed", decision, snippet(reply.Text))
}

func (s *Service) stopRun() {
	s.mu.Lock()
	cancel := s.runCancel
	s.runCancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (s *Service) clearRunCancel() {
	s.mu.Lock()
	s.runCancel = nil
	s.mu.Unlock()
}

func (s *Service) pushState() {
	event := eventbus.StateUpdateEvent{
		Messages:   s.state.Messages(),
		Run:        s.state.Run(),
		Processing: s.state.Processing(),
		Err:        s.state.LastError(),
	}
	if err := s.bus.SendToUI(event); err != nil {
		fmt.Fprintf(os.Stderr, "warning: dropping state update: %v\n", err)
	}
}

func (s *Service) logRun(runID, intent, status, decision, detail string) {
	if s.dataDir == "" {
		return
	}
	entry := runlog.Entry{
		Timestamp: time.Now(),
		RunID:     runID,
		Intent:    intent,
		Status:    status,
		Decision:  decision,
		Detail:    detail,
	}
	if err := runlog.Append(s.dataDir, []runlog.Entry{entry}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write run log: %v\n", err)
	}
}

func snippet(text string) string {
	const max = 120
	if len(text) <= max {
		return text
	}
	return text[:max] + "…"
}
