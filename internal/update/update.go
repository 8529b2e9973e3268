// Package update translates bubbletea messages into desk view-state
// mutations. The view state is a snapshot of what the core last pushed plus
// purely local UI state (input line, animation counters).
package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/finhub-dev/finhub/internal/eventbus"
	"github.com/finhub-dev/finhub/internal/model"
)

// DeskState is everything the desk view needs to draw a frame.
type DeskState struct {
	Messages    []model.Message
	Run         *model.Run
	Input       string
	Status      string
	VoiceStatus string
	Processing  bool
	LoadingDots int
	Width       int
	Height      int
}

// NewDeskState returns the initial view state.
func NewDeskState() DeskState {
	return DeskState{Status: "Ready", VoiceStatus: "idle", Width: 80}
}

// CoreEventMsg wraps a core event for bubbletea.
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// TickMsg drives UI animation.
type TickMsg time.Time

// TickCmd schedules the next animation tick.
func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ListenCmd blocks on the core-to-UI channel and delivers the next event.
// The model must re-issue it after each CoreEventMsg.
func ListenCmd(bus *eventbus.Bus) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-bus.CoreToUI()
		if !ok {
			return tea.Quit()
		}
		return CoreEventMsg{Event: event}
	}
}

// Handle routes a bubbletea message to its handler.
func Handle(state *DeskState, msg tea.Msg, bus *eventbus.Bus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKey(state, msg, bus)
	case tea.WindowSizeMsg:
		state.Width = msg.Width
		state.Height = msg.Height
		return nil
	case TickMsg:
		return handleTick(state)
	case CoreEventMsg:
		handleCoreEvent(state, msg)
		return nil
	}
	return nil
}
