package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/finhub-dev/finhub/internal/eventbus"
)

func handleKey(state *DeskState, keyMsg tea.KeyMsg, bus *eventbus.Bus) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		// Esc stops the in-flight run; a second Esc with nothing running
		// quits.
		if state.Processing {
			runID := ""
			if state.Run != nil {
				runID = state.Run.ID
			}
			if err := bus.SendToCore(eventbus.StopRunEvent{RunID: runID}); err != nil {
				state.Status = "Error: " + err.Error()
			}
			return nil
		}
		return tea.Quit
	case "enter":
		intent := strings.TrimSpace(state.Input)
		if intent == "" {
			return nil
		}
		if err := bus.SendToCore(eventbus.SendIntentEvent{Intent: intent}); err != nil {
			state.Status = "Error: " + err.Error()
			return nil
		}
		state.Input = ""
		return nil
	case "ctrl+v":
		if err := bus.SendToCore(eventbus.ToggleVoiceEvent{}); err != nil {
			state.Status = "Error: " + err.Error()
		}
		return nil
	case "backspace":
		if len(state.Input) > 0 {
			runes := []rune(state.Input)
			state.Input = string(runes[:len(runes)-1])
		}
		return nil
	case " ", "space":
		state.Input += " "
		return nil
	}

	if keyMsg.Type == tea.KeyRunes {
		state.Input += string(keyMsg.Runes)
	}
	return nil
}

func handleCoreEvent(state *DeskState, msg CoreEventMsg) {
	switch event := msg.Event.(type) {
	case eventbus.StateUpdateEvent:
		state.Messages = event.Messages
		state.Run = event.Run
		state.Processing = event.Processing

		switch {
		case event.Err != nil:
			state.Status = "Error: " + event.Err.Error()
		case event.Processing:
			state.Status = "Working"
		default:
			state.Status = "Ready"
		}
	case eventbus.VoiceStatusEvent:
		state.VoiceStatus = event.Status
		if event.Detail != "" {
			state.Status = event.Detail
		}
	}
}

func handleTick(state *DeskState) tea.Cmd {
	if state.Processing {
		state.LoadingDots = (state.LoadingDots + 1) % 4
	}
	return TickCmd()
}
