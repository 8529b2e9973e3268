package update

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub-dev/finhub/internal/eventbus"
	"github.com/finhub-dev/finhub/internal/model"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	panic("unknown key " + s)
}

func TestTyping_BuildsInput(t *testing.T) {
	bus := eventbus.New()
	state := NewDeskState()

	for _, key := range []string{"p", "n", "l"} {
		Handle(&state, keyMsg(key), bus)
	}
	assert.Equal(t, "pnl", state.Input)

	Handle(&state, keyMsg("backspace"), bus)
	assert.Equal(t, "pn", state.Input)
}

func TestEnter_SendsIntentAndClearsInput(t *testing.T) {
	bus := eventbus.New()
	state := NewDeskState()
	state.Input = "show burn"

	Handle(&state, keyMsg("enter"), bus)

	assert.Empty(t, state.Input)
	select {
	case event := <-bus.UIToCore():
		intent, ok := event.(eventbus.SendIntentEvent)
		require.True(t, ok)
		assert.Equal(t, "show burn", intent.Intent)
	default:
		t.Fatal("expected an intent on the bus")
	}
}

func TestEnter_IgnoresBlankInput(t *testing.T) {
	bus := eventbus.New()
	state := NewDeskState()
	state.Input = "   "

	Handle(&state, keyMsg("enter"), bus)

	select {
	case <-bus.UIToCore():
		t.Fatal("blank input must not reach the core")
	default:
	}
}

func TestEsc_StopsRunThenQuits(t *testing.T) {
	bus := eventbus.New()
	state := NewDeskState()
	state.Processing = true
	state.Run = &model.Run{ID: "run-1"}

	cmd := Handle(&state, keyMsg("esc"), bus)
	assert.Nil(t, cmd)

	event := <-bus.UIToCore()
	stop, ok := event.(eventbus.StopRunEvent)
	require.True(t, ok)
	assert.Equal(t, "run-1", stop.RunID)

	state.Processing = false
	cmd = Handle(&state, keyMsg("esc"), bus)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestStateUpdate_RefreshesViewState(t *testing.T) {
	bus := eventbus.New()
	state := NewDeskState()

	Handle(&state, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Messages:   []model.Message{{From: model.SenderUser, Text: "hi"}},
		Processing: true,
	}}, bus)

	require.Len(t, state.Messages, 1)
	assert.True(t, state.Processing)
	assert.Equal(t, "Working", state.Status)

	Handle(&state, CoreEventMsg{Event: eventbus.StateUpdateEvent{
		Err: errors.New("backend down"),
	}}, bus)
	assert.Equal(t, "Error: backend down", state.Status)
}

func TestVoiceStatus_UpdatesStatusBar(t *testing.T) {
	bus := eventbus.New()
	state := NewDeskState()

	Handle(&state, CoreEventMsg{Event: eventbus.VoiceStatusEvent{Status: "connecting"}}, bus)
	assert.Equal(t, "connecting", state.VoiceStatus)

	Handle(&state, CoreEventMsg{Event: eventbus.VoiceStatusEvent{Status: "idle", Detail: "voice connect timed out"}}, bus)
	assert.Equal(t, "idle", state.VoiceStatus)
	assert.Equal(t, "voice connect timed out", state.Status)
}

func TestTick_AnimatesOnlyWhileProcessing(t *testing.T) {
	bus := eventbus.New()
	state := NewDeskState()

	Handle(&state, TickMsg{}, bus)
	assert.Zero(t, state.LoadingDots)

	state.Processing = true
	Handle(&state, TickMsg{}, bus)
	assert.Equal(t, 1, state.LoadingDots)
}
