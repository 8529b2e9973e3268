package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/finhub-dev/finhub/internal/eventbus"
	"github.com/finhub-dev/finhub/internal/update"
	"github.com/finhub-dev/finhub/ui/components"
)

type deskModel struct {
	state update.DeskState
	bus   *eventbus.Bus
}

func newDeskModel(bus *eventbus.Bus) *deskModel {
	return &deskModel{state: update.NewDeskState(), bus: bus}
}

func (m *deskModel) Init() tea.Cmd {
	return tea.Batch(update.TickCmd(), update.ListenCmd(m.bus))
}

func (m *deskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := update.Handle(&m.state, msg, m.bus)

	// Each delivered core event consumes the listener; re-arm it.
	if _, ok := msg.(update.CoreEventMsg); ok {
		return m, tea.Batch(cmd, update.ListenCmd(m.bus))
	}
	return m, cmd
}

func (m *deskModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderTranscript(m.state.Messages))
	b.WriteString(components.RenderActivity(m.state.Run))
	b.WriteString(components.RenderInput(m.state.Input, m.state.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.state.Status, m.state.Processing, m.state.LoadingDots, m.state.VoiceStatus, m.state.Width))

	return b.String()
}
