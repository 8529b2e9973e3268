// Package app assembles the interactive desk: config, event bus, agent
// service, voice session and the bubbletea program.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/finhub-dev/finhub/internal/agent"
	"github.com/finhub-dev/finhub/internal/api"
	"github.com/finhub-dev/finhub/internal/config"
	"github.com/finhub-dev/finhub/internal/eventbus"
	"github.com/finhub-dev/finhub/internal/voice"
)

// Application owns the desk session's moving parts.
type Application struct {
	bus     *eventbus.Bus
	service *agent.Service
	session *voice.Session
}

// New wires an Application from config.
func New(cfg *config.Config) (*Application, error) {
	client, err := api.New(&http.Client{Timeout: 30 * time.Second}, cfg.Server.BaseURL, cfg.Server.Token)
	if err != nil {
		return nil, fmt.Errorf("configuring backend client: %w", err)
	}

	var responder agent.Responder
	switch cfg.Agent.Mode {
	case config.ModeDirect:
		responder = agent.NewModelResponder(cfg.Agent)
	default:
		responder = agent.NewOrchestratorResponder(client)
	}

	bus := eventbus.New()
	service := agent.NewService(responder, bus, agent.NewClock(), cfg.Data.Dir)

	session := voice.NewSession(
		voice.NewAPIDialer(client),
		cfg.Voice.ConnectTimeout(),
		func(status voice.Status, detail string) {
			if err := bus.SendToUI(eventbus.VoiceStatusEvent{Status: string(status), Detail: detail}); err != nil {
				fmt.Fprintf(os.Stderr, "warning: dropping voice status: %v\n", err)
			}
		},
		service.SubmitVoice,
	)
	service.SetVoiceToggle(func() { toggleVoice(session) })

	return &Application{bus: bus, service: service, session: session}, nil
}

// Start runs the desk until the user quits.
func (a *Application) Start() error {
	a.service.Start()

	program := tea.NewProgram(newDeskModel(a.bus), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Stop tears the session down.
func (a *Application) Stop() {
	if err := a.session.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing voice session: %v\n", err)
	}
	a.service.Stop()
	a.bus.Close()
}

// Run is the `finhub desk` entry point.
func Run(cfg *config.Config) error {
	app, err := New(cfg)
	if err != nil {
		return err
	}
	defer app.Stop()
	return app.Start()
}

func toggleVoice(session *voice.Session) {
	if session.Status() != voice.StatusIdle {
		if err := session.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: closing voice session: %v\n", err)
		}
		return
	}

	// Connect owns the handshake deadline. Failures already reach the status
	// bar through the session's status callback.
	go func() {
		_ = session.Connect(context.Background())
	}()
}
