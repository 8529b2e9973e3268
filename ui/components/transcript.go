// Package components renders the desk panel's pieces from view state.
package components

import (
	"strings"

	"github.com/finhub-dev/finhub/internal/model"
	"github.com/finhub-dev/finhub/ui/styles"
)

// RenderTranscript renders the conversation so far.
func RenderTranscript(messages []model.Message) string {
	var b strings.Builder

	systemStyle := styles.SystemStyle()
	userStyle := styles.UserStyle()
	agentStyle := styles.AgentStyle()

	for _, msg := range messages {
		switch msg.From {
		case model.SenderUser:
			b.WriteString(userStyle.Render("You: "+msg.Text) + "\n\n")
		case model.SenderAgent:
			b.WriteString(agentStyle.Render("Ava: "+msg.Text) + "\n\n")
		default:
			b.WriteString(systemStyle.Render(msg.Text) + "\n\n")
		}
	}

	return b.String()
}

// RenderActivity renders the in-flight run's activity feed under the
// transcript. Nothing is shown once the run completes; its outcome lives in
// the transcript.
func RenderActivity(run *model.Run) string {
	if run == nil || run.Status != model.RunRunning || len(run.Events) == 0 {
		return ""
	}

	activityStyle := styles.ActivityStyle()
	doneStyle := styles.ActivityDoneStyle()

	var b strings.Builder
	for _, event := range run.Events {
		line := event.Icon + " " + event.Message
		if event.Type == model.ActivityDone {
			b.WriteString(doneStyle.Render(line) + "\n")
		} else {
			b.WriteString(activityStyle.Render(line) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}
