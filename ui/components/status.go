package components

import (
	"strings"

	"github.com/finhub-dev/finhub/ui/styles"
)

// RenderStatus renders the bottom status bar. Processing animates trailing
// dots; an active voice session shows its state on the right.
func RenderStatus(status string, processing bool, dots int, voiceStatus string, width int) string {
	content := status
	if processing {
		content += strings.Repeat(".", dots)
	}
	if voiceStatus != "" && voiceStatus != "idle" {
		content += "  " + styles.VoiceStyle().Render("voice: "+voiceStatus)
	}
	return styles.StatusStyle(width).Render(content)
}
