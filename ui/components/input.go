package components

import "github.com/finhub-dev/finhub/ui/styles"

// RenderInput renders the intent input line with a prompt cursor.
func RenderInput(input string, width int) string {
	return styles.InputStyle(width).Render("> " + input + "▎")
}
