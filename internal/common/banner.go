package common

import (
	"fmt"

	"github.com/ternarybob/banner"
)

// PrintShellBanner displays the startup banner for the interactive
// shells (jira, copier).
func PrintShellBanner(toolName, subtitle string, details map[string]string, order []string) {
	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetBorderColor(banner.ColorPurple).
		SetTextColor(banner.ColorWhite).
		SetBold(true).
		SetWidth(64)

	fmt.Printf("\n")
	b.PrintTopLine()
	b.PrintCenteredText(toolName)
	if subtitle != "" {
		b.PrintCenteredText(subtitle)
	}
	b.PrintSeparatorLine()
	b.PrintKeyValue("Version", GetVersion(), 12)
	for _, key := range order {
		b.PrintKeyValue(key, details[key], 12)
	}
	b.PrintBottomLine()
	fmt.Printf("\n")
}

// PrintSuccess prints a success message in green
func PrintSuccess(message string) {
	fmt.Printf("%s✓ %s%s\n", banner.ColorGreen, message, banner.ColorReset)
}

// PrintError prints an error message in red
func PrintError(message string) {
	fmt.Printf("%s✗ %s%s\n", banner.ColorRed, message, banner.ColorReset)
}

// PrintWarning prints a warning message in yellow
func PrintWarning(message string) {
	fmt.Printf("%s⚠ %s%s\n", banner.ColorYellow, message, banner.ColorReset)
}

// Bold wraps text in ANSI bold, the way the shells highlight issue keys.
func Bold(text string) string {
	return "\033[1m" + text + "\033[0m"
}
