package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual bar for a 0-1 score.
// Example: "███████░░░ 0.70"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 10
	}
	filled := int(score * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 0.7:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 0.4:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleMuted.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.2f", score)))
}

// TrendArrow returns a styled trend indicator for a delta value. Positive
// delta shows an up arrow, negative shows down, zero shows a dash. The
// higherIsBetter parameter controls which direction renders green.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := (isPositive && higherIsBetter) || (!isPositive && !higherIsBetter)

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.2f", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.2f", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Section renders a titled section header with a horizontal rule spanning
// the configured render width.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", renderWidth))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
