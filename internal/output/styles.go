package output

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the reporters.
// Lipgloss degrades colors to what the terminal supports.
var (
	// StyleCyan is used for section headers and file paths.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for failures.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for warnings.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for success messages.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for hints and family details.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// Swatch renders a two-cell block filled with an opaque hex color. Other
// values (currentColor, alpha hex, color(display-p3 ...)) and disabled
// colors yield "".
func Swatch(value string, useColors bool) string {
	if !useColors || !isHex(value) {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ")
}

func isHex(value string) bool {
	if len(value) < 2 || value[0] != '#' {
		return false
	}
	switch len(value) - 1 {
	case 3, 6:
	default:
		return false
	}
	for i := 1; i < len(value); i++ {
		c := value[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
