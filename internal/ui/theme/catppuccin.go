package theme

import "github.com/charmbracelet/lipgloss"

var (
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Peach    = lipgloss.Color("#fab387")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)

	TableBorder = lipgloss.NewStyle().Foreground(Surface1)
	TableHeader = lipgloss.NewStyle().Foreground(Lavender).Bold(true).Padding(0, 1)
	TableCell   = lipgloss.NewStyle().Foreground(Text).Padding(0, 1)
	TableFooter = lipgloss.NewStyle().Foreground(Peach).Bold(true).Padding(0, 1)

	Cursor = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
)
