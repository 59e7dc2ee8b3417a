package main

import (
	"github.com/Rshep3087/myspend/config"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Muted         lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Border        lipgloss.Color
	Text          lipgloss.Color
	SecondaryText lipgloss.Color
}

// newTheme creates a Theme from config.Colors.
func newTheme(colors config.Colors) Theme {
	return Theme{
		Primary:       parseColor(colors.Primary, "#9a8cff"),
		Error:         parseColor(colors.Error, "#ff7a7a"),
		Success:       parseColor(colors.Success, "#7be0c7"),
		Muted:         parseColor(colors.Muted, "#7f7d78"),
		Income:        parseColor(colors.Income, "#22ba46"),
		Expense:       parseColor(colors.Expense, "#ff7a7a"),
		Border:        parseColor(colors.Border, "#7D56F4"),
		Text:          parseColor(colors.Text, "#FAFAFA"),
		SecondaryText: parseColor(colors.SecondaryText, "#888888"),
	}
}

// parseColor returns colorStr as a lipgloss.Color, or defaultColor when it
// is empty. lipgloss accepts both hex ("#ff0000") and ANSI ("21") strings.
func parseColor(colorStr, defaultColor string) lipgloss.Color {
	if colorStr == "" {
		return lipgloss.Color(defaultColor)
	}
	return lipgloss.Color(colorStr)
}
