package config

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config represents the application configuration structure.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug"`
	// DataDir is where the storage backend keeps its files
	DataDir string `toml:"data_dir" mapstructure:"data_dir"`
	// Storage selects the backend: file, sqlite or memory
	Storage string `toml:"storage" mapstructure:"storage"`
	// StorageKey names the slot holding the transaction list
	StorageKey string `toml:"storage_key" mapstructure:"storage_key"`
	// Currency is the ISO 4217 code used to display amounts
	Currency string `toml:"currency" mapstructure:"currency"`
	// Categories are offered in the expense form, in this order
	Categories []string `toml:"categories" mapstructure:"categories"`
	// ExportDir is where the TUI writes backups
	ExportDir string `toml:"export_dir" mapstructure:"export_dir"`
	// Colors overrides the theme
	Colors Colors `toml:"colors" mapstructure:"colors"`
}

// Colors holds theme overrides as hex ("#ff0000") or ANSI ("21") strings.
type Colors struct {
	Primary       string `toml:"primary" mapstructure:"primary"`
	Error         string `toml:"error" mapstructure:"error"`
	Success       string `toml:"success" mapstructure:"success"`
	Muted         string `toml:"muted" mapstructure:"muted"`
	Income        string `toml:"income" mapstructure:"income"`
	Expense       string `toml:"expense" mapstructure:"expense"`
	Border        string `toml:"border" mapstructure:"border"`
	Text          string `toml:"text" mapstructure:"text"`
	SecondaryText string `toml:"secondary_text" mapstructure:"secondary_text"`
}

// DefaultCategories are offered by the transaction form when none are configured.
var DefaultCategories = []string{"Food", "Transport", "Shopping", "Bills", "Entertainment", "Health", "Other"}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New(primary string) Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 20},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color(primary))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func displayValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(not set)"
	}
	return value
}

func displayList(values []string) string {
	if len(values) == 0 {
		return "(not set)"
	}
	return strings.Join(values, ", ")
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config, configFile string) {
	rows := []table.Row{
		{"Config File", displayValue(configFile), "File the settings were read from"},
		{"Debug", strconv.FormatBool(config.Debug), "Enable debug logging"},
		{"Storage", displayValue(config.Storage), "Storage backend (file, sqlite, memory)"},
		{"Data Directory", displayValue(config.DataDir), "Where transactions are stored"},
		{"Storage Key", displayValue(config.StorageKey), "Slot holding the transaction list"},
		{"Currency", displayValue(config.Currency), "Currency used to display amounts"},
		{"Categories", displayList(config.Categories), "Expense categories offered in the form"},
		{"Export Directory", displayValue(config.ExportDir), "Where backups are written"},
	}

	m.configTable.SetRows(rows)
}

// Rows returns the rendered settings, mostly for tests.
func (m Model) Rows() []table.Row {
	return m.configTable.Rows()
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
