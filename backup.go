package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rshep3087/myspend/ledger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type (
	exportDoneMsg struct {
		path  string
		count int
		err   error
	}

	importLoadedMsg struct {
		path string
		data []byte
		err  error
	}
)

// exportTransactions snapshots the list now and writes it in the background.
func (m *model) exportTransactions() tea.Cmd {
	data, err := m.store.Export()
	if err != nil {
		m.notify(err.Error(), true)
		return nil
	}

	path := filepath.Join(m.cfg.ExportDir, ledger.BackupFileName)
	count := m.store.Len()

	return func() tea.Msg {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return exportDoneMsg{path: path, err: fmt.Errorf("export failed: %w", err)}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return exportDoneMsg{path: path, err: fmt.Errorf("export failed: %w", err)}
		}
		return exportDoneMsg{path: path, count: count}
	}
}

func (m *model) handleExportDone(msg exportDoneMsg) tea.Cmd {
	if msg.err != nil {
		log.Error("export failed", "path", msg.path, "error", msg.err)
		m.notify(msg.err.Error(), true)
		return nil
	}

	m.notify(fmt.Sprintf("Exported %d transactions to %s", msg.count, msg.path), false)
	return nil
}

func validateImportPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("path is required")
	}

	info, err := os.Stat(s)
	if err != nil {
		return errors.New("file not found")
	}
	if info.IsDir() {
		return errors.New("path is a directory")
	}
	return nil
}

func newImportForm(defaultPath string) *huh.Form {
	path := defaultPath

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("path").
			Title("Import transactions").
			Description("Path to a JSON backup. Imported transactions go above the existing ones.").
			Value(&path).
			Validate(validateImportPath),
	))
}

func (m *model) openImportForm() tea.Cmd {
	m.importForm = newImportForm(filepath.Join(m.cfg.ExportDir, ledger.BackupFileName))
	if m.width > 0 {
		m.importForm = m.importForm.WithWidth(m.width)
	}
	m.previousSessionState = m.sessionState
	m.sessionState = importFile

	return m.importForm.Init()
}

func (m *model) updateImportForm(msg tea.Msg) tea.Cmd {
	if m.importForm == nil {
		m.sessionState = m.previousSessionState
		return nil
	}

	form, cmd := m.importForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.importForm = f
	}

	switch m.importForm.State {
	case huh.StateCompleted:
		path := strings.TrimSpace(m.importForm.GetString("path"))
		m.importForm = nil
		m.sessionState = m.previousSessionState
		return readImportFile(path)
	case huh.StateAborted:
		m.importForm = nil
		m.sessionState = m.previousSessionState
	}

	return cmd
}

// readImportFile reads the file off the event loop; the merge happens when
// the message arrives.
func readImportFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return importLoadedMsg{path: path, data: data, err: err}
	}
}

func (m *model) handleImportLoaded(msg importLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.notify(fmt.Sprintf("Import failed: %v", msg.err), true)
		return nil
	}

	n, err := m.store.Import(msg.data)
	if err != nil {
		log.Debug("import rejected", "path", msg.path, "error", err)
		m.notify(fmt.Sprintf("Import failed: %v", err), true)
		return nil
	}

	m.notify(fmt.Sprintf("Import successful! %d transactions added", n), false)
	return nil
}
