package main

import (
	"fmt"
	"io"

	"github.com/Rshep3087/myspend/config"
	"github.com/Rshep3087/myspend/ledger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// runTUI starts the terminal UI on store. Logs go to myspend.log with
// --debug and are dropped otherwise, so they never draw over the screen.
func runTUI(cfg config.Config, configFile string, store *ledger.Store) error {
	if cfg.Debug {
		f, err := tea.LogToFile("myspend.log", "myspend")
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newModel(cfg, configFile, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("myspend ran into an error: %w", err)
	}

	return nil
}
