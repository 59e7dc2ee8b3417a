package main

import (
	"time"

	"github.com/Rshep3087/myspend/config"
	"github.com/Rshep3087/myspend/ledger"
	"github.com/Rshep3087/myspend/overview"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// filterBarHeight is the height of the bordered filter bar above the list.
const filterBarHeight = 3

type model struct {
	theme  Theme
	styles styles
	keys   keyMap
	help   help.Model

	// sessionState is the current state of the session
	sessionState         sessionState
	previousSessionState sessionState

	// store owns the transactions; the model only renders them
	store *ledger.Store
	// renderedRevision is the store revision the views were built from
	renderedRevision uint64
	cfg              config.Config
	now              func() time.Time

	width, height int

	overview overview.Model
	// transactions is a bubbletea list model of the filtered transactions
	transactions list.Model
	filter       ledger.Filter
	searchInput  textinput.Model

	edit       editSession
	form       *huh.Form
	formValues *formValues

	confirmForm *huh.Form
	pending     *pendingAction

	importForm *huh.Form

	configView config.Model

	notice notice
}

func newModel(cfg config.Config, configFile string, store *ledger.Store) model {
	theme := newTheme(cfg.Colors)
	keys := initializeKeyMap()

	m := model{
		theme:        theme,
		styles:       createStyles(theme),
		keys:         keys,
		help:         createHelpModel(theme),
		sessionState: overviewState,
		store:        store,
		cfg:          cfg,
		now:          time.Now,
		overview: overview.New(
			overview.WithStyles(createOverviewStyles(theme)),
			overview.WithCurrency(cfg.Currency),
		),
		transactions: newTransactionList(newItemDelegate(theme, newDelegateKeyMap()), keys),
		filter:       ledger.Filter{Type: ledger.All, Category: ledger.All},
		searchInput:  newSearchInput(theme),
		configView:   config.New(string(theme.Primary)),
	}

	m.configView.SetConfig(cfg, configFile)
	m.refresh()

	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) today() string {
	return m.now().Format(ledger.DateLayout)
}
