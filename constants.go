package main

// standardMargin is the horizontal margin around the whole view.
const standardMargin = 2

// Session states
type sessionState int

const (
	overviewState sessionState = iota
	transactions
	transactionForm
	confirmAction
	importFile
	configView
)

func (ss sessionState) String() string {
	switch ss {
	case overviewState:
		return "overview"
	case transactions:
		return "transactions"
	case transactionForm:
		return "transaction form"
	case confirmAction:
		return "confirm"
	case importFile:
		return "import"
	case configView:
		return "configuration"
	}

	return "unknown"
}
