package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderNotice())
	b.WriteString("\n")

	switch m.sessionState {
	case overviewState:
		b.WriteString(m.overview.View())
	case transactions:
		b.WriteString(transactionsView(m))
	case transactionForm:
		if m.form != nil {
			b.WriteString(m.form.View())
		}
	case confirmAction:
		if m.confirmForm != nil {
			b.WriteString(m.confirmForm.View())
		}
	case importFile:
		if m.importForm != nil {
			b.WriteString(m.importForm.View())
		}
	case configView:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return m.styles.docStyle.Render(b.String())
}

func (m model) renderTitle() string {
	title := fmt.Sprintf("myspend | %s", m.sessionState.String())

	if m.sessionState == transactionForm && m.edit.editing() {
		title = "myspend | edit transaction"
	}

	if !m.filter.IsZero() {
		title += " | filtered"
	}

	return m.styles.titleStyle.Render(title)
}

func (m model) renderNotice() string {
	if m.notice.text == "" {
		return ""
	}

	if m.notice.isError {
		return m.styles.errorStyle.Render(m.notice.text)
	}
	return m.styles.successStyle.Render(m.notice.text)
}
