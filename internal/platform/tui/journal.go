package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// newJournalTable creates the round journal table.
func newJournalTable(screenH int) table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 7},
		{Title: "Grid", Width: 7},
		{Title: "Moves", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Finished", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(journalHeight(screenH)),
	)
	t.SetStyles(tableStyles())
	return t
}

// journalHeight leaves room for the title, help and margins.
func journalHeight(screenH int) int {
	return max(screenH-8, 5)
}

// refreshJournal reloads the table rows from the store.
func (m *Model) refreshJournal() {
	entries := m.clock.Recent(journalRows)
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", e.Round),
			fmt.Sprintf("%d×%d", e.CellsPerSide, e.CellsPerSide),
			fmt.Sprint(e.Moves),
			formatDuration(e.Duration),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.journal.SetRows(rows)
	m.journal.GotoTop()
}

// journalView renders the round journal.
func (m Model) journalView() string {
	var b strings.Builder

	b.WriteString(m.theme.JournalTitle.Render("ROUND JOURNAL"))
	b.WriteString("\n")

	if len(m.journal.Rows()) == 0 {
		b.WriteString(m.theme.HUDLabel.Render("No rounds completed yet."))
	} else {
		b.WriteString(m.journal.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, b.String(), "", m.help.View(m.keys))
}
