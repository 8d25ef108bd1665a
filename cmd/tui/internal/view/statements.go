package view

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jcarlounavas/gcashtrack/internal/export"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

type statementsState int

const (
	statementsStateBrowse statementsState = iota
	statementsStateRecords
	statementsStateGroups
)

type StatementsModel struct {
	CommonModel
	statementService *statement.Service
	exportService    *export.Service

	state statementsState

	table        table.Model
	recordsTable table.Model
	groupsTable  table.Model

	statements []*statement.Statement

	status string
	err    error
}

func NewStatementsModel(stmtSvc *statement.Service, expSvc *export.Service) StatementsModel {
	columns := []table.Column{
		{Title: "Uploaded", Width: 12},
		{Title: "File", Width: 30},
		{Title: "Wallet", Width: 13},
		{Title: "Records", Width: 8},
		{Title: "Debit", Width: 12},
		{Title: "Credit", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return StatementsModel{
		statementService: stmtSvc,
		exportService:    expSvc,
		table:            t,
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return s
}

func (m StatementsModel) Title() string { return "Statements" }

func (m StatementsModel) ShortHelp() string {
	switch m.state {
	case statementsStateRecords, statementsStateGroups:
		return "Esc: back to statements"
	}

	return "Esc: back | Enter: records | g: groups | x: export CSV | d: delete | r: refresh"
}

func (m StatementsModel) Init() tea.Cmd {
	return m.loadStatementsCmd()
}

func (m StatementsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statementsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.statements = msg.statements
		m.refreshTable()

		return m, nil

	case recordsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.recordsTable = newRecordsTable(msg.records)
		m.state = statementsStateRecords

		return m, nil

	case groupsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.groupsTable = newGroupsTable(msg.groups)
		m.state = statementsStateGroups

		return m, nil

	case statementDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			return m, nil
		}

		m.status = "Statement deleted."

		return m, m.loadStatementsCmd()

	case exportDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error exporting: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Exported to %s", msg.path)

		return m, nil
	}

	switch m.state {
	case statementsStateBrowse:
		return m.updateBrowse(msg)
	case statementsStateRecords:
		return m.updateSubTable(msg, &m.recordsTable)
	case statementsStateGroups:
		return m.updateSubTable(msg, &m.groupsTable)
	}

	return m, nil
}

func (m StatementsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "enter":
			if st := m.selectedStatement(); st != nil {
				return m, m.loadRecordsCmd(st)
			}
		case "g":
			if st := m.selectedStatement(); st != nil {
				return m, m.loadGroupsCmd(st)
			}
		case "x":
			if st := m.selectedStatement(); st != nil {
				return m, m.exportCmd(st)
			}
		case "d":
			if st := m.selectedStatement(); st != nil {
				return m, m.deleteCmd(st)
			}
		case "r":
			return m, m.loadStatementsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m StatementsModel) updateSubTable(msg tea.Msg, t *table.Model) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = statementsStateBrowse
			return m, nil
		}
	}

	var cmd tea.Cmd
	*t, cmd = t.Update(msg)

	return m, cmd
}

func (m StatementsModel) selectedStatement() *statement.Statement {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.statements) {
		return nil
	}

	return m.statements[idx]
}

func (m *StatementsModel) refreshTable() {
	rows := make([]table.Row, len(m.statements))
	for i, st := range m.statements {
		rows[i] = table.Row{
			st.CreatedAt.Format("2006-01-02"),
			st.FileName,
			st.HomeAccount,
			fmt.Sprintf("%d", st.RecordCount),
			FormatMoney(st.TotalDebit),
			FormatMoney(st.TotalCredit),
		}
	}

	m.table.SetRows(rows)
}

func newRecordsTable(records []statement.Record) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 20},
		{Title: "Description", Width: 40},
		{Title: "Debit", Width: 12},
		{Title: "Credit", Width: 12},
		{Title: "Ref No", Width: 14},
	}

	rows := make([]table.Row, len(records))
	for i, rec := range records {
		var debit, credit string
		if !rec.Debit.IsZero() {
			debit = FormatMoney(rec.Debit)
		}

		if !rec.Credit.IsZero() {
			credit = FormatMoney(rec.Credit)
		}

		rows[i] = table.Row{rec.TxDate, rec.Description, debit, credit, rec.RefNo}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return t
}

func newGroupsTable(groups []statement.Group) table.Model {
	columns := []table.Column{
		{Title: "Group", Width: 50},
		{Title: "Count", Width: 8},
		{Title: "Debit", Width: 12},
		{Title: "Credit", Width: 12},
	}

	rows := make([]table.Row, len(groups))
	for i, g := range groups {
		rows[i] = table.Row{
			g.Key,
			fmt.Sprintf("%d", g.Count),
			FormatMoney(g.TotalDebit),
			FormatMoney(g.TotalCredit),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	t.SetStyles(tableStyles())

	return t
}

func (m StatementsModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	var body string

	switch m.state {
	case statementsStateBrowse:
		body = m.table.View()
	case statementsStateRecords:
		body = m.recordsTable.View()
	case statementsStateGroups:
		body = m.groupsTable.View()
	}

	if m.status != "" {
		body += "\n\n" + m.status
	}

	return style.Render(body)
}

// Messages

type statementsLoadedMsg struct {
	statements []*statement.Statement
	err        error
}

type recordsLoadedMsg struct {
	records []statement.Record
	err     error
}

type groupsLoadedMsg struct {
	groups []statement.Group
	err    error
}

type statementDeletedMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

func (m StatementsModel) loadStatementsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sts, err := m.statementService.List(ctx)

		return statementsLoadedMsg{statements: sts, err: err}
	}
}

func (m StatementsModel) loadRecordsCmd(st *statement.Statement) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := m.statementService.Records(ctx, st.ID)

		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m StatementsModel) loadGroupsCmd(st *statement.Statement) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		groups, err := m.statementService.Groups(ctx, st.ID)

		return groupsLoadedMsg{groups: groups, err: err}
	}
}

func (m StatementsModel) deleteCmd(st *statement.Statement) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return statementDeletedMsg{err: m.statementService.Delete(ctx, st.ID)}
	}
}

func (m StatementsModel) exportCmd(st *statement.Statement) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := os.MkdirAll("exports", 0o755); err != nil {
			return exportDoneMsg{err: err}
		}

		path := filepath.Join("exports", export.Filename(st))

		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()

		if err := m.exportService.WriteCSV(ctx, f, st.ID); err != nil {
			return exportDoneMsg{err: err}
		}

		return exportDoneMsg{path: path}
	}
}
