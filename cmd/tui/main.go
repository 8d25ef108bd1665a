package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jcarlounavas/gcashtrack/cmd/tui/internal/view"
	"github.com/jcarlounavas/gcashtrack/internal/alias"
	aliasStore "github.com/jcarlounavas/gcashtrack/internal/alias/store"
	"github.com/jcarlounavas/gcashtrack/internal/config"
	"github.com/jcarlounavas/gcashtrack/internal/database"
	"github.com/jcarlounavas/gcashtrack/internal/export"
	"github.com/jcarlounavas/gcashtrack/internal/parser"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
	stmtStore "github.com/jcarlounavas/gcashtrack/internal/statement/store"
	"github.com/jcarlounavas/gcashtrack/internal/upload"
)

type model struct {
	statementService *statement.Service
	uploadService    *upload.Service
	exportService    *export.Service

	currentView View

	uploadView     view.UploadModel
	statementsView view.StatementsModel
}

type View int

const (
	ViewMenu       View = 0
	ViewUpload     View = 1
	ViewStatements View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	stmtSvc := statement.NewService(stmtStore.New(db))
	uploadSvc := upload.NewService(parser.NewService(), stmtSvc)
	aliasSvc := alias.NewService(aliasStore.New(db))
	expSvc := export.NewService(stmtSvc, aliasSvc)

	return model{
		statementService: stmtSvc,
		uploadService:    uploadSvc,
		exportService:    expSvc,
		currentView:      ViewMenu,
		uploadView:       view.NewUploadModel(uploadSvc),
		statementsView:   view.NewStatementsModel(stmtSvc, expSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewUpload
				m.uploadView = view.NewUploadModel(m.uploadService)

				return m, m.uploadView.Init()
			case "2":
				m.currentView = ViewStatements
				m.statementsView = view.NewStatementsModel(m.statementService, m.exportService)

				return m, m.statementsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewUpload:
		var newModel tea.Model
		newModel, cmd = m.uploadView.Update(msg)
		m.uploadView = newModel.(view.UploadModel)
	case ViewStatements:
		var newModel tea.Model
		newModel, cmd = m.statementsView.Update(msg)
		m.statementsView = newModel.(view.StatementsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"GCashTrack TUI\n\n" +
				"1. Upload Statement\n" +
				"2. Browse Statements\n\n" +
				"q. Quit",
		)
	case ViewUpload:
		return m.uploadView.View()
	case ViewStatements:
		return m.statementsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
