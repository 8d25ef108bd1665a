package view

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jcarlounavas/gcashtrack/internal/pdftext"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
	"github.com/jcarlounavas/gcashtrack/internal/upload"
)

const uploadTimeout = 2 * time.Minute

type uploadState int

const (
	uploadStateForm uploadState = iota
	uploadStateFilePick
	uploadStateProcessing
	uploadStateResult
)

type UploadModel struct {
	CommonModel
	uploadService *upload.Service

	state      uploadState
	form       *huh.Form
	filePicker filepicker.Model
	spinner    spinner.Model

	homeAccount string
	password    string

	saved    *statement.Statement
	warnings []statement.Warning

	status string
	err    error
}

func NewUploadModel(svc *upload.Service) UploadModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = []string{".pdf", ".txt"}
	fp.SetHeight(15)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := UploadModel{
		uploadService: svc,
		filePicker:    fp,
		spinner:       s,
	}
	m.form = m.buildForm()

	return m
}

func (m UploadModel) Title() string { return "Upload Statement" }

func (m UploadModel) ShortHelp() string {
	switch m.state {
	case uploadStateResult:
		return "Esc: back to menu"
	case uploadStateProcessing:
		return "Processing..."
	}

	return "Esc: back | Enter: confirm"
}

func (m UploadModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case uploadStateForm:
		return m.updateForm(msg)
	case uploadStateFilePick:
		return m.updateFilePick(msg)
	case uploadStateProcessing:
		return m.updateProcessing(msg)
	case uploadStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m UploadModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = uploadStateFilePick

	return m, m.filePicker.Init()
}

func (m UploadModel) updateFilePick(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = uploadStateForm
			m.form = m.buildForm()

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = uploadStateProcessing
		m.status = fmt.Sprintf("Processing %s...", filepath.Base(path))

		return m, tea.Batch(m.spinner.Tick, m.uploadCmd(path))
	}

	return m, cmd
}

func (m UploadModel) updateProcessing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(uploadResultMsg); ok {
		m.state = uploadStateResult
		m.err = result.err
		m.saved = result.saved
		m.warnings = result.warnings

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m UploadModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m *UploadModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("home_account").
				Title("Your Wallet Number").
				Description("Used to work out transfer direction").
				Placeholder("09XXXXXXXXX").
				Value(&m.homeAccount).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("wallet number is required")
					}

					return nil
				}),
			huh.NewInput().
				Key("password").
				Title("PDF Password").
				Description("Leave empty for plain-text exports").
				EchoMode(huh.EchoModePassword).
				Value(&m.password),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m UploadModel) View() string {
	switch m.state {
	case uploadStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case uploadStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select statement file:\n\n" + m.filePicker.View(),
		)

	case uploadStateProcessing:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s %s", m.spinner.View(), m.status),
		)

	case uploadStateResult:
		return m.viewResult()
	}

	return ""
}

func (m UploadModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(1)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render(fmt.Sprintf("Saved %d transactions from %s", m.saved.RecordCount, m.saved.FileName))

	lines := []string{
		header,
		"",
		fmt.Sprintf("Total Debit:  %s", FormatMoney(m.saved.TotalDebit)),
		fmt.Sprintf("Total Credit: %s", FormatMoney(m.saved.TotalCredit)),
	}

	if len(m.warnings) > 0 {
		lines = append(lines, "", fmt.Sprintf("%d lines skipped:", len(m.warnings)))
		for _, warning := range m.warnings {
			lines = append(lines, fmt.Sprintf("  %s (%s)", warning.Line, warning.Reason))
		}
	}

	lines = append(lines, "", "(Esc to go back)")

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

type uploadResultMsg struct {
	saved    *statement.Statement
	warnings []statement.Warning
	err      error
}

func (m UploadModel) uploadCmd(path string) tea.Cmd {
	homeAccount := strings.TrimSpace(m.homeAccount)
	password := m.password

	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return uploadResultMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		defer cancel()

		saved, sum, err := m.uploadService.Process(ctx, upload.Input{
			FileName:    filepath.Base(path),
			Data:        data,
			HomeAccount: homeAccount,
			Password:    password,
		})
		if err != nil {
			if errors.Is(err, pdftext.ErrInvalidPassword) {
				return uploadResultMsg{err: errors.New("wrong PDF password")}
			}

			return uploadResultMsg{err: err}
		}

		return uploadResultMsg{saved: saved, warnings: sum.Warnings}
	}
}
