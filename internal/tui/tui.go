package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jaddevvv/PortKiller-App/internal/config"
	"github.com/Jaddevvv/PortKiller-App/internal/output"
	"github.com/Jaddevvv/PortKiller-App/internal/proc"
	"github.com/Jaddevvv/PortKiller-App/internal/process"
	"github.com/Jaddevvv/PortKiller-App/internal/target"
	"github.com/Jaddevvv/PortKiller-App/pkg/model"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusScan
	focusKill
	focusCount
)

type scanDoneMsg struct {
	result model.ScanResult
	err    error
}

type killDoneMsg struct {
	outcome model.Outcome
	err     error
}

// Options configure the interactive form.
type Options struct {
	Lister proc.Lister
	Config config.Config

	// Port pre-fills the input when non-zero.
	Port int
}

type styles struct {
	title, subtle, highlight, errorText, success, button, activeButton, prompt, base lipgloss.Style
}

func newStyles(t config.Theme) styles {
	button := lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color(t.Subtle)).
		Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(t.Subtle))
	return styles{
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Highlight)).Bold(true),
		subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Subtle)),
		highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Highlight)),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)).Bold(true),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		button:    button,
		activeButton: button.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color(t.Highlight)).
			BorderForeground(lipgloss.Color(t.Highlight)).
			Bold(true),
		prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color(t.Error)).
			Bold(true).
			Padding(0, 1),
		base: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Subtle)),
	}
}

type tuiModel struct {
	lister proc.Lister
	cfg    config.Config
	styles styles

	input textinput.Model
	table table.Model
	focus focusArea

	busy           bool
	confirmingKill bool
	pendingPort    int

	status    string
	report    string
	reportErr bool
	showTable bool

	width  int
	height int
}

func initialModel(opts Options) tuiModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 8080"
	ti.CharLimit = 5
	ti.Width = 15
	ti.Focus()
	if opts.Port > 0 {
		ti.SetValue(strconv.Itoa(opts.Port))
	}

	m := tuiModel{
		lister: opts.Lister,
		cfg:    opts.Config,
		styles: newStyles(opts.Config.Theme),
		input:  ti,
		focus:  focusInput,
	}
	m.initTable()
	return m
}

func (m *tuiModel) initTable() {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "PID", Width: 8},
			{Title: "Process", Width: 28},
			{Title: "Result", Width: 40},
		}),
		table.WithFocused(false),
		table.WithHeight(8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.cfg.Theme.Subtle)).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color(m.cfg.Theme.Highlight)).
		Bold(true)
	t.SetStyles(s)

	m.table = t
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func scanCmd(l proc.Lister, port int) tea.Cmd {
	return func() tea.Msg {
		res, err := target.Scan(l, port)
		return scanDoneMsg{result: res, err: err}
	}
}

func killCmd(l proc.Lister, port int, dryRun bool) tea.Cmd {
	return func() tea.Msg {
		out, err := process.KillPort(l, port, process.Options{DryRun: dryRun})
		return killDoneMsg{outcome: out, err: err}
	}
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case scanDoneMsg:
		m.applyScan(msg)
		return m, nil
	case killDoneMsg:
		m.applyKill(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || (key == "esc" && !m.confirmingKill) {
		return m, tea.Quit
	}

	if m.busy {
		return m, nil
	}

	if m.confirmingKill {
		switch key {
		case "y", "Y":
			m.confirmingKill = false
			return m, m.beginKill(m.pendingPort)
		case "n", "N", "esc":
			m.confirmingKill = false
			m.pendingPort = 0
			m.status = "Kill cancelled"
		}
		return m, nil
	}

	switch key {
	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+s":
		return m, m.requestScan()
	case "ctrl+k":
		return m, m.requestKill()
	case "enter":
		if m.focus == focusScan {
			return m, m.requestScan()
		}
		return m, m.requestKill()
	case "q":
		if m.focus != focusInput {
			return m, tea.Quit
		}
	}

	if m.focus != focusInput {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *tuiModel) setFocus(f focusArea) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// readPort validates the input and reports problems in the form.
func (m *tuiModel) readPort() (int, bool) {
	port, err := target.ParsePort(m.input.Value())
	if err != nil {
		m.showTable = false
		m.reportErr = true
		m.status = ""
		if errors.Is(err, target.ErrEmptyPort) {
			m.report = "Please enter a port number."
		} else {
			m.report = "Invalid port number: " + strings.TrimPrefix(err.Error(), target.ErrInvalidPort.Error()+": ")
		}
		return 0, false
	}
	return port, true
}

func (m *tuiModel) requestScan() tea.Cmd {
	port, ok := m.readPort()
	if !ok {
		return nil
	}
	m.busy = true
	m.status = fmt.Sprintf("Scanning port %d...", port)
	return scanCmd(m.lister, port)
}

func (m *tuiModel) requestKill() tea.Cmd {
	port, ok := m.readPort()
	if !ok {
		return nil
	}
	if m.cfg.ConfirmKill {
		m.confirmingKill = true
		m.pendingPort = port
		return nil
	}
	return m.beginKill(port)
}

func (m *tuiModel) beginKill(port int) tea.Cmd {
	m.busy = true
	m.pendingPort = 0
	m.status = fmt.Sprintf("Searching for processes on port %d...", port)
	return killCmd(m.lister, port, m.cfg.DryRun)
}

func (m *tuiModel) applyScan(msg scanDoneMsg) {
	m.busy = false
	m.status = ""
	m.showTable = false
	m.reportErr = msg.err != nil

	switch {
	case msg.err != nil:
		m.report = "An error occurred while scanning: " + msg.err.Error()
	case len(msg.result.Processes) == 0:
		m.report = fmt.Sprintf("No processes are listening on port %d.", msg.result.Port)
	default:
		m.report = fmt.Sprintf("Found %d process(es) on port %d:", len(msg.result.Processes), msg.result.Port)
		rows := make([]table.Row, 0, len(msg.result.Processes))
		for _, p := range msg.result.Processes {
			rows = append(rows, table.Row{strconv.Itoa(p.PID), output.SanitizeTerminal(p.Name), "listening"})
		}
		m.table.SetRows(rows)
		m.showTable = true
	}
}

func (m *tuiModel) applyKill(msg killDoneMsg) {
	m.busy = false
	m.showTable = false

	if msg.err != nil {
		m.status = ""
		m.reportErr = true
		m.report = "An error occurred: " + msg.err.Error()
		return
	}
	m.input.Reset()

	o := msg.outcome
	if o.Total() == 0 {
		m.status = ""
		m.reportErr = false
		m.report = fmt.Sprintf("No processes are listening on port %d.", o.Port)
		return
	}

	killedLabel := "✓ killed"
	if o.DryRun {
		killedLabel = "would kill (dry run)"
	}
	rows := make([]table.Row, 0, o.Total())
	for _, p := range o.Killed {
		rows = append(rows, table.Row{strconv.Itoa(p.PID), output.SanitizeTerminal(p.Name), killedLabel})
	}
	for _, f := range o.Failed {
		rows = append(rows, table.Row{strconv.Itoa(f.Process.PID), output.SanitizeTerminal(f.Process.Name), "✗ " + f.Reason})
	}
	m.table.SetRows(rows)
	m.showTable = true
	m.reportErr = len(o.Failed) > 0
	m.report = fmt.Sprintf("Port %d:", o.Port)
	m.status = output.Summary(o)
}

func (m tuiModel) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.title.Render("Port Killer") + "\n")
	b.WriteString(s.subtle.Render("Terminate processes using a specific port") + "\n\n")

	b.WriteString("Port Number: " + m.input.View() + "\n\n")

	scan, kill := s.button, s.button
	switch m.focus {
	case focusScan:
		scan = s.activeButton
	case focusKill:
		kill = s.activeButton
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, scan.Render("Scan Port"), " ", kill.Render("Kill Process")) + "\n")

	if m.status != "" {
		b.WriteString("\n" + s.subtle.Render(m.status) + "\n")
	}

	if m.report != "" {
		style := s.success
		if m.reportErr {
			style = s.errorText
		}
		b.WriteString("\n" + style.Render(output.SanitizeTerminal(m.report)) + "\n")
	}
	if m.showTable {
		b.WriteString(s.base.Render(m.table.View()) + "\n")
	}

	if m.confirmingKill {
		prompt := fmt.Sprintf(" Kill every process on port %d? [y/n] ", m.pendingPort)
		b.WriteString("\n" + s.prompt.Render(prompt) + "\n")
	}

	b.WriteString("\n" + s.subtle.Render("Note: Administrator privileges may be required") + "\n")
	help := "  enter: kill • ctrl+s: scan • ctrl+k: kill • tab: focus • esc: quit"
	if m.cfg.DryRun {
		help += " • dry run"
	}
	b.WriteString(s.subtle.Render(help) + "\n")

	return b.String()
}

// Run starts the interactive form and blocks until the operator quits.
func Run(opts Options) error {
	p := tea.NewProgram(initialModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
