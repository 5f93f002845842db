// Package tui provides a Bubble Tea terminal user interface for motogp-nospoiler.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/handiism/motogp-nospoiler/internal/config"
	"github.com/handiism/motogp-nospoiler/internal/generate"
	"github.com/handiism/motogp-nospoiler/internal/report"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E4002B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

const maxLogLines = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateGenerating
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   generate.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logger    *log.Logger
	logs      []LogEntry
	report    *generate.Report
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	generator *generate.Generator
	events    chan generate.ProgressEvent

	// Generation progress
	yearsDone  int32
	yearsTotal int32
	pages      int32
	bytes      int64

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model. The text input edits the output
// directory and starts out with settings.OutputDir.
func NewModel(settings *config.Settings, logger *log.Logger) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "output"
	ti.SetValue(settings.OutputDir)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E4002B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logger:    logger,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one generator progress event.
	ProgressMsg struct {
		Event generate.ProgressEvent
	}

	// GenerateDoneMsg is sent when the run finishes.
	GenerateDoneMsg struct {
		Report *generate.Report
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateGenerating {
				m.cancel()
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				return m.start()
			}

		case "tab":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.report = nil
				m.generator = nil
				m.events = nil
				m.yearsDone, m.yearsTotal, m.pages, m.bytes = 0, 0, 0, 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		m = m.appendLog(msg.Event)
		if m.events != nil {
			cmds = append(cmds, waitForProgress(m.events))
		}

	case GenerateDoneMsg:
		m.report = msg.Report
		m.refreshProgress()
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.generator != nil && m.state == StateGenerating {
			m.refreshProgress()

			var percent float64
			if m.yearsTotal > 0 {
				percent = float64(m.yearsDone) / float64(m.yearsTotal)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) appendLog(event generate.ProgressEvent) Model {
	if event.Level == generate.LevelVerbose && !m.verbose {
		return m
	}
	m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	if len(m.logs) > maxLogLines {
		m.logs = m.logs[len(m.logs)-maxLogLines:]
	}
	return m
}

func (m *Model) refreshProgress() {
	if m.generator == nil {
		return
	}
	m.yearsDone, m.yearsTotal, m.pages, m.bytes = m.generator.GetProgress()
}

// start builds the generator for the chosen output directory and runs it in
// the background.
func (m Model) start() (tea.Model, tea.Cmd) {
	settings := *m.settings
	settings.OutputDir = strings.TrimSpace(m.textInput.Value())
	if err := settings.Validate(); err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	events := make(chan generate.ProgressEvent, 64)
	gen, err := generate.New(&settings, m.logger, func(event generate.ProgressEvent) {
		events <- event
	})
	if err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	m.settings = &settings
	m.generator = gen
	m.events = events
	m.state = StateGenerating
	m.textInput.Blur()

	return m, tea.Batch(
		runGenerator(m.ctx, gen, events),
		waitForProgress(events),
		m.tickProgress(),
		m.spinner.Tick,
	)
}

// runGenerator runs the generator and closes events when it returns.
func runGenerator(ctx context.Context, gen *generate.Generator, events chan generate.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		rep, err := gen.Run(ctx)
		close(events)
		return GenerateDoneMsg{Report: rep, Err: err}
	}
}

// waitForProgress blocks until the next progress event. It returns nil once
// the channel is closed.
func waitForProgress(events <-chan generate.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🏍  MotoGP Spoiler-Free"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Generate a spoiler-free video site"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateGenerating:
		b.WriteString(m.viewGenerating())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Output directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (tab)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("API: %s", m.settings.BaseURL)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewGenerating() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.yearsTotal == 0 {
		b.WriteString(subtitleStyle.Render("Fetching season index..."))
	} else {
		b.WriteString(subtitleStyle.Render("Generating seasons..."))
	}
	b.WriteString("\n\n")

	var percent float64
	if m.yearsTotal > 0 {
		percent = float64(m.yearsDone) / float64(m.yearsTotal)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Seasons: %d/%d | Pages: %d | Written: %s",
		m.yearsDone,
		m.yearsTotal,
		m.pages,
		humanize.Bytes(uint64(m.bytes)),
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	summary := fmt.Sprintf(
		"✨ Done!\n\n"+
			"Seasons: %d\n"+
			"Pages: %d\n"+
			"Size: %s\n"+
			"Output: %s",
		m.yearsTotal,
		m.pages,
		humanize.Bytes(uint64(m.bytes)),
		m.settings.OutputDir,
	)
	if m.report != nil {
		summary += "\n\n" + strings.Join(report.Lines(m.report), "\n")
	}
	b.WriteString(boxStyle.Render(summary))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	var landingErr *generate.LandingPageError
	if errors.As(m.err, &landingErr) && m.report != nil {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(strings.Join(report.Lines(m.report), "\n")))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, entry := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch entry.Level {
		case generate.LevelError:
			style = errorStyle
			prefix = "✗"
		case generate.LevelWarning:
			style = warningStyle
			prefix = "!"
		case generate.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case generate.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + entry.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		return "enter: generate • tab: verbose • esc: quit"
	case StateGenerating:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: run again • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, logger *log.Logger) error {
	p := tea.NewProgram(NewModel(settings, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
