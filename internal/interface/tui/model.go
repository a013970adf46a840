// Package tui implements the interactive terminal interface: a command bar,
// the displayed person list, a feedback panel, and a status line.
package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/campusbook/campusbook/internal/application"
	"github.com/campusbook/campusbook/internal/application/query"
	"github.com/campusbook/campusbook/internal/domain/roster"
	"github.com/campusbook/campusbook/internal/domain/shared"
)

// eventQueue collects domain events published while a command executes. The
// bus delivers synchronously on the executing goroutine, so by the time
// Execute returns every event of that command is queued.
type eventQueue struct {
	mu     sync.Mutex
	events []shared.Event
}

func (q *eventQueue) append(e shared.Event) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
	return nil
}

func (q *eventQueue) drain() []shared.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}

// Model is the bubbletea model for the whole interface.
type Model struct {
	executor *application.Executor
	roster   *roster.Model
	stats    *query.DisplayStatsHandler
	logger   *zap.Logger
	styles   Styles

	input    textinput.Model
	list     viewport.Model
	ready    bool
	width    int
	height   int
	showHelp bool
	quitting bool

	feedback   string
	feedbackOK bool

	queue *eventQueue
}

// New creates the interface model and subscribes it to the event bus. Every
// event refreshes the visible list, so the list can never drift from the
// model state. A non-empty welcome is shown in the feedback panel until the
// first command replaces it.
func New(executor *application.Executor, rosterModel *roster.Model,
	bus shared.EventBus, logger *zap.Logger, welcome string) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Enter command (help for a list of commands)"
	input.Prompt = "> "
	input.Focus()
	input.CharLimit = 0

	m := &Model{
		executor: executor,
		roster:   rosterModel,
		stats:    query.NewDisplayStatsHandler(rosterModel),
		logger:   logger,
		styles:   DefaultStyles(),
		input:    input,
		queue:    &eventQueue{},
	}
	if welcome != "" {
		m.feedback = welcome
		m.feedbackOK = true
	}

	if bus != nil {
		if err := bus.SubscribeAll(m.queue.append); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - chromeHeight
		if listHeight < 1 {
			listHeight = 1
		}
		if !m.ready {
			m.list = viewport.New(msg.Width, listHeight)
			m.ready = true
		} else {
			m.list.Width = msg.Width
			m.list.Height = listHeight
		}
		m.refreshList()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
		case tea.KeyEnter:
			return m.executeInput()
		}
	}

	var inputCmd, listCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.list, listCmd = m.list.Update(msg)
	return m, tea.Batch(inputCmd, listCmd)
}

// executeInput runs the typed command and folds the outcome into the view.
func (m *Model) executeInput() (tea.Model, tea.Cmd) {
	raw := m.input.Value()
	m.input.Reset()

	result, err := m.executor.Execute(context.Background(), raw)
	if err != nil {
		// Error text is the complete user-facing response.
		m.feedback = err.Error()
		m.feedbackOK = false
		m.queue.drain()
		return m, nil
	}

	m.feedback = result.Feedback
	m.feedbackOK = true
	m.showHelp = result.ShowHelp

	if events := m.queue.drain(); len(events) > 0 {
		m.logger.Debug("view refresh", zap.Int("events", len(events)))
		m.refreshList()
	}

	if result.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// refreshList re-renders the displayed person list into the viewport.
func (m *Model) refreshList() {
	if !m.ready {
		return
	}
	m.list.SetContent(m.renderList())
}
