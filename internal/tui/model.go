package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/localedemo/internal/catalog"
	"github.com/jask/localedemo/internal/database/repository"
	"github.com/jask/localedemo/internal/flow"
)

// History is the view log. A nil History disables recording.
type History interface {
	Record(ctx context.Context, countryID, locale string) (int, error)
	Recent(ctx context.Context, limit int) ([]repository.View, error)
	Totals(ctx context.Context) ([]repository.CountryCount, error)
}

type Options struct {
	DefaultIndex int
	History      History
	HistoryLimit int
	Logger       *slog.Logger
}

type Model struct {
	ctx          context.Context
	width        int
	height       int
	table        *catalog.Table
	state        flow.State
	selection    *SelectionScreen
	screens      ScreenStack
	keys         *KeyRegistry
	commands     *CommandRegistry
	history      History
	historyLimit int
	log          *slog.Logger
	status       string
	statusErr    bool
	quitting     bool
}

func New(ctx context.Context, table *catalog.Table, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := NewKeyRegistry(DefaultKeyBindings())
	state := flow.New(table.Len(), opts.DefaultIndex)
	sel := NewSelectionScreen(table, keys, state.Selected)
	m := Model{
		ctx:          ctx,
		table:        table,
		state:        state,
		selection:    sel,
		keys:         keys,
		commands:     NewCommandRegistry(DefaultCommands(table)),
		history:      opts.History,
		historyLimit: opts.HistoryLimit,
		log:          logger,
		width:        80,
		height:       24,
	}
	m.screens.Push(sel)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return "app"
}

// State exposes the navigation state, mostly for tests.
func (m Model) State() flow.State { return m.state }

func (m Model) Selection() *SelectionScreen { return m.selection }

func (m Model) Top() Screen { return m.screens.Top() }

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case viewRecordedMsg:
		if msg.Err != nil {
			m.log.Warn("record view", "country", msg.Country, "error", msg.Err)
			return m, ErrorCmd(fmt.Errorf("history: %w", msg.Err))
		}
		m.SetStatus(m.table.Viewed(msg.Country, msg.Count))
		return m, nil
	case historyLoadedMsg:
		if msg.Err != nil {
			m.log.Warn("load history", "error", msg.Err)
			return m, ErrorCmd(fmt.Errorf("history: %w", msg.Err))
		}
		// the user may have moved on while the query ran
		if m.screens.Top() != Screen(m.selection) {
			m.log.Debug("history result dropped", "top", m.ActiveScope())
			return m, nil
		}
		m.PushScreen(NewHistoryScreen(m.table, m.keys, msg.Views, msg.Totals))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	top := m.screens.Top()
	if top == nil {
		return m, nil
	}
	return m, m.handle(top, top.Update(msg))
}

func (m *Model) handle(from Screen, res Result) tea.Cmd {
	cmds := []tea.Cmd{res.Cmd}
	if res.Pop {
		m.dismiss(from)
	}
	for _, ev := range res.Events {
		cmds = append(cmds, m.apply(ev))
	}
	if res.Command != "" {
		cmds = append(cmds, m.commands.Execute(res.Command, m))
	}
	return tea.Batch(cmds...)
}

// dismiss pops s if it is on top and agrees to leave without a prompt.
func (m *Model) dismiss(s Screen) bool {
	if m.screens.Top() != s {
		return false
	}
	if !dismissSilently(s) {
		m.log.Debug("dismiss refused", "screen", s.Scope())
		return false
	}
	m.screens.Pop()
	return true
}

// apply runs one event through the state machine and carries out its effects.
func (m *Model) apply(ev flow.Event) tea.Cmd {
	next, effects := flow.Step(m.state, ev)
	m.log.Debug("flow step",
		"event", fmt.Sprintf("%T", ev),
		"from", m.state.Screen.String(),
		"to", next.Screen.String(),
		"selected", next.Selected,
	)
	m.state = next

	var cmds []tea.Cmd
	for _, fx := range effects {
		switch fx := fx.(type) {
		case flow.LoadDetail:
			m.selection.Detail().Load(fx.Index)
		case flow.PushDetail:
			m.PushScreen(m.selection.Detail())
			cmds = append(cmds, m.recordView(m.state.Selected))
		case flow.PopScreen:
			m.dismiss(m.screens.Top())
		case flow.Exit:
			if m.dismiss(m.screens.Top()) {
				m.quitting = true
				cmds = append(cmds, tea.Quit)
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) recordView(index int) tea.Cmd {
	if m.history == nil {
		return nil
	}
	rec := m.table.At(index)
	ctx, h, locale := m.ctx, m.history, m.table.Tag.String()
	return func() tea.Msg {
		n, err := h.Record(ctx, rec.ID, locale)
		return viewRecordedMsg{Country: rec.Name, Count: n, Err: err}
	}
}

func (m *Model) loadHistory() tea.Cmd {
	ctx, h, limit := m.ctx, m.history, m.historyLimit
	return func() tea.Msg {
		views, err := h.Recent(ctx, limit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		totals, err := h.Totals(ctx)
		return historyLoadedMsg{Views: views, Totals: totals, Err: err}
	}
}
