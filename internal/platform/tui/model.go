package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridwalk/internal/assets"
	"github.com/vovakirdan/gridwalk/internal/core"
	"github.com/vovakirdan/gridwalk/internal/game"
	"github.com/vovakirdan/gridwalk/internal/input"
	"github.com/vovakirdan/gridwalk/internal/storage"
)

// journalRows is how many rounds the journal view lists.
const journalRows = 50

// ErrNoPlayerTexture is returned when the atlas lacks the player sprite,
// which defines the cell size.
var ErrNoPlayerTexture = errors.New("tui: atlas has no player texture")

// ErrSpriteTooLarge is returned when a sprite would spill out of its cell.
var ErrSpriteTooLarge = errors.New("tui: sprite larger than player cell")

// Options configures a Model.
type Options struct {
	Runtime      core.RuntimeConfig
	Grid         game.GridSettings
	Atlas        assets.Atlas
	Store        *storage.Store // nil disables the journal
	RepeatWindow time.Duration
	Logger       *log.Logger
	Now          func() time.Time // defaults to time.Now
}

// Model is the Bubble Tea model for a gridwalk session.
type Model struct {
	state    *game.State
	loop     *game.Loop
	field    *Playfield
	clock    *roundClock
	keys     input.KeyMap
	debounce *input.Debouncer
	help     help.Model
	journal  table.Model
	theme    Theme
	config   core.RuntimeConfig
	logger   *log.Logger
	now      func() time.Time

	showJournal bool
	lastErr     error
	quitting    bool
}

// NewModel builds the game state and renders the first frame.
func NewModel(opts Options) (Model, error) {
	cell, err := CheckAtlas(opts.Atlas)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	theme := DefaultTheme()
	clock := newRoundClock(opts.Store, logger, now)

	state, err := game.New(opts.Grid, cell,
		game.WithLogger(logger),
		game.WithRoundObserver(clock.Record),
	)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	field := NewPlayfield(opts.Atlas, theme.Border)

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := Model{
		state:    state,
		loop:     game.NewLoop(state, field),
		field:    field,
		clock:    clock,
		keys:     input.DefaultKeyMap(),
		debounce: input.NewDebouncer(opts.RepeatWindow),
		help:     h,
		journal:  newJournalTable(opts.Runtime.ScreenH),
		theme:    theme,
		config:   opts.Runtime,
		logger:   logger,
		now:      now,
	}
	m.frame()
	return m, nil
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.journal.SetHeight(journalHeight(msg.Height))
		return m, nil

	case TickMsg:
		m.frame()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey maps a key to an action and applies it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionJournal:
		m.showJournal = !m.showJournal
		if m.showJournal {
			m.refreshJournal()
		}
		return m, nil

	case core.ActionReset:
		m.state.Reset()
		m.clock.Restart()
		m.debounce.Reset()
		m.lastErr = nil
		m.logger.Debug("round restarted", "round", m.state.Round())
		return m, nil
	}

	// The journal table owns the arrow keys while it is open.
	if m.showJournal {
		var cmd tea.Cmd
		m.journal, cmd = m.journal.Update(msg)
		return m, cmd
	}

	if !action.IsDirectional() || !m.debounce.Accept(action, m.now()) {
		return m, nil
	}

	if err := m.state.HandleInput(input.Direction(action)); err != nil {
		m.logger.Error("input failed", "action", action, "error", err)
		m.lastErr = err
	}
	return m, nil
}

// frame renders the current state into the playfield buffer.
func (m Model) frame() {
	w, h := m.state.Viewport()
	n := m.state.Settings().CellsPerSide
	m.field.Begin(w, h, fmt.Sprintf(" %dx%d ", n, n))
	m.loop.Frame()
}

// View renders the current frame, HUD and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showJournal {
		body = m.journalView()
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.hudView(),
			RenderScreen(m.field.Screen()),
			m.help.View(m.keys),
		)
	}

	w, h := m.config.ScreenW, m.config.ScreenH
	if w <= 0 || h <= 0 {
		return body
	}
	if lipgloss.Width(body) > w || lipgloss.Height(body) > h {
		return m.theme.Notice.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			lipgloss.Width(body), lipgloss.Height(body), w, h,
		))
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, body)
}

// hudView renders the status line above the playfield.
func (m Model) hudView() string {
	snap := m.state.Snapshot()
	sep := m.theme.HUDSeparator.Render(" │ ")

	item := func(label, value string) string {
		return m.theme.HUDLabel.Render(label+" ") + m.theme.HUDValue.Render(value)
	}

	best := "-"
	if d, ok := m.clock.Fastest(snap.CellsPerSide); ok {
		best = formatDuration(d)
	}

	parts := []string{
		m.theme.HUDTitle.Render("GRIDWALK"),
		item("round", fmt.Sprint(snap.Round)),
		item("grid", fmt.Sprintf("%d×%d", snap.CellsPerSide, snap.CellsPerSide)),
		item("points", fmt.Sprintf("%d/%d", snap.Points, snap.Capacity)),
		item("moves", fmt.Sprint(snap.Moves)),
		item("best", best),
	}
	line := strings.Join(parts, sep)
	if m.lastErr != nil {
		line += sep + m.theme.Error.Render(m.lastErr.Error())
	}
	return line
}

// State exposes the game state, mainly for tests.
func (m Model) State() *game.State {
	return m.state
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

func formatDuration(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
