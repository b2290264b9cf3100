package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-road/internal/config"
	"github.com/vovakirdan/tui-road/internal/core"
	"github.com/vovakirdan/tui-road/internal/loop"
	"github.com/vovakirdan/tui-road/internal/road"
	"github.com/vovakirdan/tui-road/internal/storage"
)

// SurfaceID is the name under which the terminal screen is registered.
const SurfaceID = "canvas"

// statusLines is the number of terminal rows reserved below the field.
const statusLines = 1

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)
)

// Options configures a play Model.
type Options struct {
	Config  config.RoadConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional, runs are not recorded when nil
	Player  string
	Logger  *log.Logger
}

// RuntimeFor builds the runtime settings for a terminal of the given size.
func RuntimeFor(cfg config.RoadConfig, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickRate:     cfg.Timing.TickRate,
		ReleaseAfter: cfg.Timing.ReleaseAfter(),
	}
}

// terminalSurfaces offers the terminal screen to the driver. The screen is
// unavailable while it has no cells.
type terminalSurfaces struct {
	screen   *core.Screen
	viewport *core.Viewport
}

func (s *terminalSurfaces) Surface(id string) (core.Surface, bool) {
	if id != SurfaceID || s.screen.Width() == 0 || s.screen.Height() == 0 {
		return nil, false
	}
	return s.viewport, true
}

// alertBox keeps the last fatal error so View can show it.
type alertBox struct {
	err error
}

func (a *alertBox) Alert(err error) {
	a.err = err
}

// session tracks one drive for the run history.
type session struct {
	player    string
	startedAt time.Time
	saved     bool
	err       error
}

// Model is the Bubble Tea model that hosts one road simulation.
type Model struct {
	driver   *loop.Driver
	initial  road.Game
	field    core.Size
	screen   *core.Screen
	surfaces *terminalSurfaces
	frames   *frameScheduler
	alert    *alertBox
	held     *holdTracker
	keys     PlayKeyMap
	mapper   *KeyMapper
	help     help.Model
	store    *storage.Store
	session  *session
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a play model from the given options.
func NewModel(opts Options) (Model, error) {
	renderer, err := road.NewRenderer(opts.Config)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	game := road.NewGame(opts.Config)
	field := game.Field.Size
	w, h := fitField(field, opts.Runtime.ScreenW, opts.Runtime.ScreenH-statusLines)
	screen := core.NewScreen(w, h)
	surfaces := &terminalSurfaces{
		screen:   screen,
		viewport: core.NewViewport(screen, field, float64(w), float64(h)),
	}
	frames := &frameScheduler{tickRate: opts.Runtime.TickRate}
	alert := &alertBox{}

	driver := loop.New(game, loop.Options{
		SurfaceID: opts.Config.Surface,
		Surfaces:  surfaces,
		Scheduler: frames,
		Alerter:   alert,
		Renderer:  renderer,
		TimeScale: opts.Config.Timing.TimeScale,
		Logger:    logger,
	})

	keys := DefaultPlayKeyMap()
	return Model{
		driver:   driver,
		initial:  game,
		field:    field,
		screen:   screen,
		surfaces: surfaces,
		frames:   frames,
		alert:    alert,
		held:     newHoldTracker(opts.Runtime.ReleaseAfter),
		keys:     keys,
		mapper:   NewKeyMapper(keys),
		help:     help.New(),
		store:    opts.Store,
		session:  &session{player: opts.Player},
		logger:   logger,
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
	}, nil
}

// Init starts the driver and requests the first frame.
func (m Model) Init() tea.Cmd {
	m.session.startedAt = time.Now()
	if err := m.driver.Start(m.session.startedAt); err != nil {
		m.logger.Error("cannot start", "error", err)
		// The alert stays on screen until a key is pressed
		return nil
	}
	return m.frames.take()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.alert.err != nil {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	k := m.mapper.MapKey(msg)
	isNew, release := m.held.Press(k, time.Now())
	if release != "" {
		if err := m.driver.KeyUp(release); err != nil {
			return m.fail(err)
		}
	}
	if isNew {
		if err := m.driver.KeyDown(k); err != nil {
			return m.fail(err)
		}
	}
	return m, nil
}

// handleResize refits the field into the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width

	w, h := fitField(m.field, msg.Width, msg.Height-statusLines)
	m.screen.Resize(w, h)
	m.surfaces.viewport.Resize(float64(w), float64(h))
	m.driver.Repaint()
	return m, nil
}

// handleFrame releases keys that stopped repeating, then advances time.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.held.Expired(now) {
		if err := m.driver.KeyUp(k); err != nil {
			return m.fail(err)
		}
	}
	if err := m.driver.Tick(now); err != nil {
		return m.fail(err)
	}
	return m, m.frames.take()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.driver.Stop()
	m.saveRun()
	m.quitting = true
	return m, tea.Quit
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("simulation failed", "error", err)
	m.session.err = err
	m.saveRun()
	m.quitting = true
	return m, tea.Quit
}

// saveRun records the drive once. Storage failures are logged only.
func (m Model) saveRun() {
	if m.store == nil || m.session.saved || m.session.startedAt.IsZero() {
		return
	}
	m.session.saved = true

	run := m.Run()
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "frames", run.Frames, "scrolled", run.Scrolled)
}

// Run summarizes the drive so far.
func (m Model) Run() storage.RunEntry {
	return storage.RunEntry{
		Player:    m.session.player,
		StartedAt: m.session.startedAt,
		Duration:  time.Since(m.session.startedAt),
		Frames:    m.driver.Frames(),
		Scrolled:  m.initial.Road.Y - m.driver.Game().Road.Y,
	}
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	if m.alert.err != nil {
		return m.alert.err
	}
	return m.session.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.alert.err != nil {
		box := alertStyle.Render(fmt.Sprintf("%v\n\npress any key to exit", m.alert.err))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	field := lipgloss.Place(m.width, m.height-statusLines, lipgloss.Center, lipgloss.Center,
		RenderScreen(m.screen))
	return field + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	g := m.driver.Game()
	stats := statusStyle.Render(fmt.Sprintf("x %.0f  speed %.0f  scrolled %.0f  ",
		g.Car.Pos.X, g.Car.Speed.X, m.initial.Road.Y-g.Road.Y))
	return stats + m.help.View(m.keys)
}

// Play runs a local drive in the terminal until the user quits.
func Play(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
