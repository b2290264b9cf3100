package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-road/internal/config"
	"github.com/vovakirdan/tui-road/internal/core"
	"github.com/vovakirdan/tui-road/internal/loop"
	"github.com/vovakirdan/tui-road/internal/storage"
)

func testOptions(w, h int) Options {
	return Options{
		Config: config.DefaultRoadConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:      w,
			ScreenH:      h,
			TickRate:     60,
			ReleaseAfter: 120 * time.Millisecond,
		},
		Player: "tester",
	}
}

func newStartedModel(t *testing.T, opts Options) Model {
	t.Helper()
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should schedule the first frame")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStartsAndDraws(t *testing.T) {
	m := newStartedModel(t, testOptions(80, 26))

	if m.driver.State() != loop.StateRunning {
		t.Errorf("driver state = %s, expected Running", m.driver.State())
	}
	if m.screen.Width() != 75 || m.screen.Height() != 50 {
		t.Errorf("screen = %dx%d, expected 75x50", m.screen.Width(), m.screen.Height())
	}
	// The car is drawn in the lower middle of the field
	carColor := core.MustColor("#36A")
	if got := m.screen.Get(37, 43); got != carColor {
		t.Errorf("car pixel = %s, expected %s", got.Hex(), carColor.Hex())
	}
	if !strings.Contains(m.View(), halfBlock) {
		t.Error("View() should contain the rendered field")
	}
}

func TestModelFrameAdvancesAndReschedules(t *testing.T) {
	m := newStartedModel(t, testOptions(80, 26))
	start := m.session.startedAt

	m, cmd := update(t, m, FrameMsg(start.Add(time.Second)))
	if cmd == nil {
		t.Error("a frame should schedule the next one")
	}
	// 1s at 10 units/s and speed 10 scrolls 100
	if y := m.driver.Game().Road.Y; y != 10-100 {
		t.Errorf("Road.Y = %v, expected -90", y)
	}
	if m.Run().Scrolled != 100 {
		t.Errorf("Scrolled = %v, expected 100", m.Run().Scrolled)
	}
}

func TestModelSteering(t *testing.T) {
	m := newStartedModel(t, testOptions(80, 26))
	top := m.driver.Game().Car.MaxSpeed.X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.driver.Game().Car.Speed.X; got != top {
		t.Errorf("right: Speed.X = %v, expected %v", got, top)
	}

	// Switching direction releases the other arrow first
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.driver.Pressed(core.KeyArrowRight) {
		t.Error("right should be released")
	}
	if got := m.driver.Game().Car.Speed.X; got != -top {
		t.Errorf("left: Speed.X = %v, expected %v", got, -top)
	}

	// No repeats within the window: the key is let go on the next frame
	m, _ = update(t, m, FrameMsg(time.Now().Add(time.Second)))
	if m.driver.Pressed(core.KeyArrowLeft) {
		t.Error("left should be released after the hold window")
	}
	if got := m.driver.Game().Car.Speed.X; got != 0 {
		t.Errorf("released: Speed.X = %v, expected 0", got)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newStartedModel(t, testOptions(80, 26))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !m.help.ShowAll {
		t.Error("? should show full help")
	}
	if m.driver.Pressed("?") {
		t.Error("help key should not reach the driver")
	}
}

func TestModelResize(t *testing.T) {
	m := newStartedModel(t, testOptions(80, 26))
	frames := m.driver.Frames()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 41})
	if m.screen.Width() != 60 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 60x40", m.screen.Width(), m.screen.Height())
	}
	if m.driver.Frames() != frames+1 {
		t.Error("resize should repaint the field")
	}
	if got := m.screen.Get(30, 34); got != core.MustColor("#36A") {
		t.Errorf("car pixel after resize = %s", got.Hex())
	}
}

func TestModelNoSurfaceAlerts(t *testing.T) {
	m, err := NewModel(testOptions(0, 0))
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	if cmd := m.Init(); cmd != nil {
		t.Error("failed start should not schedule frames")
	}
	if !errors.Is(m.Err(), loop.ErrSurfaceUnavailable) {
		t.Errorf("Err() = %v, expected ErrSurfaceUnavailable", m.Err())
	}
	if !strings.Contains(m.View(), "press any key") {
		t.Error("View() should show the alert")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil || !m.quitting {
		t.Error("any key should dismiss the alert and quit")
	}
}

func TestModelUnknownSurface(t *testing.T) {
	opts := testOptions(80, 26)
	opts.Config.Surface = "elsewhere"
	m, _ := NewModel(opts)
	m.Init()
	if !errors.Is(m.Err(), loop.ErrSurfaceUnavailable) {
		t.Errorf("Err() = %v, expected ErrSurfaceUnavailable", m.Err())
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	opts := testOptions(80, 26)
	opts.Store = store
	m := newStartedModel(t, opts)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if m.driver.State() != loop.StateStopped {
		t.Errorf("driver state = %s, expected Stopped", m.driver.State())
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	// A second quit does not record the run twice
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	runs, err := store.RecentRuns("tester", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Frames != 1 {
		t.Errorf("expected one saved run with 1 frame, got %+v", runs)
	}
}

func TestHistoryModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	now := time.Now()
	for i, player := range []string{"ann", "bob", "ann"} {
		if _, err := store.SaveRun(storage.RunEntry{
			Player:    player,
			StartedAt: now.Add(time.Duration(i) * time.Minute),
			Duration:  time.Duration(i+1) * time.Second,
		}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewHistoryModel(store, "ann", 10, 80, 24)
	if len(m.Runs()) != 2 {
		t.Fatalf("ann's runs = %d, expected 2", len(m.Runs()))
	}
	if !strings.Contains(m.View(), "3 runs") {
		t.Error("summary should count all runs")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if len(m.Runs()) != 3 {
		t.Errorf("all runs = %d, expected 3", len(m.Runs()))
	}
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, "", 10, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("expected empty message without a store")
	}
}
