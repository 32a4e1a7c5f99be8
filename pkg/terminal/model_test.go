package terminal

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/clockface/pkg/clockface"
	clocktest "github.com/go-drift/clockface/pkg/testing"
)

func testModel(t *testing.T) (Model, *clocktest.FrameTester) {
	t.Helper()
	tester := clocktest.NewFrameTesterWithT(t)
	m := NewModel(Options{
		Style:         clockface.DefaultStyle(1),
		Start:         clockface.ClockTime{Hours: 3, Minutes: 0},
		Scheduler:     tester.Scheduler(),
		RandomMinutes: func(n int) int { return 89 },
	})
	return m, tester
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// pumpFrames delivers frame messages while advancing the fake clock.
func pumpFrames(t *testing.T, m Model, tester *clocktest.FrameTester, d time.Duration) Model {
	t.Helper()
	for elapsed := time.Duration(0); elapsed <= d; elapsed += FrameInterval {
		updated, cmd := m.Update(frameMsg(tester.Clock().Now()))
		if cmd == nil {
			t.Fatal("frame message should schedule the next frame")
		}
		m = updated.(Model)
		tester.Clock().Advance(FrameInterval)
	}
	return m
}

func TestModelInit(t *testing.T) {
	m, _ := testModel(t)
	if m.Init() == nil {
		t.Fatal("Init should start the frame loop")
	}
	if got := m.ClockView().Engine().Time(); got != (clockface.ClockTime{Hours: 3}) {
		t.Errorf("start time = %v, want 03:00", got)
	}
}

func TestModelAnimateKeys(t *testing.T) {
	m, tester := testModel(t)
	m = pumpFrames(t, m, tester, time.Second)

	updated, _ := m.Update(key('n'))
	m = updated.(Model)
	engine := m.ClockView().Engine()
	if !engine.IsRunning() {
		t.Fatal("n should start an animation")
	}
	if engine.Time() != (clockface.ClockTime{Hours: 4}) {
		t.Errorf("target time = %v, want 04:00", engine.Time())
	}

	m = pumpFrames(t, m, tester, time.Second)
	if engine.IsRunning() {
		t.Error("animation did not settle")
	}
	if got := engine.MinuteRotation(); got != 4*360 {
		t.Errorf("minute rotation = %v, want 1440", got)
	}

	updated, _ = m.Update(key('m'))
	m = updated.(Model)
	if engine.Time() != (clockface.ClockTime{Hours: 4, Minutes: 15}) {
		t.Errorf("target time = %v, want 04:15", engine.Time())
	}

	updated, _ = m.Update(key('r'))
	m = updated.(Model)
	if engine.Time() != (clockface.ClockTime{Hours: 5, Minutes: 45}) {
		t.Errorf("random target = %v, want 05:45", engine.Time())
	}
}

func TestModelWrapsPastMidnight(t *testing.T) {
	got := addMinutes(clockface.ClockTime{Hours: 23, Minutes: 30}, 60)
	if got != (clockface.ClockTime{Hours: 0, Minutes: 30}) {
		t.Errorf("addMinutes = %v, want 00:30", got)
	}
}

func TestModelStopAndResume(t *testing.T) {
	m, tester := testModel(t)
	updated, _ := m.Update(key('n'))
	m = updated.(Model)
	m = pumpFrames(t, m, tester, 100*time.Millisecond)

	updated, _ = m.Update(key('s'))
	m = updated.(Model)
	if m.ClockView().IsRunning() {
		t.Fatal("s should stop the hands")
	}
	if !strings.Contains(m.View(), "stopped") {
		t.Error("status line should report stopped")
	}

	updated, _ = m.Update(key(' '))
	m = updated.(Model)
	if !m.ClockView().IsRunning() {
		t.Error("space should resume the hands")
	}
}

func TestModelView(t *testing.T) {
	m, tester := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = updated.(Model)
	m = pumpFrames(t, m, tester, time.Second)

	out := m.View()
	if !strings.Contains(out, "03:00") {
		t.Errorf("view should show the current time:\n%s", out)
	}
	if !strings.Contains(out, "╭") {
		t.Errorf("view should be framed:\n%s", out)
	}
	if !strings.ContainsAny(out, "▀▄") {
		t.Errorf("view should contain half-block pixels:\n%s", out)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := testModel(t)
	_, command := m.Update(key('q'))
	if command == nil {
		t.Fatal("q key should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Errorf("expected QuitMsg, got %T", command())
	}
}
