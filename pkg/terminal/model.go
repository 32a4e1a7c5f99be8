// Package terminal hosts an animated clock face in a terminal using
// Bubble Tea. Frames are driven by tea.Tick; every tick steps the
// animation scheduler once and the face is redrawn with half-block
// characters.
//
// Keys:
//
//	n      animate forward one hour
//	m      animate forward fifteen minutes
//	r      animate to a random time
//	j      jump to a random time
//	s      stop both hands
//	space  resume both hands
//	q      quit
package terminal

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/clockface/pkg/animation"
	"github.com/go-drift/clockface/pkg/clockface"
	"github.com/go-drift/clockface/pkg/errors"
)

// FrameInterval is the delay between animation frames.
const FrameInterval = 16 * time.Millisecond

const minutesPerDay = 24 * 60

// frameMsg is delivered by tea.Tick once per frame.
type frameMsg time.Time

// Options configures a Model.
type Options struct {
	// Style is the clock face style.
	Style clockface.Style
	// Start is the time shown before the first key press.
	Start clockface.ClockTime
	// Scheduler supplies animation frames. Nil creates a private scheduler
	// on the real clock.
	Scheduler *animation.Scheduler
	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
	// RandomMinutes returns a minute offset in [0, n). Nil uses math/rand/v2.
	RandomMinutes func(n int) int
}

// Model is the Bubble Tea model for the clock.
type Model struct {
	view      *clockface.View
	scheduler *animation.Scheduler
	logger    *slog.Logger
	random    func(int) int

	width, height int
	renderer      *renderer
	cache         *frameCache

	frameStyle  lipgloss.Style
	statusStyle lipgloss.Style
}

// frameCache holds the last rendered face. The view's invalidate callback
// marks it dirty.
type frameCache struct {
	dirty bool
	text  string
}

// NewModel creates a clock model showing opts.Start.
func NewModel(opts Options) Model {
	if opts.Scheduler == nil {
		opts.Scheduler = animation.NewScheduler(nil)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.RandomMinutes == nil {
		opts.RandomMinutes = rand.IntN
	}

	cache := &frameCache{dirty: true}
	view := clockface.NewView(opts.Style, clockface.EngineOptions{
		Scheduler:  opts.Scheduler,
		Logger:     opts.Logger,
		Invalidate: func() { cache.dirty = true },
	})
	if err := view.SetTime(opts.Start.Hours, opts.Start.Minutes); err != nil {
		opts.Logger.Warn("ignoring start time", slog.Any("error", err))
	}

	return Model{
		view:      view,
		scheduler: opts.Scheduler,
		logger:    opts.Logger,
		random:    opts.RandomMinutes,
		renderer:  newRenderer(24),
		cache:     cache,
		frameStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D7D7D")),
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0")),
	}
}

// ClockView returns the clock view driven by the model.
func (m Model) ClockView() *clockface.View {
	return m.view
}

func frameTick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init implements tea.Model. Starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameTick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.scheduler.Step()
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// Two pixels per cell row; leave room for the border and status line.
		side := min(msg.Width-2, (msg.Height-3)*2)
		m.renderer = newRenderer(side - side%2)
		m.cache.dirty = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.view.Engine().Time()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "n":
		m.animateTo(addMinutes(now, 60))
	case "m":
		m.animateTo(addMinutes(now, 15))
	case "r":
		m.animateTo(addMinutes(now, 1+m.random(minutesPerDay-1)))
	case "j":
		target := addMinutes(now, 1+m.random(minutesPerDay-1))
		if err := m.view.SetTime(target.Hours, target.Minutes); err != nil {
			errors.ReportError("terminal.jump", err)
		}
	case "s":
		m.view.Stop()
		m.cache.dirty = true
	case " ", "space":
		m.view.Start()
	}
	return m, nil
}

func (m Model) animateTo(t clockface.ClockTime) {
	m.logger.Debug("animating", slog.String("to", t.String()))
	if err := m.view.AnimateToTime(t.Hours, t.Minutes); err != nil {
		errors.ReportError("terminal.animateTo", err)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.cache.dirty {
		m.cache.text = m.renderer.render(m.view)
		m.cache.dirty = false
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.frameStyle.Render(m.cache.text),
		m.statusStyle.Render(m.status()),
	)
}

func (m Model) status() string {
	e := m.view.Engine()
	state := "idle"
	switch {
	case e.IsRunning():
		state = "running"
	case e.Hand(clockface.MinuteHand).Interrupted:
		state = "stopped"
	}
	return fmt.Sprintf(" %s  %s  n/m/r/j/s/space/q", e.Time(), state)
}

func addMinutes(t clockface.ClockTime, minutes int) clockface.ClockTime {
	total := (t.ToMinutes() + minutes) % minutesPerDay
	return clockface.ClockTime{Hours: total / 60, Minutes: total % 60}
}

// Run starts a full-screen program for m and blocks until it exits.
// A panic inside the program is reported and returned as an error.
func Run(m Model, opts ...tea.ProgramOption) (err error) {
	defer errors.RecoverWithCallback("terminal.Run", func(r any) {
		err = fmt.Errorf("terminal: panic: %v", r)
	})
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err = tea.NewProgram(m, opts...).Run()
	return err
}
