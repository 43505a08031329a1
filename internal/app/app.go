package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/san-kum/tzclock/internal/clockset"
	"github.com/san-kum/tzclock/internal/sched"
	"github.com/san-kum/tzclock/internal/timer"
	"github.com/san-kum/tzclock/internal/zone"
)

// Mode selects the active top-level view.
type Mode int

const (
	ClockView Mode = iota
	TimerView
)

func (m Mode) String() string {
	if m == TimerView {
		return "timer"
	}
	return "clock"
}

// ParseMode accepts "clock" and "timer".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "clock", "":
		return ClockView, nil
	case "timer":
		return TimerView, nil
	}
	return ClockView, fmt.Errorf("app: unknown mode %q", s)
}

// Style selects how clocks are drawn. It does not affect time computation.
type Style int

const (
	Digital Style = iota
	Analog
)

func (s Style) String() string {
	if s == Analog {
		return "analog"
	}
	return "digital"
}

// ParseStyle accepts "digital" and "analog".
func ParseStyle(s string) (Style, error) {
	switch s {
	case "digital", "":
		return Digital, nil
	case "analog":
		return Analog, nil
	}
	return Digital, fmt.Errorf("app: unknown view style %q", s)
}

// ThemeKey is the store slot holding the selected theme name.
const ThemeKey = "theme"

// Renderer is the rendering collaborator.
type Renderer interface {
	clockset.SlotRenderer
	UpdateDigital(id, text string)
	UpdateAnalog(id string, a zone.Angles)
	ShowMode(m Mode)
	UpdateTimer(text, color string)
	SetAddEnabled(enabled bool)
}

// Options configures New. Zero values pick the defaults.
type Options struct {
	Store         clockset.Store
	View          Renderer
	Clock         clockwork.Clock
	Resolver      *zone.Resolver
	Log           *zap.Logger
	Mode          Mode
	Style         Style
	Hour12        bool
	ClockInterval time.Duration
	TimerInterval time.Duration
	TimerColor    string
	AlertColor    string
}

// App is the owned application state.
type App struct {
	store    clockset.Store
	view     Renderer
	clock    clockwork.Clock
	resolver *zone.Resolver
	log      *zap.Logger
	sched    *sched.Scheduler
	clocks   *clockset.Manager
	timer    *timer.Countdown

	mode          Mode
	style         Style
	hour12        bool
	clockInterval time.Duration
	timerInterval time.Duration
}

// New restores the clock set and builds the countdown. No refresh runs until Start.
func New(opts Options) (*App, error) {
	if opts.Store == nil || opts.View == nil {
		return nil, fmt.Errorf("app: store and view are required")
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Resolver == nil {
		opts.Resolver = zone.NewResolver(opts.Log)
	}
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = time.Second
	}
	if opts.TimerInterval <= 0 {
		opts.TimerInterval = 100 * time.Millisecond
	}

	cd := timer.New(opts.Clock)
	if opts.TimerColor != "" {
		if err := cd.SetColor(opts.TimerColor); err != nil {
			return nil, err
		}
	}
	if opts.AlertColor != "" {
		if err := cd.SetAlertColor(opts.AlertColor); err != nil {
			return nil, err
		}
	}

	return &App{
		store:         opts.Store,
		view:          opts.View,
		clock:         opts.Clock,
		resolver:      opts.Resolver,
		log:           opts.Log,
		sched:         sched.New(),
		clocks:        clockset.New(opts.Store, opts.View, opts.Log),
		timer:         cd,
		mode:          opts.Mode,
		style:         opts.Style,
		hour12:        opts.Hour12,
		clockInterval: opts.ClockInterval,
		timerInterval: opts.TimerInterval,
	}, nil
}

func (a *App) Mode() Mode                  { return a.mode }
func (a *App) Style() Style                { return a.style }
func (a *App) Hour12() bool                { return a.hour12 }
func (a *App) Clocks() *clockset.Manager   { return a.clocks }
func (a *App) Timer() *timer.Countdown     { return a.timer }
func (a *App) Scheduler() *sched.Scheduler { return a.sched }

// Start shows the initial mode, draws it once and installs its refresh.
func (a *App) Start() tea.Cmd {
	a.view.ShowMode(a.mode)
	a.updateAddEnabled()
	a.refreshClocks()
	a.view.UpdateTimer(a.timerReading())
	return a.enter(a.mode)
}

// SwitchTo activates mode, stopping the other view's refresh.
func (a *App) SwitchTo(mode Mode) tea.Cmd {
	if mode == a.mode {
		return nil
	}
	a.leave(a.mode)
	a.mode = mode
	a.view.ShowMode(mode)
	a.log.Debug("mode switched", zap.Stringer("mode", mode))

	switch mode {
	case ClockView:
		if a.clocks.Len() == 0 {
			a.AddClock(zone.Local)
		}
		a.refreshClocks()
	case TimerView:
		a.view.UpdateTimer(a.timerReading())
	}
	return a.enter(mode)
}

// ToggleMode switches to the inactive view.
func (a *App) ToggleMode() tea.Cmd {
	if a.mode == ClockView {
		return a.SwitchTo(TimerView)
	}
	return a.SwitchTo(ClockView)
}

func (a *App) enter(mode Mode) tea.Cmd {
	switch mode {
	case ClockView:
		return a.sched.Every(sched.GroupClock, a.clockInterval)
	case TimerView:
		if a.timer.State() == timer.Running {
			return a.sched.Every(sched.GroupTimer, a.timerInterval)
		}
	}
	return nil
}

func (a *App) leave(mode Mode) {
	switch mode {
	case ClockView:
		a.sched.Cancel(sched.GroupClock)
	case TimerView:
		a.sched.Cancel(sched.GroupTimer)
	}
}

// SetStyle changes the clock face style and reinstalls the clock refresh.
func (a *App) SetStyle(s Style) tea.Cmd {
	if s == a.style {
		return nil
	}
	a.style = s
	a.refreshClocks()
	if a.mode != ClockView {
		return nil
	}
	return a.sched.Every(sched.GroupClock, a.clockInterval)
}

// ToggleStyle flips between digital and analog faces.
func (a *App) ToggleStyle() tea.Cmd {
	if a.style == Digital {
		return a.SetStyle(Analog)
	}
	return a.SetStyle(Digital)
}

// SetHour12 switches the digital format and redraws.
func (a *App) SetHour12(on bool) {
	a.hour12 = on
	a.refreshClocks()
}

// AddClock adds id to the clock set and draws it immediately.
func (a *App) AddClock(id string) bool {
	if !a.clocks.Add(id) {
		return false
	}
	a.log.Info("clock added", zap.String("zone", id))
	a.updateAddEnabled()
	a.refreshClock(id, a.clock.Now())
	return true
}

// RemoveClock removes id from the clock set.
func (a *App) RemoveClock(id string) bool {
	if !a.clocks.Remove(id) {
		return false
	}
	a.log.Info("clock removed", zap.String("zone", id))
	a.updateAddEnabled()
	return true
}

// StartTimer starts or resumes the countdown.
func (a *App) StartTimer(hours, minutes, seconds int) tea.Cmd {
	return a.startTimer(a.timer.Start(hours, minutes, seconds))
}

// StartTimerDuration starts or resumes the countdown with a duration.
func (a *App) StartTimerDuration(d time.Duration) tea.Cmd {
	return a.startTimer(a.timer.StartDuration(d))
}

func (a *App) startTimer(started bool) tea.Cmd {
	if !started {
		return nil
	}
	a.log.Info("timer started", zap.Duration("remaining", a.timer.Remaining()))
	a.view.UpdateTimer(a.timerReading())
	if a.mode != TimerView {
		return nil
	}
	return a.sched.Every(sched.GroupTimer, a.timerInterval)
}

// PauseTimer pauses a running countdown and stops its refresh.
func (a *App) PauseTimer() bool {
	if !a.timer.Pause() {
		return false
	}
	a.sched.Cancel(sched.GroupTimer)
	a.log.Info("timer paused", zap.Duration("remaining", a.timer.Remaining()))
	a.view.UpdateTimer(a.timerReading())
	return true
}

// ResetTimer clears the countdown from any state.
func (a *App) ResetTimer() {
	a.timer.Reset()
	a.sched.Cancel(sched.GroupTimer)
	a.view.UpdateTimer(a.timerReading())
}

// SetTimerColor changes the countdown colour and redraws it.
func (a *App) SetTimerColor(c string) error {
	if err := a.timer.SetColor(c); err != nil {
		return err
	}
	a.view.UpdateTimer(a.timerReading())
	return nil
}

// HandleTick processes a refresh tick and returns the next one. Ticks from
// cancelled or replaced repeats are ignored.
func (a *App) HandleTick(msg sched.TickMsg) tea.Cmd {
	if !a.sched.Accept(msg) {
		return nil
	}
	switch msg.Group {
	case sched.GroupClock:
		a.refreshClocks()
	case sched.GroupTimer:
		r := a.timer.Tick()
		a.view.UpdateTimer(r.Text, r.Color)
		if r.State != timer.Running {
			a.sched.Cancel(sched.GroupTimer)
			if r.Expired {
				a.log.Info("timer expired")
			}
			return nil
		}
	}
	return a.sched.Next(msg)
}

// SavedTheme returns the persisted theme name.
func (a *App) SavedTheme() (string, bool) {
	return a.store.Get(ThemeKey)
}

// SaveTheme persists the theme name. Failures are logged only.
func (a *App) SaveTheme(name string) {
	if err := a.store.Set(ThemeKey, name); err != nil {
		a.log.Warn("persist theme", zap.Error(err))
	}
}

// Resolve returns the time of day for id, falling back to local time.
func (a *App) Resolve(id string) zone.TimeOfDay {
	return a.resolver.ResolveOrLocal(id, a.clock.Now(), a.hour12)
}

func (a *App) refreshClocks() {
	now := a.clock.Now()
	for _, id := range a.clocks.IDs() {
		a.refreshClock(id, now)
	}
}

func (a *App) refreshClock(id string, now time.Time) {
	tod := a.resolver.ResolveOrLocal(id, now, a.hour12)
	if a.style == Analog {
		a.view.UpdateAnalog(id, zone.HandAngles(tod))
		return
	}
	a.view.UpdateDigital(id, zone.Digital(tod))
}

func (a *App) timerReading() (string, string) {
	r := a.timer.Reading()
	return r.Text, r.Color
}

func (a *App) updateAddEnabled() {
	a.view.SetAddEnabled(len(a.clocks.AvailableForAdd()) > 0)
}
