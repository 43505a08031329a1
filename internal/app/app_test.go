package app_test

import (
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tzclock/internal/app"
	"github.com/san-kum/tzclock/internal/clockset"
	"github.com/san-kum/tzclock/internal/sched"
	"github.com/san-kum/tzclock/internal/storage"
	"github.com/san-kum/tzclock/internal/timer"
	"github.com/san-kum/tzclock/internal/zone"
)

var _ = Describe("App", func() {
	var (
		clock *clockwork.FakeClock
		store *storage.Memory
		view  *recorder
		a     *app.App
	)

	// current builds the tick message the scheduler is waiting for.
	current := func(g sched.Group) sched.TickMsg {
		for gen := uint64(1); gen < 1000; gen++ {
			msg := sched.TickMsg{Group: g, Gen: gen}
			if a.Scheduler().Accept(msg) {
				return msg
			}
		}
		Fail("no active repeat for " + g.String())
		return sched.TickMsg{}
	}

	build := func(opts app.Options) {
		opts.Store = store
		opts.View = view
		opts.Clock = clock
		opts.Resolver = zone.NewResolverIn(time.UTC, nil)
		var err error
		a, err = app.New(opts)
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		clock = clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC))
		store = storage.NewMemory()
		view = newRecorder()
	})

	Describe("startup", func() {
		It("falls back to a single local clock", func() {
			build(app.Options{})
			Expect(a.Clocks().IDs()).To(Equal([]string{zone.Local}))
			Expect(view.created).To(HaveLen(1))
		})

		It("restores the persisted order without adding local", func() {
			Expect(store.Set(clockset.StorageKey, `["UTC","Europe/Paris"]`)).To(Succeed())
			build(app.Options{})
			Expect(a.Clocks().IDs()).To(Equal([]string{"UTC", "Europe/Paris"}))
			Expect(view.created).To(Equal([]string{"UTC", "Europe/Paris"}))
		})

		It("draws and installs the clock refresh", func() {
			build(app.Options{})
			Expect(a.Start()).NotTo(BeNil())
			Expect(view.modes).To(Equal([]app.Mode{app.ClockView}))
			Expect(view.digital[zone.Local]).To(Equal("15:00:00"))
			Expect(view.addEnabled).To(BeTrue())
			Expect(a.Scheduler().Active(sched.GroupClock)).To(BeTrue())
			Expect(a.Scheduler().Active(sched.GroupTimer)).To(BeFalse())
		})

		It("rejects a bad timer colour", func() {
			_, err := app.New(app.Options{Store: store, View: view, TimerColor: "plaid"})
			Expect(err).To(MatchError(timer.ErrInvalidColor))
		})

		It("requires a store and a view", func() {
			_, err := app.New(app.Options{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("clock refresh", func() {
		BeforeEach(func() {
			Expect(store.Set(clockset.StorageKey, `["UTC","Asia/Tokyo"]`)).To(Succeed())
			build(app.Options{Hour12: true})
			a.Start()
		})

		It("updates every clock on each tick", func() {
			clock.Advance(2 * time.Second)
			Expect(a.HandleTick(current(sched.GroupClock))).NotTo(BeNil())
			Expect(view.digital["UTC"]).To(Equal("03:00:02 PM"))
			Expect(view.digital["Asia/Tokyo"]).To(Equal("12:00:02 AM"))
		})

		It("ignores stale ticks", func() {
			stale := current(sched.GroupClock)
			a.SetStyle(app.Analog)
			Expect(a.HandleTick(stale)).To(BeNil())
		})

		It("pushes angles in analog style", func() {
			a.SetStyle(app.Analog)
			Expect(view.analog["UTC"].Hour).To(Equal(180.0))
			Expect(a.Scheduler().Active(sched.GroupClock)).To(BeTrue())
		})

		It("adds and removes clocks", func() {
			Expect(a.AddClock("Europe/London")).To(BeTrue())
			Expect(view.digital["Europe/London"]).To(Equal("04:00:00 PM"))
			Expect(a.AddClock("Europe/London")).To(BeFalse())

			Expect(a.RemoveClock("Europe/London")).To(BeTrue())
			Expect(view.destroyed).To(Equal([]string{"Europe/London"}))
			Expect(a.RemoveClock("Europe/London")).To(BeFalse())
		})

		It("disables adding once every zone is present", func() {
			for _, e := range zone.Catalog() {
				a.AddClock(e.ID)
			}
			Expect(view.addEnabled).To(BeFalse())
			a.RemoveClock("UTC")
			Expect(view.addEnabled).To(BeTrue())
		})
	})

	Describe("mode switch", func() {
		BeforeEach(func() {
			build(app.Options{})
			a.Start()
		})

		It("is a no-op for the active mode", func() {
			Expect(a.SwitchTo(app.ClockView)).To(BeNil())
			Expect(view.modes).To(HaveLen(1))
		})

		It("stops the clock refresh when entering the timer view", func() {
			stale := current(sched.GroupClock)
			a.SwitchTo(app.TimerView)

			Expect(a.Mode()).To(Equal(app.TimerView))
			Expect(view.modes).To(Equal([]app.Mode{app.ClockView, app.TimerView}))
			Expect(a.Scheduler().Active(sched.GroupClock)).To(BeFalse())
			Expect(a.HandleTick(stale)).To(BeNil())
		})

		It("shows a zero display in the timer view while idle", func() {
			a.SwitchTo(app.TimerView)
			Expect(view.lastTimer().text).To(Equal(timer.ZeroDisplay))
			Expect(a.Timer().State()).To(Equal(timer.Idle))
			Expect(a.Scheduler().Active(sched.GroupTimer)).To(BeFalse())
		})

		It("re-adds local when returning to an empty clock set", func() {
			a.RemoveClock(zone.Local)
			Expect(a.Clocks().Len()).To(BeZero())

			a.SwitchTo(app.TimerView)
			Expect(a.SwitchTo(app.ClockView)).NotTo(BeNil())
			Expect(a.Clocks().IDs()).To(Equal([]string{zone.Local}))
			Expect(a.Scheduler().Active(sched.GroupClock)).To(BeTrue())
		})

		It("resumes the timer refresh when a running timer comes back into view", func() {
			a.SwitchTo(app.TimerView)
			a.StartTimer(0, 1, 0)
			a.SwitchTo(app.ClockView)
			Expect(a.Scheduler().Active(sched.GroupTimer)).To(BeFalse())
			Expect(a.Timer().State()).To(Equal(timer.Running))

			Expect(a.SwitchTo(app.TimerView)).NotTo(BeNil())
			Expect(a.Scheduler().Active(sched.GroupTimer)).To(BeTrue())
		})

		It("toggles", func() {
			a.ToggleMode()
			Expect(a.Mode()).To(Equal(app.TimerView))
			a.ToggleMode()
			Expect(a.Mode()).To(Equal(app.ClockView))
		})
	})

	Describe("timer", func() {
		BeforeEach(func() {
			build(app.Options{Mode: app.TimerView, TimerColor: "#00ccff"})
			a.Start()
		})

		It("does not start on zero", func() {
			Expect(a.StartTimer(0, 0, 0)).To(BeNil())
			Expect(a.Scheduler().Active(sched.GroupTimer)).To(BeFalse())
		})

		It("pauses and resumes from the remaining time", func() {
			Expect(a.StartTimer(0, 0, 90)).NotTo(BeNil())
			clock.Advance(30 * time.Second)
			Expect(a.PauseTimer()).To(BeTrue())
			Expect(a.Scheduler().Active(sched.GroupTimer)).To(BeFalse())
			Expect(view.lastTimer().text).To(Equal("00:01:00"))

			clock.Advance(5 * time.Minute)
			Expect(a.StartTimer(0, 0, 90)).NotTo(BeNil())
			clock.Advance(10 * time.Second)
			a.HandleTick(current(sched.GroupTimer))
			Expect(view.lastTimer().text).To(Equal("00:00:50"))
		})

		It("expires into the alert colour and stops refreshing", func() {
			a.StartTimer(0, 0, 1)
			msg := current(sched.GroupTimer)
			clock.Advance(1500 * time.Millisecond)

			Expect(a.HandleTick(msg)).To(BeNil())
			Expect(view.lastTimer()).To(Equal(timerFrame{timer.ZeroDisplay, timer.DefaultAlertColor}))
			Expect(a.Timer().State()).To(Equal(timer.Idle))
			Expect(a.Scheduler().Active(sched.GroupTimer)).To(BeFalse())
		})

		It("keeps the alert colour over a colour change until reset", func() {
			a.StartTimer(0, 0, 1)
			clock.Advance(2 * time.Second)
			a.HandleTick(current(sched.GroupTimer))

			Expect(a.SetTimerColor("#123456")).To(Succeed())
			Expect(view.lastTimer().color).To(Equal(timer.DefaultAlertColor))

			a.ResetTimer()
			Expect(view.lastTimer()).To(Equal(timerFrame{timer.ZeroDisplay, "#123456"}))
		})

		It("resets from running", func() {
			a.StartTimer(0, 5, 0)
			a.ResetTimer()
			Expect(a.Timer().State()).To(Equal(timer.Idle))
			Expect(a.Scheduler().Active(sched.GroupTimer)).To(BeFalse())
			Expect(view.lastTimer()).To(Equal(timerFrame{timer.ZeroDisplay, "#00ccff"}))
		})
	})

	Describe("theme preference", func() {
		It("round-trips through the store", func() {
			build(app.Options{})
			_, ok := a.SavedTheme()
			Expect(ok).To(BeFalse())
			a.SaveTheme("ocean")
			name, ok := a.SavedTheme()
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("ocean"))
		})
	})
})

var _ = DescribeTable("ParseMode",
	func(in string, want app.Mode, ok bool) {
		got, err := app.ParseMode(in)
		Expect(err == nil).To(Equal(ok))
		Expect(got).To(Equal(want))
	},
	Entry("clock", "clock", app.ClockView, true),
	Entry("timer", "timer", app.TimerView, true),
	Entry("empty", "", app.ClockView, true),
	Entry("bogus", "stopwatch", app.ClockView, false),
)

var _ = DescribeTable("ParseStyle",
	func(in string, want app.Style, ok bool) {
		got, err := app.ParseStyle(in)
		Expect(err == nil).To(Equal(ok))
		Expect(got).To(Equal(want))
	},
	Entry("digital", "digital", app.Digital, true),
	Entry("analog", "analog", app.Analog, true),
	Entry("bogus", "sundial", app.Digital, false),
)
