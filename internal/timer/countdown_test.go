package timer_test

import (
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tzclock/internal/timer"
)

var _ = Describe("Countdown", func() {
	var (
		clock *clockwork.FakeClock
		cd    *timer.Countdown
	)

	BeforeEach(func() {
		clock = clockwork.NewFakeClock()
		cd = timer.New(clock)
	})

	It("starts idle at zero", func() {
		Expect(cd.State()).To(Equal(timer.Idle))
		Expect(cd.Reading().Text).To(Equal(timer.ZeroDisplay))
		Expect(cd.Remaining()).To(BeZero())
	})

	It("ignores a zero duration", func() {
		Expect(cd.Start(0, 0, 0)).To(BeFalse())
		Expect(cd.State()).To(Equal(timer.Idle))
	})

	It("counts down from the deadline", func() {
		Expect(cd.Start(1, 2, 3)).To(BeTrue())
		Expect(cd.State()).To(Equal(timer.Running))
		Expect(cd.Tick().Text).To(Equal("01:02:03"))

		clock.Advance(3*time.Second + 500*time.Millisecond)
		Expect(cd.Tick().Text).To(Equal("01:02:00"))
	})

	It("clamps fields too large to represent to the longest countdown", func() {
		Expect(cd.Start(3000000, 0, 0)).To(BeTrue())
		Expect(cd.State()).To(Equal(timer.Running))
		Expect(cd.Remaining()).To(Equal(timer.MaxDuration))
		Expect(cd.Reading().Text).To(Equal("9999:59:59"))
	})

	It("clamps a total above the limit", func() {
		Expect(cd.Start(9999, 59, 120)).To(BeTrue())
		Expect(cd.Remaining()).To(Equal(timer.MaxDuration))
	})

	It("clamps long durations", func() {
		Expect(cd.StartDuration(20000 * time.Hour)).To(BeTrue())
		Expect(cd.Remaining()).To(Equal(timer.MaxDuration))
	})

	It("treats negative fields as zero", func() {
		Expect(cd.Start(-1, 0, 30)).To(BeTrue())
		Expect(cd.Remaining()).To(Equal(30 * time.Second))
	})

	It("does not restart while running", func() {
		cd.Start(0, 0, 90)
		clock.Advance(10 * time.Second)
		Expect(cd.Start(0, 5, 0)).To(BeFalse())
		Expect(cd.Remaining()).To(Equal(80 * time.Second))
	})

	Describe("pause and resume", func() {
		It("continues from the remaining time", func() {
			cd.Start(0, 0, 90)
			clock.Advance(20 * time.Second)

			Expect(cd.Pause()).To(BeTrue())
			Expect(cd.State()).To(Equal(timer.Paused))
			Expect(cd.Remaining()).To(Equal(70 * time.Second))

			clock.Advance(time.Hour)
			Expect(cd.Remaining()).To(Equal(70 * time.Second))
			Expect(cd.Tick().Text).To(Equal("00:01:10"))

			Expect(cd.Start(0, 0, 90)).To(BeTrue())
			Expect(cd.State()).To(Equal(timer.Running))
			Expect(cd.Remaining()).To(Equal(70 * time.Second))

			clock.Advance(10 * time.Second)
			Expect(cd.Tick().Text).To(Equal("00:01:00"))
		})

		It("resumes immediately after pausing with almost the full time", func() {
			cd.Start(0, 0, 90)
			clock.Advance(250 * time.Millisecond)
			cd.Pause()
			cd.Start(0, 0, 0)
			Expect(cd.Remaining()).To(BeNumerically("~", 90*time.Second, time.Second))
			Expect(cd.Remaining()).To(BeNumerically("<", 90*time.Second))
		})

		It("only pauses a running timer", func() {
			Expect(cd.Pause()).To(BeFalse())
			cd.Start(0, 1, 0)
			cd.Pause()
			Expect(cd.Pause()).To(BeFalse())
		})
	})

	Describe("expiry", func() {
		It("locks at zero in the alert colour and leaves Running", func() {
			cd.Start(0, 0, 1)
			clock.Advance(1100 * time.Millisecond)

			r := cd.Tick()
			Expect(r.Expired).To(BeTrue())
			Expect(r.Text).To(Equal(timer.ZeroDisplay))
			Expect(r.Color).To(Equal(timer.DefaultAlertColor))
			Expect(r.State).To(Equal(timer.Idle))
			Expect(cd.State()).NotTo(Equal(timer.Running))
			Expect(cd.Alerting()).To(BeTrue())

			again := cd.Tick()
			Expect(again.Expired).To(BeFalse())
			Expect(again.Text).To(Equal(timer.ZeroDisplay))
		})

		It("keeps the alert colour over a new colour until reset", func() {
			cd.Start(0, 0, 1)
			clock.Advance(2 * time.Second)
			cd.Tick()

			Expect(cd.SetColor("#00ff00")).To(Succeed())
			Expect(cd.Reading().Color).To(Equal(timer.DefaultAlertColor))

			cd.Reset()
			Expect(cd.Reading().Color).To(Equal("#00ff00"))
			Expect(cd.Alerting()).To(BeFalse())
		})
	})

	Describe("reset", func() {
		It("returns to idle from any state", func() {
			for _, prepare := range []func(){
				func() {},
				func() { cd.Start(0, 0, 30) },
				func() { cd.Start(0, 0, 30); cd.Pause() },
			} {
				prepare()
				cd.Reset()
				Expect(cd.State()).To(Equal(timer.Idle))
				Expect(cd.Remaining()).To(BeZero())
				Expect(cd.Reading().Text).To(Equal(timer.ZeroDisplay))
			}
		})
	})

	Describe("colours", func() {
		It("normalises hex input", func() {
			Expect(cd.SetColor("0F0")).To(Succeed())
			Expect(cd.Color()).To(Equal("#00ff00"))
		})

		It("rejects garbage", func() {
			Expect(cd.SetColor("banana")).To(MatchError(timer.ErrInvalidColor))
			Expect(cd.Color()).To(Equal(timer.DefaultColor))
		})
	})
})

var _ = DescribeTable("FormatDuration",
	func(d time.Duration, want string) {
		Expect(timer.FormatDuration(d)).To(Equal(want))
	},
	Entry("zero", time.Duration(0), "00:00:00"),
	Entry("negative", -time.Second, "00:00:00"),
	Entry("partial second rounds up", 1500*time.Millisecond, "00:00:02"),
	Entry("ninety seconds", 90*time.Second, "00:01:30"),
	Entry("over a day", 25*time.Hour+time.Minute, "25:01:00"),
)
