package timer_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tzclock/internal/timer"
)

var _ = Describe("ParseHMS", func() {
	DescribeTable("accepted input",
		func(in string, want time.Duration) {
			d, err := timer.ParseHMS(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(d).To(Equal(want))
		},
		Entry("hours, minutes, seconds", "01:02:03", time.Hour+2*time.Minute+3*time.Second),
		Entry("minutes and seconds", "25:00", 25*time.Minute),
		Entry("bare seconds", "90", 90*time.Second),
		Entry("go duration", "1h30m", 90*time.Minute),
		Entry("surrounding space", " 5m ", 5*time.Minute),
		Entry("large leading field", "100:00", 100*time.Minute),
		Entry("longest countdown", "9999:59:59", timer.MaxDuration),
	)

	DescribeTable("rejected input",
		func(in string) {
			_, err := timer.ParseHMS(in)
			Expect(err).To(MatchError(timer.ErrInvalidDuration))
		},
		Entry("empty", ""),
		Entry("garbage", "soon"),
		Entry("minute overflow", "00:60:00"),
		Entry("second overflow", "01:75"),
		Entry("too many fields", "1:2:3:4"),
		Entry("negative", "-5"),
		Entry("negative duration", "-5m"),
		Entry("hours past int64 nanoseconds", "2562048:00:00"),
		Entry("seconds past int64 nanoseconds", "9999999999999"),
		Entry("hours above the limit", "10000:00:00"),
		Entry("minutes field above the limit", "600000:00"),
		Entry("seconds one past the limit", "36000000"),
		Entry("duration above the limit", "10000h"),
		Entry("duration overflowing int64", "3000000h"),
	)
})
