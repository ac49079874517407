package ofx_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofx"
)

var _ = Describe("ParseDate()", func() {
	var (
		minus11 = time.FixedZone("TTT", -11*60*60)
		plus10  = time.FixedZone("TTT", 10*60*60)
		est     = time.Date(1996, 10, 5, 18, 22, 0, 124000000, time.UTC)
	)
	Context("when given a valid date string", func() {
		DescribeTable("should parse to a time.", func(input string, expected time.Time, loc *time.Location) {
			got, err := ofx.ParseDate(input, loc)
			Expect(err).To(Succeed())
			Expect(*got).To(BeTemporally("==", expected))
		},
			Entry("YYYYMMDD", "20191001", time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC), time.UTC),
			Entry("YYYYMMDD in location", "20191001", time.Date(2019, 10, 1, 0, 0, 0, 0, minus11), minus11),
			Entry("YYYYMMDDHHMM", "201711080900", time.Date(2017, 11, 8, 9, 0, 0, 0, time.UTC), time.UTC),
			Entry("YYYYMMDDHHMMSS", "20171108090000", time.Date(2017, 11, 8, 9, 0, 0, 0, time.UTC), time.UTC),
			Entry("YYYYMMDDHHMMSS in location", "20171108090000", time.Date(2017, 11, 8, 9, 0, 0, 0, plus10), plus10),
			Entry("YYYYMMDDHHMMSS.XXX", "19961005132200.124", time.Date(1996, 10, 5, 13, 22, 0, 124000000, time.UTC), time.UTC),
			Entry("YYYYMMDDHHMMSS.XXX[0:GMT]", "20170226120000.000[0:GMT]", time.Date(2017, 2, 26, 12, 0, 0, 0, time.UTC), time.UTC),
			Entry("offset overrides location", "20170226120000.000[0:GMT]", time.Date(2017, 2, 26, 12, 0, 0, 0, time.UTC), plus10),
			Entry("[-5:EST]", "19961005132200.124[-5:EST]", est, time.UTC),
			Entry("[-5]", "19961005132200.124[-5]", est, time.UTC),
			Entry("[-5:]", "19961005132200.124[-5:]", est, time.UTC),
			Entry("[-5.0:EST]", "19961005132200.124[-5.0:EST]", est, time.UTC),
			Entry("[+3:MSK]", "19961005212200.124[+3:MSK]", est, time.UTC),
			Entry("[+3]", "19961005212200.124[+3]", est, time.UTC),
			Entry("[+3.0]", "19961005212200.124[+3.0]", est, time.UTC),
			Entry("fractional offset", "20190101[5.5:IST]", time.Date(2018, 12, 31, 18, 30, 0, 0, time.UTC), time.UTC),
			Entry("short fraction", "20190101000000.5", time.Date(2019, 1, 1, 0, 0, 0, 500000000, time.UTC), time.UTC),
			Entry("surrounding spaces", " 20191001 ", time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC), time.UTC),
		)
		It("should default to UTC", func() {
			got, err := ofx.ParseDate("20191001", nil)
			Expect(err).To(BeNil())
			Expect(got.Location()).To(Equal(time.UTC))
		})
		It("should name the location after the zone", func() {
			got, err := ofx.ParseDate("19961005132200[-5:EST]", nil)
			Expect(err).To(BeNil())
			name, offset := got.Zone()
			Expect(name).To(Equal("EST"))
			Expect(offset).To(Equal(-5 * 60 * 60))
		})
	})
	Context("when given a invalid date string", func() {
		DescribeTable("should return an error.", func(input string) {
			got, err := ofx.ParseDate(input, time.UTC)
			Expect(got).To(BeNil())
			Expect(err).To(MatchError("error - date string can not be parsed"))
		},
			Entry("Empty", ""),
			Entry("Invalid text", "test"),
			Entry("Invalid format", "2019/01/02"),
			Entry("Missing month and date", "2019"),
			Entry("Missing date", "2019-01"),
			Entry("Invalid month", "20191301"),
			Entry("All zeros", "00000000000000"),
			Entry("Missing offset", "20190101[-:EST]"),
			Entry("Trailing garbage", "20190101x"),
		)
		It("should reject offsets beyond twelve hours", func() {
			got, err := ofx.ParseDate("20190101[-13:XXX]", time.UTC)
			Expect(got).To(BeNil())
			Expect(err).To(MatchError("error - timezone offset out of range: -13"))
		})
	})
})
