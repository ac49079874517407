package ofx

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OFX datetime: YYYYMMDD[HHMM[SS[.XXX]]][[gmt offset[:tz name]]]
var datePattern = regexp.MustCompile(
	`^(?P<date>\d{8})(?P<time>\d{4}(?:\d{2})?)?(?:\.(?P<frac>\d{1,3}))?(?:\[(?P<offset>[+-]?\d+(?:\.\d+)?)(?::(?P<tz>[^\]]*))?\])?$`)

var (
	errDateFormat = errors.New("error - date string can not be parsed")
	maxOffset     = decimal.NewFromInt(12)
	secondsInHour = decimal.NewFromInt(3600)
)

// ParseDate parses the given OFX formatted date string to a time.Time object.
//
// Dates without a gmt offset are interpreted in loc, or UTC when loc is nil. The offset is in
// hours and may be fractional ("5.5" is five and a half hours); the optional zone name after it
// only labels the resulting location.
func ParseDate(d string, loc *time.Location) (*time.Time, error) {
	parts := datePattern.FindStringSubmatch(strings.TrimSpace(d))
	if parts == nil {
		return nil, errDateFormat
	}
	var (
		date, clock, frac = parts[1], parts[2], parts[3]
		offset, tzName    = parts[4], parts[5]
	)
	if loc == nil {
		loc = time.UTC
	}
	if offset != "" {
		hours, err := decimal.NewFromString(strings.TrimPrefix(offset, "+"))
		if err != nil {
			return nil, errDateFormat
		}
		if hours.Abs().GreaterThan(maxOffset) {
			return nil, fmt.Errorf("error - timezone offset out of range: %s", offset)
		}
		loc = time.FixedZone(tzName, int(hours.Mul(secondsInHour).Round(0).IntPart()))
	}

	switch len(clock) {
	case 0:
		clock = "000000"
	case 4:
		clock += "00"
	}
	t, err := time.ParseInLocation("20060102150405", date+clock, loc)
	if err != nil {
		return nil, errDateFormat
	}
	if frac != "" {
		millis, _ := strconv.Atoi(frac + strings.Repeat("0", 3-len(frac)))
		t = t.Add(time.Duration(millis) * time.Millisecond)
	}
	return &t, nil
}
