package ofx

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/shopspring/decimal"

	"github.com/rockstardevs/ofx/sgml"
)

var amountPattern = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)$`)

var errAmountFormat = errors.New("error - amount string can not be parsed")

// ParseAmount parses an OFX amount: an optional sign, digits and an optional decimal point.
// The value is kept exact.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !amountPattern.MatchString(s) {
		return decimal.Zero, errAmountFormat
	}
	return decimal.NewFromString(strings.TrimPrefix(s, "+"))
}

// fields extracts the child values of one aggregate element.
type fields struct {
	el  *sgml.Element
	loc *time.Location
}

func (f fields) aggregate() string {
	return f.el.Name
}

// getOptional returns the trimmed text of the named child, nil when absent or empty.
func (f fields) getOptional(name string) *string {
	v, ok := f.el.Value(name)
	if v = strings.TrimSpace(v); !ok || v == "" {
		return nil
	}
	return &v
}

// getRequired returns the trimmed text of the named child. An empty child counts as missing.
func (f fields) getRequired(name string) (string, error) {
	v := f.getOptional(name)
	if v == nil {
		return "", missing(f.aggregate(), name)
	}
	return *v, nil
}

func (f fields) getAmount(name string) (decimal.Decimal, error) {
	v, err := f.getRequired(name)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := ParseAmount(v)
	if err != nil {
		return decimal.Zero, malformed(f.aggregate(), name, v, err)
	}
	return amount, nil
}

func (f fields) getOptionalAmount(name string) *decimal.Decimal {
	if f.getOptional(name) == nil {
		return nil
	}
	amount, err := f.getAmount(name)
	if err != nil {
		glog.V(2).Infof("ignoring optional field: %v", err)
		return nil
	}
	return &amount
}

func (f fields) getDate(name string) (time.Time, error) {
	v, err := f.getRequired(name)
	if err != nil {
		return time.Time{}, err
	}
	t, err := ParseDate(v, f.loc)
	if err != nil {
		return time.Time{}, malformed(f.aggregate(), name, v, err)
	}
	return *t, nil
}

func (f fields) getOptionalDate(name string) *time.Time {
	if f.getOptional(name) == nil {
		return nil
	}
	t, err := f.getDate(name)
	if err != nil {
		glog.V(2).Infof("ignoring optional field: %v", err)
		return nil
	}
	return &t
}

func (f fields) getInt(name string) (int, error) {
	v, err := f.getRequired(name)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, malformed(f.aggregate(), name, v, err)
	}
	return i, nil
}

// getEnum returns the raw code of a required enumerated field. Conversion to the field's type
// is done by the caller and never fails.
func (f fields) getEnum(name string) (string, error) {
	return f.getRequired(name)
}

// child returns the named child aggregate of f, nil when absent.
func (f fields) child(name string) *sgml.Element {
	return f.el.First(name)
}

// sub returns the extractor for the given child element.
func (f fields) sub(el *sgml.Element) fields {
	return fields{el: el, loc: f.loc}
}
