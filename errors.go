package ofx

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an *Error.
type Kind int

const (
	// KindTokenize means the input could not be read as OFX markup at all.
	KindTokenize Kind = iota + 1
	// KindMissing means a required field or aggregate was absent.
	KindMissing
	// KindMalformed means a present field failed conversion.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTokenize:
		return "tokenize"
	case KindMissing:
		return "missing"
	case KindMalformed:
		return "malformed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinels for use with errors.Is.
var (
	ErrTokenize  = errors.New("ofx: tokenize failed")
	ErrMissing   = errors.New("ofx: required field missing")
	ErrMalformed = errors.New("ofx: malformed field")
)

// Error is the single error type returned by Parse and NewDocument.
type Error struct {
	Kind      Kind
	Aggregate string   // Aggregate that failed, e.g. STMTTRN.
	Field     string   // Field of Aggregate, empty when the aggregate itself is at fault.
	Value     string   // Raw value of a malformed field.
	Path      []string // Enclosing aggregates starting at the document root.
	Err       error    // Underlying cause, if any.
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("ofx: ")
	if len(e.Path) > 0 {
		b.WriteString(strings.Join(e.Path, ">"))
		b.WriteString(": ")
	}
	switch e.Kind {
	case KindTokenize:
		b.WriteString("tokenize failed")
	case KindMissing:
		fmt.Fprintf(&b, "%s missing required %s", e.Aggregate, e.Field)
	case KindMalformed:
		fmt.Fprintf(&b, "%s has malformed %s %q", e.Aggregate, e.Field, e.Value)
	default:
		b.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTokenize:
		return e.Kind == KindTokenize
	case ErrMissing:
		return e.Kind == KindMissing
	case ErrMalformed:
		return e.Kind == KindMalformed
	}
	return false
}

func missing(aggregate, field string) *Error {
	return &Error{Kind: KindMissing, Aggregate: aggregate, Field: field}
}

func malformed(aggregate, field, value string, cause error) *Error {
	return &Error{Kind: KindMalformed, Aggregate: aggregate, Field: field, Value: value, Err: cause}
}

func tokenize(cause error) *Error {
	return &Error{Kind: KindTokenize, Err: cause}
}

// within prefixes the path of err with the given enclosing aggregate name.
func within(name string, err error) error {
	var e *Error
	if errors.As(err, &e) {
		e.Path = append([]string{name}, e.Path...)
	}
	return err
}
