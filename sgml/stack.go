package sgml

import (
	"errors"
)

var (
	errPopEmpty  = errors.New("error - popping from empty stack")
	errPeekEmpty = errors.New("error - peeking at empty stack")
)

// TagStack holds the names of the aggregates open at the current point of a document.
type TagStack interface {
	Push(name string)
	Pop() (string, error)
	Peek() (string, error)
	Contains(name string) bool
	IsEmpty() bool
	Size() int
	Dump() []string
}

type tagStack []string

// NewStack returns an empty stack.
func NewStack() TagStack {
	s := make(tagStack, 0, 16)
	return &s
}

func (s *tagStack) Push(name string) {
	*s = append(*s, name)
}

// Pop removes and returns the innermost open aggregate.
func (s *tagStack) Pop() (string, error) {
	top, err := s.Peek()
	if err != nil {
		return "", errPopEmpty
	}
	*s = (*s)[:len(*s)-1]
	return top, nil
}

// Peek returns the innermost open aggregate.
func (s *tagStack) Peek() (string, error) {
	if len(*s) == 0 {
		return "", errPeekEmpty
	}
	return (*s)[len(*s)-1], nil
}

// Contains returns true if name is open at any depth.
func (s *tagStack) Contains(name string) bool {
	for i := len(*s) - 1; i >= 0; i-- {
		if (*s)[i] == name {
			return true
		}
	}
	return false
}

func (s *tagStack) IsEmpty() bool {
	return len(*s) == 0
}

func (s *tagStack) Size() int {
	return len(*s)
}

// Dump returns a copy of the open aggregates, outermost first.
func (s *tagStack) Dump() []string {
	return append([]string(nil), (*s)...)
}
