package sgml_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofx/sgml"
)

var _ = Describe("TagStack", func() {
	var s sgml.TagStack
	BeforeEach(func() {
		s = sgml.NewStack()
	})

	It("should start empty", func() {
		Expect(s).ToNot(BeNil())
		Expect(s.IsEmpty()).To(BeTrue())
		Expect(s.Size()).To(Equal(0))
		Expect(s.Dump()).To(BeEmpty())
	})

	Describe("Pop()", func() {
		It("should remove the innermost aggregate", func() {
			s.Push("OFX")
			s.Push("BANKMSGSRSV1")
			name, err := s.Pop()
			Expect(err).To(BeNil())
			Expect(name).To(Equal("BANKMSGSRSV1"))
			Expect(s.Size()).To(Equal(1))
		})
		It("should return an error when popping an empty stack", func() {
			name, err := s.Pop()
			Expect(err).To(MatchError("error - popping from empty stack"))
			Expect(name).To(BeEmpty())
		})
	})

	Describe("Peek()", func() {
		It("should return the innermost aggregate without removing it", func() {
			s.Push("OFX")
			name, err := s.Peek()
			Expect(err).To(BeNil())
			Expect(name).To(Equal("OFX"))
			Expect(s.Size()).To(Equal(1))
		})
		It("should return an error when peeking at an empty stack", func() {
			_, err := s.Peek()
			Expect(err).To(MatchError("error - peeking at empty stack"))
		})
	})

	Describe("Contains()", func() {
		It("should find aggregates at any depth", func() {
			s.Push("OFX")
			s.Push("SIGNONMSGSRSV1")
			s.Push("SONRS")
			Expect(s.Contains("OFX")).To(BeTrue())
			Expect(s.Contains("SONRS")).To(BeTrue())
			Expect(s.Contains("STMTRS")).To(BeFalse())
		})
	})

	Describe("Dump()", func() {
		It("should list names outermost first", func() {
			s.Push("OFX")
			s.Push("BANKMSGSRSV1")
			dump := s.Dump()
			Expect(dump).To(Equal([]string{"OFX", "BANKMSGSRSV1"}))
			dump[0] = "changed"
			Expect(s.Dump()[0]).To(Equal("OFX"))
		})
	})
})
