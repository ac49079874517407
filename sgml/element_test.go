package sgml_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofx/sgml"
)

var _ = Describe("Element", func() {
	var el *sgml.Element
	BeforeEach(func() {
		el = &sgml.Element{
			Name: "BANKTRANLIST",
			Children: []*sgml.Element{
				{Name: "DTSTART", Text: "20190101"},
				{Name: "STMTTRN", Children: []*sgml.Element{{Name: "FITID", Text: "A"}}},
				{Name: "STMTTRN", Children: []*sgml.Element{{Name: "FITID", Text: "B"}}},
				{Name: "STMTTRN", Children: []*sgml.Element{{Name: "FITID", Text: "C"}}},
			},
		}
	})
	Describe("First()", func() {
		It("should return the first child with the name", func() {
			Expect(el.First("STMTTRN")).To(BeIdenticalTo(el.Children[1]))
		})
		It("should return nil when no child has the name", func() {
			Expect(el.First("DTEND")).To(BeNil())
		})
		It("should return nil on a nil element", func() {
			var missing *sgml.Element
			Expect(missing.First("DTEND")).To(BeNil())
		})
	})
	Describe("All()", func() {
		It("should return every child with the name in document order", func() {
			all := el.All("STMTTRN")
			Expect(all).To(HaveLen(3))
			ids := make([]string, 0, len(all))
			for _, t := range all {
				id, _ := t.Value("FITID")
				ids = append(ids, id)
			}
			Expect(ids).To(Equal([]string{"A", "B", "C"}))
		})
		It("should return nothing when no child has the name", func() {
			Expect(el.All("PAYEE")).To(BeEmpty())
		})
	})
	Describe("Value()", func() {
		It("should return the text of a present child", func() {
			v, ok := el.Value("DTSTART")
			Expect(ok).To(BeTrue())
			Expect(v).To(Equal("20190101"))
		})
		It("should report an absent child", func() {
			v, ok := el.Value("DTEND")
			Expect(ok).To(BeFalse())
			Expect(v).To(BeEmpty())
		})
	})
	Describe("Names()", func() {
		It("should list the children in document order", func() {
			Expect(el.Names()).To(Equal([]string{"DTSTART", "STMTTRN", "STMTTRN", "STMTTRN"}))
		})
	})
	Describe("IsLeaf()", func() {
		It("should tell leaves from aggregates", func() {
			Expect(el.IsLeaf()).To(BeFalse())
			Expect(el.Children[0].IsLeaf()).To(BeTrue())
		})
	})
})
