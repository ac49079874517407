package sgml_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofx/sgml"
)

type FakeCleaner struct {
	err  error
	data string
}

func (f FakeCleaner) CleanupXML(data []byte) (*bytes.Buffer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return bytes.NewBufferString(f.data), nil
}

var _ = Describe("Builder", func() {
	Describe("Parse()", func() {
		Context("when given OFX SGML", func() {
			It("should build an ordered tree", func() {
				root, err := sgml.Parse([]byte(`<OFX>
					<BANKTRANLIST>
					<DTSTART>20190101
					<STMTTRN><TRNTYPE>DEBIT<FITID>3</STMTTRN>
					<STMTTRN><TRNTYPE>CREDIT<FITID>1</STMTTRN>
					<STMTTRN><TRNTYPE>DEBIT<FITID>2</STMTTRN>
					</BANKTRANLIST>
					</OFX>`))
				Expect(err).To(BeNil())
				Expect(root.Name).To(Equal("OFX"))
				list := root.First("BANKTRANLIST")
				Expect(list).NotTo(BeNil())
				Expect(list.Names()).To(Equal([]string{"DTSTART", "STMTTRN", "STMTTRN", "STMTTRN"}))
				ids := []string{}
				for _, t := range list.All("STMTTRN") {
					id, ok := t.Value("FITID")
					Expect(ok).To(BeTrue())
					ids = append(ids, id)
				}
				Expect(ids).To(Equal([]string{"3", "1", "2"}))
			})
			It("should unescape text", func() {
				root, err := sgml.Parse([]byte(`<OFX><NAME>AT&amp;T</OFX>`))
				Expect(err).To(BeNil())
				name, _ := root.Value("NAME")
				Expect(name).To(Equal("AT&T"))
			})
		})
		Context("when the data can not be cleaned", func() {
			It("should return the cleaner error", func() {
				b := &sgml.Builder{Cleaner: FakeCleaner{err: errors.New("test error - failed to clean data")}}
				root, err := b.Build(nil)
				Expect(root).To(BeNil())
				Expect(err).To(MatchError("test error - failed to clean data"))
			})
		})
		Context("when the cleaned data is not XML", func() {
			It("should return an error", func() {
				b := &sgml.Builder{Cleaner: FakeCleaner{data: "><"}}
				root, err := b.Build(nil)
				Expect(root).To(BeNil())
				Expect(err).To(HaveOccurred())
			})
		})
	})
	Describe("DecodeTree()", func() {
		It("should reject empty input", func() {
			root, err := sgml.DecodeTree(strings.NewReader(""))
			Expect(root).To(BeNil())
			Expect(err).To(MatchError("error - empty document"))
		})
		It("should reject multiple roots", func() {
			root, err := sgml.DecodeTree(strings.NewReader("<A></A><B></B>"))
			Expect(root).To(BeNil())
			Expect(err).To(MatchError("error - multiple root elements"))
		})
		It("should keep leaf text", func() {
			root, err := sgml.DecodeTree(strings.NewReader("<OFX><CODE>0</CODE></OFX>"))
			Expect(err).To(BeNil())
			Expect(root.Children).To(HaveLen(1))
			Expect(root.Children[0].Text).To(Equal("0"))
		})
	})
})
