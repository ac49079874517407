package sgml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"github.com/golang/glog"
)

// Builder builds element trees from raw OFX SGML data.
type Builder struct {
	Cleaner Cleaner
}

// NewBuilder returns a Builder using the shared cleaner.
func NewBuilder() *Builder {
	return &Builder{Cleaner: NewCleaner()}
}

// Parse builds the element tree of the given data with the default builder.
func Parse(data []byte) (*Element, error) {
	return NewBuilder().Build(data)
}

// Build cleans the given data and returns its element tree rooted at the OFX element.
func (b *Builder) Build(data []byte) (*Element, error) {
	cleanXML, err := b.Cleaner.CleanupXML(data)
	if err != nil {
		return nil, err
	}
	glog.V(3).Infof("cleanXML: %s", cleanXML.String())
	return decodeTree(bytes.NewReader(cleanXML.Bytes()))
}

// decodeTree reads balanced XML into an element tree.
func decodeTree(r io.Reader) (*Element, error) {
	var (
		decoder = xml.NewDecoder(r)
		root    *Element
		open    []*Element
	)
	for {
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			if len(open) > 0 {
				parent := open[len(open)-1]
				parent.Children = append(parent.Children, el)
			} else if root == nil {
				root = el
			} else {
				return nil, errors.New("error - multiple root elements")
			}
			open = append(open, el)
		case xml.EndElement:
			open = open[:len(open)-1]
		case xml.CharData:
			if len(open) > 0 {
				open[len(open)-1].Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("error - empty document")
	}
	return root, nil
}
