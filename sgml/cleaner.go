package sgml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/golang/glog"
)

// Cleaner cleans the given data to return valid XML.
type Cleaner interface {
	CleanupXML(data []byte) (*bytes.Buffer, error)
}

type cleaner struct{}

var cleanerSingleton *cleaner
var initCleaner sync.Once

// entities are expanded in addition to the predefined XML ones.
var entities = map[string]string{
	"nbsp": " ",
}

// NewCleaner returns the singleton instance of cleaner. It holds no state and is safe for
// concurrent use.
func NewCleaner() Cleaner {
	initCleaner.Do(func() {
		cleanerSingleton = &cleaner{}
	})
	return cleanerSingleton
}

// CleanupXML returns balanced XML from the given OFX SGML data.
//
// Elements may omit their end tag; aggregates listed in GetAggregates are closed when their own
// end tag or an enclosing aggregate's end tag is seen, or at the end of input. A tag that is
// not a known aggregate and is directly followed by another tag is either an empty element or
// an unknown aggregate; in both cases it is dropped and its children are kept in its parent.
func (c *cleaner) CleanupXML(data []byte) (*bytes.Buffer, error) {
	var (
		xmlIndex    int                    // Index for start of XML like data.
		open        = NewStack()           // Open aggregates.
		implicit    = make(map[string]int) // Dropped tags that may be closed later.
		lastData    string                 // Holds the last parsed char data.
		lastElement *xml.StartElement      // Last parsed element start tag.
		out         xmlWriter              // Buffer to hold cleaned XML.
	)
	// Detect the start of XML like data.
	if xmlIndex = bytes.Index(data, []byte("<OFX>")); xmlIndex == -1 {
		return nil, fmt.Errorf("error - invalid file, OFX tag not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(data[xmlIndex:]))
	decoder.Entity = entities

	// Read raw tokens and re-assemble them into the output buffer, adding any missing start or
	// end tags and trimming spaces/newlines.
	for {
		token, err := decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		switch t := token.(type) {
		case xml.CharData:
			if data := strings.TrimSpace(string(t)); data != "" {
				lastData = escapeString(data)
				glog.V(3).Infof("case chardata (%s)", lastData)
			}
		case xml.StartElement:
			name := t.Name.Local
			glog.V(3).Infof("case start element %s", name)
			// A start tag while data is pending means the previous end tag is missing.
			if lastData != "" {
				if lastElement == nil {
					return nil, fmt.Errorf("error: charData(%s) missing start and end tags", lastData)
				}
				out.element(lastElement.Name.Local, lastData)
				lastData = ""
			} else if lastElement != nil {
				glog.V(3).Infof("StartTag: dropping %s, it has no data", lastElement.Name.Local)
				implicit[lastElement.Name.Local]++
			}
			lastElement = nil
			if IsAggregate(name) {
				open.Push(name)
				out.startTag(name)
			} else {
				lastElement = &t
			}
			glog.V(3).Infof("Stack: %#v", open.Dump())
		case xml.EndElement:
			name := t.Name.Local
			glog.V(3).Infof("case end element %s", name)
			isAggregate := IsAggregate(name)
			consumed := false
			if lastData != "" {
				switch {
				case lastElement == nil && isAggregate:
					return nil, fmt.Errorf("error: charData(%s) missing start and end tags", lastData)
				case lastElement == nil:
					// The element is missing its start tag.
					out.element(name, lastData)
					consumed = true
				case lastElement.Name.Local == name:
					out.element(name, lastData)
					consumed = true
				case !isAggregate && implicit[name] == 0:
					// Neither tag can be determined to be the one missing its end tag.
					return nil, fmt.Errorf("error: charData(%s) has ambigious closing tags", lastData)
				default:
					out.element(lastElement.Name.Local, lastData)
				}
			} else if lastElement != nil && lastElement.Name.Local == name {
				consumed = true
			}
			lastData = ""
			lastElement = nil
			if consumed {
				continue
			}

			if !isAggregate {
				if implicit[name] > 0 {
					implicit[name]--
				}
				continue
			}
			if !open.Contains(name) {
				glog.V(3).Infof("EndTag: %s was never opened, ignoring", name)
				continue
			}
			// Close every open tag till the current closing tag is matched.
			for !open.IsEmpty() {
				lastTag, _ := open.Pop()
				out.endTag(lastTag)
				if lastTag == name {
					break
				}
			}
			glog.V(3).Infof("Stack: %#v", open.Dump())
		}
	}

	if lastData != "" && lastElement != nil {
		out.element(lastElement.Name.Local, lastData)
	}
	for !open.IsEmpty() {
		lastTag, _ := open.Pop()
		out.endTag(lastTag)
	}
	return &out.buff, nil
}
