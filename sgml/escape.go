package sgml

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/golang/glog"
)

// escapeString returns the XML escaped equivalent of the plain text s. Runes outside the XML
// character range and invalid UTF-8 bytes are replaced with U+FFFD.
func escapeString(s string) string {
	var b strings.Builder
	// strings.Builder never fails a write.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// xmlWriter emits balanced XML for the cleaner. Attributes are never written, OFX 1.6 has none.
type xmlWriter struct {
	buff bytes.Buffer
}

func (w *xmlWriter) startTag(name string) {
	glog.V(3).Infof("open: %s", name)
	w.buff.WriteByte('<')
	w.buff.WriteString(name)
	w.buff.WriteByte('>')
}

func (w *xmlWriter) endTag(name string) {
	glog.V(3).Infof("close: %s", name)
	w.buff.WriteString("</")
	w.buff.WriteString(name)
	w.buff.WriteByte('>')
}

// element writes a leaf element holding already escaped data.
func (w *xmlWriter) element(name, data string) {
	w.startTag(name)
	w.buff.WriteString(data)
	w.endTag(name)
}
