package ofx

import (
	"bytes"
	"errors"
)

var (
	bom         = []byte("\xef\xbb\xbf")
	ofxStartTag = []byte("<OFX>")
	errNoOFXTag = errors.New("error - invalid file, OFX tag not found")
)

// splitDocument separates the header lines from the OFX element.
//
// OFX 1.6 separates the two with a blank line, which some institutions omit, so the
// split is made at the OFX start tag instead.
func splitDocument(content []byte) (header, body []byte, err error) {
	content = bytes.TrimPrefix(content, bom)
	start := bytes.Index(content, ofxStartTag)
	if start == -1 {
		return nil, nil, errNoOFXTag
	}
	return content[:start], content[start:], nil
}
