package ofx

import (
	"bufio"
	"bytes"
	"errors"
	"strconv"
	"strings"
)

//revive:disable:exported

// Version is the VERSION header.
type Version string

const (
	V102 Version = "102"
	V103 Version = "103"
	V151 Version = "151"
	V160 Version = "160"
)

// DataType is the DATA header.
type DataType string

const OFXSGML DataType = "OFXSGML"

// Security is the SECURITY header.
type Security string

const (
	SecurityNone  Security = "NONE"
	SecurityType1 Security = "TYPE1"
)

// Encoding is the ENCODING header. Transcoding is left to the caller.
type Encoding string

const (
	USASCII Encoding = "USASCII"
	UNICODE Encoding = "UNICODE"
	UTF8    Encoding = "UTF-8"
)

//revive:enable:exported

const headerAggregate = "HEADER"

// Header holds the OFX headers preceding the OFX element. All header values are closed sets,
// an unknown value fails the document since the rest of it can not be trusted to be OFX 1.x
// SGML.
type Header struct {
	OFXHeader   int      `yaml:"ofxheader"`
	Data        DataType `yaml:"data"`
	Version     Version  `yaml:"version"`
	Security    Security `yaml:"security"`
	Encoding    Encoding `yaml:"encoding"`
	Charset     string   `yaml:"charset"`
	Compression *string  `yaml:"compression,omitempty"`
	OldFileUID  string   `yaml:"oldfileuid"`
	NewFileUID  string   `yaml:"newfileuid"`
}

var errXMLHeader = errors.New("error - OFX 2.x XML documents are not supported")

// ParseHeader parses the key:value header lines of an OFX 1.x document.
func ParseHeader(data []byte) (*Header, error) {
	if bytes.Contains(data, []byte("<?")) {
		return nil, malformed(headerAggregate, "OFXHEADER", "<?OFX", errXMLHeader)
	}
	values := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, malformed(headerAggregate, "line", line, nil)
		}
		values[strings.ToUpper(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, tokenize(err)
	}

	var (
		h   = &Header{}
		err error
	)
	required := func(key string) (string, error) {
		v, found := values[key]
		if !found || v == "" {
			return "", missing(headerAggregate, key)
		}
		return v, nil
	}
	// closed returns the value of key, def when absent, failing for values outside codes.
	closed := func(key, def string, codes ...string) (string, error) {
		v, found := values[key]
		if !found || v == "" {
			return def, nil
		}
		for _, c := range codes {
			if strings.EqualFold(v, c) {
				return c, nil
			}
		}
		return "", malformed(headerAggregate, key, v, nil)
	}

	raw, err := required("OFXHEADER")
	if err != nil {
		return nil, err
	}
	if h.OFXHeader, err = strconv.Atoi(raw); err != nil {
		return nil, malformed(headerAggregate, "OFXHEADER", raw, err)
	}
	if _, err = required("VERSION"); err != nil {
		return nil, err
	}
	version, err := closed("VERSION", "", string(V102), string(V103), string(V151), string(V160))
	if err != nil {
		return nil, err
	}
	h.Version = Version(version)
	dataType, err := closed("DATA", string(OFXSGML), string(OFXSGML))
	if err != nil {
		return nil, err
	}
	h.Data = DataType(dataType)
	security, err := closed("SECURITY", string(SecurityNone), string(SecurityNone), string(SecurityType1))
	if err != nil {
		return nil, err
	}
	h.Security = Security(security)
	encoding, err := closed("ENCODING", string(USASCII), string(USASCII), string(UNICODE), string(UTF8))
	if err != nil {
		return nil, err
	}
	h.Encoding = Encoding(encoding)
	if h.Charset, err = required("CHARSET"); err != nil {
		return nil, err
	}
	if v, found := values["COMPRESSION"]; found && v != "" {
		h.Compression = &v
	}
	if h.OldFileUID, err = required("OLDFILEUID"); err != nil {
		return nil, err
	}
	if h.NewFileUID, err = required("NEWFILEUID"); err != nil {
		return nil, err
	}
	return h, nil
}
