package ofx

import (
	"errors"
	"io"
	"io/ioutil"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/rockstardevs/ofx/sgml"
)

var errMissingRoot = errors.New("error - tree is not rooted at OFX")

//go:generate mockgen -destination=mock_ofx/mock_ofx.go github.com/rockstardevs/ofx TreeBuilder

// TreeBuilder turns raw OFX SGML into an element tree rooted at the OFX element.
type TreeBuilder interface {
	Build(data []byte) (*sgml.Element, error)
}

// Option configures a Parser.
type Option func(*Parser)

// WithLocation sets the location of dates that carry no gmt offset. The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		p.location = loc
	}
}

// WithTreeBuilder replaces the sgml tree builder.
func WithTreeBuilder(b TreeBuilder) Option {
	return func(p *Parser) {
		p.builder = b
	}
}

// Parser maps OFX documents. It holds no per document state and is safe for concurrent use.
type Parser struct {
	builder  TreeBuilder
	location *time.Location
}

// NewParser returns a Parser with the given options applied.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		builder:  sgml.NewBuilder(),
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.location == nil {
		p.location = time.UTC
	}
	return p
}

// Document is a parsed OFX 1.6 document.
type Document struct {
	Header Header `yaml:"header"`
	Body   Body   `yaml:"body"`
}

// Parse parses the given OFX document text with the default parser.
func Parse(raw string) (*Document, error) {
	return NewParser().Parse([]byte(raw))
}

// NewDocument reads and parses an OFX document with the default parser.
func NewDocument(reader io.Reader, opts ...Option) (*Document, error) {
	return NewParser(opts...).NewDocument(reader)
}

// NewDocument reads and parses an OFX document. Read failures are returned unchanged.
func (p *Parser) NewDocument(reader io.Reader) (*Document, error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return p.Parse(data)
}

// Parse parses the given OFX document. Any error is an *Error.
func (p *Parser) Parse(data []byte) (*Document, error) {
	rawHeader, rawBody, err := splitDocument(data)
	if err != nil {
		return nil, tokenize(err)
	}
	header, err := ParseHeader(rawHeader)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("parsing OFX %s document", header.Version)

	root, err := p.builder.Build(rawBody)
	if err != nil {
		return nil, tokenize(err)
	}
	if root == nil || root.Name != "OFX" {
		return nil, tokenize(errMissingRoot)
	}
	body, err := buildBody(fields{el: root, loc: p.location})
	if err != nil {
		return nil, err
	}
	return &Document{Header: *header, Body: body}, nil
}

// Statements returns every statement of the document, bank statements first, in document order.
func (d *Document) Statements() []*Statement {
	var result []*Statement
	collect := func(responses []StatementResponse) {
		for _, rs := range responses {
			if rs.Statement != nil {
				result = append(result, rs.Statement)
			}
		}
	}
	if d.Body.Bank != nil {
		collect(d.Body.Bank.Responses)
	}
	if d.Body.CreditCard != nil {
		collect(d.Body.CreditCard.Responses)
	}
	return result
}

// Transactions returns all transactions from the OFX document, statement by statement.
// These may belong to different accounts.
func (d *Document) Transactions() []Transaction {
	txns := make([]Transaction, 0)
	for _, s := range d.Statements() {
		if s.Transactions != nil {
			txns = append(txns, s.Transactions.Transactions...)
		}
	}
	return txns
}

// TransactionCount returns the number of transactions in the document.
func (d *Document) TransactionCount() int {
	count := 0
	for _, s := range d.Statements() {
		if s.Transactions != nil {
			count += len(s.Transactions.Transactions)
		}
	}
	return count
}

// String returns a one line description of the document for logging.
func (d *Document) String() string {
	kinds := make([]string, 0, 3)
	for _, set := range d.Body.MessageSets() {
		kinds = append(kinds, string(set.Kind()))
	}
	return "OFX " + string(d.Header.Version) + " [" + strings.Join(kinds, " ") + "]"
}
