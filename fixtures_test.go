package ofx_test

import (
	"strings"
)

const signOn = `<SIGNONMSGSRSV1><SONRS>
	<STATUS><CODE>0<SEVERITY>INFO</STATUS>
	<DTSERVER>20190923042445<LANGUAGE>ENG
	<FI><ORG>Test Bank<FID>123</FI>
</SONRS></SIGNONMSGSRSV1>`

// txn returns a STMTTRN aggregate holding the given elements.
func txn(elements ...string) string {
	return "<STMTTRN>" + strings.Join(elements, "") + "</STMTTRN>\n"
}

// requiredTxn returns a transaction with only required fields and the given id.
func requiredTxn(id string, extra ...string) string {
	return txn(append([]string{"<TRNTYPE>DEBIT", "<DTPOSTED>20190119", "<TRNAMT>-20.96", "<FITID>" + id}, extra...)...)
}

// bankStatement returns a STMTTRNRS aggregate with the given transactions.
func bankStatement(txns ...string) string {
	return `<STMTTRNRS><TRNUID>1001
	<STATUS><CODE>0<SEVERITY>INFO</STATUS>
	<STMTRS><CURDEF>USD
		<BANKACCTFROM><BANKID>456<ACCTID>789<ACCTTYPE>CHECKING</BANKACCTFROM>
		<BANKTRANLIST><DTSTART>20190101<DTEND>20190131
		` + strings.Join(txns, "") + `</BANKTRANLIST>
		<LEDGERBAL><BALAMT>315.50<DTASOF>20190131120000.000[0:GMT]</LEDGERBAL>
		<AVAILBAL><BALAMT>300.00<DTASOF>20190131120000.000[-7:MST]</AVAILBAL>
	</STMTRS>
</STMTTRNRS>`
}

func bankMessages(statements ...string) string {
	return "<BANKMSGSRSV1>" + strings.Join(statements, "") + "</BANKMSGSRSV1>"
}

// creditCardStatement returns a CCSTMTTRNRS aggregate with the given transactions.
func creditCardStatement(txns ...string) string {
	return `<CCSTMTTRNRS><TRNUID>2002
	<STATUS><CODE>0<SEVERITY>INFO</STATUS>
	<CCSTMTRS><CURDEF>USD
		<CCACCTFROM><ACCTID>abc123</CCACCTFROM>
		<BANKTRANLIST><DTSTART>20190501<DTEND>20190531
		` + strings.Join(txns, "") + `</BANKTRANLIST>
		<LEDGERBAL><BALAMT>-1200.10<DTASOF>20190531</LEDGERBAL>
	</CCSTMTRS>
</CCSTMTTRNRS>`
}

func creditCardMessages(statements ...string) string {
	return "<CREDITCARDMSGSRSV1>" + strings.Join(statements, "") + "</CREDITCARDMSGSRSV1>"
}

// document returns a complete OFX document with the given message sets.
func document(sections ...string) string {
	return strings.Replace(validHeader, "VERSION:102", "VERSION:160", 1) +
		"<OFX>\n" + strings.Join(sections, "\n") + "\n</OFX>\n"
}
