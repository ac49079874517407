package ofx

import (
	"strings"
	"sync"
)

//revive:disable:exported

// TransactionType is a transaction type as per the OFX Spec 1.6 Section 11.4.2.3.
// Codes outside the known set are kept verbatim.
type TransactionType string

const (
	// Common Transaction Types
	DEBIT  TransactionType = "DEBIT"
	CREDIT TransactionType = "CREDIT"
	// Uncommon Transaction Types
	INTEREST      TransactionType = "INT"
	DIVIDEND      TransactionType = "DIV"
	FEE           TransactionType = "FEE"
	SERVICECHARGE TransactionType = "SRVCHG"
	DEPOSIT       TransactionType = "DEP"
	ATM           TransactionType = "ATM"
	POS           TransactionType = "POS"
	TRANSFER      TransactionType = "XFER"
	CHECK         TransactionType = "CHECK"
	PAYMENT       TransactionType = "PAYMENT"
	CASH          TransactionType = "CASH"
	DIRECTDEPOSIT TransactionType = "DIRECTDEP"
	DIRECTDEBIT   TransactionType = "DIRECTDEBIT"
	REPEATPAYMENT TransactionType = "REPEATPMT"
	OTHER         TransactionType = "OTHER"
)

// AccountType is a bank account type as per the OFX Spec 1.6 Section 11.3.1.1.
type AccountType string

const (
	CHECKING   AccountType = "CHECKING"
	SAVINGS    AccountType = "SAVINGS"
	MONEYMRKT  AccountType = "MONEYMRKT"
	CREDITLINE AccountType = "CREDITLINE"
	CMA        AccountType = "CMA"
)

// Severity is the severity of a STATUS aggregate.
type Severity string

const (
	INFO  Severity = "INFO"
	WARN  Severity = "WARN"
	ERROR Severity = "ERROR"
)

// CorrectAction is the action of a correcting transaction.
type CorrectAction string

const (
	REPLACE CorrectAction = "REPLACE"
	DELETE  CorrectAction = "DELETE"
)

//revive:enable:exported

// vocabulary is a closed set of codes of one enumerated field.
type vocabulary map[string]struct{}

func newVocabulary(codes ...string) vocabulary {
	v := make(vocabulary, len(codes))
	for _, c := range codes {
		v[c] = struct{}{}
	}
	return v
}

func (v vocabulary) has(code string) bool {
	_, found := v[code]
	return found
}

type registry struct {
	transactionTypes vocabulary
	accountTypes     vocabulary
	severities       vocabulary
	correctActions   vocabulary
}

var vocabularies *registry
var initVocabularies sync.Once

// getRegistry returns the singleton registry of known codes.
func getRegistry() *registry {
	initVocabularies.Do(func() {
		vocabularies = &registry{
			transactionTypes: newVocabulary(
				"DEBIT", "CREDIT", "INT", "DIV", "FEE", "SRVCHG", "DEP", "ATM", "POS", "XFER",
				"CHECK", "PAYMENT", "CASH", "DIRECTDEP", "DIRECTDEBIT", "REPEATPMT", "OTHER",
			),
			accountTypes:   newVocabulary("CHECKING", "SAVINGS", "MONEYMRKT", "CREDITLINE", "CMA"),
			severities:     newVocabulary("INFO", "WARN", "ERROR"),
			correctActions: newVocabulary("REPLACE", "DELETE"),
		}
	})
	return vocabularies
}

// normalizeCode is applied to every enumerated value before lookup.
func normalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// lookup returns the canonical code when raw is known, otherwise raw unchanged so the
// fallback keeps exactly what the institution sent.
func (v vocabulary) lookup(raw string) (string, bool) {
	if code := normalizeCode(raw); v.has(code) {
		return code, true
	}
	return raw, false
}

// ParseTransactionType returns the transaction type for the given code. It never fails.
func ParseTransactionType(raw string) TransactionType {
	code, _ := getRegistry().transactionTypes.lookup(raw)
	return TransactionType(code)
}

// Known returns false for the fallback variant holding an unrecognized code.
func (t TransactionType) Known() bool {
	return getRegistry().transactionTypes.has(string(t))
}

// ParseAccountType returns the account type for the given code. It never fails.
func ParseAccountType(raw string) AccountType {
	code, _ := getRegistry().accountTypes.lookup(raw)
	return AccountType(code)
}

// Known returns false for the fallback variant holding an unrecognized code.
func (t AccountType) Known() bool {
	return getRegistry().accountTypes.has(string(t))
}

// ParseSeverity returns the severity for the given code. It never fails.
func ParseSeverity(raw string) Severity {
	code, _ := getRegistry().severities.lookup(raw)
	return Severity(code)
}

// Known returns false for the fallback variant holding an unrecognized code.
func (s Severity) Known() bool {
	return getRegistry().severities.has(string(s))
}

// ParseCorrectAction returns the correct action for the given code. It never fails.
func ParseCorrectAction(raw string) CorrectAction {
	code, _ := getRegistry().correctActions.lookup(raw)
	return CorrectAction(code)
}

// Known returns false for the fallback variant holding an unrecognized code.
func (a CorrectAction) Known() bool {
	return getRegistry().correctActions.has(string(a))
}
