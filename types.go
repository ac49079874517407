package ofx

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Status is a STATUS aggregate.
type Status struct {
	Code     int      `yaml:"code"`
	Severity Severity `yaml:"severity"`
	Message  *string  `yaml:"message,omitempty"`
}

// OK returns false when the severity is ERROR.
func (s Status) OK() bool {
	return s.Severity != ERROR
}

// Language is the LANGUAGE of a sign on response. Code is kept as sent, Tag is
// language.Und when the code is not a valid ISO-639 code.
type Language struct {
	Code string       `yaml:"code"`
	Tag  language.Tag `yaml:"tag"`
}

// Known returns true when the code was recognized.
func (l Language) Known() bool {
	return l.Tag != language.Und
}

// FinancialInstitution is the FI aggregate of a sign on response.
type FinancialInstitution struct {
	Organization string  `yaml:"organization"`
	ID           *string `yaml:"id,omitempty"`
}

// SignOnResponse is SIGNONMSGSRSV1>SONRS.
type SignOnResponse struct {
	Status          Status                `yaml:"status"`
	ServerDate      time.Time             `yaml:"server_date"`
	Language        Language              `yaml:"language"`
	ProfileUpdated  *time.Time            `yaml:"profile_updated,omitempty"`
	AccountsUpdated *time.Time            `yaml:"accounts_updated,omitempty"`
	Institution     *FinancialInstitution `yaml:"institution,omitempty"`
	IntuitBankID    *string               `yaml:"intuit_bank_id,omitempty"`
}

// AccountKind tells bank accounts from credit card accounts.
type AccountKind string

//revive:disable:exported
const (
	BankAccount       AccountKind = "BANKACCTFROM"
	CreditCardAccount AccountKind = "CCACCTFROM"
)

//revive:enable:exported

// Account identifies the account of a statement. BankID and Type are only set for bank
// accounts.
type Account struct {
	Kind     AccountKind `yaml:"kind"`
	BankID   string      `yaml:"bank_id,omitempty"`
	BranchID *string     `yaml:"branch_id,omitempty"`
	ID       string      `yaml:"id"`
	Type     AccountType `yaml:"type,omitempty"`
	Key      *string     `yaml:"key,omitempty"`
}

// Balance is a LEDGERBAL or AVAILBAL aggregate.
type Balance struct {
	Amount decimal.Decimal `yaml:"amount"`
	AsOf   time.Time       `yaml:"as_of"`
}

// Currency is a CURRENCY or ORIGCURRENCY aggregate.
type Currency struct {
	Rate   decimal.Decimal `yaml:"rate"`
	Symbol string          `yaml:"symbol"`
}

// Payee is a PAYEE aggregate.
type Payee struct {
	Name       string  `yaml:"name"`
	Address1   *string `yaml:"address1,omitempty"`
	Address2   *string `yaml:"address2,omitempty"`
	Address3   *string `yaml:"address3,omitempty"`
	City       *string `yaml:"city,omitempty"`
	State      *string `yaml:"state,omitempty"`
	PostalCode *string `yaml:"postal_code,omitempty"`
	Country    *string `yaml:"country,omitempty"`
	Phone      *string `yaml:"phone,omitempty"`
}

// Transaction is a STMTTRN aggregate. Type, Posted and Amount are always set.
type Transaction struct {
	Type          TransactionType `yaml:"type"`
	Posted        time.Time       `yaml:"posted"`
	Amount        decimal.Decimal `yaml:"amount"`
	ID            *string         `yaml:"id,omitempty"`
	Initiated     *time.Time      `yaml:"initiated,omitempty"`
	Available     *time.Time      `yaml:"available,omitempty"`
	CorrectID     *string         `yaml:"correct_id,omitempty"`
	CorrectAction *CorrectAction  `yaml:"correct_action,omitempty"`
	ServerID      *string         `yaml:"server_id,omitempty"`
	CheckNumber   *string         `yaml:"check_number,omitempty"`
	ReferenceID   *string         `yaml:"reference_id,omitempty"`
	SIC           *string         `yaml:"sic,omitempty"`
	PayeeID       *string         `yaml:"payee_id,omitempty"`
	Name          *string         `yaml:"name,omitempty"`
	ExtendedName  *string         `yaml:"extended_name,omitempty"`
	Payee         *Payee          `yaml:"payee,omitempty"`
	Memo          *string         `yaml:"memo,omitempty"`
	Currency      *Currency       `yaml:"currency,omitempty"`
	OrigCurrency  *Currency       `yaml:"orig_currency,omitempty"`
}

// BankTransactions is a BANKTRANLIST aggregate. Transactions are in document order.
type BankTransactions struct {
	Start        time.Time     `yaml:"start"`
	End          time.Time     `yaml:"end"`
	Transactions []Transaction `yaml:"transactions"`
}

// Statement is a STMTRS or CCSTMTRS aggregate.
type Statement struct {
	Currency      string            `yaml:"currency"`
	Account       Account           `yaml:"account"`
	Transactions  *BankTransactions `yaml:"bank_transactions,omitempty"`
	Ledger        *Balance          `yaml:"ledger_balance,omitempty"`
	Available     *Balance          `yaml:"available_balance,omitempty"`
	MarketingInfo *string           `yaml:"marketing_info,omitempty"`
}

// StatementResponse is a STMTTRNRS or CCSTMTTRNRS aggregate. Statement is nil only when the
// status is not OK.
type StatementResponse struct {
	TransactionUID string     `yaml:"transaction_uid"`
	Status         Status     `yaml:"status"`
	Statement      *Statement `yaml:"statement,omitempty"`
}

// MessageSetKind names a supported message set.
type MessageSetKind string

//revive:disable:exported
const (
	SignOnMessageSetKind     MessageSetKind = "SIGNONMSGSRSV1"
	BankMessageSetKind       MessageSetKind = "BANKMSGSRSV1"
	CreditCardMessageSetKind MessageSetKind = "CREDITCARDMSGSRSV1"
)

//revive:enable:exported

// MessageSet is implemented by the message set types of this package only.
type MessageSet interface {
	Kind() MessageSetKind
	messageSet()
}

// SignOnMessageSet is SIGNONMSGSRSV1.
type SignOnMessageSet struct {
	Response SignOnResponse `yaml:"response"`
}

// BankMessageSet is BANKMSGSRSV1, holding one or more statement responses.
type BankMessageSet struct {
	Responses []StatementResponse `yaml:"responses"`
}

// CreditCardMessageSet is CREDITCARDMSGSRSV1, holding one or more statement responses.
type CreditCardMessageSet struct {
	Responses []StatementResponse `yaml:"responses"`
}

func (*SignOnMessageSet) Kind() MessageSetKind     { return SignOnMessageSetKind }
func (*BankMessageSet) Kind() MessageSetKind       { return BankMessageSetKind }
func (*CreditCardMessageSet) Kind() MessageSetKind { return CreditCardMessageSetKind }

func (*SignOnMessageSet) messageSet()     {}
func (*BankMessageSet) messageSet()       {}
func (*CreditCardMessageSet) messageSet() {}

// Body is the OFX element. Each message set is nil when the document omits it.
type Body struct {
	SignOn     *SignOnMessageSet     `yaml:"sign_on,omitempty"`
	Bank       *BankMessageSet       `yaml:"bank,omitempty"`
	CreditCard *CreditCardMessageSet `yaml:"credit_card,omitempty"`
}

// MessageSets returns the present message sets in a fixed order: sign on, bank, credit card.
func (b Body) MessageSets() []MessageSet {
	var sets []MessageSet
	if b.SignOn != nil {
		sets = append(sets, b.SignOn)
	}
	if b.Bank != nil {
		sets = append(sets, b.Bank)
	}
	if b.CreditCard != nil {
		sets = append(sets, b.CreditCard)
	}
	return sets
}
