package ofx

import (
	"strings"

	"github.com/golang/glog"
	"golang.org/x/text/language"
)

// Each builder maps the element of one aggregate. Errors of nested aggregates are returned
// with the builder's element prepended to their path.

func buildStatus(f fields) (Status, error) {
	code, err := f.getInt("CODE")
	if err != nil {
		return Status{}, err
	}
	severity, err := f.getEnum("SEVERITY")
	if err != nil {
		return Status{}, err
	}
	return Status{
		Code:     code,
		Severity: ParseSeverity(severity),
		Message:  f.getOptional("MESSAGE"),
	}, nil
}

// requiredStatus builds the STATUS child of f.
func requiredStatus(f fields) (Status, error) {
	el := f.child("STATUS")
	if el == nil {
		return Status{}, missing(f.aggregate(), "STATUS")
	}
	status, err := buildStatus(f.sub(el))
	if err != nil {
		return Status{}, within(f.aggregate(), err)
	}
	return status, nil
}

func buildLanguage(code string) Language {
	tag, err := language.Parse(strings.ToLower(code))
	if err != nil {
		glog.V(2).Infof("unrecognized language %q: %v", code, err)
		tag = language.Und
	}
	return Language{Code: code, Tag: tag}
}

func buildInstitution(f fields) (*FinancialInstitution, error) {
	org, err := f.getRequired("ORG")
	if err != nil {
		return nil, err
	}
	return &FinancialInstitution{Organization: org, ID: f.getOptional("FID")}, nil
}

func buildSignOnResponse(f fields) (SignOnResponse, error) {
	var (
		rs  SignOnResponse
		err error
	)
	if rs.Status, err = requiredStatus(f); err != nil {
		return rs, err
	}
	if rs.ServerDate, err = f.getDate("DTSERVER"); err != nil {
		return rs, err
	}
	lang, err := f.getRequired("LANGUAGE")
	if err != nil {
		return rs, err
	}
	rs.Language = buildLanguage(lang)
	rs.ProfileUpdated = f.getOptionalDate("DTPROFUP")
	rs.AccountsUpdated = f.getOptionalDate("DTACCTUP")
	rs.IntuitBankID = f.getOptional("INTU.BID")
	if el := f.child("FI"); el != nil {
		if rs.Institution, err = buildInstitution(f.sub(el)); err != nil {
			return rs, within(f.aggregate(), err)
		}
	}
	return rs, nil
}

func buildBankAccount(f fields) (Account, error) {
	bankID, err := f.getRequired("BANKID")
	if err != nil {
		return Account{}, err
	}
	id, err := f.getRequired("ACCTID")
	if err != nil {
		return Account{}, err
	}
	accountType, err := f.getEnum("ACCTTYPE")
	if err != nil {
		return Account{}, err
	}
	return Account{
		Kind:     BankAccount,
		BankID:   bankID,
		BranchID: f.getOptional("BRANCHID"),
		ID:       id,
		Type:     ParseAccountType(accountType),
		Key:      f.getOptional("ACCTKEY"),
	}, nil
}

func buildCreditCardAccount(f fields) (Account, error) {
	id, err := f.getRequired("ACCTID")
	if err != nil {
		return Account{}, err
	}
	return Account{
		Kind: CreditCardAccount,
		ID:   id,
		Key:  f.getOptional("ACCTKEY"),
	}, nil
}

func buildBalance(f fields) (*Balance, error) {
	amount, err := f.getAmount("BALAMT")
	if err != nil {
		return nil, err
	}
	asOf, err := f.getDate("DTASOF")
	if err != nil {
		return nil, err
	}
	return &Balance{Amount: amount, AsOf: asOf}, nil
}

func buildCurrency(f fields) (*Currency, error) {
	rate, err := f.getAmount("CURRATE")
	if err != nil {
		return nil, err
	}
	symbol, err := f.getRequired("CURSYM")
	if err != nil {
		return nil, err
	}
	return &Currency{Rate: rate, Symbol: symbol}, nil
}

func buildPayee(f fields) (*Payee, error) {
	name, err := f.getRequired("NAME")
	if err != nil {
		return nil, err
	}
	return &Payee{
		Name:       name,
		Address1:   f.getOptional("ADDR1"),
		Address2:   f.getOptional("ADDR2"),
		Address3:   f.getOptional("ADDR3"),
		City:       f.getOptional("CITY"),
		State:      f.getOptional("STATE"),
		PostalCode: f.getOptional("POSTALCODE"),
		Country:    f.getOptional("COUNTRY"),
		Phone:      f.getOptional("PHONE"),
	}, nil
}

// optionalChild builds the named child aggregate of f when present. A present child that
// fails to build fails f.
func optionalChild[T any](f fields, name string, build func(fields) (*T, error)) (*T, error) {
	el := f.child(name)
	if el == nil {
		return nil, nil
	}
	v, err := build(f.sub(el))
	if err != nil {
		return nil, within(f.aggregate(), err)
	}
	return v, nil
}

func buildTransaction(f fields) (Transaction, error) {
	var (
		txn Transaction
		err error
	)
	trnType, err := f.getEnum("TRNTYPE")
	if err != nil {
		return txn, err
	}
	txn.Type = ParseTransactionType(trnType)
	if txn.Posted, err = f.getDate("DTPOSTED"); err != nil {
		return txn, err
	}
	if txn.Amount, err = f.getAmount("TRNAMT"); err != nil {
		return txn, err
	}
	txn.ID = f.getOptional("FITID")
	txn.Initiated = f.getOptionalDate("DTUSER")
	txn.Available = f.getOptionalDate("DTAVAIL")
	txn.CorrectID = f.getOptional("CORRECTFITID")
	if action := f.getOptional("CORRECTACTION"); action != nil {
		a := ParseCorrectAction(*action)
		txn.CorrectAction = &a
	}
	txn.ServerID = f.getOptional("SRVRTID")
	txn.CheckNumber = f.getOptional("CHECKNUM")
	txn.ReferenceID = f.getOptional("REFNUM")
	txn.SIC = f.getOptional("SIC")
	txn.PayeeID = f.getOptional("PAYEEID")
	txn.Name = f.getOptional("NAME")
	txn.ExtendedName = f.getOptional("EXTDNAME")
	txn.Memo = f.getOptional("MEMO")
	if txn.Payee, err = optionalChild(f, "PAYEE", buildPayee); err != nil {
		return txn, err
	}
	if txn.Currency, err = optionalChild(f, "CURRENCY", buildCurrency); err != nil {
		return txn, err
	}
	if txn.OrigCurrency, err = optionalChild(f, "ORIGCURRENCY", buildCurrency); err != nil {
		return txn, err
	}
	return txn, nil
}

// buildBankTransactions keeps transactions in document order. The first transaction that fails
// to build fails the whole list.
func buildBankTransactions(f fields) (*BankTransactions, error) {
	start, err := f.getDate("DTSTART")
	if err != nil {
		return nil, err
	}
	end, err := f.getDate("DTEND")
	if err != nil {
		return nil, err
	}
	elements := f.el.All("STMTTRN")
	list := &BankTransactions{
		Start:        start,
		End:          end,
		Transactions: make([]Transaction, 0, len(elements)),
	}
	for _, el := range elements {
		txn, err := buildTransaction(f.sub(el))
		if err != nil {
			return nil, within(f.aggregate(), err)
		}
		list.Transactions = append(list.Transactions, txn)
	}
	return list, nil
}

// statementSpec describes the tags of one statement flavour.
type statementSpec struct {
	response       string // STMTTRNRS
	statement      string // STMTRS
	account        string // BANKACCTFROM
	buildAccount   func(fields) (Account, error)
	ledgerRequired bool
}

var (
	bankStatement = statementSpec{
		response:     "STMTTRNRS",
		statement:    "STMTRS",
		account:      string(BankAccount),
		buildAccount: buildBankAccount,
	}
	creditCardStatement = statementSpec{
		response:       "CCSTMTTRNRS",
		statement:      "CCSTMTRS",
		account:        string(CreditCardAccount),
		buildAccount:   buildCreditCardAccount,
		ledgerRequired: true,
	}
)

func (s statementSpec) buildStatement(f fields) (*Statement, error) {
	var (
		stmt = &Statement{}
		err  error
	)
	if stmt.Currency, err = f.getRequired("CURDEF"); err != nil {
		return nil, err
	}
	el := f.child(s.account)
	if el == nil {
		return nil, missing(f.aggregate(), s.account)
	}
	if stmt.Account, err = s.buildAccount(f.sub(el)); err != nil {
		return nil, within(f.aggregate(), err)
	}
	if stmt.Transactions, err = optionalChild(f, "BANKTRANLIST", buildBankTransactions); err != nil {
		return nil, err
	}
	if stmt.Ledger, err = optionalChild(f, "LEDGERBAL", buildBalance); err != nil {
		return nil, err
	}
	if stmt.Ledger == nil && s.ledgerRequired {
		return nil, missing(f.aggregate(), "LEDGERBAL")
	}
	if stmt.Available, err = optionalChild(f, "AVAILBAL", buildBalance); err != nil {
		return nil, err
	}
	stmt.MarketingInfo = f.getOptional("MKTGINFO")
	return stmt, nil
}

// buildResponse requires a statement unless the status reports an error.
func (s statementSpec) buildResponse(f fields) (StatementResponse, error) {
	var (
		rs  StatementResponse
		err error
	)
	if rs.TransactionUID, err = f.getRequired("TRNUID"); err != nil {
		return rs, err
	}
	if rs.Status, err = requiredStatus(f); err != nil {
		return rs, err
	}
	if rs.Statement, err = optionalChild(f, s.statement, s.buildStatement); err != nil {
		return rs, err
	}
	if rs.Statement == nil && rs.Status.OK() {
		return rs, missing(f.aggregate(), s.statement)
	}
	return rs, nil
}

// buildResponses builds every response of a message set in document order.
func (s statementSpec) buildResponses(f fields) ([]StatementResponse, error) {
	elements := f.el.All(s.response)
	if len(elements) == 0 {
		return nil, missing(f.aggregate(), s.response)
	}
	responses := make([]StatementResponse, 0, len(elements))
	for _, el := range elements {
		rs, err := s.buildResponse(f.sub(el))
		if err != nil {
			return nil, within(f.aggregate(), err)
		}
		responses = append(responses, rs)
	}
	return responses, nil
}

func buildSignOnMessageSet(f fields) (*SignOnMessageSet, error) {
	el := f.child("SONRS")
	if el == nil {
		return nil, missing(f.aggregate(), "SONRS")
	}
	rs, err := buildSignOnResponse(f.sub(el))
	if err != nil {
		return nil, within(f.aggregate(), err)
	}
	return &SignOnMessageSet{Response: rs}, nil
}

func buildBankMessageSet(f fields) (*BankMessageSet, error) {
	responses, err := bankStatement.buildResponses(f)
	if err != nil {
		return nil, err
	}
	return &BankMessageSet{Responses: responses}, nil
}

func buildCreditCardMessageSet(f fields) (*CreditCardMessageSet, error) {
	responses, err := creditCardStatement.buildResponses(f)
	if err != nil {
		return nil, err
	}
	return &CreditCardMessageSet{Responses: responses}, nil
}

// knownSections are the children of OFX that buildBody maps.
var knownSections = map[string]struct{}{
	string(SignOnMessageSetKind):     {},
	string(BankMessageSetKind):       {},
	string(CreditCardMessageSetKind): {},
}

// buildBody maps the OFX element. Every message set is optional and other sections are
// ignored.
func buildBody(f fields) (Body, error) {
	var (
		body Body
		err  error
	)
	for _, name := range f.el.Names() {
		if _, found := knownSections[name]; !found {
			glog.V(2).Infof("ignoring section %s", name)
		}
	}
	if body.SignOn, err = optionalChild(f, string(SignOnMessageSetKind), buildSignOnMessageSet); err != nil {
		return body, err
	}
	if body.Bank, err = optionalChild(f, string(BankMessageSetKind), buildBankMessageSet); err != nil {
		return body, err
	}
	if body.CreditCard, err = optionalChild(f, string(CreditCardMessageSetKind), buildCreditCardMessageSet); err != nil {
		return body, err
	}
	return body, nil
}
