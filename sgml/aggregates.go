package sgml

import "sync"

var aggregatesMap map[string]struct{}
var initAggregatesMap sync.Once

// GetAggregates returns the singleton aggregates map instance.
//
// OFX 1.6 SGML allows elements to omit their end tag but aggregates must be closed, so the
// cleaner can only re-balance a document whose aggregate names it knows.
func GetAggregates() map[string]struct{} {
	initAggregatesMap.Do(func() {
		var aggregates = []string{
			"OFX",
			// Sign on.
			"SIGNONMSGSRSV1", "SONRS", "STATUS", "FI",
			// Banking.
			"BANKMSGSRSV1", "STMTTRNRS", "STMTRS", "BANKACCTFROM", "BANKACCTTO",
			"BANKTRANLIST", "STMTTRN", "LEDGERBAL", "AVAILBAL", "PAYEE",
			"CURRENCY", "ORIGCURRENCY", "CCACCTTO",
			// Credit card.
			"CREDITCARDMSGSRSV1", "CCSTMTTRNRS", "CCSTMTRS", "CCACCTFROM",
			// Message sets that are not modeled but must stay self contained.
			"SIGNUPMSGSRSV1", "INVSTMTMSGSRSV1", "INTERXFERMSGSRSV1", "WIREXFERMSGSRSV1",
			"BILLPAYMSGSRSV1", "EMAILMSGSRSV1", "SECLISTMSGSRSV1", "PROFMSGSRSV1",
		}
		aggregatesMap = make(map[string]struct{}, len(aggregates))
		for _, a := range aggregates {
			aggregatesMap[a] = struct{}{}
		}
	})
	return aggregatesMap
}

// IsAggregate returns true if the given tag is a known aggregate tag.
func IsAggregate(tag string) bool {
	_, found := GetAggregates()[tag]
	return found
}
