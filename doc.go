/*
Package ofx parses OFX 1.6 SGML documents into typed, validated values.

Raw data is turned into a generic element tree by a TreeBuilder (package sgml by default) and
then mapped onto Document, its message sets, statements, accounts and transactions.

Fields follow one policy:
  - required structural fields fail the enclosing aggregate with a Missing or Malformed *Error,
  - controlled vocabulary fields (transaction type, account type, severity) never fail, codes
    outside the known set are kept verbatim and report Known() == false,
  - descriptive and other optional fields are nil when absent or unusable.

Serialization back to OFX and OFX 2.x XML documents are not supported.
*/
package ofx
